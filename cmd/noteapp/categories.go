package main

import (
	"fmt"

	"github.com/aretw0/noteapp/pkg/core"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available categories",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range core.Categories() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", c.Key(), c.Label())
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
