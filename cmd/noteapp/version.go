package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/noteapp"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of noteapp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "noteapp version %s\n", strings.TrimSpace(noteapp.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
