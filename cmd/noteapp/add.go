package main

import (
	"fmt"

	"github.com/aretw0/noteapp/pkg/core"
	"github.com/spf13/cobra"
)

var (
	addTitle    string
	addCategory string
	addContent  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Long:  `Create a note and save the store. Titles longer than 50 characters are truncated.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category := core.CategoryMisc
		if addCategory != "" {
			c, err := core.LookupCategory(addCategory)
			if err != nil {
				return err
			}
			category = c
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		n, err := s.service.CreateNote(cmd.Context(), addTitle, category, addContent)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note created: [%d] %s (%s)\n", len(s.service.ListAll())-1, n.Title, n.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "Note title")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category label or key (default misc)")
	addCmd.Flags().StringVar(&addContent, "content", "", "Note content")
	addCmd.MarkFlagRequired("title")
}
