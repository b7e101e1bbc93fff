package main

import (
	"fmt"

	"github.com/aretw0/noteapp/pkg/core"
	"github.com/spf13/cobra"
)

var (
	editID       string
	editTitle    string
	editCategory string
	editContent  string
)

var editCmd = &cobra.Command{
	Use:   "edit [index]",
	Short: "Update a note",
	Long: `Update the title, category or content of a note. Only the flags given are
changed, but the modification time is always refreshed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseTarget(args, editID)
		if err != nil {
			return err
		}

		var u core.NoteUpdate
		if cmd.Flags().Changed("title") {
			u.Title = &editTitle
		}
		if cmd.Flags().Changed("category") {
			c, err := core.LookupCategory(editCategory)
			if err != nil {
				return err
			}
			u.Category = &c
		}
		if cmd.Flags().Changed("content") {
			u.Content = &editContent
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		var n core.Note
		if t.id != "" {
			n, err = s.service.UpdateNoteByID(cmd.Context(), t.id, u)
		} else {
			n, err = s.service.UpdateNote(cmd.Context(), t.index, u)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note updated: %s (%s)\n", n.Title, n.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editID, "id", "", "Note id instead of index")
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category label or key")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
}
