package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteID string

var deleteCmd = &cobra.Command{
	Use:   "delete [index]",
	Short: "Delete a note",
	Long:  `Delete removes a note by index or id and saves the store. An index past the end is ignored.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseTarget(args, deleteID)
		if err != nil {
			return err
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if t.id != "" {
			if err := s.service.RemoveNoteByID(cmd.Context(), t.id); err != nil {
				return err
			}
			fmt.Fprintf(out, "Note deleted: %s\n", t.id)
			return nil
		}

		n, lookupErr := s.service.NoteAt(t.index)
		if err := s.service.RemoveNote(cmd.Context(), t.index); err != nil {
			return err
		}
		if lookupErr != nil {
			fmt.Fprintf(out, "No note at index %d; nothing deleted.\n", t.index)
			return nil
		}
		fmt.Fprintf(out, "Note deleted: [%d] %s\n", t.index, n.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "Note id instead of index")
}
