package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	showID   string
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show [index]",
	Short: "Print a note",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseTarget(args, showID)
		if err != nil {
			return err
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		n, err := s.resolve(t)
		if err != nil {
			return err
		}
		index := t.index
		if t.id != "" {
			for i, other := range s.service.ListAll() {
				if other.ID == n.ID {
					index = i
					break
				}
			}
		}

		out := cmd.OutOrStdout()
		if showJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(newNoteView(index, n, true))
		}

		fmt.Fprintf(out, "%s\n", n.Title)
		fmt.Fprintf(out, "Category: %s\n", n.Category)
		fmt.Fprintf(out, "Created:  %s\n", n.CreatedAt.Local().Format(time.DateTime))
		fmt.Fprintf(out, "Modified: %s\n", n.UpdatedAt.Local().Format(time.DateTime))
		fmt.Fprintf(out, "Id:       %s\n\n", n.ID)
		fmt.Fprintln(out, n.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showID, "id", "", "Note id instead of index")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
