package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/noteapp/pkg/core"
	"github.com/spf13/cobra"
)

var (
	listJSON     bool
	listCategory string
	listMatch    string
)

// noteView is the JSON shape printed by list and show.
type noteView struct {
	Index     int    `json:"index"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Content   string `json:"content,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func newNoteView(index int, n core.Note, withContent bool) noteView {
	v := noteView{
		Index:     index,
		ID:        n.ID,
		Title:     n.Title,
		Category:  n.Category.Label(),
		CreatedAt: core.FormatTimestamp(n.CreatedAt),
		UpdatedAt: core.FormatTimestamp(n.UpdatedAt),
	}
	if withContent {
		v.Content = n.Content
	}
	return v
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		var filter *core.Category
		if listCategory != "" {
			c, err := core.LookupCategory(listCategory)
			if err != nil {
				return err
			}
			filter = &c
		}

		matched := make(map[string]bool)
		if listMatch != "" {
			notes, err := s.service.Match(listMatch)
			if err != nil {
				return err
			}
			for _, n := range notes {
				matched[n.ID] = true
			}
		}

		// Indexes stay the positions in the full list so they can be passed to edit/delete.
		var views []noteView
		for i, n := range s.service.ListAll() {
			if filter != nil && n.Category != *filter {
				continue
			}
			if listMatch != "" && !matched[n.ID] {
				continue
			}
			views = append(views, newNoteView(i, n, false))
		}

		out := cmd.OutOrStdout()
		if listJSON {
			if views == nil {
				views = []noteView{}
			}
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(views)
		}

		if len(views) == 0 {
			if !storeExists(s.store.Path) {
				fmt.Fprintf(out, "No notes yet. The store will be created at %s\n", s.store.Path)
			} else {
				fmt.Fprintln(out, "No notes found.")
			}
			return nil
		}

		for _, v := range views {
			fmt.Fprintf(out, "[%d] %s (%s)\n", v.Index, v.Title, v.Category)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only notes in this category (label or key)")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only notes whose title matches a glob pattern")
}
