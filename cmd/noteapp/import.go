package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importFormat string

var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Append notes from a JSON or YAML export",
	Long: `Import appends the notes of another store or export to this one, keeping
their timestamps. Notes whose id already exists get a new id.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		codec, err := pickCodec(src, importFormat)
		if err != nil {
			return err
		}

		var data []byte
		if src == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(src)
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", src, err)
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		count, err := s.service.Import(cmd.Context(), data, codec)
		if err != nil {
			return fmt.Errorf("cannot import %s: %w", src, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes.\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: json or yaml")
}
