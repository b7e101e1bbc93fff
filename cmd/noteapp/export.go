package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/aretw0/noteapp/pkg/adapters/fs"
	"github.com/aretw0/noteapp/pkg/core"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <file|->",
	Short: "Export all notes as JSON, YAML or Markdown",
	Long: `Export writes every note to a file. The format is taken from --format or
from the file extension (.json, .yaml, .yml, .md). Use "-" for standard output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest := args[0]
		codec, err := pickCodec(dest, exportFormat)
		if err != nil {
			return err
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		if dest == "-" {
			return s.service.Export(cmd.Context(), cmd.OutOrStdout(), codec)
		}

		var buf bytes.Buffer
		if err := s.service.Export(cmd.Context(), &buf, codec); err != nil {
			return err
		}
		if err := os.WriteFile(dest, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dest, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d notes to %s\n", len(s.service.ListAll()), dest)
		return nil
	},
}

// pickCodec prefers an explicit format name over the file extension.
func pickCodec(path, format string) (core.Codec, error) {
	if format != "" {
		return fs.CodecFor("x." + format)
	}
	if path == "-" {
		return nil, fmt.Errorf("--format is required when using standard input or output")
	}
	return fs.CodecFor(path)
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: json, yaml or md")
}
