package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/noteapp/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose        bool
	configPath     string
	storePath      string
	readOnly       bool
	recoverCorrupt bool

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "noteapp",
	Short: "A small categorized note keeper backed by a single JSON file",
	Long: `NoteApp keeps short notes, each tagged with one category, in
~/Documents/NoteApp.notes. Every change is saved immediately.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level, _ := cfg.Log.SlogLevel()
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describeError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/noteapp/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Store file (default ~/Documents/NoteApp.notes)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Never write to the store")
	rootCmd.PersistentFlags().BoolVar(&recoverCorrupt, "recover", false, "Move an unreadable store aside and start empty")
}
