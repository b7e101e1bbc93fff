package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/noteapp/pkg/adapters/lifecycle"
	"github.com/aretw0/noteapp/pkg/core"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload and report whenever the store file changes",
	Long: `Watch follows the store file, for example while another program edits it,
and prints the number of notes after every change. Stop it with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := s.service.Watch(ctx)
		if err != nil {
			return err
		}
		src := lifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Watching %s (%d notes)\n", s.store.Path, len(s.service.ListAll()))
		for e := range src.Events() {
			reportChange(ctx, out, s.service, e)
		}
		return nil
	},
}

func reportChange(ctx context.Context, out io.Writer, service *core.Service, e fmt.Stringer) {
	if err := service.Load(ctx); err != nil {
		slog.Warn("reload failed", "event", e.String(), "error", err)
		fmt.Fprintf(out, "%s: store unreadable: %s\n", e, describeError(err))
		return
	}
	fmt.Fprintf(out, "%s: %d notes\n", e, len(service.ListAll()))
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
