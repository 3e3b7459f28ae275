// ABOUTME: TUI command for the strikersgear CLI
// ABOUTME: Launches the interactive admin console

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/osamaqaseem39/strikersgear-dashboard/internal/session"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive admin console",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		s, err := loadSettings()
		if err != nil {
			return err
		}

		// The console restores the session itself behind its loading screen
		store := session.New(session.NewFileStore(s.Dir))
		if err := tui.Run(ctx, store, tui.Options{BaseURL: s.APIURL, Timeout: s.Timeout, ConfigDir: s.Dir}); err != nil {
			fmt.Fprintln(os.Stderr, "TUI error:", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
