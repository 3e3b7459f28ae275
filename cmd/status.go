// ABOUTME: Status command for the strikersgear CLI
// ABOUTME: Shows the local session and whether the API has an admin

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/osamaqaseem39/strikersgear-dashboard/internal/bootstrap"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/client"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and API status",
	Long: `Display the configured API, whether a session is stored locally, and
whether the API already has an admin account.

Exit codes:
  0 - API reachable
  2 - Error (admin status could not be determined)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStatus(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// statusReport is the status command output
type statusReport struct {
	APIURL      string `json:"api_url"`
	ConfigDir   string `json:"config_dir"`
	Session     string `json:"session"`
	AdminStatus string `json:"admin_status"`
	Error       string `json:"error,omitempty"`
}

// runStatus gathers the report and returns exit code
func runStatus(ctx context.Context, w io.Writer) int {
	rt, err := newRuntime()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	status, err := bootstrap.Check(ctx, rt.catalog.Auth)
	report := statusReport{
		APIURL:      rt.settings.APIURL,
		ConfigDir:   rt.settings.Dir,
		Session:     rt.store.State().String(),
		AdminStatus: status.String(),
	}
	if err != nil {
		report.Error = client.Message(err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatStatusJSON(report))
	} else {
		fmt.Fprintln(w, formatStatusHuman(report))
	}

	if status == bootstrap.StatusUnknown {
		return 2
	}
	return 0
}

// formatStatusHuman formats the report for human readability
func formatStatusHuman(r statusReport) string {
	out := fmt.Sprintf(`API:      %s
Config:   %s
Session:  %s
Admin:    %s`, r.APIURL, r.ConfigDir, r.Session, r.AdminStatus)
	if r.Error != "" {
		out += "\nError:    " + r.Error
	}
	return out
}

// formatStatusJSON formats the report as JSON
func formatStatusJSON(r statusReport) string {
	data, _ := json.MarshalIndent(r, "", "  ")
	return string(data)
}
