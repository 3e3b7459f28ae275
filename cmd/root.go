// ABOUTME: Root command for the strikersgear admin CLI
// ABOUTME: Handles global flags, configuration, and shared API wiring

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/client"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/config"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/gateway"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/guard"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/logger"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/route"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/session"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
	timeout    time.Duration
	configDir  string
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "strikersgear",
	Short: "Admin console for the Strikers Gear catalog",
	Long: `strikersgear manages the Strikers Gear catalog from the terminal.

It signs in as the store admin and lists, inspects, and edits products,
stock, orders, categories, brands, sizes, and banners.

Environment Variables:
  STRIKERSGEAR_API_URL     Catalog API URL (default: ` + config.DefaultAPIURL + `)
  VITE_API_URL             Used when STRIKERSGEAR_API_URL is unset
  STRIKERSGEAR_CONFIG_DIR  Where the session and config.yaml live
  LOG_LEVEL, LOG_FORMAT    Diagnostic logging on stderr`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(".env", ".env.local"); err != nil {
			return err
		}
		logger.Init(os.Stderr, slog.LevelWarn)
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Catalog API URL (overrides STRIKERSGEAR_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-request timeout (default 30s)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default $XDG_CONFIG_HOME/strikersgear)")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// loadSettings resolves configuration from flags, environment, and config.yaml
func loadSettings() (*config.Settings, error) {
	return config.Resolve(apiURL, timeout, configDir)
}

// loginRedirect notes that the gateway sent the operator back to login
type loginRedirect struct {
	hit atomic.Bool
}

// Navigate implements gateway.Navigator
func (r *loginRedirect) Navigate(path string) {
	if path == route.Login {
		r.hit.Store(true)
	}
}

// runtime is the wiring shared by every command that talks to the API
type runtime struct {
	settings *config.Settings
	store    *session.Store
	catalog  *catalog.Catalog
	redirect loginRedirect
}

func newRuntime() (*runtime, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, err
	}

	store := session.New(session.NewFileStore(s.Dir))
	store.Initialize()

	rt := &runtime{settings: s, store: store}
	api := client.New(s.APIURL, store, client.WithTimeout(s.Timeout))
	rt.catalog = catalog.New(gateway.New(api, store, &rt.redirect))
	return rt, nil
}

// protectedRuntime builds the runtime and applies the protected guard.
// On failure it returns nil and the exit code to use.
func protectedRuntime(w io.Writer) (*runtime, int) {
	rt, err := newRuntime()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return nil, 2
	}
	if d := guard.Protected(rt.store.Snapshot()); d.Kind != guard.Render {
		fmt.Fprintln(w, "Error: not logged in. Run 'strikersgear login' first.")
		return nil, 2
	}
	return rt, 0
}

// fail reports err and returns its exit code: 2 for auth, connectivity,
// and invalid input, 1 when the API rejected the operation
func (rt *runtime) fail(w io.Writer, err error) int {
	if client.IsUnauthorized(err) || rt.redirect.hit.Load() {
		fmt.Fprintln(w, "Error: session expired. Run 'strikersgear login' again.")
		return 2
	}

	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(w, "Error: %v\n", verr)
		return 2
	}

	var terr *client.TransportError
	if errors.As(err, &terr) {
		fmt.Fprintf(w, "Error: %v\n", terr)
		return 2
	}

	fmt.Fprintf(w, "Error: %s\n", client.Message(err))
	return 1
}
