// ABOUTME: Login and logout commands for the strikersgear CLI
// ABOUTME: Runs the first-run bootstrap: create the admin or sign in

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/bootstrap"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/client"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/guard"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/styles"
	"github.com/spf13/cobra"
)

var passwordStdin bool

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in as the store admin",
	Long: `Sign in as the store admin, creating the admin account on first run.

With --password-stdin the password is read from the first line of stdin.
When the admin is being created, a second line confirms it.

Exit codes:
  0 - Logged in (or already logged in)
  2 - Error (admin status unknown, invalid input, wrong password)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdin, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored admin session",
	Run: func(cmd *cobra.Command, args []string) {
		if exitCode := runLogout(os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	loginCmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
}

// promptCredentials asks for the password interactively
var promptCredentials = func(status bootstrap.AdminStatus) (password, confirm string, err error) {
	fields := []huh.Field{
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password),
	}
	title, desc := "Login", "Enter the admin password"
	if status == bootstrap.NoAdminYet {
		title, desc = "Create admin", "One-time setup. Choose a password for the dashboard."
		fields[0] = fields[0].(*huh.Input).Validate(bootstrap.ValidatePassword)
		fields = append(fields, huh.NewInput().
			Title("Confirm password").
			EchoMode(huh.EchoModePassword).
			Value(&confirm).
			Validate(func(s string) error { return bootstrap.ValidateConfirm(password, s) }))
	}

	form := huh.NewForm(huh.NewGroup(fields...).Title(title).Description(desc)).
		WithTheme(styles.FormTheme())
	err = form.Run()
	return password, confirm, err
}

// readCredentials reads the password from in, plus the confirmation line
// when the admin is being created. A missing confirmation stays empty.
func readCredentials(status bootstrap.AdminStatus, in io.Reader) (password, confirm string, err error) {
	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		password = scanner.Text()
	}
	if status == bootstrap.NoAdminYet && scanner.Scan() {
		confirm = scanner.Text()
	}
	return password, confirm, scanner.Err()
}

// runLogin executes the bootstrap and returns exit code
func runLogin(ctx context.Context, in io.Reader, w io.Writer) int {
	rt, err := newRuntime()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if d := guard.Guest(rt.store.Snapshot()); d.Kind == guard.Redirect {
		fmt.Fprintln(w, "Already logged in.")
		return 0
	}

	status, err := bootstrap.Check(ctx, rt.catalog.Auth)
	if status == bootstrap.StatusUnknown {
		fmt.Fprintf(w, "Error: could not check admin status: %s\n", client.Message(err))
		fmt.Fprintln(w, "Retry once the API is reachable.")
		return 2
	}

	var password, confirm string
	if passwordStdin {
		password, confirm, err = readCredentials(status, in)
	} else {
		password, confirm, err = promptCredentials(status)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if status == bootstrap.NoAdminYet {
		err = bootstrap.Register(ctx, rt.catalog.Auth, rt.store, password, confirm)
	} else {
		err = bootstrap.Login(ctx, rt.catalog.Auth, rt.store, password)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", client.Message(err))
		return 2
	}

	if status == bootstrap.NoAdminYet {
		fmt.Fprintln(w, "Admin account created.")
	}
	fmt.Fprintln(w, "Logged in.")
	return 0
}

// runLogout clears the session; logging out twice is fine
func runLogout(w io.Writer) int {
	rt, err := newRuntime()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if err := rt.store.Logout(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(w, "Logged out.")
	return 0
}
