// ABOUTME: Password forms for login and first-run admin creation
// ABOUTME: Wraps huh forms as a bubbletea model that emits a submit message

package authform

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/bootstrap"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/icons"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/styles"
)

// Mode selects which form is shown
type Mode int

const (
	ModeLogin Mode = iota
	ModeCreateAdmin
)

// String returns the string representation of a Mode
func (m Mode) String() string {
	if m == ModeCreateAdmin {
		return "create-admin"
	}
	return "login"
}

// SubmittedMsg is sent when the operator submits a valid form
type SubmittedMsg struct {
	Mode     Mode
	Password string
	Confirm  string
}

// CancelledMsg is sent when the operator leaves the form
type CancelledMsg struct{}

// Form is the login or create-admin form
type Form struct {
	mode     Mode
	form     *huh.Form
	password string
	confirm  string
	err      string
	busy     bool
	width    int
}

// New creates a form for mode
func New(mode Mode) *Form {
	f := &Form{mode: mode}
	f.form = f.build()
	return f
}

// Mode returns the form's mode
func (f *Form) Mode() Mode { return f.mode }

func (f *Form) build() *huh.Form {
	password := huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&f.password)

	if f.mode == ModeLogin {
		password = password.Validate(func(s string) error {
			if s == "" {
				return bootstrap.ValidatePassword(s)
			}
			return nil
		})
		return huh.NewForm(
			huh.NewGroup(password).
				Title("Login").
				Description("Enter the admin password"),
		).WithTheme(styles.FormTheme())
	}

	confirm := huh.NewInput().
		Title("Confirm password").
		EchoMode(huh.EchoModePassword).
		Value(&f.confirm).
		Validate(func(s string) error {
			return bootstrap.ValidateConfirm(f.password, s)
		})

	return huh.NewForm(
		huh.NewGroup(
			password.Validate(bootstrap.ValidatePassword),
			confirm,
		).Title("Create admin").
			Description("One-time setup. Choose a password for the dashboard."),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return f, func() tea.Msg { return CancelledMsg{} }
		}
		if f.busy {
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted && !f.busy {
		f.busy = true
		f.err = ""
		submitted := SubmittedMsg{Mode: f.mode, Password: f.password, Confirm: f.confirm}
		return f, func() tea.Msg { return submitted }
	}

	return f, cmd
}

// Fail shows a server-side failure and resets the form for another attempt
func (f *Form) Fail(message string) tea.Cmd {
	f.err = message
	f.busy = false
	f.password = ""
	f.confirm = ""
	f.form = f.build()
	return f.form.Init()
}

// Err returns the failure currently shown
func (f *Form) Err() string { return f.err }

// Busy reports whether a submission is in flight
func (f *Form) Busy() bool { return f.busy }

// View implements tea.Model
func (f *Form) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Lock.String() + " Strikers Gear Admin"))
	sb.WriteString("\n")

	sb.WriteString(f.form.View())

	if f.busy {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Render("Signing in..."))
	}
	if f.err != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusCritical.Render(icons.Critical.String() + " " + f.err))
	}
	return sb.String()
}
