// ABOUTME: Add and edit form for one catalog document, built from its field schema
// ABOUTME: Wraps a huh form as a bubbletea model that emits the changed values on submit

package editform

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/icons"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/styles"
)

// SubmittedMsg is sent when the operator submits a valid form.
// ID is empty for a new document.
type SubmittedMsg struct {
	Resource string
	ID       string
	Values   map[string]string
}

// CancelledMsg is sent when the operator leaves the form
type CancelledMsg struct{}

// Form edits one document of a resource
type Form struct {
	resource string
	id       string
	fields   []catalog.Field
	initial  map[string]string
	values   map[string]*string
	options  map[string][]catalog.Option

	form *huh.Form
	err  string
	busy bool
}

// New builds the form. An empty id means a new document; otherwise current
// prefills the inputs and fields fixed after creation are left out. options
// holds the choices for each reference field, keyed by collection.
func New(resource, id string, fields []catalog.Field, current map[string]string, options map[string][]catalog.Option) *Form {
	f := &Form{
		resource: resource,
		id:       id,
		initial:  map[string]string{},
		values:   map[string]*string{},
		options:  options,
	}
	for _, fld := range fields {
		if id != "" && fld.CreateOnly {
			continue
		}
		v := current[fld.Key]
		if id == "" && fld.Kind == catalog.KindFlag {
			v = "true"
		}
		f.fields = append(f.fields, fld)
		f.initial[fld.Key] = v
		f.values[fld.Key] = &v
	}
	f.form = f.build()
	return f
}

func (f *Form) build() *huh.Form {
	inputs := make([]huh.Field, 0, len(f.fields))
	for _, fld := range f.fields {
		value := f.values[fld.Key]
		switch fld.Kind {
		case catalog.KindRef:
			sel := huh.NewSelect[string]().
				Title(label(fld)).
				Options(f.choices(fld)...).
				Value(value)
			if fld.Required {
				sel = sel.Validate(validate(fld))
			}
			inputs = append(inputs, sel)
		case catalog.KindFlag:
			inputs = append(inputs, huh.NewSelect[string]().
				Title(fld.Label).
				Options(huh.NewOption("Yes", "true"), huh.NewOption("No", "false")).
				Value(value))
		default:
			inputs = append(inputs, huh.NewInput().
				Title(label(fld)).
				Value(value).
				Validate(validate(fld)))
		}
	}

	description := "New entry"
	if f.id != "" {
		description = "Editing " + f.id
	}
	return huh.NewForm(
		huh.NewGroup(inputs...).
			Title(heading(f.resource)).
			Description(description),
	).WithTheme(styles.FormTheme()).WithShowHelp(false)
}

// choices lists the options for a reference field. The stored reference
// stays selectable even when its document is missing from the listing.
func (f *Form) choices(fld catalog.Field) []huh.Option[string] {
	var opts []huh.Option[string]
	if !fld.Required {
		opts = append(opts, huh.NewOption("None", ""))
	}
	current := *f.values[fld.Key]
	found := current == ""
	for _, o := range f.options[fld.RefTo] {
		opts = append(opts, huh.NewOption(o.Name, o.ID))
		found = found || o.ID == current
	}
	if !found {
		opts = append(opts, huh.NewOption(current, current))
	}
	return opts
}

func label(fld catalog.Field) string {
	if fld.Required {
		return fld.Label + " *"
	}
	return fld.Label
}

func heading(resource string) string {
	if resource == "" {
		return ""
	}
	return strings.ToUpper(resource[:1]) + resource[1:]
}

// validate catches what the document checks would reject anyway, while
// the operator is still on the field
func validate(fld catalog.Field) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if fld.Required {
				return fmt.Errorf("%s is required", fld.Label)
			}
			return nil
		}
		switch fld.Kind {
		case catalog.KindNumber:
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return fmt.Errorf("%s must be a number", fld.Label)
			}
		case catalog.KindInteger:
			if _, err := strconv.Atoi(s); err != nil {
				return fmt.Errorf("%s must be a whole number", fld.Label)
			}
		}
		return nil
	}
}

// Submitted returns what the form sends: every filled-in field for a new
// document, only the changed fields for an existing one
func (f *Form) Submitted() map[string]string {
	out := map[string]string{}
	for _, fld := range f.fields {
		v := strings.TrimSpace(*f.values[fld.Key])
		if f.id == "" {
			if v != "" {
				out[fld.Key] = v
			}
			continue
		}
		if v != strings.TrimSpace(f.initial[fld.Key]) {
			out[fld.Key] = v
		}
	}
	return out
}

// Value returns the current input for key
func (f *Form) Value(key string) string {
	if v, ok := f.values[key]; ok {
		return *v
	}
	return ""
}

// Resource returns the collection being edited
func (f *Form) Resource() string { return f.resource }

// ID returns the document being edited, empty for a new one
func (f *Form) ID() string { return f.id }

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "esc" {
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
		submitted := SubmittedMsg{Resource: f.resource, ID: f.id, Values: f.Submitted()}
		return f, func() tea.Msg { return submitted }
	}

	return f, cmd
}

// Fail shows a rejected save and reopens the form with the inputs kept
func (f *Form) Fail(message string) tea.Cmd {
	f.err = message
	f.busy = false
	f.form = f.build()
	return f.form.Init()
}

// Err returns the failure currently shown
func (f *Form) Err() string { return f.err }

// Busy reports whether a save is in flight
func (f *Form) Busy() bool { return f.busy }

// View implements tea.Model
func (f *Form) View() string {
	var sb strings.Builder

	title := icons.Edit.String() + " Add"
	if f.id != "" {
		title = icons.Edit.String() + " Edit"
	}
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")

	sb.WriteString(f.form.View())

	if f.busy {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Render("Saving..."))
	}
	if f.err != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusCritical.Render(icons.Critical.String() + " " + f.err))
	}
	return sb.String()
}
