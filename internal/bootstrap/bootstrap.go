// ABOUTME: First-run admin bootstrap: status check, login, and registration
// ABOUTME: Decides whether the operator sees the login or create-admin form

package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
)

// AdminStatus is the outcome of the admin-status check
type AdminStatus int

const (
	// StatusUnknown means the check failed and must be retried
	StatusUnknown AdminStatus = iota
	// AdminExists means the operator should log in
	AdminExists
	// NoAdminYet means the operator should create the admin account
	NoAdminYet
)

// String returns the string representation of an AdminStatus
func (s AdminStatus) String() string {
	switch s {
	case AdminExists:
		return "admin-exists"
	case NoAdminYet:
		return "no-admin-yet"
	default:
		return "unknown"
	}
}

// MinPasswordLength is the shortest accepted admin password
const MinPasswordLength = 6

// Failure messages shown when the server gives no better one
var (
	ErrRegistrationFailed = errors.New("Registration failed")
	ErrLoginFailed        = errors.New("Login failed")
)

// AuthAPI is the subset of the API the bootstrap needs
type AuthAPI interface {
	Status(ctx context.Context) (catalog.AuthStatus, error)
	Login(ctx context.Context, password string) (catalog.AuthResult, error)
	Register(ctx context.Context, password string) (catalog.AuthResult, error)
}

// SessionWriter records a freshly issued token
type SessionWriter interface {
	Login(token string) error
}

// Check asks the API whether an admin exists. Any failure yields
// StatusUnknown together with the error.
func Check(ctx context.Context, api AuthAPI) (AdminStatus, error) {
	st, err := api.Status(ctx)
	if err != nil {
		slog.Warn("Admin status check failed", "error", err)
		return StatusUnknown, err
	}
	if st.HasAdmin {
		return AdminExists, nil
	}
	return NoAdminYet, nil
}

// Login authenticates with the admin password and stores the token
func Login(ctx context.Context, api AuthAPI, sess SessionWriter, password string) error {
	if password == "" {
		return fieldError("password", "Password is required")
	}
	res, err := api.Login(ctx, password)
	if err != nil {
		return err
	}
	if res.Token == "" {
		if res.Message != "" {
			return errors.New(res.Message)
		}
		return ErrLoginFailed
	}
	return sess.Login(res.Token)
}

// Register creates the admin account and stores the issued token
func Register(ctx context.Context, api AuthAPI, sess SessionWriter, password, confirm string) error {
	if err := ValidateRegistration(password, confirm); err != nil {
		return err
	}
	res, err := api.Register(ctx, password)
	if err != nil {
		return err
	}
	if !res.Success || res.Token == "" {
		if res.Message != "" {
			return errors.New(res.Message)
		}
		return ErrRegistrationFailed
	}
	return sess.Login(res.Token)
}

// ValidatePassword applies the admin password rules
func ValidatePassword(password string) error {
	switch {
	case password == "":
		return fieldError("password", "Password is required")
	case len(password) < MinPasswordLength:
		return fieldError("password", "Password must be at least 6 characters")
	case password != strings.TrimSpace(password):
		return fieldError("password", "Password cannot start or end with spaces")
	}
	return nil
}

// ValidateConfirm checks the confirmation field against password
func ValidateConfirm(password, confirm string) error {
	switch {
	case confirm == "":
		return fieldError("confirmPassword", "Confirm password")
	case confirm != password:
		return fieldError("confirmPassword", "Passwords must match")
	}
	return nil
}

// ValidateRegistration reports every failing field of the create-admin form
func ValidateRegistration(password, confirm string) error {
	var fields []catalog.FieldError
	for _, err := range []error{ValidatePassword(password), ValidateConfirm(password, confirm)} {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			fields = append(fields, verr.Fields...)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &catalog.ValidationError{Fields: fields}
}

func fieldError(field, msg string) error {
	return &catalog.ValidationError{Fields: []catalog.FieldError{{Field: field, Message: msg}}}
}
