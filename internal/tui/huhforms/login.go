package huhforms

import (
	"errors"
	"net/mail"
	"strings"

	"charm.land/huh/v2"
)

// CreateLoginForm creates the sign-in form. Submitting it with both fields
// filled completes the form; there is no confirmation step.
func CreateLoginForm(email, password *string) *huh.Form {
	fields := []huh.Field{
		huh.NewNote().
			Title("funil").
			Description("Sign in to your CRM account"),

		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@company.com").
			Validate(ValidateEmail).
			Value(email),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				if s == "" {
					return errors.New("password is required")
				}
				return nil
			}).
			Value(password),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(FormKeyMap()).WithShowHelp(false)
}

// ValidateEmail accepts a bare address such as ana@example.com
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("email is required")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return errors.New("enter a valid email")
	}
	return nil
}
