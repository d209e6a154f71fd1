package state

import (
	"strings"

	"charm.land/huh/v2"
)

// FormState holds the huh forms and the values they write into.
// Forms keep pointers to these fields, so FormState is always used by pointer.
type FormState struct {
	// Login form fields
	LoginForm     *huh.Form
	LoginEmail    string
	LoginPassword string

	// Funnel form fields (for creating funnels)
	FunnelForm        *huh.Form
	FunnelName        string
	FunnelDescription string
	FunnelStages      string // comma separated
	FunnelConfirm     bool
}

// NewFormState creates a new FormState with no open form
func NewFormState() *FormState {
	return &FormState{FunnelConfirm: true}
}

// ResetLogin clears the password and keeps the email for the next attempt
func (s *FormState) ResetLogin() {
	s.LoginEmail = strings.TrimSpace(s.LoginEmail)
	s.LoginPassword = ""
	s.LoginForm = nil
}

// ResetFunnel clears every funnel form field
func (s *FormState) ResetFunnel() {
	s.FunnelForm = nil
	s.FunnelName = ""
	s.FunnelDescription = ""
	s.FunnelStages = ""
	s.FunnelConfirm = true
}
