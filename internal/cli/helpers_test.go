package cli

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/api"
	"github.com/thenoetrevino/funil/internal/models"
	authservice "github.com/thenoetrevino/funil/internal/services/auth"
	funnelservice "github.com/thenoetrevino/funil/internal/services/funnel"
	taskservice "github.com/thenoetrevino/funil/internal/services/task"
	teamservice "github.com/thenoetrevino/funil/internal/services/team"
)

func TestValidateColorHex(t *testing.T) {
	for _, c := range []string{"#000000", "#FFFFFF", "#eab308"} {
		assert.NoError(t, ValidateColorHex(c), c)
	}
	for _, c := range []string{"", "#FFF", "FFFFFF", "#GGGGGG", "#1234567"} {
		assert.ErrorIs(t, ValidateColorHex(c), ErrInvalidColor, c)
	}
}

func TestParseDueDate(t *testing.T) {
	due, err := ParseDueDate("2026-02-28")
	require.NoError(t, err)
	require.NotNil(t, due)
	assert.Equal(t, time.February, due.Month())
	assert.Equal(t, 28, due.Day())
	assert.Equal(t, 23, due.Hour(), "due at the end of the day")

	due, err = ParseDueDate("  ")
	require.NoError(t, err)
	assert.Nil(t, due)

	_, err = ParseDueDate("2026-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPriority, p)

	p, err = ParsePriority("alta")
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, p)

	_, err = ParsePriority("high")
	assert.ErrorIs(t, err, models.ErrInvalidPriority)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "4f1c2a9b", ShortID("4f1c2a9b-8d7e-4c3b-9a1f-0e2d3c4b5a69"))
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", FormatDate(nil))
	d := time.Date(2026, 1, 5, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "05/01/2026", FormatDate(&d))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		code string
		exit int
	}{
		{api.ErrUnauthorized, "AUTH_REQUIRED", ExitAuth},
		{authservice.ErrSessionExpired, "AUTH_REQUIRED", ExitAuth},
		{&api.APIError{StatusCode: 404, Message: "Funil não encontrado"}, "NOT_FOUND", ExitNotFound},
		{fmt.Errorf("x: %w", funnelservice.ErrFunnelNotFound), "NOT_FOUND", ExitNotFound},
		{fmt.Errorf("x: %w", teamservice.ErrMemberNotFound), "NOT_FOUND", ExitNotFound},
		{taskservice.ErrAmbiguousTaskID, "USAGE", ExitUsage},
		{teamservice.ErrAmbiguousTeamID, "USAGE", ExitUsage},
		{ErrInvalidDate, "INVALID_DATA", ExitDataErr},
		{taskservice.ErrEmptyTitle, "VALIDATION", ExitValidation},
		{funnelservice.ErrEmptyStageName, "VALIDATION", ExitValidation},
		{teamservice.ErrEmailInUse, "VALIDATION", ExitValidation},
		{models.ErrInvalidRole, "VALIDATION", ExitValidation},
		{&api.APIError{StatusCode: 500, Message: "Internal server error"}, "ERROR", ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			code, exit := Classify(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.exit, exit)
		})
	}
}
