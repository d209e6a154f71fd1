package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/models"
)

// Input validation errors
var (
	ErrInvalidColor = models.ErrInvalidColor
	ErrInvalidDate  = errors.New("invalid date")
)

// DateLayout is the format accepted for due dates
const DateLayout = "2006-01-02"

// shortIDLength is how much of a task UUID is shown in listings
const shortIDLength = 8

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	return models.ValidateColor(color)
}

// ParseDueDate parses a YYYY-MM-DD date as the end of that day in local time.
// An empty string means no due date.
func ParseDueDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w %q (expected YYYY-MM-DD)", ErrInvalidDate, value)
	}
	due := day.Add(24*time.Hour - time.Second)
	return &due, nil
}

// ParsePriority maps a priority flag value to a Priority. Empty means the default.
func ParsePriority(value string) (models.Priority, error) {
	if strings.TrimSpace(value) == "" {
		return models.DefaultPriority, nil
	}
	return models.ParsePriority(value)
}

// ShortID returns the prefix of id shown in listings. Any unique prefix is
// accepted back by task commands.
func ShortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

// FormatDate renders an optional date, or "-" when absent
func FormatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("02/01/2006")
}

// Confirm prints prompt followed by [y/N] and reads the answer from the
// command's stdin. Only y or yes agree.
func Confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
