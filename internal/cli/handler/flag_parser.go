// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// GetCmd returns the cobra command
func (p *FlagParser) GetCmd() *cobra.Command {
	return p.cmd
}

// Has reports whether the flag was set explicitly
func (p *FlagParser) Has(flagName string) bool {
	return p.cmd.Flags().Changed(flagName)
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", cli.UsageError("--%s is required", flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	return p.cmd.Flags().GetString(flagName)
}

// ParseIntOptional extracts an optional int flag
func (p *FlagParser) ParseIntOptional(flagName string) (int, error) {
	return p.cmd.Flags().GetInt(flagName)
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// ParseStringSlice extracts a repeatable or comma separated flag
func (p *FlagParser) ParseStringSlice(flagName string) ([]string, error) {
	return p.cmd.Flags().GetStringSlice(flagName)
}

// ParseColor extracts and validates an optional color flag
func (p *FlagParser) ParseColor(flagName string) (string, error) {
	color, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if color == "" {
		return "", nil
	}
	if err := cli.ValidateColorHex(color); err != nil {
		return "", err
	}
	return color, nil
}

// ParseStatus extracts an optional task status flag; empty yields ""
func (p *FlagParser) ParseStatus(flagName string) (models.TaskStatus, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return models.ParseTaskStatus(value)
}

// ParseRole extracts an optional member role flag; empty yields ""
func (p *FlagParser) ParseRole(flagName string) (models.Role, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return models.ParseRole(value)
}

// ParseMemberStatus extracts an optional ativo/inativo flag; empty yields ""
func (p *FlagParser) ParseMemberStatus(flagName string) (models.MemberStatus, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return models.ParseMemberStatus(value)
}

// ParsePriority extracts an optional priority flag; empty yields the default
func (p *FlagParser) ParsePriority(flagName string) (models.Priority, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return cli.ParsePriority(value)
}

// ParseDueDate extracts an optional YYYY-MM-DD flag
func (p *FlagParser) ParseDueDate(flagName string) (*time.Time, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return cli.ParseDueDate(value)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
