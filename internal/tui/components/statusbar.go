package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	// Left is usually the signed-in user
	Left string
	// Mode is shown on the right, before the help hint, when not empty
	Mode string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "funil · {user}"
// Right side: "{mode}  press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := "funil"
	if props.Left != "" {
		leftText += " · " + props.Left
	}
	rightText := "press ? for help"
	if props.Mode != "" {
		rightText = props.Mode + "  " + rightText
	}

	leftRendered := SubtleStyle.Render(leftText)
	rightRendered := SubtleStyle.Render(rightText)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}

// RenderNotification renders a single banner; errors use the error style
func RenderNotification(message string, isError bool) string {
	if isError {
		return ErrorBannerStyle.Render("✗ " + message)
	}
	return InfoBannerStyle.Render("ℹ " + message)
}
