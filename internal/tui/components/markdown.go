package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Glamour renderers are expensive to build, so they are cached by width
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	// The standard style keeps output stable; auto style would query the
	// terminal background from inside the running program.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders md for the terminal, falling back to the raw text
func RenderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return SubtleStyle.Italic(true).Render("Nothing to show")
	}
	renderer, err := getRenderer(max(width, 20))
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
