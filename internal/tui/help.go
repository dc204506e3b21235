package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

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

// helpMarkdown builds the help text from the active key bindings
func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# " + screenTitle + "\n\n")
	b.WriteString("Type a first and last name, then add the user. ")
	b.WriteString("Listing and deleting run in the background, so the last one to finish decides what the screen shows.\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")

	bindings := append(m.keys.ShortHelp(), m.keys.NextField, m.keys.PrevField)
	for _, binding := range bindings {
		h := binding.Help()
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}

	b.WriteString("\nPress `" + m.keys.ShowHelp.Help().Key + "` or `esc` to close.\n")
	return b.String()
}

func (m Model) renderHelp() string {
	md := m.helpMarkdown()

	width := m.width
	if width <= 0 {
		width = 80
	}

	renderer, err := getRenderer(width)
	if err != nil {
		slog.Error("Error creating help renderer", "error", err)
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		slog.Error("Error rendering help", "error", err)
		return md
	}
	return strings.TrimSpace(rendered)
}
