package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"vpndeck/internal/keymap"
)

// RenderFooter renders the footer bar: the ShowInFooter bindings resolved
// for the active context, highest priority first.
func RenderFooter(reg *keymap.Registry, ctx keymap.Context, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))

	parts := make([]string, 0, 8)
	for _, b := range reg.Resolve(ctx) {
		if !b.ShowInFooter {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Chord), key.WithHelp(b.Chord, b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, "  ")
	if line == "" {
		line = descStyle.Render("No shortcuts")
	}
	if width > 0 {
		line = ansi.Truncate(line, width, "")
	}
	return line
}
