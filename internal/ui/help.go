package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vpndeck/internal/keymap"
)

// RenderHelp renders the full shortcut reference, grouped by category. A
// non-empty query replaces the grouping with a fuzzy-ranked flat list.
func RenderHelp(reg *keymap.Registry, query string) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Shortcuts"))
	b.WriteString("\n\n")

	if q := strings.TrimSpace(query); q != "" {
		b.WriteString(Styles.Status.Render("Search: ") + Styles.Normal.Render(query))
		b.WriteString("\n\n")
		ranked := keymap.Rank(q, reg.All())
		if len(ranked) == 0 {
			b.WriteString(Styles.Empty.Render("No matches"))
		}
		for _, binding := range ranked {
			writeBindingLine(&b, binding)
		}
	} else {
		names, byCategory := reg.Categories()
		for _, name := range names {
			label := name
			if label == "" {
				label = "Other"
			}
			b.WriteString(Styles.Selected.Render(label))
			b.WriteString("\n")
			for _, binding := range byCategory[name] {
				writeBindingLine(&b, binding)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(Styles.Hint.Render("type to search  esc close"))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 2)
	return box.Render(b.String())
}

func writeBindingLine(b *strings.Builder, binding keymap.Binding) {
	chord := Styles.Status.Render(padChord(binding.Chord))
	desc := Styles.Normal.Render(binding.Description)
	scope := ""
	if binding.Scope != keymap.ScopeGlobal {
		scope = Styles.Muted.Render("  (" + binding.Scope.String() + ":" + binding.Qualifier + ")")
	}
	if !binding.Enabled {
		desc = Styles.Muted.Render(binding.Description + " (disabled)")
	}
	b.WriteString("  " + chord + "  " + desc + scope + "\n")
}

func padChord(chord string) string {
	if len(chord) >= 9 {
		return chord
	}
	return chord + strings.Repeat(" ", 9-len(chord))
}
