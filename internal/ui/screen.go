package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"vpndeck/internal/focus"
	"vpndeck/internal/keymap"
	"vpndeck/internal/lazy"
)

// View is a renderable region with Elm-style Init/Update/View. Update
// returns the (possibly replaced) view and a command.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Screen is a top-level view with lazy sections and a focus group. Mounting
// a screen starts its auto-load sections and makes its ring current;
// unmounting cancels in-flight fetches.
type Screen interface {
	View
	ID() ScreenID
	Mount() tea.Cmd
	Unmount()
	ApplyResult(lazy.ResultMsg) bool
	Reload() tea.Cmd
	Retry() tea.Cmd
	Group() *focus.Group
}

// screenContext is the keymap resolution context for a screen.
func screenContext(id ScreenID) keymap.Context {
	return keymap.Context{Scope: keymap.ScopeScreen, Qualifier: id.String()}
}
