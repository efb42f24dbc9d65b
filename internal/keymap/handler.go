package keymap

import (
	tea "github.com/charmbracelet/bubbletea"

	"vpndeck/internal/focus"
)

// Handler routes raw key events: the registry is consulted first against the
// active context, then unresolved navigation keys fall through to the focus
// manager. Everything else is left for the screen to handle.
type Handler struct {
	Registry *Registry
	Focus    *focus.Manager

	dispatch map[Action]func() tea.Cmd
}

// NewHandler creates a handler over the given registry and focus manager.
func NewHandler(reg *Registry, fm *focus.Manager) *Handler {
	return &Handler{
		Registry: reg,
		Focus:    fm,
		dispatch: make(map[Action]func() tea.Cmd),
	}
}

// Bind installs the command factory for an action. Actions without an entry
// consume their key but do nothing.
func (h *Handler) Bind(action Action, fn func() tea.Cmd) {
	h.dispatch[action] = fn
}

// Dispatch runs the command factory bound to action. Used by surfaces that
// resolve bindings themselves, like text-entry overlays that reserve
// printable keys for input.
func (h *Handler) Dispatch(action Action) tea.Cmd {
	if fn := h.dispatch[action]; fn != nil {
		return fn()
	}
	return nil
}

// Handle processes a key event against ctx. Returns whether the event was
// consumed and the command to run, if any.
func (h *Handler) Handle(msg tea.KeyMsg, ctx Context) (consumed bool, cmd tea.Cmd) {
	chord := NormalizeChord(msg.String())

	if b, ok := h.Registry.Match(chord, ctx); ok {
		if fn := h.dispatch[b.Action]; fn != nil {
			return true, fn()
		}
		return true, nil
	}

	if h.Focus == nil {
		return false, nil
	}
	switch chord {
	case "tab":
		h.Focus.Navigate(focus.NavNext)
	case "shift+tab":
		h.Focus.Navigate(focus.NavPrev)
	case "home":
		h.Focus.Navigate(focus.NavFirst)
	case "end":
		h.Focus.Navigate(focus.NavLast)
	case "up":
		h.Focus.Move(focus.DirUp)
	case "down":
		h.Focus.Move(focus.DirDown)
	case "left":
		h.Focus.Move(focus.DirLeft)
	case "right":
		h.Focus.Move(focus.DirRight)
	default:
		return false, nil
	}
	return true, nil
}
