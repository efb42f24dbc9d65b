package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"vpndeck/internal/config"
	"vpndeck/internal/fleet"
	"vpndeck/internal/focus"
	"vpndeck/internal/keymap"
	"vpndeck/internal/lazy"
)

// AppModel is the root model. Keys go to the registry first, then the focus
// manager, then the active screen. Each screen owns a ring with one group,
// and modals push their group onto the active ring.
type AppModel struct {
	screen  ScreenID
	screens map[ScreenID]Screen

	Focus    *focus.Manager
	Registry *keymap.Registry
	Handler  *keymap.Handler

	modal     *ConfirmModal
	showHelp  bool
	helpQuery string
	status    string

	showFooter    bool
	width, height int
}

// Ensure AppModel implements tea.Model.
var _ tea.Model = (*AppModel)(nil)

// NewAppModel wires the registry, focus rings, screens, and dispatch table.
func NewAppModel(cfg config.Config, svc fleet.Service) *AppModel {
	reg := DefaultRegistry()
	records, err := keymap.LoadRecords(cfg.Keymap.Path)
	if err != nil {
		log.Printf("keymap: ignoring customizations: %v", err)
	}
	reg.Apply(records)

	fm := focus.NewManager()
	screens := map[ScreenID]Screen{
		ScreenDashboard: NewDashboardScreen(svc, cfg.Sections),
		ScreenUsers:     NewUsersScreen(svc, cfg.Sections),
		ScreenServers:   NewServersScreen(svc, cfg.Sections),
	}
	for id, s := range screens {
		ring := focus.NewRing(id.String())
		ring.Config.RestoreFocus = true
		ring.AddGroup(s.Group())
		fm.AddRing(ring)
		fm.BindScreen(id.String(), id.String())
	}
	fm.SwitchToScreenRing(ScreenDashboard.String())

	m := &AppModel{
		screen:     ScreenDashboard,
		screens:    screens,
		Focus:      fm,
		Registry:   reg,
		Handler:    keymap.NewHandler(reg, fm),
		showFooter: cfg.UI.ShowFooter,
	}
	m.bindActions()
	return m
}

func (m *AppModel) bindActions() {
	h := m.Handler
	h.Bind(keymap.ActionQuit, func() tea.Cmd { return tea.Quit })
	h.Bind(keymap.ActionHelp, func() tea.Cmd {
		m.showHelp = !m.showHelp
		m.helpQuery = ""
		return nil
	})
	h.Bind(keymap.ActionGoDashboard, switchCmd(ScreenDashboard))
	h.Bind(keymap.ActionGoUsers, switchCmd(ScreenUsers))
	h.Bind(keymap.ActionGoServers, switchCmd(ScreenServers))
	h.Bind(keymap.ActionReload, func() tea.Cmd { return m.current().Reload() })
	h.Bind(keymap.ActionRetry, func() tea.Cmd { return m.current().Retry() })
	h.Bind(keymap.ActionRevokeUser, func() tea.Cmd {
		users, ok := m.screens[ScreenUsers].(*UsersScreen)
		if !ok || m.screen != ScreenUsers {
			return nil
		}
		if name, ok := users.RevokeTarget(); ok {
			m.openModal(NewRevokeUserModal(name))
		}
		return nil
	})
	h.Bind(keymap.ActionRestartServer, func() tea.Cmd {
		servers, ok := m.screens[ScreenServers].(*ServersScreen)
		if !ok || m.screen != ScreenServers {
			return nil
		}
		if name, ok := servers.RestartTarget(); ok {
			m.openModal(NewRestartServerModal(name))
		}
		return nil
	})
	h.Bind(keymap.ActionConfirm, func() tea.Cmd {
		if m.modal == nil {
			return nil
		}
		return m.modal.Confirm()
	})
	h.Bind(keymap.ActionCancel, func() tea.Cmd {
		if m.showHelp {
			m.showHelp = false
			m.helpQuery = ""
			return nil
		}
		m.closeModal()
		return nil
	})
}

func switchCmd(id ScreenID) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return SwitchScreenMsg{Screen: id} }
	}
}

func (m *AppModel) current() Screen {
	return m.screens[m.screen]
}

// Context returns the keymap resolution context for the current input
// owner: the help overlay or modal when one is up, the active screen
// otherwise.
func (m *AppModel) Context() keymap.Context {
	if m.showHelp {
		return keymap.Context{Scope: keymap.ScopeModal, Qualifier: "help"}
	}
	if m.modal != nil {
		return keymap.Context{Scope: keymap.ScopeModal, Qualifier: "confirm"}
	}
	return screenContext(m.screen)
}

func (m *AppModel) openModal(modal *ConfirmModal) {
	if m.modal != nil {
		return
	}
	m.modal = modal
	m.Focus.PushModal(modal.Group())
}

func (m *AppModel) closeModal() {
	if m.modal == nil {
		return
	}
	m.Focus.PopModal()
	m.modal = nil
}

// Init implements tea.Model.
func (m *AppModel) Init() tea.Cmd {
	return m.current().Mount()
}

// Update implements tea.Model.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.forward(msg)
		return m, nil

	case SwitchScreenMsg:
		return m, m.switchTo(msg.Screen)

	case DismissModalMsg:
		m.closeModal()
		return m, nil

	case RevokeUserMsg:
		m.closeModal()
		m.status = "Revocation requested for " + msg.Name
		return m, m.screens[ScreenUsers].Reload()

	case RestartServerMsg:
		m.closeModal()
		m.status = "Restart requested for " + msg.Name
		return m, m.screens[ScreenServers].Reload()

	case lazy.ResultMsg:
		for _, s := range m.screens {
			if s.ApplyResult(msg) {
				break
			}
		}
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		if m.showHelp {
			return m, m.handleHelpKey(msg)
		}
		if consumed, cmd := m.Handler.Handle(msg, m.Context()); consumed {
			return m, cmd
		}
		if m.modal != nil {
			// Unbound keys don't reach the screen under a modal.
			return m, nil
		}
	}
	return m, m.forward(msg)
}

// handleHelpKey processes input while the help overlay is up. Printable keys
// edit the search query even when a global chord shares the character;
// everything else resolves through the registry in the overlay's context.
func (m *AppModel) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		m.helpQuery += string(msg.Runes)
		return nil
	case tea.KeyBackspace:
		if m.helpQuery != "" {
			r := []rune(m.helpQuery)
			m.helpQuery = string(r[:len(r)-1])
		}
		return nil
	}
	if b, ok := m.Registry.Match(keymap.NormalizeChord(msg.String()), m.Context()); ok {
		return m.Handler.Dispatch(b.Action)
	}
	return nil
}

// forward routes a message to the active screen.
func (m *AppModel) forward(msg tea.Msg) tea.Cmd {
	v, cmd := m.current().Update(msg)
	if s, ok := v.(Screen); ok {
		m.screens[m.screen] = s
	}
	return cmd
}

// switchTo unmounts the active screen, swaps the ring, and mounts the next.
func (m *AppModel) switchTo(id ScreenID) tea.Cmd {
	if id == m.screen {
		return nil
	}
	if _, ok := m.screens[id]; !ok {
		return nil
	}
	m.closeModal()
	m.current().Unmount()
	m.screen = id
	m.Focus.SwitchToScreenRing(id.String())
	return m.current().Mount()
}

// View implements tea.Model.
func (m *AppModel) View() string {
	var body string
	switch {
	case m.showHelp:
		body = RenderHelp(m.Registry, m.helpQuery)
	case m.modal != nil:
		body = m.current().View() + "\n" + m.modal.View()
	default:
		body = m.current().View()
	}
	if m.status != "" {
		body += "\n" + Styles.Status.Render(m.status)
	}
	if m.showFooter {
		body += "\n" + RenderFooter(m.Registry, m.Context(), m.width)
	}
	return body
}
