package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vpndeck/internal/config"
	"vpndeck/internal/fleet"
	"vpndeck/internal/focus"
	"vpndeck/internal/lazy"
)

// ServersScreen lists protocol servers with a restart action.
type ServersScreen struct {
	section *lazy.Section[[]fleet.Server]
	rows    []fleet.Server
	body    string

	selected int
	group    *focus.Group
	spin     spinner.Model
}

var _ Screen = (*ServersScreen)(nil)

// NewServersScreen creates the servers screen.
func NewServersScreen(svc fleet.Service, defaults config.SectionConfig) *ServersScreen {
	s := &ServersScreen{spin: newSpinner()}

	s.section = lazy.NewSection("servers/list", lazy.Config{
		AutoLoad:      true,
		ShowSpinner:   true,
		Timeout:       defaults.Timeout,
		Debounce:      defaults.Debounce,
		CacheDuration: defaults.Cache,
		LoadingText:   "Loading servers",
		Placeholder:   "No servers registered",
		RetryOnError:  true,
	}, svc.ListServers)
	s.section.SetHooks(lazy.Hooks[[]fleet.Server]{
		Loading: func() { s.body = renderLoading(s.section) },
		Content: func(servers []fleet.Server) {
			s.rows = servers
			if s.selected >= len(servers) {
				s.selected = 0
			}
			s.body = ""
		},
		Error: func(msg string) { s.body = renderSectionError(msg, s.section.Err()) },
	})

	g := focus.NewGroup("servers", focus.ModeOrdinal)
	g.Join(focus.NewComponent("servers-table").WithTabIndex(0))
	g.Join(focus.NewComponent("btn-restart").WithTabIndex(1))
	g.First()
	s.group = g

	return s
}

// ID implements Screen.
func (s *ServersScreen) ID() ScreenID { return ScreenServers }

// Group implements Screen.
func (s *ServersScreen) Group() *focus.Group { return s.group }

// Mount implements Screen.
func (s *ServersScreen) Mount() tea.Cmd {
	return tea.Batch(mountSection(s.section), s.spin.Tick)
}

// Unmount implements Screen.
func (s *ServersScreen) Unmount() {
	s.section.Close()
}

// ApplyResult implements Screen.
func (s *ServersScreen) ApplyResult(msg lazy.ResultMsg) bool {
	return s.section.Apply(msg)
}

// Reload implements Screen.
func (s *ServersScreen) Reload() tea.Cmd {
	return s.section.Reload()
}

// Retry implements Screen.
func (s *ServersScreen) Retry() tea.Cmd {
	if s.section.CanRetry() {
		return s.section.Load()
	}
	return nil
}

// RestartTarget returns the server under the cursor.
func (s *ServersScreen) RestartTarget() (string, bool) {
	if len(s.rows) == 0 || s.selected >= len(s.rows) {
		return "", false
	}
	return s.rows[s.selected].Name, true
}

// Init implements View.
func (s *ServersScreen) Init() tea.Cmd {
	return s.spin.Tick
}

// Update implements View.
func (s *ServersScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if sectionSpinning(s.section) {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return s, cmd
		}
	case tea.KeyMsg:
		cur := s.group.Current()
		if cur == nil || cur.ID != "servers-table" {
			return s, nil
		}
		switch msg.String() {
		case "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
		case "k":
			if s.selected > 0 {
				s.selected--
			}
		}
	}
	return s, nil
}

// View implements View.
func (s *ServersScreen) View() string {
	title := Styles.Title.Render("Servers")
	if sectionSpinning(s.section) {
		title += " " + s.spin.View()
	}
	return title + "\n" + s.renderTable() + "\n" + s.boxFor("btn-restart").Render("Restart (x)")
}

func (s *ServersScreen) renderTable() string {
	if s.body != "" {
		return s.boxFor("servers-table").Render(s.body)
	}
	if len(s.rows) == 0 {
		return s.boxFor("servers-table").Render(Styles.Empty.Render(sectionPlaceholder(s.section, "No servers")))
	}
	out := ""
	for i, srv := range s.rows {
		state := Styles.Status.Render("online")
		if !srv.Online {
			state = Styles.Danger.Render("offline")
		}
		line := fmt.Sprintf("%-10s %-12s %-14s %s  load %d%%", srv.Name, srv.Proto, srv.Region, state, srv.LoadPct)
		if i == s.selected {
			line = Styles.Selected.Render("> " + line)
		} else {
			line = Styles.Normal.Render("  " + line)
		}
		if out != "" {
			out += "\n"
		}
		out += line
	}
	return s.boxFor("servers-table").Render(out)
}

func (s *ServersScreen) boxFor(id string) lipgloss.Style {
	if cur := s.group.Current(); cur != nil && cur.ID == id {
		return Styles.BoxFocused
	}
	return Styles.Box
}
