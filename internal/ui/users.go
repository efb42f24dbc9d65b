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

// UsersScreen lists VPN users with row actions. Its focus group is spatial:
// arrow keys jump between the table and the action buttons on the right.
type UsersScreen struct {
	section *lazy.Section[[]fleet.User]
	rows    []fleet.User
	body    string

	selected int
	group    *focus.Group
	spin     spinner.Model
}

var _ Screen = (*UsersScreen)(nil)

// NewUsersScreen creates the users screen.
func NewUsersScreen(svc fleet.Service, defaults config.SectionConfig) *UsersScreen {
	u := &UsersScreen{spin: newSpinner()}

	u.section = lazy.NewSection("users/list", lazy.Config{
		AutoLoad:      true,
		ShowSpinner:   true,
		Timeout:       defaults.Timeout,
		Debounce:      defaults.Debounce,
		CacheDuration: defaults.Cache,
		LoadingText:   "Loading users",
		Placeholder:   "No users yet",
		RetryOnError:  true,
	}, svc.ListUsers)
	u.section.SetHooks(lazy.Hooks[[]fleet.User]{
		Loading: func() { u.body = renderLoading(u.section) },
		Content: func(users []fleet.User) {
			u.rows = users
			if u.selected >= len(users) {
				u.selected = 0
			}
			u.body = ""
		},
		Error: func(msg string) { u.body = renderSectionError(msg, u.section.Err()) },
	})

	g := focus.NewGroup("users", focus.ModeSpatial)
	table := focus.NewComponent("users-table").WithBounds(0, 0, 60, 12)
	revoke := focus.NewComponent("btn-revoke").WithBounds(62, 0, 14, 3)
	reload := focus.NewComponent("btn-reload").WithBounds(62, 4, 14, 3)
	g.Join(table)
	g.Join(revoke)
	g.Join(reload)
	g.First()
	u.group = g

	return u
}

// ID implements Screen.
func (u *UsersScreen) ID() ScreenID { return ScreenUsers }

// Group implements Screen.
func (u *UsersScreen) Group() *focus.Group { return u.group }

// Mount implements Screen.
func (u *UsersScreen) Mount() tea.Cmd {
	return tea.Batch(mountSection(u.section), u.spin.Tick)
}

// Unmount implements Screen.
func (u *UsersScreen) Unmount() {
	u.section.Close()
}

// ApplyResult implements Screen.
func (u *UsersScreen) ApplyResult(msg lazy.ResultMsg) bool {
	return u.section.Apply(msg)
}

// Reload implements Screen.
func (u *UsersScreen) Reload() tea.Cmd {
	return u.section.Reload()
}

// Retry implements Screen.
func (u *UsersScreen) Retry() tea.Cmd {
	if u.section.CanRetry() {
		return u.section.Load()
	}
	return nil
}

// RevokeTarget returns the user under the cursor, if the table is focused.
func (u *UsersScreen) RevokeTarget() (string, bool) {
	if len(u.rows) == 0 || u.selected >= len(u.rows) {
		return "", false
	}
	return u.rows[u.selected].Name, true
}

// Init implements View.
func (u *UsersScreen) Init() tea.Cmd {
	return u.spin.Tick
}

// Update implements View.
func (u *UsersScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if sectionSpinning(u.section) {
			var cmd tea.Cmd
			u.spin, cmd = u.spin.Update(msg)
			return u, cmd
		}
	case tea.KeyMsg:
		cur := u.group.Current()
		if cur == nil || cur.ID != "users-table" {
			return u, nil
		}
		switch msg.String() {
		case "j":
			if u.selected < len(u.rows)-1 {
				u.selected++
			}
		case "k":
			if u.selected > 0 {
				u.selected--
			}
		}
	}
	return u, nil
}

// View implements View.
func (u *UsersScreen) View() string {
	title := Styles.Title.Render("Users")
	if sectionSpinning(u.section) {
		title += " " + u.spin.View()
	}
	return title + "\n" + u.renderTable() + "\n" + u.renderButtons()
}

func (u *UsersScreen) renderTable() string {
	if u.body != "" {
		return u.boxFor("users-table").Render(u.body)
	}
	if len(u.rows) == 0 {
		return u.boxFor("users-table").Render(Styles.Empty.Render(sectionPlaceholder(u.section, "No users")))
	}
	out := ""
	for i, user := range u.rows {
		state := Styles.Status.Render("active")
		if !user.Active {
			state = Styles.Danger.Render("revoked")
		}
		line := fmt.Sprintf("%-10s %-22s %s  %d/%d MB", user.Name, user.Email, state, user.UsedMB, user.QuotaMB)
		if i == u.selected {
			line = Styles.Selected.Render("> " + line)
		} else {
			line = Styles.Normal.Render("  " + line)
		}
		if out != "" {
			out += "\n"
		}
		out += line
	}
	return u.boxFor("users-table").Render(out)
}

func (u *UsersScreen) renderButtons() string {
	revoke := u.boxFor("btn-revoke").Render("Revoke (v)")
	reload := u.boxFor("btn-reload").Render("Reload (r)")
	return revoke + " " + reload
}

func (u *UsersScreen) boxFor(id string) lipgloss.Style {
	if cur := u.group.Current(); cur != nil && cur.ID == id {
		return Styles.BoxFocused
	}
	return Styles.Box
}
