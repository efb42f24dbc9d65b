package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vpndeck/internal/focus"
)

// ConfirmModal is a generic confirmation dialog. Its two buttons form a
// focus group the app pushes onto the active ring while the modal is up, so
// tab/arrow navigation stays inside the dialog.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // Optional warning details (e.g. "Active sessions will drop")
	OnConfirm func() tea.Msg

	group *focus.Group
}

// NewConfirmModal creates a confirmation modal with Yes focused.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	g := focus.NewGroup("confirm", focus.ModeOrdinal)
	yes := focus.NewComponent("confirm-yes").WithTabIndex(0)
	no := focus.NewComponent("confirm-no").WithTabIndex(1)
	g.Join(yes)
	g.Join(no)
	g.First()
	return &ConfirmModal{
		Title:     title,
		Label:     label,
		OnConfirm: onConfirm,
		group:     g,
	}
}

// WithDetails adds warning details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewRevokeUserModal confirms revoking a VPN user.
func NewRevokeUserModal(name string) *ConfirmModal {
	return NewConfirmModal(
		"Revoke user?",
		"User: "+name,
		func() tea.Msg { return RevokeUserMsg{Name: name} },
	).WithDetails("Keys are invalidated and active sessions drop")
}

// NewRestartServerModal confirms restarting a protocol server.
func NewRestartServerModal(name string) *ConfirmModal {
	return NewConfirmModal(
		"Restart server?",
		"Server: "+name,
		func() tea.Msg { return RestartServerMsg{Name: name} },
	).WithDetails("Connected peers reconnect after restart")
}

// Group returns the modal's focus group for pushing onto the ring.
func (m *ConfirmModal) Group() *focus.Group {
	return m.group
}

// Confirm returns the accept command, honoring the focused button: with No
// focused it dismisses instead.
func (m *ConfirmModal) Confirm() tea.Cmd {
	if cur := m.group.Current(); cur != nil && cur.ID == "confirm-no" {
		return func() tea.Msg { return DismissModalMsg{} }
	}
	if m.OnConfirm == nil {
		return func() tea.Msg { return DismissModalMsg{} }
	}
	return m.OnConfirm
}

// View renders the dialog box.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Normal.Render(m.Label)
	if m.Details != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(m.Details)
	}
	content += "\n\n" + m.renderButtons()
	content += "\n" + Styles.Hint.Render("y/Enter confirm  Esc cancel  Tab switch")
	return Styles.BoxDanger.Render(content)
}

func (m *ConfirmModal) renderButtons() string {
	yes, no := "[ Yes ]", "[ No ]"
	if cur := m.group.Current(); cur != nil && cur.ID == "confirm-no" {
		no = Styles.Selected.Render(no)
		yes = Styles.Muted.Render(yes)
	} else {
		yes = Styles.Selected.Render(yes)
		no = Styles.Muted.Render(no)
	}
	return yes + "  " + no
}
