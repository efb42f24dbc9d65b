package ui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpndeck/internal/config"
	"vpndeck/internal/fleet"
	"vpndeck/internal/keymap"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Keymap:   config.KeymapConfig{Path: filepath.Join(t.TempDir(), "keymap.toml")},
		Sections: config.SectionConfig{Timeout: time.Second, Debounce: 300 * time.Millisecond, Cache: 30 * time.Second},
		UI:       config.UIConfig{ShowFooter: true},
	}
}

func newTestApp(t *testing.T) *AppModel {
	t.Helper()
	m := NewAppModel(testConfig(t), fleet.NewStaticService())
	deliver(t, m, m.Init())
	return m
}

// deliver runs a command and feeds resulting messages back into the model,
// the way the runtime would. Spinner ticks are dropped to avoid looping.
func deliver(t *testing.T, m *AppModel, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range msg {
			deliver(t, m, c)
		}
		return
	case spinner.TickMsg:
		return
	case tea.QuitMsg:
		return
	default:
		_, next := m.Update(msg)
		deliver(t, m, next)
	}
}

func press(t *testing.T, m *AppModel, key string) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	deliver(t, m, cmd)
}

func TestQuitKey(t *testing.T) {
	m := newTestApp(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	m := newTestApp(t)

	press(t, m, "?")
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Shortcuts")

	press(t, m, "esc")
	assert.False(t, m.showHelp)
}

func TestHelpSearchFiltersBindings(t *testing.T) {
	m := newTestApp(t)
	press(t, m, "?")
	require.True(t, m.showHelp)

	for _, r := range "reload" {
		press(t, m, string(r))
	}
	assert.Equal(t, "reload", m.helpQuery)
	view := m.View()
	assert.Contains(t, view, "Search:")
	assert.Contains(t, view, "Reload")

	press(t, m, "backspace")
	assert.Equal(t, "reloa", m.helpQuery)

	press(t, m, "esc")
	assert.False(t, m.showHelp)
	assert.Empty(t, m.helpQuery)
}

func TestHelpSearchKeepsGlobalChordsTypable(t *testing.T) {
	m := newTestApp(t)
	press(t, m, "?")
	require.True(t, m.showHelp)

	// "q" quits elsewhere; inside the search it is just a character.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, cmd)
	assert.True(t, m.showHelp)
	assert.Equal(t, "q", m.helpQuery)
}

func TestHelpDismissResolvesThroughRegistry(t *testing.T) {
	m := newTestApp(t)
	require.True(t, m.Registry.Customize("esc", "ctrl+g"))

	press(t, m, "?")
	require.True(t, m.showHelp)

	press(t, m, "esc")
	assert.True(t, m.showHelp, "unbound esc should no longer close help")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	deliver(t, m, cmd)
	assert.False(t, m.showHelp)
}

func TestScreenSwitch(t *testing.T) {
	m := newTestApp(t)
	require.Equal(t, ScreenDashboard, m.screen)

	press(t, m, "2")
	assert.Equal(t, ScreenUsers, m.screen)
	assert.Equal(t, keymap.ScopeScreen, m.Context().Scope)
	assert.Equal(t, "users", m.Context().Qualifier)

	press(t, m, "3")
	assert.Equal(t, ScreenServers, m.screen)

	press(t, m, "1")
	assert.Equal(t, ScreenDashboard, m.screen)
}

func TestRevokeConfirmFlow(t *testing.T) {
	m := newTestApp(t)
	press(t, m, "2")

	press(t, m, "v")
	require.NotNil(t, m.modal, "revoke should open the confirm modal")
	assert.Equal(t, keymap.ScopeModal, m.Context().Scope)
	assert.Equal(t, 1, m.Focus.CurrentRing().ModalDepth())

	press(t, m, "y")
	assert.Nil(t, m.modal)
	assert.Equal(t, 0, m.Focus.CurrentRing().ModalDepth())
	assert.Contains(t, m.status, "Revocation requested for")
}

func TestModalCancel(t *testing.T) {
	m := newTestApp(t)
	press(t, m, "2")
	press(t, m, "v")
	require.NotNil(t, m.modal)

	press(t, m, "esc")
	assert.Nil(t, m.modal)
	assert.Equal(t, 0, m.Focus.CurrentRing().ModalDepth())
}

func TestModalNoButtonDismisses(t *testing.T) {
	m := newTestApp(t)
	press(t, m, "3")
	press(t, m, "x")
	require.NotNil(t, m.modal)

	// Tab moves focus to No inside the modal's group; confirm then dismisses.
	press(t, m, "tab")
	cur := m.Focus.Focused()
	require.NotNil(t, cur)
	assert.Equal(t, "confirm-no", cur.ID)

	press(t, m, "enter")
	assert.Nil(t, m.modal)
	assert.Empty(t, m.status)
}

func TestModalConsumesUnboundKeys(t *testing.T) {
	m := newTestApp(t)
	press(t, m, "2")
	users := m.screens[ScreenUsers].(*UsersScreen)
	before := users.selected

	press(t, m, "v")
	require.NotNil(t, m.modal)
	press(t, m, "j")
	assert.Equal(t, before, users.selected, "list keys must not reach the screen under a modal")
	press(t, m, "esc")
}

func TestFooterFollowsContext(t *testing.T) {
	m := newTestApp(t)

	dashFooter := RenderFooter(m.Registry, m.Context(), 120)
	assert.NotEmpty(t, dashFooter)

	press(t, m, "2")
	usersFooter := RenderFooter(m.Registry, m.Context(), 120)
	assert.NotEqual(t, dashFooter, usersFooter, "screen-scoped bindings should change the footer")
}

func TestTabMovesFocusOnScreen(t *testing.T) {
	m := newTestApp(t)

	first := m.Focus.Focused()
	require.NotNil(t, first)
	press(t, m, "tab")
	second := m.Focus.Focused()
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
}
