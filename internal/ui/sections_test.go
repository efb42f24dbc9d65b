package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpndeck/internal/config"
	"vpndeck/internal/fleet"
	"vpndeck/internal/lazy"
)

func countFetch(ctx context.Context) (int, error) { return 1, nil }

func TestMountSectionHonorsAutoLoad(t *testing.T) {
	manual := lazy.NewSection("test/manual", lazy.Config{AutoLoad: false}, countFetch)
	assert.Nil(t, mountSection(manual))
	assert.Equal(t, lazy.StateNotStarted, manual.State())

	auto := lazy.NewSection("test/auto", lazy.Config{AutoLoad: true}, countFetch)
	cmd := mountSection(auto)
	require.NotNil(t, cmd)
	assert.Equal(t, lazy.StateLoading, auto.State())

	msg, ok := cmd().(lazy.ResultMsg)
	require.True(t, ok)
	require.True(t, auto.Apply(msg))
	assert.Equal(t, lazy.StateLoaded, auto.State())
}

func TestSectionSpinnerConfigurable(t *testing.T) {
	quiet := lazy.NewSection("test/quiet", lazy.Config{AutoLoad: true}, countFetch)
	require.NotNil(t, quiet.Load())
	assert.True(t, sectionBusy(quiet.State()))
	assert.False(t, sectionSpinning(quiet), "spinner must stay off when not configured")

	loud := lazy.NewSection("test/loud", lazy.Config{AutoLoad: true, ShowSpinner: true}, countFetch)
	require.NotNil(t, loud.Load())
	assert.True(t, sectionSpinning(loud))
}

func TestRenderLoadingProgressToTimeout(t *testing.T) {
	s := lazy.NewSection("test/progress", lazy.Config{
		AutoLoad:     true,
		ShowProgress: true,
		Timeout:      time.Minute,
		LoadingText:  "Sampling",
	}, countFetch)

	// No fetch started yet: text only, no bar.
	assert.NotContains(t, renderLoading(s), "\n")

	require.NotNil(t, s.Load())
	out := renderLoading(s)
	assert.Contains(t, out, "Sampling")
	assert.Contains(t, out, "\n", "in-flight fetch should add the progress bar line")
}

func TestUsersPlaceholderShownWhenEmpty(t *testing.T) {
	svc := fleet.NewStaticService()
	svc.Users = nil
	u := NewUsersScreen(svc, config.SectionConfig{Timeout: time.Second})

	runScreenCmd(t, u, u.Mount())
	assert.Contains(t, u.View(), "No users yet")
}

func TestServersPlaceholderShownWhenEmpty(t *testing.T) {
	svc := fleet.NewStaticService()
	svc.Servers = nil
	s := NewServersScreen(svc, config.SectionConfig{Timeout: time.Second})

	runScreenCmd(t, s, s.Mount())
	assert.Contains(t, s.View(), "No servers registered")
}

func TestSectionPlaceholderFallback(t *testing.T) {
	blank := lazy.NewSection("test/blank", lazy.Config{}, countFetch)
	assert.Equal(t, "fallback", sectionPlaceholder(blank, "fallback"))

	set := lazy.NewSection("test/set", lazy.Config{Placeholder: "Nothing here"}, countFetch)
	assert.Equal(t, "Nothing here", sectionPlaceholder(set, "fallback"))
}

// runScreenCmd executes a mount/reload command and routes settled fetches
// back into the screen, skipping spinner ticks.
func runScreenCmd(t *testing.T, s Screen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			runScreenCmd(t, s, c)
		}
	case lazy.ResultMsg:
		require.True(t, s.ApplyResult(msg))
	}
}
