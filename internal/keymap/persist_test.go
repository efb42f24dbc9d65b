package keymap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersist_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.toml")

	reg := NewRegistry()
	reg.Add(globalQuit())
	reg.Add(Binding{
		Chord:        "r",
		Action:       ActionReload,
		Description:  "Reload",
		Scope:        ScopeScreen,
		Qualifier:    "dashboard",
		Enabled:      true,
		Priority:     50,
		Category:     "Data",
		ShowInFooter: true,
	})
	require.NoError(t, SaveRecords(path, reg))

	records, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	loaded := NewRegistry()
	loaded.Apply(records)

	b, ok := loaded.Get("r")
	require.True(t, ok)
	assert.Equal(t, ActionReload, b.Action)
	assert.Equal(t, ScopeScreen, b.Scope)
	assert.Equal(t, "dashboard", b.Qualifier)
	assert.True(t, b.ShowInFooter)
	assert.Equal(t, 50, b.Priority)
}

func TestPersist_CustomizationsOverlayBuiltins(t *testing.T) {
	reg := NewRegistry()
	reg.Add(globalQuit())

	// A persisted record for the same chord replaces the built-in.
	disabled := false
	reg.Apply([]Record{{
		Chord:    "q",
		Action:   string(ActionQuit),
		Context:  "global",
		Enabled:  &disabled,
		Priority: 100,
	}})

	b, ok := reg.Get("q")
	require.True(t, ok)
	assert.False(t, b.Enabled)

	// Later records replace earlier ones within the same document.
	reg.Apply([]Record{
		{Chord: "q", Action: string(ActionQuit), Context: "global", Priority: 1},
		{Chord: "q", Action: string(ActionHelp), Context: "global", Priority: 2},
	})
	b, _ = reg.Get("q")
	assert.Equal(t, ActionHelp, b.Action)
	assert.True(t, b.Enabled, "records omitting enabled default to true")
}

func TestPersist_MissingFileYieldsNothing(t *testing.T) {
	records, err := LoadRecords(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPersist_UnknownContextSkipped(t *testing.T) {
	reg := NewRegistry()
	reg.Apply([]Record{{Chord: "z", Action: "noop", Context: "galaxy"}})
	assert.Zero(t, reg.Len())
}
