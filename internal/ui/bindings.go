package ui

import "vpndeck/internal/keymap"

// DefaultRegistry builds the built-in shortcut bindings. Persisted
// customizations are applied over these at startup.
func DefaultRegistry() *keymap.Registry {
	r := keymap.NewRegistry()

	add := func(b keymap.Binding) {
		b.Enabled = true
		r.Add(b)
	}

	// Global
	add(keymap.Binding{Chord: "q", Action: keymap.ActionQuit, Description: "Quit", Scope: keymap.ScopeGlobal, Priority: 100, Category: "General", ShowInFooter: true})
	add(keymap.Binding{Chord: "ctrl+c", Action: keymap.ActionQuit, Description: "Quit", Scope: keymap.ScopeGlobal, Priority: 100, Category: "General"})
	add(keymap.Binding{Chord: "?", Action: keymap.ActionHelp, Description: "Help", Scope: keymap.ScopeGlobal, Priority: 95, Category: "General", ShowInFooter: true})
	add(keymap.Binding{Chord: "1", Action: keymap.ActionGoDashboard, Description: "Dashboard", Scope: keymap.ScopeGlobal, Priority: 80, Category: "Screens"})
	add(keymap.Binding{Chord: "2", Action: keymap.ActionGoUsers, Description: "Users", Scope: keymap.ScopeGlobal, Priority: 80, Category: "Screens"})
	add(keymap.Binding{Chord: "3", Action: keymap.ActionGoServers, Description: "Servers", Scope: keymap.ScopeGlobal, Priority: 80, Category: "Screens"})
	add(keymap.Binding{Chord: "r", Action: keymap.ActionReload, Description: "Reload", Scope: keymap.ScopeGlobal, Priority: 75, Category: "Data", ShowInFooter: true})
	add(keymap.Binding{Chord: "t", Action: keymap.ActionRetry, Description: "Retry failed section", Scope: keymap.ScopeGlobal, Priority: 70, Category: "Data"})
	// Esc cancels whatever overlay is up; a no-op otherwise. Global so the
	// confirm modal and help overlay resolve the same binding.
	add(keymap.Binding{Chord: "esc", Action: keymap.ActionCancel, Description: "Cancel", Scope: keymap.ScopeGlobal, Priority: 40, Category: "General"})

	// Users screen
	add(keymap.Binding{Chord: "v", Action: keymap.ActionRevokeUser, Description: "Revoke user", Scope: keymap.ScopeScreen, Qualifier: "users", Priority: 90, Category: "Users", ShowInFooter: true})

	// Servers screen
	add(keymap.Binding{Chord: "x", Action: keymap.ActionRestartServer, Description: "Restart server", Scope: keymap.ScopeScreen, Qualifier: "servers", Priority: 90, Category: "Servers", ShowInFooter: true})

	// Confirm modal
	add(keymap.Binding{Chord: "y", Action: keymap.ActionConfirm, Description: "Confirm", Scope: keymap.ScopeModal, Qualifier: "confirm", Priority: 90, Category: "Modal", ShowInFooter: true})
	add(keymap.Binding{Chord: "enter", Action: keymap.ActionConfirm, Description: "Confirm", Scope: keymap.ScopeModal, Qualifier: "confirm", Priority: 90, Category: "Modal"})

	return r
}
