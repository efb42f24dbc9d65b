// Package ui composes the vpndeck screens with Bubble Tea.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - AppModel: Root model routing input through the keymap handler, then the
//     focus manager, then the active screen
//   - Screens: Dashboard, Users, Servers; each owns its lazy sections and
//     focus group and registers them on mount
//   - ConfirmModal: Modal overlay backed by a pushed focus group
//
// The interaction engines live in internal/focus, internal/lazy, and
// internal/keymap; this package only wires them to rendering.
package ui
