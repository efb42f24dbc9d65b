package ui

// ScreenID identifies a top-level screen.
type ScreenID int

const (
	ScreenDashboard ScreenID = iota
	ScreenUsers
	ScreenServers
)

func (s ScreenID) String() string {
	switch s {
	case ScreenDashboard:
		return "dashboard"
	case ScreenUsers:
		return "users"
	case ScreenServers:
		return "servers"
	default:
		return "unknown"
	}
}

// SwitchScreenMsg is sent when the user jumps to another screen.
type SwitchScreenMsg struct {
	Screen ScreenID
}

// RevokeUserMsg is sent when the revoke confirmation is accepted.
type RevokeUserMsg struct {
	Name string
}

// RestartServerMsg is sent when the restart confirmation is accepted.
type RestartServerMsg struct {
	Name string
}

// DismissModalMsg closes the active modal without acting.
type DismissModalMsg struct{}
