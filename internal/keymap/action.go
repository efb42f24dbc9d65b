package keymap

// Action identifies what a binding triggers. The set is closed: the app
// installs an explicit dispatch table over these constants, so an unknown
// action is a compile-time smell rather than a runtime lookup failure.
type Action string

const (
	ActionQuit          Action = "quit"
	ActionHelp          Action = "help"
	ActionReload        Action = "reload"
	ActionRetry         Action = "retry"
	ActionConfirm       Action = "confirm"
	ActionCancel        Action = "cancel"
	ActionGoDashboard   Action = "go_dashboard"
	ActionGoUsers       Action = "go_users"
	ActionGoServers     Action = "go_servers"
	ActionRevokeUser    Action = "revoke_user"
	ActionRestartServer Action = "restart_server"
	ActionFocusNext     Action = "focus_next"
	ActionFocusPrev     Action = "focus_prev"
	ActionFocusFirst    Action = "focus_first"
	ActionFocusLast     Action = "focus_last"
)

// Scope is the breadth at which a binding applies.
type Scope int

const (
	ScopeGlobal Scope = iota
	ScopeScreen
	ScopeComponent
	ScopeModal
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeScreen:
		return "screen"
	case ScopeComponent:
		return "component"
	case ScopeModal:
		return "modal"
	default:
		return "unknown"
	}
}

// ParseScope maps a persisted scope name back to a Scope.
func ParseScope(name string) (Scope, bool) {
	switch name {
	case "global":
		return ScopeGlobal, true
	case "screen":
		return ScopeScreen, true
	case "component":
		return ScopeComponent, true
	case "modal":
		return ScopeModal, true
	}
	return ScopeGlobal, false
}

// Context is the resolution context an input event is matched against: the
// scope of whatever currently owns the keyboard plus its qualifier (screen
// name or component class; empty for Global).
type Context struct {
	Scope     Scope
	Qualifier string
}
