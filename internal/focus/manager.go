package focus

// NavAction is one of the four ordinal navigation actions the manager
// routes to the active group.
type NavAction int

const (
	NavNext NavAction = iota
	NavPrev
	NavFirst
	NavLast
)

// Manager is the process-wide owner of focus rings. One Manager is created
// at startup and passed to every screen; screens register their rings and
// switch the current ring on mount.
type Manager struct {
	rings       map[string]*Ring
	names       []string
	screenRings map[string]string
	current     string
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		rings:       make(map[string]*Ring),
		screenRings: make(map[string]string),
	}
}

// AddRing registers a ring. The first ring added becomes current.
func (m *Manager) AddRing(r *Ring) {
	if r == nil {
		return
	}
	if _, exists := m.rings[r.Name]; !exists {
		m.names = append(m.names, r.Name)
	}
	m.rings[r.Name] = r
	if m.current == "" {
		m.current = r.Name
	}
}

// Ring returns the named ring, or nil.
func (m *Manager) Ring(name string) *Ring {
	return m.rings[name]
}

// CurrentRing returns the ring navigation is routed to, or nil.
func (m *Manager) CurrentRing() *Ring {
	return m.rings[m.current]
}

// SetCurrentRing switches the current ring. Returns false for an unknown
// name; the manager is left unchanged.
func (m *Manager) SetCurrentRing(name string) bool {
	if _, ok := m.rings[name]; !ok {
		return false
	}
	m.current = name
	return true
}

// BindScreen maps a screen identity to the ring it uses.
func (m *Manager) BindScreen(screen, ring string) {
	m.screenRings[screen] = ring
}

// SwitchToScreenRing makes the ring bound to screen current. Unknown screen
// or ring names are no-ops returning false.
func (m *Manager) SwitchToScreenRing(screen string) bool {
	ring, ok := m.screenRings[screen]
	if !ok {
		return false
	}
	return m.SetCurrentRing(ring)
}

// Navigate routes a navigation action to the current ring's active group.
// Returns the newly focused component, or nil when nothing was eligible or
// no ring/group is active.
func (m *Manager) Navigate(action NavAction) *Component {
	g := m.activeGroup()
	if g == nil || !g.Enabled {
		return nil
	}
	switch action {
	case NavNext:
		return g.Next()
	case NavPrev:
		return g.Prev()
	case NavFirst:
		return g.First()
	case NavLast:
		return g.Last()
	}
	return nil
}

// Move routes a directional move to the current ring's active group.
func (m *Manager) Move(dir Direction) *Component {
	g := m.activeGroup()
	if g == nil || !g.Enabled {
		return nil
	}
	return g.Move(dir)
}

// Focused returns the focused component of the current ring's active group.
func (m *Manager) Focused() *Component {
	g := m.activeGroup()
	if g == nil {
		return nil
	}
	return g.Current()
}

// PushModal pushes a modal group on the current ring.
func (m *Manager) PushModal(g *Group) {
	if r := m.CurrentRing(); r != nil {
		r.PushModal(g)
	}
}

// PopModal pops the current ring's modal stack.
func (m *Manager) PopModal() *Group {
	if r := m.CurrentRing(); r != nil {
		return r.PopModal()
	}
	return nil
}

func (m *Manager) activeGroup() *Group {
	r := m.CurrentRing()
	if r == nil {
		return nil
	}
	return r.ActiveGroup()
}
