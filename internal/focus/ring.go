package focus

// RingConfig controls ring behavior.
type RingConfig struct {
	// RestoreFocus makes PopModal call RestoreFocus on the group that
	// becomes active again.
	RestoreFocus bool
}

// modalEntry remembers which group was active when a modal was pushed.
type modalEntry struct {
	group      *Group
	prevActive string
}

// Ring owns a set of named groups and selects the active one. A LIFO modal
// stack temporarily overrides the active group; while the stack is non-empty
// the active group is always its top.
type Ring struct {
	Name   string
	Config RingConfig

	groups map[string]*Group
	names  []string // insertion order
	active string
	modals []modalEntry
}

// NewRing creates an empty ring.
func NewRing(name string) *Ring {
	return &Ring{Name: name, groups: make(map[string]*Group)}
}

// AddGroup registers a group under its name. The first group added becomes
// the active group. Re-adding a name replaces the group.
func (r *Ring) AddGroup(g *Group) {
	if g == nil {
		return
	}
	if _, exists := r.groups[g.Name]; !exists {
		r.names = append(r.names, g.Name)
	}
	r.groups[g.Name] = g
	if r.active == "" {
		r.active = g.Name
	}
}

// Group returns the named group, or nil.
func (r *Ring) Group(name string) *Group {
	return r.groups[name]
}

// GroupNames returns group names in insertion order.
func (r *Ring) GroupNames() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// SetActiveGroup switches the ring's normal active group. Returns false for
// an unknown name; the ring is left unchanged.
func (r *Ring) SetActiveGroup(name string) bool {
	if _, ok := r.groups[name]; !ok {
		return false
	}
	r.active = name
	return true
}

// ActiveGroup returns the group currently receiving navigation: the top of
// the modal stack when one is pushed, the normal active group otherwise.
func (r *Ring) ActiveGroup() *Group {
	if n := len(r.modals); n > 0 {
		return r.modals[n-1].group
	}
	return r.groups[r.active]
}

// PushModal makes g the active group and remembers the prior active group.
// The modal group does not need to be registered with AddGroup.
func (r *Ring) PushModal(g *Group) {
	if g == nil {
		return
	}
	r.modals = append(r.modals, modalEntry{group: g, prevActive: r.active})
}

// PopModal removes the top modal and restores the previously active group.
// With RestoreFocus configured, the restored group re-focuses its most
// recent eligible history entry. Returns the group that became active, or
// nil if the stack was empty.
func (r *Ring) PopModal() *Group {
	n := len(r.modals)
	if n == 0 {
		return nil
	}
	entry := r.modals[n-1]
	r.modals = r.modals[:n-1]
	r.active = entry.prevActive
	restored := r.ActiveGroup()
	if restored != nil && r.Config.RestoreFocus {
		restored.RestoreFocus()
	}
	return restored
}

// ModalDepth returns the number of pushed modals.
func (r *Ring) ModalDepth() int {
	return len(r.modals)
}
