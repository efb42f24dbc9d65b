package focus

import (
	"slices"
	"sort"
)

// Mode selects how a group orders its members for traversal.
type Mode int

const (
	// ModeOrdinal orders members by ascending tab index, join order on ties.
	ModeOrdinal Mode = iota
	// ModeSpatial orders members by ascending (y, x) of their bounds and
	// supports directional moves.
	ModeSpatial
	// ModeCustom keeps the order set by the caller; new members append.
	ModeCustom
)

// historyCap bounds the focus history kept per group.
const historyCap = 10

// Config controls traversal behavior for a group.
type Config struct {
	// Wrap makes Next/Prev cycle past the ends.
	Wrap bool
	// SkipDisabled excludes disabled members from traversal.
	SkipDisabled bool
}

// DefaultConfig wraps and skips disabled members.
func DefaultConfig() Config {
	return Config{Wrap: true, SkipDisabled: true}
}

// Group orders a set of components and moves focus among them.
// The traversal order is derived: it is rebuilt whenever membership or a
// member's tab index changes, and always contains exactly the current
// members.
type Group struct {
	Name    string
	Mode    Mode
	Enabled bool
	Config  Config

	members []*Component // join order
	order   []*Component // derived traversal order
	current *Component
	history []string // component IDs, most recent first
	joinSeq int
}

// NewGroup creates an empty group with the default config.
func NewGroup(name string, mode Mode) *Group {
	return &Group{Name: name, Mode: mode, Enabled: true, Config: DefaultConfig()}
}

// Join adds a component to this group, removing it from any prior group
// first. Rebuilds the traversal order.
func (g *Group) Join(c *Component) {
	if c == nil {
		return
	}
	if c.group == g {
		return
	}
	if c.group != nil {
		c.group.Leave(c)
	}
	g.joinSeq++
	c.joinSeq = g.joinSeq
	c.group = g
	g.members = append(g.members, c)
	g.rebuild()
}

// Leave removes a component from this group, clearing its back-reference and
// purging it from the focus history. No-op if the component is not a member.
func (g *Group) Leave(c *Component) {
	if c == nil || c.group != g {
		return
	}
	g.members = slices.DeleteFunc(g.members, func(m *Component) bool { return m == c })
	c.group = nil
	if g.current == c {
		g.current = nil
	}
	g.history = slices.DeleteFunc(g.history, func(id string) bool { return id == c.ID })
	g.rebuild()
}

// Members returns the components in traversal order.
func (g *Group) Members() []*Component {
	return slices.Clone(g.order)
}

// Current returns the focused component, or nil.
func (g *Group) Current() *Component {
	return g.current
}

// History returns the focus history, most recent first.
func (g *Group) History() []string {
	return slices.Clone(g.history)
}

// rebuild recomputes the derived traversal order from the current members.
func (g *Group) rebuild() {
	g.order = slices.Clone(g.members)
	switch g.Mode {
	case ModeOrdinal:
		sort.SliceStable(g.order, func(i, j int) bool {
			a, b := g.order[i], g.order[j]
			if a.TabIndex != b.TabIndex {
				return a.TabIndex < b.TabIndex
			}
			return a.joinSeq < b.joinSeq
		})
	case ModeSpatial:
		sort.SliceStable(g.order, func(i, j int) bool {
			a, b := g.order[i].Bounds, g.order[j].Bounds
			if a.Y != b.Y {
				return a.Y < b.Y
			}
			return a.X < b.X
		})
	case ModeCustom:
		// join order is the explicit order; SetCustomOrder rearranges members
	}
}

// SetCustomOrder rearranges members to match the given IDs. IDs not in the
// group are ignored; members not listed keep their relative order after the
// listed ones. Only meaningful in ModeCustom.
func (g *Group) SetCustomOrder(ids ...string) {
	byID := make(map[string]*Component, len(g.members))
	for _, m := range g.members {
		byID[m.ID] = m
	}
	ordered := make([]*Component, 0, len(g.members))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok && !seen[id] {
			ordered = append(ordered, m)
			seen[id] = true
		}
	}
	for _, m := range g.members {
		if !seen[m.ID] {
			ordered = append(ordered, m)
		}
	}
	g.members = ordered
	g.rebuild()
}

// Focus makes c the current component and records it in the history.
// Returns false if c is not an eligible member.
func (g *Group) Focus(c *Component) bool {
	if c == nil || c.group != g || !c.eligible(g.Config) {
		return false
	}
	g.current = c
	g.remember(c.ID)
	return true
}

func (g *Group) remember(id string) {
	g.history = slices.DeleteFunc(g.history, func(h string) bool { return h == id })
	g.history = append([]string{id}, g.history...)
	if len(g.history) > historyCap {
		g.history = g.history[:historyCap]
	}
}

// Next focuses the member after the current one in traversal order.
// With no current member (or a stale one), it behaves like First. Returns
// the newly focused component, or nil if no eligible member was found; focus
// is left unchanged in that case.
func (g *Group) Next() *Component {
	return g.step(1)
}

// Prev focuses the member before the current one in traversal order. Like
// Next, it restarts from the first eligible member when current is absent or
// stale.
func (g *Group) Prev() *Component {
	return g.step(-1)
}

func (g *Group) step(delta int) *Component {
	if len(g.order) == 0 {
		return nil
	}
	start := g.indexOf(g.current)
	if start < 0 {
		// Current absent or stale: restart from the first eligible member,
		// regardless of direction.
		return g.First()
	}
	n := len(g.order)
	if g.Config.Wrap {
		for i := 1; i <= n; i++ {
			c := g.order[((start+i*delta)%n+n)%n]
			if c.eligible(g.Config) {
				g.current = c
				g.remember(c.ID)
				return c
			}
		}
		return nil
	}
	for i := start + delta; i >= 0 && i < n; i += delta {
		c := g.order[i]
		if c.eligible(g.Config) {
			g.current = c
			g.remember(c.ID)
			return c
		}
	}
	// Ran past the end without wrap: focus stays put.
	return nil
}

// First focuses the first eligible member in traversal order.
func (g *Group) First() *Component {
	for _, c := range g.order {
		if c.eligible(g.Config) {
			g.current = c
			g.remember(c.ID)
			return c
		}
	}
	return nil
}

// Last focuses the last eligible member in traversal order.
func (g *Group) Last() *Component {
	for i := len(g.order) - 1; i >= 0; i-- {
		c := g.order[i]
		if c.eligible(g.Config) {
			g.current = c
			g.remember(c.ID)
			return c
		}
	}
	return nil
}

// Move performs a directional move from the current component. An explicit
// override on the component wins; otherwise the nearest eligible member
// strictly in the requested direction is chosen, minimizing (primary-axis
// distance, secondary-axis distance). No candidate means no-op.
func (g *Group) Move(dir Direction) *Component {
	cur := g.current
	if cur == nil {
		return g.First()
	}
	if id, ok := cur.Overrides[dir]; ok {
		if target := g.byID(id); target != nil && target.eligible(g.Config) {
			g.current = target
			g.remember(target.ID)
			return target
		}
	}
	var best *Component
	var bestPrimary, bestSecondary int
	for _, c := range g.order {
		if c == cur || !c.eligible(g.Config) {
			continue
		}
		primary, secondary, ok := distance(cur.Bounds, c.Bounds, dir)
		if !ok {
			continue
		}
		if best == nil || primary < bestPrimary ||
			(primary == bestPrimary && secondary < bestSecondary) {
			best, bestPrimary, bestSecondary = c, primary, secondary
		}
	}
	if best == nil {
		return nil
	}
	g.current = best
	g.remember(best.ID)
	return best
}

// distance returns the (primary, secondary) axis distances from a to b when
// b lies strictly in direction dir relative to a.
func distance(a, b Rect, dir Direction) (primary, secondary int, ok bool) {
	switch dir {
	case DirUp:
		if b.Y >= a.Y {
			return 0, 0, false
		}
		return a.Y - b.Y, abs(b.X - a.X), true
	case DirDown:
		if b.Y <= a.Y {
			return 0, 0, false
		}
		return b.Y - a.Y, abs(b.X - a.X), true
	case DirLeft:
		if b.X >= a.X {
			return 0, 0, false
		}
		return a.X - b.X, abs(b.Y - a.Y), true
	case DirRight:
		if b.X <= a.X {
			return 0, 0, false
		}
		return b.X - a.X, abs(b.Y - a.Y), true
	}
	return 0, 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// RestoreFocus re-focuses the most recent eligible entry in the history.
// Returns nil if the history is empty or every entry is gone or ineligible.
func (g *Group) RestoreFocus() *Component {
	for _, id := range g.history {
		c := g.byID(id)
		if c != nil && c.eligible(g.Config) {
			g.current = c
			g.remember(c.ID)
			return c
		}
	}
	return nil
}

func (g *Group) byID(id string) *Component {
	for _, m := range g.members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (g *Group) indexOf(c *Component) int {
	if c == nil {
		return -1
	}
	for i, m := range g.order {
		if m == c {
			return i
		}
	}
	return -1
}
