package focus

// Direction identifies a spatial navigation direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rect is a component's position and size in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Component is an interactive element that can receive focus.
// A component belongs to at most one Group at a time; the group pointer is a
// non-owning back-reference maintained by Join/Leave.
type Component struct {
	ID       string
	TabIndex int
	Bounds   Rect
	Enabled  bool
	Visible  bool

	// Overrides maps a direction to the ID of the component that should
	// receive focus instead of the spatial search result.
	Overrides map[Direction]string

	group   *Group
	joinSeq int // set by Group.Join; breaks tab-index ties
}

// NewComponent creates an enabled, visible component with the given ID.
func NewComponent(id string) *Component {
	return &Component{ID: id, Enabled: true, Visible: true}
}

// WithTabIndex sets the ordinal tab index.
func (c *Component) WithTabIndex(i int) *Component {
	c.TabIndex = i
	if c.group != nil {
		c.group.rebuild()
	}
	return c
}

// WithBounds sets the spatial bounds.
func (c *Component) WithBounds(x, y, w, h int) *Component {
	c.Bounds = Rect{X: x, Y: y, W: w, H: h}
	if c.group != nil && c.group.Mode == ModeSpatial {
		c.group.rebuild()
	}
	return c
}

// SetOverride routes a directional move from this component to the component
// with the given ID, bypassing the spatial search.
func (c *Component) SetOverride(dir Direction, targetID string) {
	if c.Overrides == nil {
		c.Overrides = make(map[Direction]string)
	}
	c.Overrides[dir] = targetID
}

// Group returns the group this component currently belongs to, or nil.
func (c *Component) Group() *Group {
	return c.group
}

// eligible reports whether the component can receive focus under the given
// group config. Invisible components are never eligible.
func (c *Component) eligible(cfg Config) bool {
	if !c.Visible {
		return false
	}
	if cfg.SkipDisabled && !c.Enabled {
		return false
	}
	return true
}
