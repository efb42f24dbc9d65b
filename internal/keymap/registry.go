package keymap

import (
	"sort"
	"strings"
)

// Binding maps one key chord to an action within a context scope.
type Binding struct {
	Chord        string
	Action       Action
	Description  string
	Scope        Scope
	Qualifier    string // screen or component-class name; empty for Global
	Enabled      bool
	Priority     int
	Category     string
	ShowInFooter bool

	seq int // insertion order; breaks priority ties
}

// NormalizeChord canonicalizes a chord string: lowercased, trimmed, with the
// space key spelled out.
func NormalizeChord(chord string) string {
	c := strings.ToLower(strings.TrimSpace(chord))
	if c == " " {
		return "space"
	}
	return c
}

// Registry holds the application's shortcut bindings. A chord maps to at
// most one binding; adding a duplicate replaces it. One Registry is created
// at startup, optionally overlaid with persisted customizations.
type Registry struct {
	bindings map[string]*Binding
	nextSeq  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string]*Binding)}
}

// Add inserts a binding, replacing any existing binding for the same chord.
func (r *Registry) Add(b Binding) {
	b.Chord = NormalizeChord(b.Chord)
	if b.Chord == "" {
		return
	}
	r.nextSeq++
	b.seq = r.nextSeq
	r.bindings[b.Chord] = &b
}

// Get returns the binding for a chord.
func (r *Registry) Get(chord string) (Binding, bool) {
	b, ok := r.bindings[NormalizeChord(chord)]
	if !ok {
		return Binding{}, false
	}
	return *b, true
}

// Remove deletes the binding for a chord. Returns false if absent.
func (r *Registry) Remove(chord string) bool {
	c := NormalizeChord(chord)
	if _, ok := r.bindings[c]; !ok {
		return false
	}
	delete(r.bindings, c)
	return true
}

// Customize atomically moves the binding under oldChord to newChord, leaving
// every other field unchanged. Returns false (no mutation) when oldChord is
// absent or newChord is empty.
func (r *Registry) Customize(oldChord, newChord string) bool {
	oldC, newC := NormalizeChord(oldChord), NormalizeChord(newChord)
	b, ok := r.bindings[oldC]
	if !ok || newC == "" {
		return false
	}
	delete(r.bindings, oldC)
	b.Chord = newC
	r.bindings[newC] = b
	return true
}

// Toggle flips the enabled flag of the binding for a chord. Returns false if
// absent.
func (r *Registry) Toggle(chord string) bool {
	b, ok := r.bindings[NormalizeChord(chord)]
	if !ok {
		return false
	}
	b.Enabled = !b.Enabled
	return true
}

// Resolve returns the enabled bindings applicable in ctx: all Global
// bindings plus those whose scope and qualifier match exactly. The result is
// ordered by descending priority, insertion order on ties, and contains each
// chord at most once (the higher-priority binding wins; the scoped one on a
// priority tie).
func (r *Registry) Resolve(ctx Context) []Binding {
	byChord := make(map[string]*Binding)
	for chord, b := range r.bindings {
		if !b.Enabled || !r.applies(b, ctx) {
			continue
		}
		prev, dup := byChord[chord]
		if !dup || b.Priority > prev.Priority ||
			(b.Priority == prev.Priority && b.Scope != ScopeGlobal) {
			byChord[chord] = b
		}
	}
	out := make([]Binding, 0, len(byChord))
	for _, b := range byChord {
		out = append(out, *b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].seq < out[j].seq
	})
	return out
}

func (r *Registry) applies(b *Binding, ctx Context) bool {
	if b.Scope == ScopeGlobal {
		return true
	}
	if b.Scope != ctx.Scope {
		return false
	}
	// An absent qualifier never matches a scoped binding.
	return ctx.Qualifier != "" && b.Qualifier == ctx.Qualifier
}

// Match resolves a pressed chord in ctx, returning the binding that should
// fire.
func (r *Registry) Match(chord string, ctx Context) (Binding, bool) {
	c := NormalizeChord(chord)
	for _, b := range r.Resolve(ctx) {
		if b.Chord == c {
			return b, true
		}
	}
	return Binding{}, false
}

// Categories returns category names in alphabetical order with their
// bindings, each list in resolve order for a Global context plus every
// scoped binding. Used by the help overlay.
func (r *Registry) Categories() ([]string, map[string][]Binding) {
	byCategory := make(map[string][]Binding)
	for _, b := range r.bindings {
		byCategory[b.Category] = append(byCategory[b.Category], *b)
	}
	names := make([]string, 0, len(byCategory))
	for name, list := range byCategory {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Priority != list[j].Priority {
				return list[i].Priority > list[j].Priority
			}
			return list[i].seq < list[j].seq
		})
		byCategory[name] = list
		names = append(names, name)
	}
	sort.Strings(names)
	return names, byCategory
}

// All returns every binding, in insertion order.
func (r *Registry) All() []Binding {
	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	return len(r.bindings)
}
