// Package hit records which striker touched which target during a frame.
//
// There is one Table per (striker category, target category) pair. The
// category type parameter only tags strikers and tables so that a laser
// striker list cannot be fed to a table of orb targets.
package hit

import (
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/ecs"
)

// Striker is a live object of category C that can hit targets.
type Striker[C any] struct {
	ID  ecs.Entity
	Box core.Box
}

// Hittable is a target's hitbox and the striker recorded this frame.
type Hittable struct {
	Bound core.Vec2
	By    ecs.Entity // ecs.None when nothing hit the target this frame
}

// Table tracks targets that can be struck by category C.
type Table[C any] struct {
	targets *ecs.Store[Hittable]
}

// NewTable creates an empty table.
func NewTable[C any]() *Table[C] {
	return &Table[C]{targets: ecs.NewStore[Hittable]()}
}

// Add registers e as a target with the given full hitbox size.
func (t *Table[C]) Add(e ecs.Entity, bound core.Vec2) {
	t.targets.Set(e, Hittable{Bound: bound})
}

// Resize changes the hitbox of an existing target and drops its hit.
func (t *Table[C]) Resize(e ecs.Entity, bound core.Vec2) {
	if h, ok := t.targets.Get(e); ok {
		h.Bound = bound
		h.By = ecs.None
	}
}

// Remove unregisters a target.
func (t *Table[C]) Remove(e ecs.Entity) {
	t.targets.Remove(e)
}

// Has reports whether e is a target in this table.
func (t *Table[C]) Has(e ecs.Entity) bool {
	return t.targets.Has(e)
}

// Bound returns the hitbox size of a target.
func (t *Table[C]) Bound(e ecs.Entity) (core.Vec2, bool) {
	h, ok := t.targets.Get(e)
	if !ok {
		return core.Vec2{}, false
	}
	return h.Bound, true
}

// Len returns the number of targets.
func (t *Table[C]) Len() int {
	return t.targets.Len()
}

// Detect tests every target against the strikers and records the first
// striker, in slice order, whose box overlaps the target. Targets that
// already hold a hit this frame are left alone. When view is non-nil each
// striker box is first clipped to it, so parts of a striker outside the
// viewport never register. pos supplies target positions; targets it does
// not know are skipped. Detect returns the number of hits recorded.
func (t *Table[C]) Detect(pos func(ecs.Entity) (core.Vec2, bool), strikers []Striker[C], view *core.Box) int {
	hits := 0
	t.targets.Each(func(e ecs.Entity, h *Hittable) {
		if h.By != ecs.None {
			return
		}
		p, ok := pos(e)
		if !ok {
			return
		}
		target := core.NewBox(p, h.Bound)
		for _, s := range strikers {
			if s.ID == e {
				continue
			}
			if Strikes(s.Box, target, view) {
				h.By = s.ID
				hits++
				return
			}
		}
	})
	return hits
}

// Strikes reports whether a striker box overlaps a target box after the
// striker is clipped to view (when view is non-nil).
func Strikes(striker, target core.Box, view *core.Box) bool {
	if view != nil {
		clipped, ok := core.BoxIntersection(striker, *view)
		if !ok {
			return false
		}
		striker = clipped
	}
	_, ok := core.BoxIntersection(striker, target)
	return ok
}

// HitBy returns the striker recorded for target e this frame.
func (t *Table[C]) HitBy(e ecs.Entity) (ecs.Entity, bool) {
	h, ok := t.targets.Get(e)
	if !ok || h.By == ecs.None {
		return ecs.None, false
	}
	return h.By, true
}

// Hits returns the (target, striker) pairs recorded this frame in target
// order.
func (t *Table[C]) Hits() []Pair {
	var out []Pair
	t.targets.Each(func(e ecs.Entity, h *Hittable) {
		if h.By != ecs.None {
			out = append(out, Pair{Target: e, Striker: h.By})
		}
	})
	return out
}

// Clear forgets every recorded hit. Targets stay registered.
func (t *Table[C]) Clear() {
	t.targets.Each(func(_ ecs.Entity, h *Hittable) {
		h.By = ecs.None
	})
}

// Pair is a recorded hit.
type Pair struct {
	Target  ecs.Entity
	Striker ecs.Entity
}
