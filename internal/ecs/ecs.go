// Package ecs holds entity ids and typed component tables.
//
// A system that "runs over entities with components X and Y" iterates the
// ids of one Store and looks the rest up by id. Stores iterate in insertion
// order, so scans that keep the first match are deterministic.
package ecs

// Entity is a stable identifier. The zero value is never allocated.
type Entity uint64

// None is the absent entity.
const None Entity = 0

// Registry allocates entity ids. Ids are never reused within a registry.
type Registry struct {
	next Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Spawn returns a fresh entity id.
func (r *Registry) Spawn() Entity {
	r.next++
	return r.next
}

// Store is a component table for type T keyed by entity.
type Store[T any] struct {
	components map[Entity]*T
	entities   []Entity
}

// NewStore creates an empty component table.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]*T),
		entities:   make([]Entity, 0, 16),
	}
}

// Set inserts or replaces the component of e.
// A replaced component keeps its position in iteration order.
func (s *Store[T]) Set(e Entity, val T) *T {
	if c, ok := s.components[e]; ok {
		*c = val
		return c
	}
	c := new(T)
	*c = val
	s.components[e] = c
	s.entities = append(s.entities, e)
	return c
}

// Get returns a pointer to the component of e. The pointer stays valid
// until e is removed.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	c, ok := s.components[e]
	return c, ok
}

// Has reports whether e has a component in this table.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes the component of e, keeping the order of the others.
func (s *Store[T]) Remove(e Entity) {
	if _, ok := s.components[e]; !ok {
		return
	}
	delete(s.components, e)
	for i, id := range s.entities {
		if id == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// RemoveBatch deletes several entities in one pass.
func (s *Store[T]) RemoveBatch(entities []Entity) {
	if len(entities) == 0 || len(s.components) == 0 {
		return
	}
	removed := 0
	for _, e := range entities {
		if _, ok := s.components[e]; ok {
			delete(s.components, e)
			removed++
		}
	}
	if removed == 0 {
		return
	}
	w := 0
	for _, e := range s.entities {
		if _, ok := s.components[e]; ok {
			s.entities[w] = e
			w++
		}
	}
	s.entities = s.entities[:w]
}

// Entities returns a copy of the ids in insertion order.
// Callers may add or remove components while ranging over the copy.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Each calls fn for every live component in insertion order. Components
// removed by fn before they are reached are skipped.
func (s *Store[T]) Each(fn func(e Entity, c *T)) {
	for _, e := range s.Entities() {
		if c, ok := s.components[e]; ok {
			fn(e, c)
		}
	}
}

// Len returns the number of components.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Clear removes every component.
func (s *Store[T]) Clear() {
	s.components = make(map[Entity]*T)
	s.entities = s.entities[:0]
}
