package arena

import "math/rand"

// Arena coordinates are percentages of the play field, so the model never
// depends on the size of the terminal it is drawn into.
const (
	ArenaMin = 0.0
	ArenaMax = 100.0
)

// EntityID identifies an obstacle or target for the lifetime of a session.
type EntityID uint64

// Entity is a positioned game object tracked by a session.
type Entity struct {
	ID    EntityID
	X     float64 // Lateral position, percent of arena width
	Y     float64 // Depth position, percent of arena height
	Speed float64 // Drift amplitude; zero for entities that do not drift
}

// IDSeq hands out monotonically increasing entity IDs. The zero value is ready
// to use and never returns 0.
type IDSeq struct {
	last EntityID
}

// Next returns a fresh ID.
func (s *IDSeq) Next() EntityID {
	s.last++
	return s.last
}

// RemoveByID drops the entity with the given ID, preserving order.
// Reports false when no entity matched; the slice is then returned untouched.
func RemoveByID(entities []Entity, id EntityID) ([]Entity, bool) {
	for i, e := range entities {
		if e.ID == id {
			return append(entities[:i], entities[i+1:]...), true
		}
	}
	return entities, false
}

// Find returns the entity with the given ID.
func Find(entities []Entity, id EntityID) (Entity, bool) {
	for _, e := range entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}

// CloneEntities copies a slice so snapshots never alias session state.
func CloneEntities(entities []Entity) []Entity {
	if len(entities) == 0 {
		return nil
	}
	out := make([]Entity, len(entities))
	copy(out, entities)
	return out
}

// Rand is the uniform random source a session draws spawn positions from.
// *rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded generator.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Uniform draws from [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
