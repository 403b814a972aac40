package bikerush

import (
	"fmt"

	"github.com/vovakirdan/bike-rush/internal/config"
	"github.com/vovakirdan/bike-rush/internal/core"
)

// Kind is the obstacle type.
type Kind int

const (
	KindCone Kind = iota
	KindRock
	KindBird
	KindPedestrian
	KindCar
)

var kindNames = map[Kind]string{
	KindCone:       config.KindCone,
	KindRock:       config.KindRock,
	KindBird:       config.KindBird,
	KindPedestrian: config.KindPedestrian,
	KindCar:        config.KindCar,
}

// String returns the YAML name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind converts a YAML kind name to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown obstacle kind %q", name)
}

// Damage is what touching an obstacle does to the bike.
type Damage int

const (
	DamageNone Damage = iota
	DamageSlow
	DamageSlowHeavy
	DamageCrash
)

// ParseDamage converts a YAML damage name to a Damage.
func ParseDamage(name string) (Damage, error) {
	switch name {
	case config.DamageNone:
		return DamageNone, nil
	case config.DamageSlow:
		return DamageSlow, nil
	case config.DamageSlowHeavy:
		return DamageSlowHeavy, nil
	case config.DamageCrash:
		return DamageCrash, nil
	}
	return 0, fmt.Errorf("unknown damage %q", name)
}

// String returns the YAML name of the damage class.
func (d Damage) String() string {
	switch d {
	case DamageSlow:
		return config.DamageSlow
	case DamageSlowHeavy:
		return config.DamageSlowHeavy
	case DamageCrash:
		return config.DamageCrash
	default:
		return config.DamageNone
	}
}

// Phase is where a pedestrian is in its crossing.
type Phase int

const (
	PhaseCrossing Phase = iota
	PhaseStationary
)

// Motion is the per-kind movement sub-state of an obstacle.
// Exactly one of the types below is attached to each obstacle.
type Motion interface {
	motion()
}

// Parked obstacles scroll with the road and never move on their own.
type Parked struct{}

// Oncoming traffic closes in at bike speed plus its own speed.
type Oncoming struct {
	Speed float64
}

// Crossing pedestrians walk from one road edge to the other, then stop.
type Crossing struct {
	Direction float64 // +1 walks down, -1 walks up
	Speed     float64
	Phase     Phase
}

// Flight is a straight diagonal path, independent of the road.
type Flight struct {
	VX, VY float64
}

func (*Parked) motion()   {}
func (*Oncoming) motion() {}
func (*Crossing) motion() {}
func (*Flight) motion()   {}

// ID identifies an obstacle for the lifetime of a level.
type ID uint64

// Obstacle is a single entity on the road. X and Y are the centre of its bounds.
type Obstacle struct {
	ID            ID
	Kind          Kind
	Damage        Damage
	SpawnDistance float64
	X, Y          float64
	W, H          float64
	Motion        Motion
}

// Bounds returns the obstacle's visual bounds in world coordinates.
func (o *Obstacle) Bounds() core.RectF {
	return core.CenteredRectF(o.X, o.Y, o.W, o.H)
}

// Arena holds the live obstacles, indexed by ID and kept in spawn order.
type Arena struct {
	order  []ID
	byID   map[ID]*Obstacle
	nextID ID
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		order: make([]ID, 0, 32),
		byID:  make(map[ID]*Obstacle),
	}
}

// Clear removes every obstacle. IDs keep counting up.
func (a *Arena) Clear() {
	a.order = a.order[:0]
	clear(a.byID)
}

// Add stores o under a fresh ID and returns it.
func (a *Arena) Add(o Obstacle) ID {
	a.nextID++
	o.ID = a.nextID
	a.byID[o.ID] = &o
	a.order = append(a.order, o.ID)
	return o.ID
}

// Get returns the obstacle with the given ID.
func (a *Arena) Get(id ID) (*Obstacle, bool) {
	o, ok := a.byID[id]
	return o, ok
}

// Remove retires an obstacle. It reports whether the obstacle was present.
func (a *Arena) Remove(id ID) bool {
	if _, ok := a.byID[id]; !ok {
		return false
	}
	delete(a.byID, id)
	a.Retain(func(o *Obstacle) bool { return o.ID != id })
	return true
}

// Retain keeps only obstacles for which keep returns true.
func (a *Arena) Retain(keep func(*Obstacle) bool) {
	valid := a.order[:0]
	for _, id := range a.order {
		o, ok := a.byID[id]
		if !ok {
			continue
		}
		if keep(o) {
			valid = append(valid, id)
		} else {
			delete(a.byID, id)
		}
	}
	a.order = valid
}

// Len returns the number of live obstacles.
func (a *Arena) Len() int {
	return len(a.order)
}

// Each calls fn for every obstacle in spawn order.
func (a *Arena) Each(fn func(*Obstacle)) {
	for _, id := range a.order {
		fn(a.byID[id])
	}
}

// All returns a copy of every obstacle in spawn order. Motion sub-states
// are shared with the arena.
func (a *Arena) All() []Obstacle {
	out := make([]Obstacle, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, *a.byID[id])
	}
	return out
}
