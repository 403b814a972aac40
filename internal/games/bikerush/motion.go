package bikerush

import (
	"github.com/vovakirdan/bike-rush/internal/config"
	"github.com/vovakirdan/bike-rush/internal/core"
)

// parallaxX places a road-fixed object relative to the bike. The gap between
// spawn distance and level distance is recomputed every call, never stored.
func parallaxX(bikeX, offset, spawnDistance, distance float64) float64 {
	return bikeX + offset + (spawnDistance - distance)
}

// Mover advances obstacles by their motion rule and retires the ones that
// left the field.
type Mover struct {
	field   config.FieldConfig
	bikeX   float64
	offset  float64
	topY    float64 // Upper limit for road-bound obstacles
	bottomY float64 // Lower limit for road-bound obstacles
}

// NewMover creates a mover from the level tuning.
func NewMover(cfg config.BikeRushConfig) Mover {
	return Mover{
		field:   cfg.Field,
		bikeX:   cfg.Bike.X,
		offset:  cfg.Obstacles.ParallaxOffset,
		topY:    cfg.Field.RoadY + cfg.Obstacles.PedestrianEdgeInset,
		bottomY: cfg.Field.RoadBottom() - cfg.Obstacles.PedestrianEdgeInset,
	}
}

// Update moves every obstacle one frame and culls those outside the
// off-screen margin. Returns the number culled.
func (m Mover) Update(a *Arena, distance, bikeSpeed, dt float64) int {
	a.Each(func(o *Obstacle) {
		m.move(o, distance, bikeSpeed, dt)
	})

	before := a.Len()
	a.Retain(func(o *Obstacle) bool { return !m.Offscreen(o) })
	return before - a.Len()
}

func (m Mover) move(o *Obstacle, distance, bikeSpeed, dt float64) {
	switch mo := o.Motion.(type) {
	case *Parked:
		o.X = parallaxX(m.bikeX, m.offset, o.SpawnDistance, distance)
	case *Oncoming:
		o.X -= (bikeSpeed + mo.Speed) * dt
	case *Crossing:
		o.X = parallaxX(m.bikeX, m.offset, o.SpawnDistance, distance)
		if mo.Phase == PhaseCrossing {
			o.Y += mo.Direction * mo.Speed * dt
			if (mo.Direction > 0 && o.Y >= m.bottomY) || (mo.Direction < 0 && o.Y <= m.topY) {
				mo.Phase = PhaseStationary
			}
		}
	case *Flight:
		o.X -= bikeSpeed * dt
		o.X += mo.VX * dt
		o.Y += mo.VY * dt
		return // Birds may leave the road
	}

	o.Y = core.ClampF(o.Y, m.topY, m.bottomY)
}

// Offscreen reports whether o is beyond the margin around the field.
func (m Mover) Offscreen(o *Obstacle) bool {
	margin := m.field.OffscreenMargin
	return o.X < -margin || o.X > m.field.Width+margin ||
		o.Y < -margin || o.Y > m.field.Height+margin
}
