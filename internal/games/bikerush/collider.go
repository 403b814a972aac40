package bikerush

import "github.com/vovakirdan/bike-rush/internal/core"

// Collider reports which obstacles overlap the bike this frame.
type Collider interface {
	Overlaps(bike core.RectF, obstacles []Obstacle) []ID
}

// BoxCollider tests axis-aligned visual bounds.
type BoxCollider struct{}

// Overlaps returns the IDs of obstacles whose bounds intersect bike, in spawn order.
func (BoxCollider) Overlaps(bike core.RectF, obstacles []Obstacle) []ID {
	var hits []ID
	for i := range obstacles {
		if bike.Intersects(obstacles[i].Bounds()) {
			hits = append(hits, obstacles[i].ID)
		}
	}
	return hits
}

// ColliderFunc adapts a function to the Collider interface.
type ColliderFunc func(bike core.RectF, obstacles []Obstacle) []ID

// Overlaps calls f.
func (f ColliderFunc) Overlaps(bike core.RectF, obstacles []Obstacle) []ID {
	return f(bike, obstacles)
}
