package bikerush

import "github.com/vovakirdan/bike-rush/internal/core"

// View is everything a host needs to draw one frame, in world coordinates.
type View struct {
	FieldW, FieldH float64
	RoadY, RoadH   float64

	Bike      BikeView
	Obstacles []ObstacleView

	Distance      float64 // For scrolling scenery
	FinishX       float64
	FinishVisible bool

	HUD    HUD
	Banner Banner
	Paused bool
}

// BikeView is the bike's drawable state.
type BikeView struct {
	Bounds     core.RectF
	PedalAngle float64
	Zone       Zone
	Gear       Gear
}

// ObstacleView is one obstacle's drawable state.
type ObstacleView struct {
	ID     ID
	Kind   Kind
	Bounds core.RectF
}

// finishMargin is how far past the field edges the finish line is still drawn.
const finishMargin = 50

// Snapshot captures the current frame for drawing.
func (g *Game) Snapshot() View {
	f := g.cfg.Field
	v := View{
		FieldW: f.Width,
		FieldH: f.Height,
		RoadY:  f.RoadY,
		RoadH:  f.RoadHeight,
		Bike: BikeView{
			Bounds:     g.bikeBounds(),
			PedalAngle: g.bike.PedalAngle,
			Zone:       ZoneOf(g.bike.PedalAngle),
			Gear:       g.bike.Gear,
		},
		Obstacles: make([]ObstacleView, 0, g.obstacles.Len()),
		Distance:  g.level.Distance,
		HUD:       makeHUD(g.bike, g.level),
		Banner:    makeBanner(g.level, g.paused),
		Paused:    g.paused,
	}

	g.obstacles.Each(func(o *Obstacle) {
		v.Obstacles = append(v.Obstacles, ObstacleView{ID: o.ID, Kind: o.Kind, Bounds: o.Bounds()})
	})

	v.FinishX = parallaxX(g.cfg.Bike.X, g.cfg.Obstacles.ParallaxOffset, g.level.Target, g.level.Distance)
	v.FinishVisible = v.FinishX > -finishMargin && v.FinishX < f.Width+finishMargin

	return v
}
