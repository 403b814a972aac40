package bikerush

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/bike-rush/internal/config"
	"github.com/vovakirdan/bike-rush/internal/core"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.DefaultBikeRushConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// held builds a frame with the given keys down.
func held(ms int, keys ...core.Key) core.InputFrame {
	in := core.NewInputFrame(time.Duration(ms) * time.Millisecond)
	for _, k := range keys {
		in.Hold(k)
	}
	return in
}

// pressed builds a frame with the given keys newly pressed.
func pressed(ms int, keys ...core.Key) core.InputFrame {
	in := core.NewInputFrame(time.Duration(ms) * time.Millisecond)
	for _, k := range keys {
		in.Press(k)
	}
	return in
}

// noHits disables collisions so long runs are not cut short.
var noHits = ColliderFunc(func(core.RectF, []Obstacle) []ID { return nil })

// placeAtBike parks an obstacle of kind k exactly on the bike.
func placeAtBike(g *Game, k Kind, damage Damage) ID {
	offset := g.cfg.Obstacles.ParallaxOffset
	return g.obstacles.Add(Obstacle{
		Kind:          k,
		Damage:        damage,
		SpawnDistance: g.level.Distance - offset,
		X:             g.cfg.Bike.X,
		Y:             g.bike.Y,
		W:             30,
		H:             30,
		Motion:        &Parked{},
	})
}
