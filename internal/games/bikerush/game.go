// Package bikerush implements a top-down bicycle race against the clock.
// The rider pedals by pressing A or D in time with the pedal dial, steers
// across the road and shifts gears while dodging obstacles, and has to
// cover the target distance before the timer runs out.
package bikerush

import (
	"fmt"

	"github.com/vovakirdan/bike-rush/internal/config"
	"github.com/vovakirdan/bike-rush/internal/core"
)

// Game owns one level: the bike, the timer, the obstacles and the rules.
// Step is the only thing that advances it.
type Game struct {
	cfg     config.BikeRushConfig
	runtime core.RuntimeConfig

	physics  bikePhysics
	mapper   InputMapper
	spawner  *Spawner
	mover    Mover
	referee  Referee
	collider Collider

	bike      Bike
	level     Level
	obstacles *Arena
	paused    bool
	frames    int
}

// New creates a game for the given tuning. Call Reset before the first Step.
func New(cfg config.BikeRushConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	spawner, err := NewSpawner(cfg, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to build spawner: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		physics:   newBikePhysics(cfg),
		mapper:    NewInputMapper(cfg),
		spawner:   spawner,
		mover:     NewMover(cfg),
		referee:   NewReferee(cfg),
		collider:  BoxCollider{},
		obstacles: NewArena(),
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bikerush"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bike Rush"
}

// SetCollider replaces the overlap test. A nil collider restores the box test.
func (g *Game) SetCollider(c Collider) {
	if c == nil {
		c = BoxCollider{}
	}
	g.collider = c
}

// Reset starts a fresh level: new bike, full timer, no obstacles.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.bike = g.physics.newBike()
	g.level = newLevel(g.cfg.Level)
	g.obstacles.Clear()
	g.spawner.Reset(rc.Seed)
	g.mapper.Reset()
	g.paused = false
	g.frames = 0
}

// restart begins a new level with a seed drawn from the finished one, so
// repeated runs differ while staying reproducible from the first seed.
func (g *Game) restart() {
	rc := g.runtime
	rc.Seed = g.spawner.NextSeed()
	g.Reset(rc)
}

// Step advances the level by one host frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.level.Terminal() {
		if in.JustPressed(core.KeyRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.JustPressed(core.KeyPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frames++
	deltaMS := in.DeltaMillis()
	dt := deltaMS / g.cfg.Physics.FrameUnitMS

	g.level.Elapsed += deltaMS
	if g.referee.CheckTimeout(&g.level) {
		return core.StepResult{State: g.State()}
	}

	intents := g.mapper.Map(in)

	// Drag first, then this frame's input.
	g.bike.applyDrag(g.physics, dt)
	g.bike.pedal(g.physics, intents.PedalA, intents.PedalD)
	g.bike.shift(intents)
	g.bike.VelocityY += intents.Steer
	g.bike.moveLateral(g.physics, dt)

	g.level.advance(g.bike.Speed * dt)
	g.bike.advancePedal(g.physics, dt)

	g.spawner.Update(deltaMS, g.level.Distance, g.obstacles)
	g.mover.Update(g.obstacles, g.level.Distance, g.bike.Speed, dt)

	hits := g.collider.Overlaps(g.bikeBounds(), g.obstacles.All())
	g.referee.Resolve(&g.level, &g.bike, g.obstacles, hits)
	g.bike.clampSpeed(g.physics)

	g.referee.CheckWin(&g.level)

	return core.StepResult{State: g.State()}
}

func (g *Game) bikeBounds() core.RectF {
	return core.CenteredRectF(g.cfg.Bike.X, g.bike.Y, g.cfg.Bike.Width, g.cfg.Bike.Height)
}

// State returns the host-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.level.Distance * metersPerUnit),
		GameOver: g.level.Terminal(),
		Won:      g.level.Status == StatusComplete,
		Paused:   g.paused,
	}
}

// Bike returns a copy of the bike state.
func (g *Game) Bike() Bike {
	return g.bike
}

// Level returns a copy of the level state.
func (g *Game) Level() Level {
	return g.level
}

// Obstacles returns the live obstacles in spawn order.
func (g *Game) Obstacles() []Obstacle {
	return g.obstacles.All()
}

// Config returns the tuning the game was built with.
func (g *Game) Config() config.BikeRushConfig {
	return g.cfg
}
