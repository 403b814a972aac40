package bikerush

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/bike-rush/internal/config"
)

// kindSpec is the resolved per-kind tuning.
type kindSpec struct {
	damage Damage
	w, h   float64
}

// Spawner creates obstacles on two schedules: moving kinds on a randomized
// timer, stationary kinds every fixed stretch of distance.
type Spawner struct {
	obs   config.ObstaclesConfig
	field config.FieldConfig
	bikeX float64

	specs      map[Kind]kindSpec
	moving     []Kind
	stationary []Kind

	rng            *rand.Rand
	timer          float64 // ms since the last moving spawn
	nextMoving     float64 // ms threshold for the next moving spawn
	lastStationary float64 // level distance of the last stationary spawn
}

// NewSpawner creates a spawner seeded with seed.
func NewSpawner(cfg config.BikeRushConfig, seed int64) (*Spawner, error) {
	s := &Spawner{
		obs:   cfg.Obstacles,
		field: cfg.Field,
		bikeX: cfg.Bike.X,
		specs: make(map[Kind]kindSpec, len(cfg.Obstacles.Kinds)),
	}

	for name, kc := range cfg.Obstacles.Kinds {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		damage, err := ParseDamage(kc.Damage)
		if err != nil {
			return nil, fmt.Errorf("kind %s: %w", name, err)
		}
		s.specs[kind] = kindSpec{damage: damage, w: kc.Width, h: kc.Height}
	}

	var err error
	if s.moving, err = s.parsePool(cfg.Obstacles.MovingPool); err != nil {
		return nil, fmt.Errorf("moving pool: %w", err)
	}
	if s.stationary, err = s.parsePool(cfg.Obstacles.StationaryPool); err != nil {
		return nil, fmt.Errorf("stationary pool: %w", err)
	}

	s.Reset(seed)
	return s, nil
}

func (s *Spawner) parsePool(names []string) ([]Kind, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("empty pool")
	}
	pool := make([]Kind, 0, len(names))
	for _, name := range names {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		if _, ok := s.specs[kind]; !ok {
			return nil, fmt.Errorf("kind %s has no tuning", name)
		}
		pool = append(pool, kind)
	}
	return pool, nil
}

// Reset rewinds both schedules and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.timer = 0
	s.nextMoving = s.obs.FirstMovingSpawnMS
	s.lastStationary = 0
}

// NextSeed draws a seed for the next level from the spawner's RNG.
func (s *Spawner) NextSeed() int64 {
	return s.rng.Int63()
}

// Update advances both schedules and spawns into a.
// Returns the number of obstacles created.
func (s *Spawner) Update(deltaMS, distance float64, a *Arena) int {
	spawned := 0

	s.timer += deltaMS
	if s.timer > s.nextMoving {
		s.Spawn(s.pick(s.moving), distance, a)
		spawned++
		s.timer = 0
		s.nextMoving = s.obs.MovingSpawnMinMS + s.rng.Float64()*(s.obs.MovingSpawnMaxMS-s.obs.MovingSpawnMinMS)
	}

	if distance-s.lastStationary > s.obs.StationaryInterval {
		s.Spawn(s.pick(s.stationary), distance, a)
		spawned++
		s.lastStationary = distance
	}

	return spawned
}

func (s *Spawner) pick(pool []Kind) Kind {
	return pool[s.rng.Intn(len(pool))]
}

// Spawn places one obstacle of the given kind just past the right edge.
func (s *Spawner) Spawn(kind Kind, distance float64, a *Arena) ID {
	spec := s.specs[kind]
	spawnDistance := distance + s.obs.LookAhead

	o := Obstacle{
		Kind:          kind,
		Damage:        spec.damage,
		SpawnDistance: spawnDistance,
		X:             s.field.Width + s.field.OffscreenMargin,
		W:             spec.w,
		H:             spec.h,
	}

	switch kind {
	case KindPedestrian:
		fromTop := s.rng.Float64() > 0.5
		c := &Crossing{Direction: -1, Speed: s.obs.PedestrianSpeed, Phase: PhaseCrossing}
		o.Y = s.field.RoadBottom() - s.obs.PedestrianEdgeInset
		if fromTop {
			c.Direction = 1
			o.Y = s.field.RoadY + s.obs.PedestrianEdgeInset
		}
		o.X = parallaxX(s.bikeX, s.obs.ParallaxOffset, spawnDistance, distance)
		o.Motion = c
	default:
		o.Y = s.field.RoadY + s.obs.VerticalInset + s.rng.Float64()*(s.field.RoadHeight-2*s.obs.VerticalInset)
		switch kind {
		case KindCar:
			o.Motion = &Oncoming{Speed: s.obs.CarSpeed}
		case KindBird:
			angle := s.rng.Float64() * 2 * math.Pi
			o.Motion = &Flight{
				VX: math.Cos(angle) * s.obs.BirdSpeed,
				VY: math.Sin(angle) * s.obs.BirdSpeed,
			}
		default:
			o.X = parallaxX(s.bikeX, s.obs.ParallaxOffset, spawnDistance, distance)
			o.Motion = &Parked{}
		}
	}

	return a.Add(o)
}
