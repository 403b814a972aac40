// Package config provides YAML-based tuning for the bike-rush level.
// Every gameplay constant lives here so that the simulation package never
// hardcodes a number the designer may want to adjust.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Obstacle kind names as they appear in YAML.
const (
	KindCone       = "cone"
	KindRock       = "rock"
	KindBird       = "bird"
	KindPedestrian = "pedestrian"
	KindCar        = "car"
)

// Damage class names as they appear in YAML.
const (
	DamageNone      = "none"
	DamageSlow      = "slow"
	DamageSlowHeavy = "slow-heavy"
	DamageCrash     = "crash"
)

// BikeRushConfig contains all tuning for the single bike-rush level.
type BikeRushConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Bike      BikeConfig      `yaml:"bike"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Pedal     PedalConfig     `yaml:"pedal"`
	Level     LevelConfig     `yaml:"level"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
}

// FieldConfig describes the visible world and the road band inside it.
type FieldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	RoadY           float64 `yaml:"road_y"`      // Top edge of the road
	RoadHeight      float64 `yaml:"road_height"` // Road band height
	OffscreenMargin float64 `yaml:"offscreen_margin"`
}

// RoadBottom returns the y coordinate of the road's lower edge.
func (f FieldConfig) RoadBottom() float64 {
	return f.RoadY + f.RoadHeight
}

// BikeConfig defines the bike sprite and where it rides.
type BikeConfig struct {
	X         float64 `yaml:"x"` // Fixed screen x of the bike
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	RoadInset float64 `yaml:"road_inset"` // Distance kept from each road edge
}

// PhysicsConfig defines longitudinal and lateral motion.
type PhysicsConfig struct {
	MaxSpeed         float64 `yaml:"max_speed"`
	Acceleration     float64 `yaml:"acceleration"`       // Speed gained per correct pedal press
	WrongPedalFactor float64 `yaml:"wrong_pedal_factor"` // Fraction of acceleration lost on a wrong press
	SpeedDrag        float64 `yaml:"speed_drag"`         // Per reference frame, raised to dt
	LateralDrag      float64 `yaml:"lateral_drag"`       // Per reference frame, raised to dt
	TurnSpeed        float64 `yaml:"turn_speed"`         // Lateral velocity added per held steer key
	FrameUnitMS      float64 `yaml:"frame_unit_ms"`      // dt = delta / FrameUnitMS
}

// PedalConfig defines pedal rotation and gearing.
type PedalConfig struct {
	RotationScale        float64         `yaml:"rotation_scale"`
	GearMultipliers      map[int]float64 `yaml:"gear_multipliers"`
	StartingGear         int             `yaml:"starting_gear"`
	DirectSelectRepeatMS float64         `yaml:"direct_select_repeat_ms"`
}

// LevelConfig defines the win and timeout conditions.
type LevelConfig struct {
	DurationMS     float64 `yaml:"duration_ms"`
	TargetDistance float64 `yaml:"target_distance"`
}

// ObstaclesConfig defines spawning, motion, and collision effects.
type ObstaclesConfig struct {
	LookAhead           float64               `yaml:"look_ahead"`
	ParallaxOffset      float64               `yaml:"parallax_offset"`
	VerticalInset       float64               `yaml:"vertical_inset"`
	PedestrianEdgeInset float64               `yaml:"pedestrian_edge_inset"`
	FirstMovingSpawnMS  float64               `yaml:"first_moving_spawn_ms"`
	MovingSpawnMinMS    float64               `yaml:"moving_spawn_min_ms"`
	MovingSpawnMaxMS    float64               `yaml:"moving_spawn_max_ms"`
	StationaryInterval  float64               `yaml:"stationary_interval"`
	MovingPool          []string              `yaml:"moving_pool"`
	StationaryPool      []string              `yaml:"stationary_pool"`
	CarSpeed            float64               `yaml:"car_speed"`
	PedestrianSpeed     float64               `yaml:"pedestrian_speed"`
	BirdSpeed           float64               `yaml:"bird_speed"`
	SlowFactor          float64               `yaml:"slow_factor"`
	SlowHeavyFactor     float64               `yaml:"slow_heavy_factor"`
	Kinds               map[string]KindConfig `yaml:"kinds"`
}

// KindConfig is the per-kind damage class and visual bounds.
type KindConfig struct {
	Damage string  `yaml:"damage"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

var (
	knownKinds   = []string{KindCone, KindRock, KindBird, KindPedestrian, KindCar}
	knownDamages = map[string]bool{DamageNone: true, DamageSlow: true, DamageSlowHeavy: true, DamageCrash: true}
)

// Validate checks that the tuning describes a playable level.
func (c BikeRushConfig) Validate() error {
	f := c.Field
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: field size %vx%v", ErrInvalidConfig, f.Width, f.Height)
	}
	if f.RoadHeight <= 2*c.Bike.RoadInset || f.RoadY < 0 || f.RoadBottom() > f.Height {
		return fmt.Errorf("%w: road band [%v, %v] does not fit", ErrInvalidConfig, f.RoadY, f.RoadBottom())
	}

	p := c.Physics
	if p.MaxSpeed <= 0 || p.Acceleration <= 0 || p.FrameUnitMS <= 0 {
		return fmt.Errorf("%w: max_speed, acceleration and frame_unit_ms must be positive", ErrInvalidConfig)
	}
	if p.SpeedDrag <= 0 || p.SpeedDrag > 1 || p.LateralDrag <= 0 || p.LateralDrag > 1 {
		return fmt.Errorf("%w: drag factors must be in (0, 1]", ErrInvalidConfig)
	}

	for gear := 1; gear <= 3; gear++ {
		if m, ok := c.Pedal.GearMultipliers[gear]; !ok || m <= 0 {
			return fmt.Errorf("%w: gear %d has no positive multiplier", ErrInvalidConfig, gear)
		}
	}
	if c.Pedal.StartingGear < 1 || c.Pedal.StartingGear > 3 {
		return fmt.Errorf("%w: starting_gear %d", ErrInvalidConfig, c.Pedal.StartingGear)
	}

	if c.Level.DurationMS <= 0 || c.Level.TargetDistance <= 0 {
		return fmt.Errorf("%w: level duration and target distance must be positive", ErrInvalidConfig)
	}

	o := c.Obstacles
	if o.MovingSpawnMinMS < 0 || o.MovingSpawnMinMS >= o.MovingSpawnMaxMS {
		return fmt.Errorf("%w: moving spawn window [%v, %v)", ErrInvalidConfig, o.MovingSpawnMinMS, o.MovingSpawnMaxMS)
	}
	if o.StationaryInterval <= 0 {
		return fmt.Errorf("%w: stationary_interval must be positive", ErrInvalidConfig)
	}
	if f.RoadHeight <= 2*o.VerticalInset {
		return fmt.Errorf("%w: vertical_inset leaves no room on the road", ErrInvalidConfig)
	}
	for _, kind := range knownKinds {
		k, ok := o.Kinds[kind]
		if !ok {
			return fmt.Errorf("%w: missing kind %q", ErrInvalidConfig, kind)
		}
		if !knownDamages[k.Damage] {
			return fmt.Errorf("%w: kind %q has unknown damage %q", ErrInvalidConfig, kind, k.Damage)
		}
		if k.Width <= 0 || k.Height <= 0 {
			return fmt.Errorf("%w: kind %q has empty bounds", ErrInvalidConfig, kind)
		}
	}
	if err := validatePool("moving_pool", o.MovingPool, o.Kinds); err != nil {
		return err
	}
	return validatePool("stationary_pool", o.StationaryPool, o.Kinds)
}

func validatePool(name string, pool []string, kinds map[string]KindConfig) error {
	if len(pool) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, name)
	}
	for _, kind := range pool {
		if _, ok := kinds[kind]; !ok {
			return fmt.Errorf("%w: %s references unknown kind %q", ErrInvalidConfig, name, kind)
		}
	}
	return nil
}
