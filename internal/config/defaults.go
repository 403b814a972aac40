package config

import (
	_ "embed"
)

//go:embed defaults/bikerush.yaml
var defaultBikeRushYAML []byte

// DefaultBikeRushConfig returns the built-in level tuning.
// It must stay identical to the embedded defaults/bikerush.yaml.
func DefaultBikeRushConfig() BikeRushConfig {
	return BikeRushConfig{
		Field: FieldConfig{
			Width:           1200,
			Height:          700,
			RoadY:           150,
			RoadHeight:      400,
			OffscreenMargin: 100,
		},
		Bike: BikeConfig{
			X:         100,
			Width:     30,
			Height:    24,
			RoadInset: 20,
		},
		Physics: PhysicsConfig{
			MaxSpeed:         150,
			Acceleration:     0.1,
			WrongPedalFactor: 0.5,
			SpeedDrag:        0.995,
			LateralDrag:      0.6,
			TurnSpeed:        2.5,
			FrameUnitMS:      16,
		},
		Pedal: PedalConfig{
			RotationScale:        20,
			GearMultipliers:      map[int]float64{1: 3, 2: 2, 3: 1},
			StartingGear:         1,
			DirectSelectRepeatMS: 100,
		},
		Level: LevelConfig{
			DurationMS:     60000,
			TargetDistance: 10000,
		},
		Obstacles: ObstaclesConfig{
			LookAhead:           950,
			ParallaxOffset:      150,
			VerticalInset:       20,
			PedestrianEdgeInset: 10,
			FirstMovingSpawnMS:  500,
			MovingSpawnMinMS:    307,
			MovingSpawnMaxMS:    627,
			StationaryInterval:  1000,
			MovingPool:          []string{KindCar, KindBird, KindBird},
			StationaryPool:      []string{KindCone, KindRock, KindPedestrian},
			CarSpeed:            5,
			PedestrianSpeed:     1,
			BirdSpeed:           3,
			SlowFactor:          0.6,
			SlowHeavyFactor:     0.3,
			Kinds: map[string]KindConfig{
				KindCone:       {Damage: DamageSlow, Width: 30, Height: 32},
				KindBird:       {Damage: DamageSlow, Width: 30, Height: 28},
				KindPedestrian: {Damage: DamageSlowHeavy, Width: 30, Height: 32},
				KindRock:       {Damage: DamageCrash, Width: 32, Height: 32},
				KindCar:        {Damage: DamageCrash, Width: 32, Height: 40},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, suitable for writing
// out as a starting point for a custom config.
func DefaultYAML() []byte {
	return defaultBikeRushYAML
}
