package bikerush

import (
	"math"

	"github.com/vovakirdan/bike-rush/internal/config"
	"github.com/vovakirdan/bike-rush/internal/core"
)

// Gear is the active bike gear, 1 (low) to 3 (high).
type Gear int

const (
	GearLow  Gear = 1
	GearMid  Gear = 2
	GearHigh Gear = 3
)

// clampGear keeps a gear within [GearLow, GearHigh].
func clampGear(g Gear) Gear {
	return Gear(core.Clamp(int(g), int(GearLow), int(GearHigh)))
}

// GearTable maps each gear to its pedal rotation multiplier.
// Lower gears spin the pedal faster for the same speed fraction.
type GearTable map[Gear]float64

func newGearTable(cfg config.PedalConfig) GearTable {
	t := make(GearTable, len(cfg.GearMultipliers))
	for g, m := range cfg.GearMultipliers {
		t[Gear(g)] = m
	}
	return t
}

// Multiplier returns the rotation multiplier for g.
func (t GearTable) Multiplier(g Gear) float64 {
	return t[clampGear(g)]
}

// Zone is one half of the pedal dial.
type Zone int

const (
	ZoneD Zone = iota // [0, 180): press D
	ZoneA             // [180, 360): press A
)

// String returns the key that matches the zone.
func (z Zone) String() string {
	if z == ZoneA {
		return "A"
	}
	return "D"
}

// ZoneOf returns the pedal zone containing angle.
func ZoneOf(angle float64) Zone {
	if wrapAngle(angle) >= 180 {
		return ZoneA
	}
	return ZoneD
}

// wrapAngle maps any angle into [0, 360).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// Bike is the player's longitudinal and lateral state.
type Bike struct {
	Speed      float64 // World units per reference frame, in [0, max]
	Y          float64 // Screen y of the bike centre
	VelocityY  float64 // Lateral velocity, positive is down
	PedalAngle float64 // Degrees in [0, 360)
	Gear       Gear
}

// bikePhysics holds the tuning the bike needs every frame.
type bikePhysics struct {
	phys    config.PhysicsConfig
	pedal   config.PedalConfig
	gears   GearTable
	minY    float64
	maxY    float64
	centreY float64
}

func newBikePhysics(cfg config.BikeRushConfig) bikePhysics {
	return bikePhysics{
		phys:    cfg.Physics,
		pedal:   cfg.Pedal,
		gears:   newGearTable(cfg.Pedal),
		minY:    cfg.Field.RoadY + cfg.Bike.RoadInset,
		maxY:    cfg.Field.RoadBottom() - cfg.Bike.RoadInset,
		centreY: cfg.Field.Height / 2,
	}
}

func (p bikePhysics) newBike() Bike {
	return Bike{
		Y:    core.ClampF(p.centreY, p.minY, p.maxY),
		Gear: clampGear(Gear(p.pedal.StartingGear)),
	}
}

// applyDrag decays speed by the drag factor raised to dt.
func (b *Bike) applyDrag(p bikePhysics, dt float64) {
	b.Speed *= math.Pow(p.phys.SpeedDrag, dt)
	if b.Speed < 0 {
		b.Speed = 0
	}
}

// pedal applies one frame of pedal input. Each key is checked against the
// current zone on its own; a wrong press only costs speed when no key was
// correct this frame.
func (b *Bike) pedal(p bikePhysics, a, d bool) {
	zone := ZoneOf(b.PedalAngle)

	correct := false
	if a && zone == ZoneA {
		b.Speed = math.Min(b.Speed+p.phys.Acceleration, p.phys.MaxSpeed)
		correct = true
	}
	if d && zone == ZoneD {
		b.Speed = math.Min(b.Speed+p.phys.Acceleration, p.phys.MaxSpeed)
		correct = true
	}

	if !correct && (a || d) {
		b.Speed = math.Max(0, b.Speed-p.phys.Acceleration*p.phys.WrongPedalFactor)
	}
}

// shift applies gear intents in order: downshift, upshift, direct select.
func (b *Bike) shift(in Intents) {
	if in.Downshift {
		b.Gear = clampGear(b.Gear - 1)
	}
	if in.Upshift {
		b.Gear = clampGear(b.Gear + 1)
	}
	if in.Select != 0 {
		b.Gear = clampGear(in.Select)
	}
}

// moveLateral decays lateral velocity, moves the bike and clamps it to the
// road band. Hitting either edge kills the lateral velocity.
func (b *Bike) moveLateral(p bikePhysics, dt float64) {
	b.VelocityY *= math.Pow(p.phys.LateralDrag, dt)
	b.Y += b.VelocityY

	if b.Y < p.minY {
		b.Y = p.minY
		b.VelocityY = 0
	}
	if b.Y > p.maxY {
		b.Y = p.maxY
		b.VelocityY = 0
	}
}

// advancePedal turns the pedal in proportion to speed and the gear multiplier.
func (b *Bike) advancePedal(p bikePhysics, dt float64) {
	rotation := (b.Speed / p.phys.MaxSpeed) * p.pedal.RotationScale * p.gears.Multiplier(b.Gear)
	b.PedalAngle = wrapAngle(b.PedalAngle + rotation*dt)
}

// clampSpeed keeps speed within [0, max] after external penalties.
func (b *Bike) clampSpeed(p bikePhysics) {
	b.Speed = core.ClampF(b.Speed, 0, p.phys.MaxSpeed)
}
