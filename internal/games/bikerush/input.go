package bikerush

import (
	"math"

	"github.com/vovakirdan/bike-rush/internal/config"
	"github.com/vovakirdan/bike-rush/internal/core"
)

// Intents are the gameplay actions derived from one frame of key state.
type Intents struct {
	Steer     float64 // Lateral velocity to add, positive is down
	PedalA    bool
	PedalD    bool
	Downshift bool
	Upshift   bool
	Select    Gear // Direct gear selection, 0 when none fired
}

var selectKeys = [...]struct {
	key  core.Key
	gear Gear
}{
	{core.Key1, GearLow},
	{core.Key2, GearMid},
	{core.Key3, GearHigh},
}

// InputMapper turns raw key state into Intents. It keeps its own clock so
// that held digit keys repeat at most once per repeat window.
type InputMapper struct {
	turnSpeed float64
	repeatMS  float64
	clock     float64
	wasDown   [len(selectKeys)]bool
	lastFire  [len(selectKeys)]float64
}

// NewInputMapper creates a mapper from the level tuning.
func NewInputMapper(cfg config.BikeRushConfig) InputMapper {
	m := InputMapper{
		turnSpeed: cfg.Physics.TurnSpeed,
		repeatMS:  cfg.Pedal.DirectSelectRepeatMS,
	}
	m.Reset()
	return m
}

// Reset forgets held digit keys and restarts the repeat clock.
func (m *InputMapper) Reset() {
	m.clock = 0
	for i := range m.lastFire {
		m.wasDown[i] = false
		m.lastFire[i] = math.Inf(-1)
	}
}

// Map reads one input frame. It must be called exactly once per simulated frame.
func (m *InputMapper) Map(in core.InputFrame) Intents {
	m.clock += in.DeltaMillis()

	var out Intents
	if in.IsDown(core.KeyUp) {
		out.Steer -= m.turnSpeed
	}
	if in.IsDown(core.KeyDown) {
		out.Steer += m.turnSpeed
	}

	out.PedalA = in.IsDown(core.KeyA)
	out.PedalD = in.IsDown(core.KeyD)

	out.Downshift = in.JustPressed(core.KeyLeft)
	out.Upshift = in.JustPressed(core.KeyRight)

	for i, sk := range selectKeys {
		down := in.IsDown(sk.key)
		if down && (!m.wasDown[i] || m.clock-m.lastFire[i] >= m.repeatMS) {
			m.lastFire[i] = m.clock
			out.Select = sk.gear
		}
		m.wasDown[i] = down
	}

	return out
}
