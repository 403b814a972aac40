package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bike-rush/internal/core"
)

// keyTable lists the physical keys behind each game key.
var keyTable = []struct {
	key  core.Key
	keys []ebiten.Key
}{
	{core.KeyA, []ebiten.Key{ebiten.KeyA}},
	{core.KeyD, []ebiten.Key{ebiten.KeyD}},
	{core.KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft}},
	{core.KeyRight, []ebiten.Key{ebiten.KeyArrowRight}},
	{core.KeyUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.KeyDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.KeyShift, []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
	{core.Key1, []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1}},
	{core.Key2, []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}},
	{core.Key3, []ebiten.Key{ebiten.KeyDigit3, ebiten.KeyNumpad3}},
	{core.KeyRestart, []ebiten.Key{ebiten.KeyR}},
	{core.KeyPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
}

// quitKey closes the window.
const quitKey = ebiten.KeyQ

// keyPoller reports the state of one physical key.
type keyPoller func(ebiten.Key) bool

// pollInput builds one frame of input. down reports held keys and
// pressed reports keys that went down this tick.
func pollInput(delta time.Duration, down, pressed keyPoller) core.InputFrame {
	in := core.NewInputFrame(delta)
	for _, e := range keyTable {
		for _, k := range e.keys {
			if down(k) {
				in.Hold(e.key)
			}
			if pressed(k) {
				in.Press(e.key)
			}
		}
	}
	return in
}

// tickDelta is the simulated time of one ebiten tick.
func tickDelta(tps int) time.Duration {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}
