package core

import "time"

// Key is a physical key the game cares about, abstracted from any host's key codes.
type Key int

const (
	KeyNone  Key = iota
	KeyA         // Pedal, left zone
	KeyD         // Pedal, right zone
	KeyLeft      // Downshift
	KeyRight     // Upshift
	KeyUp        // Steer toward the top of the road
	KeyDown      // Steer toward the bottom of the road
	KeyShift     // Polled, currently unbound
	Key1         // Direct gear select
	Key2
	Key3
	KeyRestart // R, accepted only after the level ended
	KeyPause   // P or Escape
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyShift:
		return "Shift"
	case Key1:
		return "1"
	case Key2:
		return "2"
	case Key3:
		return "3"
	case KeyRestart:
		return "R"
	case KeyPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the host reports for one frame: how much time
// passed since the previous frame, which keys are down, and which keys
// went down during this frame.
type InputFrame struct {
	Delta   time.Duration
	Held    map[Key]bool
	Pressed map[Key]bool
}

// NewInputFrame creates an empty input frame for the given frame delta.
func NewInputFrame(delta time.Duration) InputFrame {
	return InputFrame{
		Delta:   delta,
		Held:    make(map[Key]bool),
		Pressed: make(map[Key]bool),
	}
}

// Hold marks a key as currently down.
func (f *InputFrame) Hold(k Key) {
	if f.Held == nil {
		f.Held = make(map[Key]bool)
	}
	f.Held[k] = true
}

// Press marks a key as newly pressed this frame. A pressed key is also held.
func (f *InputFrame) Press(k Key) {
	if f.Pressed == nil {
		f.Pressed = make(map[Key]bool)
	}
	f.Pressed[k] = true
	f.Hold(k)
}

// IsDown returns true if the key is held this frame.
func (f InputFrame) IsDown(k Key) bool {
	return f.Held[k]
}

// JustPressed returns true if the key went down during this frame.
func (f InputFrame) JustPressed(k Key) bool {
	return f.Pressed[k]
}

// DeltaMillis returns the frame delta in milliseconds.
func (f InputFrame) DeltaMillis() float64 {
	return float64(f.Delta) / float64(time.Millisecond)
}

// Clear resets all key state for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Held)
	clear(f.Pressed)
	f.Delta = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame(f.Delta)
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	return clone
}
