package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bike-rush/internal/core"
)

// KeyMap defines the key bindings for a ride.
type KeyMap struct {
	PedalA    key.Binding
	PedalD    key.Binding
	SteerUp   key.Binding
	SteerDown key.Binding
	Downshift key.Binding
	Upshift   key.Binding
	Gear1     key.Binding
	Gear2     key.Binding
	Gear3     key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PedalA, k.PedalD, k.SteerUp, k.SteerDown, k.Downshift, k.Upshift, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PedalA, k.PedalD},
		{k.SteerUp, k.SteerDown},
		{k.Downshift, k.Upshift, k.Gear1, k.Gear2, k.Gear3},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PedalA: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "pedal left"),
		),
		PedalD: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("d", "pedal right"),
		),
		SteerUp: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "steer up"),
		),
		SteerDown: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "steer down"),
		),
		Downshift: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "gear down"),
		),
		Upshift: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "gear up"),
		),
		Gear1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "gear 1"),
		),
		Gear2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "gear 2"),
		),
		Gear3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "gear 3"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Lookup translates a key message to the game key it is bound to.
// Returns core.KeyNone for unbound keys.
func (k KeyMap) Lookup(msg tea.KeyMsg) core.Key {
	bindings := []struct {
		b   key.Binding
		key core.Key
	}{
		{k.PedalA, core.KeyA},
		{k.PedalD, core.KeyD},
		{k.SteerUp, core.KeyUp},
		{k.SteerDown, core.KeyDown},
		{k.Downshift, core.KeyLeft},
		{k.Upshift, core.KeyRight},
		{k.Gear1, core.Key1},
		{k.Gear2, core.Key2},
		{k.Gear3, core.Key3},
		{k.Pause, core.KeyPause},
		{k.Restart, core.KeyRestart},
	}
	for _, e := range bindings {
		if key.Matches(msg, e.b) {
			return e.key
		}
	}
	return core.KeyNone
}
