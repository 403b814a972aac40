package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bike-rush/internal/config"
	"github.com/vovakirdan/bike-rush/internal/core"
	"github.com/vovakirdan/bike-rush/internal/games/bikerush"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapLookup(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"a", runes("a"), core.KeyA},
		{"upper D", runes("D"), core.KeyD},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"w", runes("w"), core.KeyUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{"digit", runes("2"), core.Key2},
		{"pause", runes("p"), core.KeyPause},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyPause},
		{"restart", runes("r"), core.KeyRestart},
		{"unbound", runes("x"), core.KeyNone},
		{"quit is not a game key", runes("q"), core.KeyNone},
	}

	for _, tc := range tests {
		if got := km.Lookup(tc.msg); got != tc.want {
			t.Errorf("%s: Lookup() = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestHoldTrackerEdgesAndHolds(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Observe(core.KeyA, t0)
	in := h.Frame(t0.Add(10*time.Millisecond), 16*time.Millisecond)
	if !in.JustPressed(core.KeyA) || !in.IsDown(core.KeyA) {
		t.Fatal("first press should be an edge and held")
	}
	if in.Delta != 16*time.Millisecond {
		t.Errorf("Delta = %v", in.Delta)
	}

	// Auto-repeat inside the window keeps the key down without a new edge
	h.Observe(core.KeyA, t0.Add(50*time.Millisecond))
	in = h.Frame(t0.Add(60*time.Millisecond), 16*time.Millisecond)
	if in.JustPressed(core.KeyA) {
		t.Error("repeat inside the window should not be an edge")
	}
	if !in.IsDown(core.KeyA) {
		t.Error("key should still be held")
	}

	// No repeat for longer than the window: released
	in = h.Frame(t0.Add(200*time.Millisecond), 16*time.Millisecond)
	if in.IsDown(core.KeyA) {
		t.Error("key should be released after the hold window")
	}

	// Pressing again after release is a new edge
	h.Observe(core.KeyA, t0.Add(300*time.Millisecond))
	in = h.Frame(t0.Add(301*time.Millisecond), 16*time.Millisecond)
	if !in.JustPressed(core.KeyA) {
		t.Error("press after release should be an edge")
	}
}

func TestHoldTrackerEdgeSurvivesLateFrame(t *testing.T) {
	h := NewHoldTracker(50 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Observe(core.KeyRight, t0)
	in := h.Frame(t0.Add(500*time.Millisecond), 16*time.Millisecond)
	if !in.JustPressed(core.KeyRight) {
		t.Error("a tap between frames must still reach the game")
	}
	if next := h.Frame(t0.Add(516*time.Millisecond), 16*time.Millisecond); next.JustPressed(core.KeyRight) {
		t.Error("edges are consumed by the frame that reports them")
	}
}

func TestHoldTrackerDefaultWindow(t *testing.T) {
	if h := NewHoldTracker(0); h.window != DefaultHoldWindow {
		t.Errorf("window = %v, expected default", h.window)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	g, err := bikerush.New(config.DefaultBikeRushConfig())
	if err != nil {
		t.Fatalf("bikerush.New() failed: %v", err)
	}
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, Options{})
}

func TestModelTickAdvancesLevel(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(5000, 0)

	next, cmd := m.Update(TickMsg(t0))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m = next.(Model)
	first := m.game.Level().Elapsed
	if first <= 0 {
		t.Fatalf("first tick should use the nominal frame time, elapsed = %v", first)
	}

	next, _ = m.Update(TickMsg(t0.Add(20 * time.Millisecond)))
	m = next.(Model)
	if got := m.game.Level().Elapsed - first; math.Abs(got-20) > 1e-9 {
		t.Errorf("second tick advanced %vms, expected the measured 20ms", got)
	}

	// Stalls are capped
	next, _ = m.Update(TickMsg(t0.Add(5 * time.Second)))
	m = next.(Model)
	if got := m.game.Level().Elapsed - first - 20; math.Abs(got-100) > 1e-9 {
		t.Errorf("stalled tick advanced %vms, expected the cap", got)
	}
}

func TestModelKeysReachGame(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Now()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	next, _ = m.Update(TickMsg(t0))
	m = next.(Model)

	if got := m.game.Bike().Gear; got != bikerush.GearMid {
		t.Errorf("Right should upshift through the model, gear = %d", got)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(runes("p"))
	m = next.(Model)
	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)

	if !m.gameState.Paused {
		t.Error("p should pause the ride")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(runes("q"))
	m = next.(Model)
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsLevel(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(0, 0)
	for i := 0; i < 5; i++ {
		next, _ := m.Update(TickMsg(t0.Add(time.Duration(i) * 16 * time.Millisecond)))
		m = next.(Model)
	}
	elapsed := m.game.Level().Elapsed

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if m.game.Level().Elapsed != elapsed {
		t.Error("resize should not reset the level")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	if !strings.Contains(out, "Time: 60.0s") {
		t.Error("view should contain the HUD")
	}
	if !strings.Contains(out, "pedal left") {
		t.Error("view should contain the help footer")
	}
}

func TestRenderScreenGroupsColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorForest)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("rendered output lost text: %q", out)
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorForest; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
