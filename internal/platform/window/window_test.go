package window

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bike-rush/internal/core"
	"github.com/vovakirdan/bike-rush/internal/games/bikerush"
)

func keysDown(keys ...ebiten.Key) keyPoller {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestPollInput(t *testing.T) {
	tests := []struct {
		name        string
		down        []ebiten.Key
		pressed     []ebiten.Key
		wantHeld    []core.Key
		wantPressed []core.Key
	}{
		{"nothing", nil, nil, nil, nil},
		{"pedal held", []ebiten.Key{ebiten.KeyA}, nil, []core.Key{core.KeyA}, nil},
		{"w steers up", []ebiten.Key{ebiten.KeyW}, nil, []core.Key{core.KeyUp}, nil},
		{"either shift", []ebiten.Key{ebiten.KeyShiftRight}, nil, []core.Key{core.KeyShift}, nil},
		{"upshift edge", []ebiten.Key{ebiten.KeyArrowRight}, []ebiten.Key{ebiten.KeyArrowRight}, []core.Key{core.KeyRight}, []core.Key{core.KeyRight}},
		{"numpad gear", nil, []ebiten.Key{ebiten.KeyNumpad3}, []core.Key{core.Key3}, []core.Key{core.Key3}},
		{"escape pauses", nil, []ebiten.Key{ebiten.KeyEscape}, []core.Key{core.KeyPause}, []core.Key{core.KeyPause}},
		{"unbound ignored", []ebiten.Key{ebiten.KeyZ}, nil, nil, nil},
	}

	for _, tc := range tests {
		in := pollInput(16*time.Millisecond, keysDown(tc.down...), keysDown(tc.pressed...))
		if in.Delta != 16*time.Millisecond {
			t.Errorf("%s: Delta = %v", tc.name, in.Delta)
		}
		if len(in.Held) != len(tc.wantHeld) {
			t.Errorf("%s: held %v, expected %v", tc.name, in.Held, tc.wantHeld)
		}
		for _, k := range tc.wantHeld {
			if !in.IsDown(k) {
				t.Errorf("%s: %v should be held", tc.name, k)
			}
		}
		if len(in.Pressed) != len(tc.wantPressed) {
			t.Errorf("%s: pressed %v, expected %v", tc.name, in.Pressed, tc.wantPressed)
		}
		for _, k := range tc.wantPressed {
			if !in.JustPressed(k) {
				t.Errorf("%s: %v should be just pressed", tc.name, k)
			}
		}
	}
}

func TestTickDelta(t *testing.T) {
	if got := tickDelta(60); got != time.Second/60 {
		t.Errorf("tickDelta(60) = %v", got)
	}
	if got := tickDelta(0); got != time.Second/time.Duration(ebiten.DefaultTPS) {
		t.Errorf("tickDelta(0) = %v, expected the default TPS", got)
	}
}

func TestScroll(t *testing.T) {
	tests := []struct {
		distance, spacing, want float64
	}{
		{0, 80, 0},
		{20, 80, -20},
		{80, 80, 0},
		{170, 80, -10},
	}
	for _, tc := range tests {
		if got := scroll(tc.distance, tc.spacing); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("scroll(%v, %v) = %v, expected %v", tc.distance, tc.spacing, got, tc.want)
		}
	}
}

func TestDialMarker(t *testing.T) {
	tests := []struct {
		angle        float64
		wantX, wantY float64
	}{
		{0, 100, 100 - dialRadius},
		{90, 100 + dialRadius, 100},
		{180, 100, 100 + dialRadius},
		{270, 100 - dialRadius, 100},
	}
	for _, tc := range tests {
		x, y := dialMarker(100, 100, tc.angle)
		if math.Abs(x-tc.wantX) > 1e-9 || math.Abs(y-tc.wantY) > 1e-9 {
			t.Errorf("dialMarker(%v) = (%v, %v), expected (%v, %v)", tc.angle, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestMarkerHalfMatchesZone(t *testing.T) {
	for angle := 5.0; angle < 360; angle += 10 {
		x, _ := dialMarker(0, 0, angle)
		right := x > 0
		if right != (bikerush.ZoneOf(angle) == bikerush.ZoneD) {
			t.Errorf("angle %v: marker on the wrong half for zone %v", angle, bikerush.ZoneOf(angle))
		}
	}
}

func TestZoneColorsLightActiveHalf(t *testing.T) {
	a, d := zoneColors(bikerush.ZoneA)
	if a != rgba(core.ColorBrightRed) || d != rgba(core.ColorDarkGray) {
		t.Error("A zone should light the A half only")
	}
	a, d = zoneColors(bikerush.ZoneD)
	if d != rgba(core.ColorBrightGreen) || a != rgba(core.ColorDarkGray) {
		t.Error("D zone should light the D half only")
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorForest; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("no RGBA for color %d", c)
		}
	}
	if rgba(core.Color(250)) != palette[core.ColorDefault] {
		t.Error("unknown colors should fall back to the default")
	}
}

func TestKindColorsCoverKinds(t *testing.T) {
	for _, k := range []bikerush.Kind{bikerush.KindCone, bikerush.KindRock, bikerush.KindBird, bikerush.KindPedestrian, bikerush.KindCar} {
		if _, ok := kindColors[k]; !ok {
			t.Errorf("no color for %v", k)
		}
	}
}
