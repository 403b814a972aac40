package window

import (
	"image/color"
	"math"

	"github.com/vovakirdan/bike-rush/internal/core"
	"github.com/vovakirdan/bike-rush/internal/games/bikerush"
)

// palette maps the cell colors shared with the terminal renderer to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {220, 220, 220, 255},
	core.ColorRed:          {200, 40, 40, 255},
	core.ColorGreen:        {60, 170, 60, 255},
	core.ColorYellow:       {230, 200, 40, 255},
	core.ColorBlue:         {50, 90, 200, 255},
	core.ColorMagenta:      {190, 60, 190, 255},
	core.ColorCyan:         {40, 180, 200, 255},
	core.ColorWhite:        {230, 230, 230, 255},
	core.ColorBrightRed:    {255, 80, 80, 255},
	core.ColorBrightGreen:  {90, 240, 110, 255},
	core.ColorBrightYellow: {255, 235, 90, 255},
	core.ColorBrightBlue:   {100, 150, 255, 255},
	core.ColorBrightCyan:   {110, 230, 255, 255},
	core.ColorBrightWhite:  {255, 255, 255, 255},
	core.ColorOrange:       {255, 140, 20, 255},
	core.ColorGray:         {140, 140, 140, 255},
	core.ColorDarkGray:     {60, 60, 66, 255},
	core.ColorBrown:        {130, 85, 45, 255},
	core.ColorSkyBlue:      {135, 200, 235, 255},
	core.ColorForest:       {30, 90, 40, 255},
}

// rgba returns the RGBA for c, falling back to the default color.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// kindColors matches the terminal glyph colors so both hosts read the same.
var kindColors = map[bikerush.Kind]core.Color{
	bikerush.KindCone:       core.ColorOrange,
	bikerush.KindRock:       core.ColorGray,
	bikerush.KindBird:       core.ColorBrown,
	bikerush.KindPedestrian: core.ColorBrightYellow,
	bikerush.KindCar:        core.ColorRed,
}

func kindColor(k bikerush.Kind) color.RGBA {
	if c, ok := kindColors[k]; ok {
		return rgba(c)
	}
	return rgba(core.ColorMagenta)
}

// Scenery spacing in world units.
const (
	dashSpacing = 80.0
	dashLength  = 40.0
	treeSpacing = 160.0
)

// scroll returns the first position of a pattern repeating every spacing
// units after the world has moved by distance. The result is in (-spacing, 0].
func scroll(distance, spacing float64) float64 {
	off := math.Mod(distance, spacing)
	if off < 0 {
		off += spacing
	}
	if off == 0 {
		return 0
	}
	return -off
}

// dialRadius is the pedal dial's radius in pixels.
const dialRadius = 14.0

// dialMarker returns the end of the pedal marker for a dial centered at
// (cx, cy). Angle 0 points up and grows clockwise, so the D zone is the
// right half of the dial and the A zone the left.
func dialMarker(cx, cy, angle float64) (float64, float64) {
	rad := angle * math.Pi / 180
	return cx + dialRadius*math.Sin(rad), cy - dialRadius*math.Cos(rad)
}

// zoneColors returns the dial colors for the A and D halves; the active half is lit.
func zoneColors(z bikerush.Zone) (a, d color.RGBA) {
	a, d = rgba(core.ColorDarkGray), rgba(core.ColorDarkGray)
	if z == bikerush.ZoneA {
		a = rgba(core.ColorBrightRed)
	} else {
		d = rgba(core.ColorBrightGreen)
	}
	return a, d
}
