package bikerush

import (
	"math"

	"github.com/vovakirdan/bike-rush/internal/core"
)

// Terminal glyphs
const (
	GrassChar    = '░'
	EdgeChar     = '═'
	MarkingChar  = '─'
	TreeChar     = '♣'
	FinishChar   = '▓'
	BikeChar     = '◉'
	BikeBodyChar = '═'
)

// Scenery spacing in world units.
const (
	markingSpacing = 80
	markingLength  = 40
	treeSpacing    = 260
)

var kindGlyphs = map[Kind]struct {
	r rune
	c core.Color
}{
	KindCone:       {'▲', core.ColorOrange},
	KindRock:       {'●', core.ColorGray},
	KindBird:       {'v', core.ColorBrown},
	KindPedestrian: {'☺', core.ColorBrightYellow},
	KindCar:        {'█', core.ColorRed},
}

// dialArrows point from the dial centre toward the pedal, clockwise from up.
var dialArrows = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// projection maps world coordinates onto terminal cells.
type projection struct {
	sx, sy float64
}

func newProjection(v View, dst *core.Screen) projection {
	return projection{
		sx: float64(dst.Width()) / v.FieldW,
		sy: float64(dst.Height()) / v.FieldH,
	}
}

func (p projection) col(x float64) int { return int(math.Floor(x * p.sx)) }
func (p projection) row(y float64) int { return int(math.Floor(y * p.sy)) }

// cells returns how many cells a world length spans, at least one.
func (p projection) cells(length, scale float64) int {
	return core.Max(1, int(math.Round(length*scale)))
}

// Render draws the scene scaled to the terminal.
func (g *Game) Render(dst *core.Screen) {
	v := g.Snapshot()
	dst.Clear()
	p := newProjection(v, dst)

	drawRoad(dst, p, v)
	if v.FinishVisible {
		drawFinish(dst, p, v)
	}
	for _, o := range v.Obstacles {
		drawObstacle(dst, p, o)
	}
	drawBike(dst, p, v.Bike)
	drawHUD(dst, v.HUD)

	if v.Banner.Visible {
		drawBanner(dst, v.Banner)
	}
}

func drawRoad(dst *core.Screen, p projection, v View) {
	top := p.row(v.RoadY)
	bottom := p.row(v.RoadY + v.RoadH)

	for y := 1; y < dst.Height(); y++ {
		if y < top || y > bottom {
			dst.DrawHLine(0, y, dst.Width(), GrassChar, core.ColorForest)
		}
	}
	dst.DrawHLine(0, top, dst.Width(), EdgeChar, core.ColorWhite)
	dst.DrawHLine(0, bottom, dst.Width(), EdgeChar, core.ColorWhite)

	// Centre markings scroll with distance
	mid := p.row(v.RoadY + v.RoadH/2)
	shift := math.Mod(v.Distance, markingSpacing)
	for x := -shift; x < v.FieldW; x += markingSpacing {
		start := p.col(math.Max(x, 0))
		end := p.col(math.Min(x+markingLength, v.FieldW))
		for c := start; c < end; c++ {
			dst.SetColored(c, mid, MarkingChar, core.ColorYellow)
		}
	}

	// Roadside trees, one row above and below the road
	shift = math.Mod(v.Distance, treeSpacing)
	for x := -shift; x < v.FieldW; x += treeSpacing {
		c := p.col(x)
		if top > 1 {
			dst.SetColored(c, top-1, TreeChar, core.ColorGreen)
		}
		if bottom+1 < dst.Height() {
			dst.SetColored(c+2, bottom+1, TreeChar, core.ColorGreen)
		}
	}
}

func drawFinish(dst *core.Screen, p projection, v View) {
	x := p.col(v.FinishX)
	top := p.row(v.RoadY) + 1
	bottom := p.row(v.RoadY + v.RoadH)
	for y := top; y < bottom; y++ {
		c := core.ColorBrightWhite
		if y%2 == 0 {
			c = core.ColorDarkGray
		}
		dst.SetColored(x, y, FinishChar, c)
	}
}

func drawObstacle(dst *core.Screen, p projection, o ObstacleView) {
	glyph, ok := kindGlyphs[o.Kind]
	if !ok {
		return
	}
	cx, cy := o.Bounds.Center()
	y := p.row(cy)

	if o.Kind == KindCar {
		w := p.cells(o.Bounds.W, p.sx)
		x := p.col(o.Bounds.X)
		dst.DrawHLine(x, y, w, glyph.r, glyph.c)
		return
	}
	dst.SetColored(p.col(cx), y, glyph.r, glyph.c)
}

func drawBike(dst *core.Screen, p projection, b BikeView) {
	cx, cy := b.Bounds.Center()
	x := p.col(cx)
	y := p.row(cy)

	dst.SetColored(x-1, y, BikeChar, core.ColorBrightCyan)
	dst.SetColored(x, y, BikeBodyChar, core.ColorBrightCyan)
	dst.SetColored(x+1, y, BikeChar, core.ColorBrightCyan)

	drawDial(dst, x, y-2, b)
}

// drawDial draws "A<arrow>D" with the active zone lit.
func drawDial(dst *core.Screen, x, y int, b BikeView) {
	if y < 1 {
		y = 1
	}
	aColor, dColor := core.ColorDarkGray, core.ColorDarkGray
	if b.Zone == ZoneA {
		aColor = core.ColorBrightRed
	} else {
		dColor = core.ColorBrightGreen
	}
	dst.SetColored(x-1, y, 'A', aColor)
	dst.SetColored(x, y, dialArrow(b.PedalAngle), core.ColorOrange)
	dst.SetColored(x+1, y, 'D', dColor)
}

func dialArrow(angle float64) rune {
	i := int(math.Floor((wrapAngle(angle)+22.5)/45)) % len(dialArrows)
	return dialArrows[i]
}

func drawHUD(dst *core.Screen, h HUD) {
	x := 1
	for _, part := range []struct {
		text string
		c    core.Color
	}{
		{h.Time, core.ColorBrightWhite},
		{h.Speed, core.ColorWhite},
		{h.Gear, core.ColorBrightYellow},
		{h.Distance, core.ColorBrightGreen},
	} {
		dst.DrawTextColored(x, 0, part.text, part.c)
		x += len(part.text) + 3
	}
}

// drawBanner draws a message box in the center of the screen.
func drawBanner(dst *core.Screen, b Banner) {
	lines := []string{b.Title}
	if b.Subtitle != "" {
		lines = append(lines, b.Subtitle)
	}
	lines = append(lines, b.Hint)

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, b.Color)

	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = b.Color
		}
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+1+i*2, l, c)
	}
}
