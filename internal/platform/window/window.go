// Package window runs a ride in a desktop window with Ebitengine.
// Unlike a terminal, the window reports real key-down state, so the game
// sees true holds and releases.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bike-rush/internal/core"
	"github.com/vovakirdan/bike-rush/internal/games/bikerush"
)

// Options tune the window host.
type Options struct {
	Scale  float64     // Window size relative to the field, 0 means 1
	Logger *log.Logger // nil logs to stderr
}

// Game adapts a ride to ebiten.Game.
type Game struct {
	game   *bikerush.Game
	delta  time.Duration
	face   text.Face
	logger *log.Logger
	state  core.GameState
}

// NewGame creates the ebiten adapter and starts a level.
func NewGame(game *bikerush.Game, cfg core.RuntimeConfig, opts Options) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "window", ReportTimestamp: true})
	}

	game.Reset(cfg)
	logger.Info("ride started", "seed", cfg.Seed, "tps", cfg.TickRate)

	return &Game{
		game:   game,
		delta:  tickDelta(cfg.TickRate),
		face:   text.NewGoXFace(bitmapfont.Face),
		logger: logger,
		state:  game.State(),
	}
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(quitKey) {
		g.logger.Info("ride quit", "distance", g.game.Level().Distance)
		return ebiten.Termination
	}

	in := pollInput(g.delta, ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	prev := g.state
	g.state = g.game.Step(in).State
	g.logTransition(prev, g.state)
	return nil
}

func (g *Game) logTransition(prev, cur core.GameState) {
	switch {
	case !prev.GameOver && cur.GameOver:
		l := g.game.Level()
		g.logger.Info("level ended",
			"status", l.Status,
			"reason", l.Reason,
			"elapsed", time.Duration(l.Elapsed)*time.Millisecond,
			"distance", l.Distance,
		)
	case prev.GameOver && !cur.GameOver:
		g.logger.Info("level restarted")
	case prev.Paused != cur.Paused:
		g.logger.Debug("pause toggled", "paused", cur.Paused)
	}
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	v := g.game.Snapshot()

	screen.Fill(rgba(core.ColorForest))
	drawRoad(screen, v)
	if v.FinishVisible {
		drawFinish(screen, v)
	}
	for _, o := range v.Obstacles {
		drawObstacle(screen, o)
	}
	drawBike(screen, v.Bike)
	g.drawHUD(screen, v.HUD)
	if v.Banner.Visible {
		g.drawBanner(screen, v)
	}
}

// Layout keeps the logical screen at the field size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.game.Config().Field
	return int(f.Width), int(f.Height)
}

func fillRect(dst *ebiten.Image, r core.RectF, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func drawRoad(dst *ebiten.Image, v bikerush.View) {
	fillRect(dst, core.RectF{X: 0, Y: v.RoadY, W: v.FieldW, H: v.RoadH}, rgba(core.ColorDarkGray))

	edge := rgba(core.ColorWhite)
	fillRect(dst, core.RectF{X: 0, Y: v.RoadY - 3, W: v.FieldW, H: 3}, edge)
	fillRect(dst, core.RectF{X: 0, Y: v.RoadY + v.RoadH, W: v.FieldW, H: 3}, edge)

	mid := v.RoadY + v.RoadH/2
	for x := scroll(v.Distance, dashSpacing); x < v.FieldW; x += dashSpacing {
		fillRect(dst, core.RectF{X: x, Y: mid - 2, W: dashLength, H: 4}, rgba(core.ColorYellow))
	}

	for x := scroll(v.Distance, treeSpacing); x < v.FieldW+treeSpacing; x += treeSpacing {
		drawTree(dst, x+20, v.RoadY-40)
		drawTree(dst, x+100, v.RoadY+v.RoadH+40)
	}
}

func drawTree(dst *ebiten.Image, x, y float64) {
	fillRect(dst, core.RectF{X: x - 3, Y: y, W: 6, H: 16}, rgba(core.ColorBrown))
	vector.DrawFilledCircle(dst, float32(x), float32(y), 16, rgba(core.ColorGreen), true)
}

// drawFinish draws a two-column checkered strip across the road.
func drawFinish(dst *ebiten.Image, v bikerush.View) {
	const square = 10.0
	row := 0
	for y := v.RoadY; y < v.RoadY+v.RoadH; y += square {
		for col := range 2 {
			c := rgba(core.ColorBrightWhite)
			if (row+col)%2 == 1 {
				c = color.RGBA{20, 20, 20, 255}
			}
			fillRect(dst, core.RectF{X: v.FinishX + float64(col)*square, Y: y, W: square, H: square}, c)
		}
		row++
	}
}

func drawObstacle(dst *ebiten.Image, o bikerush.ObstacleView) {
	b := o.Bounds
	c := kindColor(o.Kind)
	cx, cy := b.X+b.W/2, b.Y+b.H/2

	switch o.Kind {
	case bikerush.KindCone:
		// Stacked bands narrowing toward the tip
		const bands = 4
		h := b.H / bands
		for i := range bands {
			w := b.W * float64(i+1) / bands
			fillRect(dst, core.RectF{X: cx - w/2, Y: b.Y + float64(i)*h, W: w, H: h}, c)
		}
	case bikerush.KindRock, bikerush.KindBird:
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(min(b.W, b.H)/2), c, true)
	default:
		fillRect(dst, b, c)
	}
}

func drawBike(dst *ebiten.Image, b bikerush.BikeView) {
	r := b.Bounds
	body := rgba(core.ColorBrightCyan)
	fillRect(dst, core.RectF{X: r.X, Y: r.Y + r.H/3, W: r.W, H: r.H / 3}, body)
	wheel := float32(r.H / 3)
	vector.StrokeCircle(dst, float32(r.X+float64(wheel)), float32(r.Y+r.H/2), wheel, 2, body, true)
	vector.StrokeCircle(dst, float32(r.X+r.W-float64(wheel)), float32(r.Y+r.H/2), wheel, 2, body, true)

	cx, cy := r.X+r.W/2, r.Y-dialRadius-6
	a, d := zoneColors(b.Zone)
	// Left half is the A zone, right half the D zone
	vector.DrawFilledRect(dst, float32(cx-dialRadius), float32(cy-dialRadius), dialRadius, 2*dialRadius, a, false)
	vector.DrawFilledRect(dst, float32(cx), float32(cy-dialRadius), dialRadius, 2*dialRadius, d, false)
	vector.StrokeCircle(dst, float32(cx), float32(cy), dialRadius, 2, rgba(core.ColorWhite), true)
	mx, my := dialMarker(cx, cy, b.PedalAngle)
	vector.StrokeLine(dst, float32(cx), float32(cy), float32(mx), float32(my), 3, rgba(core.ColorOrange), true)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, g.face, op)
}

func (g *Game) drawCentered(dst *ebiten.Image, s string, cx, y, scale float64, c color.Color) {
	w := text.Advance(s, g.face) * scale
	g.drawText(dst, s, cx-w/2, y, scale, c)
}

func (g *Game) drawHUD(dst *ebiten.Image, h bikerush.HUD) {
	const scale = 2.0
	lines := []string{h.Time, h.Speed, h.Gear, h.Distance}
	for i, s := range lines {
		g.drawText(dst, s, 12, 10+float64(i)*28, scale, rgba(core.ColorBrightWhite))
	}
}

func (g *Game) drawBanner(dst *ebiten.Image, v bikerush.View) {
	b := v.Banner
	cx, cy := v.FieldW/2, v.FieldH/2
	panel := core.CenteredRectF(cx, cy, 560, 200)
	vector.DrawFilledRect(dst, float32(panel.X), float32(panel.Y), float32(panel.W), float32(panel.H), color.RGBA{0, 0, 0, 200}, false)
	vector.StrokeRect(dst, float32(panel.X), float32(panel.Y), float32(panel.W), float32(panel.H), 3, rgba(b.Color), false)

	g.drawCentered(dst, b.Title, cx, panel.Y+30, 4, rgba(b.Color))
	if b.Subtitle != "" {
		g.drawCentered(dst, b.Subtitle, cx, panel.Y+100, 2, rgba(core.ColorWhite))
	}
	g.drawCentered(dst, b.Hint, cx, panel.Y+145, 2, rgba(core.ColorGray))
}

// Run opens the window and blocks until it is closed.
func Run(game *bikerush.Game, cfg core.RuntimeConfig, opts Options) error {
	g := NewGame(game, cfg, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	f := game.Config().Field
	ebiten.SetWindowSize(int(f.Width*scale), int(f.Height*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(int(time.Second / g.delta))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window ride failed: %w", err)
	}
	return nil
}
