package gui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/games/asteroids"
	"github.com/vovakirdan/astro-arcade/internal/platform/shapes"
)

// Size of one glyph of the debug font in pixels.
const (
	glyphW = 6
	glyphH = 16
)

var (
	background = color.RGBA{8, 8, 20, 255}
	shipColor  = colornames.Lime
	flameColor = colornames.Darkorange
)

// drawWorld renders every entity of snap in draw order.
func drawWorld(screen *ebiten.Image, snap *asteroids.Snapshot) {
	for _, e := range snap.Entities() {
		switch e := e.(type) {
		case asteroids.Particle:
			clr := shapes.Fade(shapes.RGBA(e.Color), e.Fade())
			vector.DrawFilledCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(max(e.Radius, 1.5)), clr, true)

		case asteroids.Powerup:
			if e.Lifetime < 120 && (snap.Tick/8)%2 == 1 {
				continue
			}
			clr := shapes.RGBA(e.Color)
			vector.StrokeCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), 2, clr, true)
			label := strings.ToUpper(e.Type.String()[:1])
			ebitenutil.DebugPrintAt(screen, label, int(e.Pos.X)-glyphW/2, int(e.Pos.Y)-glyphH/2)

		case asteroids.Asteroid:
			clr := shapes.RGBA(shapes.AsteroidColor(e.Size))
			for _, dx := range shapes.WrapOffsets(e.Pos.X, e.Radius, snap.Width) {
				for _, dy := range shapes.WrapOffsets(e.Pos.Y, e.Radius, snap.Height) {
					strokePolygon(screen, shapes.Polygon(e.Pos.Add(core.V(dx, dy)), e.Outline), clr)
				}
			}

		case asteroids.Bullet:
			clr := colornames.White
			if e.Spread() {
				clr = shapes.RGBA(e.Color)
			}
			vector.DrawFilledCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), clr, true)

		case asteroids.Ship:
			drawShip(screen, e, snap.Tick)
		}
	}
}

func drawShip(screen *ebiten.Image, s asteroids.Ship, tick uint64) {
	if s.Flicker() {
		return
	}
	hull := shapes.ShipHull(s.Pos, s.Rotation, s.Radius)
	strokePolygon(screen, hull[:], shipColor)
	if s.Thrusting {
		f := shapes.Flame(s.Pos, s.Rotation, s.Radius, tick)
		vector.StrokeLine(screen, float32(f[0].X), float32(f[0].Y), float32(f[1].X), float32(f[1].Y), 2, flameColor, true)
	}
}

func strokePolygon(screen *ebiten.Image, pts []core.Vec2, clr color.Color) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), 1.5, clr, true)
	}
}

func drawHUD(screen *ebiten.Image, hud asteroids.HUD) {
	line := fmt.Sprintf("SCORE %-7d LIVES %d   WAVE %d", hud.Score, hud.Lives, hud.Wave)
	if hud.Ammo > 0 {
		line += fmt.Sprintf("   SPREAD %d", hud.Ammo)
	}
	ebitenutil.DebugPrintAt(screen, line, 8, 6)
}

// drawCentered prints lines centered on screen starting at row y.
func drawCentered(screen *ebiten.Image, y int, lines ...string) {
	w := screen.Bounds().Dx()
	for i, l := range lines {
		x := (w - len([]rune(l))*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, l, x, y+i*glyphH)
	}
}
