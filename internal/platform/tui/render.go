package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/games/asteroids"
	"github.com/vovakirdan/astro-arcade/internal/platform/shapes"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells of one color share a single escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hudRows is the number of terminal rows above the playfield.
const hudRows = 1

// Ship glyphs by heading, clockwise from east in 45 degree steps.
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Renderer draws snapshots onto a character grid.
// World units map to cells through a fixed cell size.
type Renderer struct {
	screen *core.Screen
	cellW  float64
	cellH  float64
}

// NewRenderer creates a renderer for a terminal of cols x rows.
func NewRenderer(cols, rows int, cellW, cellH float64) *Renderer {
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	return &Renderer{
		screen: core.NewScreen(max(cols, 1), max(rows, hudRows+1)),
		cellW:  cellW,
		cellH:  cellH,
	}
}

// Resize adapts the grid to a new terminal size.
func (r *Renderer) Resize(cols, rows int) {
	r.screen.Resize(max(cols, 1), max(rows, hudRows+1))
}

// Screen returns the grid the last Draw filled.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// WorldSize returns the world bounds that fill the playfield.
func (r *Renderer) WorldSize() (width, height float64) {
	return float64(r.screen.Width()) * r.cellW, float64(r.screen.Height()-hudRows) * r.cellH
}

// Cell maps a world position to its grid cell.
func (r *Renderer) Cell(p core.Vec2) (x, y int) {
	return int(math.Floor(p.X / r.cellW)), hudRows + int(math.Floor(p.Y/r.cellH))
}

// Draw renders the playfield of snap under the hud counters.
// banner, when not empty, is centered near the top of the playfield.
func (r *Renderer) Draw(snap *asteroids.Snapshot, hud asteroids.HUD, banner string) *core.Screen {
	r.screen.Clear()

	for _, e := range snap.Entities() {
		switch e := e.(type) {
		case asteroids.Particle:
			r.drawParticle(e)
		case asteroids.Powerup:
			r.drawPowerup(e, snap.Tick)
		case asteroids.Asteroid:
			r.drawAsteroid(e, snap.Width, snap.Height)
		case asteroids.Bullet:
			r.drawBullet(e)
		case asteroids.Ship:
			r.drawShip(e)
		}
	}

	r.drawHUD(hud)
	if banner != "" {
		r.drawBanner(banner)
	}
	return r.screen
}

func (r *Renderer) drawParticle(p asteroids.Particle) {
	glyph := '.'
	if p.Fade() > 0.5 {
		glyph = '*'
	}
	x, y := r.Cell(p.Pos)
	r.screen.SetColored(x, y, glyph, p.Color)
}

func (r *Renderer) drawPowerup(p asteroids.Powerup, tick uint64) {
	// Blink during the last two seconds.
	if p.Lifetime < 120 && (tick/8)%2 == 1 {
		return
	}
	x, y := r.Cell(p.Pos)
	r.screen.SetColored(x, y, p.Type.Glyph(), p.Color)
}

// drawAsteroid traces the outline. Rocks straddling an edge are drawn again
// on the opposite side so the wrap looks seamless.
func (r *Renderer) drawAsteroid(a asteroids.Asteroid, width, height float64) {
	color := shapes.AsteroidColor(a.Size)
	for _, dx := range shapes.WrapOffsets(a.Pos.X, a.Radius, width) {
		for _, dy := range shapes.WrapOffsets(a.Pos.Y, a.Radius, height) {
			r.traceOutline(a.Pos.Add(core.V(dx, dy)), a.Outline, color)
		}
	}
}

func (r *Renderer) traceOutline(center core.Vec2, outline []core.Vec2, color core.Color) {
	if len(outline) == 0 {
		x, y := r.Cell(center)
		r.screen.SetColored(x, y, 'o', color)
		return
	}
	pts := shapes.Polygon(center, outline)
	for i, p := range pts {
		x0, y0 := r.Cell(p)
		x1, y1 := r.Cell(pts[(i+1)%len(pts)])
		r.screen.DrawLine(x0, y0, x1, y1, '#', color)
	}
}

func (r *Renderer) drawBullet(b asteroids.Bullet) {
	color := core.ColorBrightWhite
	if b.Spread() {
		color = b.Color
	}
	x, y := r.Cell(b.Pos)
	r.screen.SetColored(x, y, '•', color)
}

func (r *Renderer) drawShip(s asteroids.Ship) {
	if s.Flicker() {
		return
	}
	x, y := r.Cell(s.Pos)
	r.screen.SetColored(x, y, headingGlyph(s.Rotation), core.ColorBrightGreen)
	if s.Thrusting {
		tail := s.Pos.Sub(core.FromAngle(s.Rotation, r.cellW*1.5))
		tx, ty := r.Cell(tail)
		if tx != x || ty != y {
			r.screen.SetColored(tx, ty, '~', core.ColorOrange)
		}
	}
}

// headingGlyph picks the arrow closest to a rotation in radians.
func headingGlyph(rotation float64) rune {
	step := math.Pi / 4
	idx := int(math.Round(core.WrapF(rotation, 2*math.Pi)/step)) % len(shipGlyphs)
	return shipGlyphs[idx]
}

func (r *Renderer) drawHUD(hud asteroids.HUD) {
	r.screen.DrawRect(core.Rect{X: 0, Y: 0, W: r.screen.Width(), H: hudRows}, ' ')

	x := 0
	put := func(text string, c core.Color) {
		r.screen.DrawTextColored(x, 0, text, c)
		x += len([]rune(text))
	}

	put(fmt.Sprintf("SCORE %-7d", hud.Score), core.ColorBrightWhite)
	put("LIVES ", core.ColorWhite)
	put(strings.Repeat("♥", max(hud.Lives, 0))+"  ", core.ColorBrightRed)
	put(fmt.Sprintf("WAVE %-3d", hud.Wave), core.ColorBrightCyan)
	if hud.Ammo > 0 {
		put(fmt.Sprintf("SPREAD %d", hud.Ammo), core.ColorMagenta)
	}
}

func (r *Renderer) drawBanner(text string) {
	w := len([]rune(text)) + 4
	x := core.Clamp((r.screen.Width()-w)/2, 0, r.screen.Width())
	box := core.NewRect(x, hudRows+1, w, 3)
	r.screen.DrawRect(box, ' ')
	r.screen.DrawBox(box)
	r.screen.DrawTextColored(box.X+2, box.Y+1, text, core.ColorBrightYellow)
}
