package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/games/asteroids"
)

func testSnapshot() asteroids.Snapshot {
	return asteroids.Snapshot{
		Width:  200,
		Height: 100,
		Ship: asteroids.Ship{Body: asteroids.Body{
			Pos:      core.V(50, 50),
			Rotation: -math.Pi / 2,
			Radius:   10,
		}},
	}
}

func testHUD() asteroids.HUD {
	return asteroids.HUD{Score: 1500, Lives: 3, Wave: 2}
}

func square(r float64) []core.Vec2 {
	return []core.Vec2{core.V(-r, -r), core.V(r, -r), core.V(r, r), core.V(-r, r)}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		expected rune
	}{
		{0, '→'},
		{math.Pi / 2, '↓'},
		{math.Pi, '←'},
		{-math.Pi / 2, '↑'},
		{-math.Pi / 4, '↗'},
		{3 * math.Pi / 4, '↙'},
		{2*math.Pi - 0.1, '→'},
	}

	for _, tc := range tests {
		if got := headingGlyph(tc.rotation); got != tc.expected {
			t.Errorf("headingGlyph(%.2f) = %q, expected %q", tc.rotation, got, tc.expected)
		}
	}
}

func TestRendererCell(t *testing.T) {
	r := NewRenderer(20, 6, 10, 20)
	tests := []struct {
		pos    core.Vec2
		cx, cy int
	}{
		{core.V(0, 0), 0, hudRows},
		{core.V(9.9, 19.9), 0, hudRows},
		{core.V(10, 20), 1, hudRows + 1},
		{core.V(195, 99), 19, hudRows + 4},
	}

	for _, tc := range tests {
		x, y := r.Cell(tc.pos)
		if x != tc.cx || y != tc.cy {
			t.Errorf("Cell(%v) = (%d, %d), expected (%d, %d)", tc.pos, x, y, tc.cx, tc.cy)
		}
	}

	w, h := r.WorldSize()
	if w != 200 || h != 100 {
		t.Errorf("WorldSize = %vx%v, expected 200x100", w, h)
	}
}

func TestRendererDefaults(t *testing.T) {
	r := NewRenderer(0, 0, 0, 0)
	if r.cellW <= 0 || r.cellH <= 0 {
		t.Error("Expected positive default cell size")
	}
	if r.Screen().Height() < hudRows+1 {
		t.Error("Expected room for the HUD and one playfield row")
	}
}

func TestDrawShipAndHUD(t *testing.T) {
	r := NewRenderer(60, 6, 10, 20)
	snap := testSnapshot()
	screen := r.Draw(&snap, testHUD(), "")

	if got := screen.Get(5, hudRows+2); got != '↑' {
		t.Errorf("Expected ship glyph at (5, 3), got %q", got)
	}
	hud := screen.Row(0)
	for _, want := range []string{"SCORE 1500", "♥♥♥", "WAVE 2"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if strings.Contains(hud, "SPREAD") {
		t.Error("Expected no spread counter without ammo")
	}

	counters := testHUD()
	counters.Ammo = 4
	if hud := r.Draw(&snap, counters, "").Row(0); !strings.Contains(hud, "SPREAD 4") {
		t.Errorf("HUD %q missing spread ammo", hud)
	}
}

func TestDrawShipHidden(t *testing.T) {
	tests := []struct {
		name string
		ship asteroids.Ship
	}{
		{"destroyed", asteroids.Ship{Destroyed: true}},
		{"flicker", asteroids.Ship{Invulnerable: 6}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRenderer(20, 6, 10, 20)
			snap := testSnapshot()
			tc.ship.Body = snap.Ship.Body
			snap.Ship = tc.ship
			if got := r.Draw(&snap, testHUD(), "").Get(5, hudRows+2); got != ' ' {
				t.Errorf("Expected hidden ship, got %q", got)
			}
		})
	}
}

func TestDrawThrustFlame(t *testing.T) {
	r := NewRenderer(20, 6, 10, 20)
	snap := testSnapshot()
	snap.Ship.Thrusting = true
	snap.Ship.Rotation = 0
	screen := r.Draw(&snap, testHUD(), "")
	if got := screen.Get(3, hudRows+2); got != '~' {
		t.Errorf("Expected flame behind the ship, got %q", got)
	}
}

func TestDrawAsteroidOutline(t *testing.T) {
	r := NewRenderer(20, 6, 10, 20)
	snap := testSnapshot()
	snap.Asteroids = []asteroids.Asteroid{{
		Body:    asteroids.Body{Pos: core.V(150, 50), Radius: 20},
		Size:    asteroids.SizeLarge,
		Outline: square(20),
	}}
	screen := r.Draw(&snap, testHUD(), "")

	// Top edge runs from (130,30) to (170,30): cells 13..17 on row 2.
	for x := 13; x <= 17; x++ {
		cell := screen.GetCell(x, hudRows+1)
		if cell.Rune != '#' || cell.Color != core.ColorYellow {
			t.Errorf("Expected yellow outline at (%d, %d), got %q %v", x, hudRows+1, cell.Rune, cell.Color)
		}
	}
	if got := screen.Get(15, hudRows+2); got != ' ' {
		t.Errorf("Expected hollow interior, got %q", got)
	}
}

func TestDrawAsteroidWrapsAcrossEdge(t *testing.T) {
	r := NewRenderer(20, 6, 10, 20)
	snap := testSnapshot()
	snap.Asteroids = []asteroids.Asteroid{{
		Body:    asteroids.Body{Pos: core.V(5, 50), Radius: 20},
		Size:    asteroids.SizeSmall,
		Outline: square(20),
	}}
	screen := r.Draw(&snap, testHUD(), "")

	// The left part of the rock is drawn at the right edge.
	if got := screen.Get(18, hudRows+1); got != '#' {
		t.Errorf("Expected wrapped outline at the right edge, got %q", got)
	}
}

func TestDrawBulletsParticlesPowerups(t *testing.T) {
	r := NewRenderer(20, 6, 10, 20)
	snap := testSnapshot()
	snap.Bullets = []asteroids.Bullet{
		{Body: asteroids.Body{Pos: core.V(105, 5)}},
		{Body: asteroids.Body{Pos: core.V(115, 5)}, Color: core.ColorMagenta},
	}
	snap.Particles = []asteroids.Particle{
		{Body: asteroids.Body{Pos: core.V(5, 85)}, Life: 10, MaxLife: 10, Color: core.ColorGray},
		{Body: asteroids.Body{Pos: core.V(15, 85)}, Life: 2, MaxLife: 10, Color: core.ColorGray},
	}
	snap.Powerups = []asteroids.Powerup{
		{Body: asteroids.Body{Pos: core.V(185, 85)}, Type: asteroids.PowerupLife, Lifetime: 600, Color: core.ColorRed},
	}
	screen := r.Draw(&snap, testHUD(), "")

	if c := screen.GetCell(10, hudRows); c.Rune != '•' || c.Color != core.ColorBrightWhite {
		t.Errorf("Expected plain bullet, got %q %v", c.Rune, c.Color)
	}
	if c := screen.GetCell(11, hudRows); c.Color != core.ColorMagenta {
		t.Errorf("Expected spread bullet color, got %v", c.Color)
	}
	if got := screen.Get(0, hudRows+4); got != '*' {
		t.Errorf("Expected fresh particle '*', got %q", got)
	}
	if got := screen.Get(1, hudRows+4); got != '.' {
		t.Errorf("Expected fading particle '.', got %q", got)
	}
	if got := screen.Get(18, hudRows+4); got != asteroids.PowerupLife.Glyph() {
		t.Errorf("Expected powerup glyph, got %q", got)
	}
}

func TestDrawBanner(t *testing.T) {
	r := NewRenderer(30, 8, 10, 20)
	snap := testSnapshot()
	screen := r.Draw(&snap, testHUD(), "WAVE 2")
	if !strings.Contains(screen.Row(hudRows+2), "WAVE 2") {
		t.Errorf("Expected banner text, got %q", screen.Row(hudRows+2))
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'a', core.ColorRed)
	s.SetColored(1, 0, 'b', core.ColorRed)
	s.Set(0, 1, 'c')

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("Expected 2 rows, got %d newlines", got)
	}
	for _, want := range []string{"ab", "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}
