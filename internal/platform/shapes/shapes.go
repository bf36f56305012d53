// Package shapes holds the renderer-agnostic geometry and palette shared by
// the terminal and window hosts.
package shapes

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/games/asteroids"
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       colornames.White,
	core.ColorRed:           colornames.Firebrick,
	core.ColorGreen:         colornames.Green,
	core.ColorYellow:        colornames.Gold,
	core.ColorBlue:          colornames.Royalblue,
	core.ColorMagenta:       colornames.Mediumorchid,
	core.ColorCyan:          colornames.Darkcyan,
	core.ColorWhite:         colornames.Lightgray,
	core.ColorBrightRed:     colornames.Red,
	core.ColorBrightGreen:   colornames.Lime,
	core.ColorBrightYellow:  colornames.Yellow,
	core.ColorBrightBlue:    colornames.Deepskyblue,
	core.ColorBrightMagenta: colornames.Magenta,
	core.ColorBrightCyan:    colornames.Cyan,
	core.ColorBrightWhite:   colornames.White,
	core.ColorOrange:        colornames.Darkorange,
	core.ColorGray:          colornames.Gray,
}

var asteroidColors = map[asteroids.SizeClass]core.Color{
	asteroids.SizeSmall:   core.ColorWhite,
	asteroids.SizeMedium:  core.ColorCyan,
	asteroids.SizeLarge:   core.ColorYellow,
	asteroids.SizeMassive: core.ColorBrightRed,
}

// AsteroidColor returns the outline color for a size class.
func AsteroidColor(size asteroids.SizeClass) core.Color {
	if c, ok := asteroidColors[size]; ok {
		return c
	}
	return core.ColorWhite
}

// RGBA returns the display color for a core color.
// Unknown colors fall back to white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return colornames.White
}

// Fade scales a color's alpha by f in [0, 1]. Channels stay premultiplied.
func Fade(c color.RGBA, f float64) color.RGBA {
	f = core.ClampF(f, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * f), //#nosec G115 -- f is clamped to [0, 1]
		G: uint8(float64(c.G) * f), //#nosec G115
		B: uint8(float64(c.B) * f), //#nosec G115
		A: uint8(float64(c.A) * f), //#nosec G115
	}
}

// WrapOffsets returns the shifts along one axis at which a body of the given
// radius must be drawn so it shows on both sides of a wrapping edge.
func WrapOffsets(c, radius, span float64) []float64 {
	switch {
	case c-radius < 0:
		return []float64{0, span}
	case c+radius > span:
		return []float64{0, -span}
	default:
		return []float64{0}
	}
}

// Polygon returns outline vertices translated to center.
func Polygon(center core.Vec2, outline []core.Vec2) []core.Vec2 {
	pts := make([]core.Vec2, len(outline))
	for i, p := range outline {
		pts[i] = center.Add(p)
	}
	return pts
}

// ShipHull returns the nose and both wing tips of a ship.
func ShipHull(pos core.Vec2, rotation, radius float64) [3]core.Vec2 {
	const wingSpread = 2.5 // Radians from the nose to each wing
	return [3]core.Vec2{
		pos.Add(core.FromAngle(rotation, radius)),
		pos.Add(core.FromAngle(rotation+wingSpread, radius)),
		pos.Add(core.FromAngle(rotation-wingSpread, radius)),
	}
}

// Flame returns the exhaust segment behind a thrusting ship.
// Its length flickers with tick.
func Flame(pos core.Vec2, rotation, radius float64, tick uint64) [2]core.Vec2 {
	length := radius * 1.4
	if tick%4 < 2 {
		length = radius * 1.8
	}
	back := rotation + math.Pi
	return [2]core.Vec2{
		pos.Add(core.FromAngle(back, radius*0.6)),
		pos.Add(core.FromAngle(back, length)),
	}
}
