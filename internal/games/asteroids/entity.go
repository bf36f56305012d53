package asteroids

import "github.com/vovakirdan/astro-arcade/internal/core"

// EntityID identifies an entity within one run. IDs are never reused inside a run.
type EntityID uint64

// Kind discriminates the entity variants.
type Kind int

const (
	KindShip Kind = iota
	KindAsteroid
	KindBullet
	KindParticle
	KindPowerup
)

// String returns the name of the entity kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	case KindParticle:
		return "particle"
	case KindPowerup:
		return "powerup"
	default:
		return "unknown"
	}
}

// Body is the shape shared by every entity.
type Body struct {
	ID       EntityID
	Pos      core.Vec2
	Vel      core.Vec2
	Rotation float64 // Radians
	Radius   float64
}

// Entity is the closed set of simulation objects.
// Only the types in this package implement it.
type Entity interface {
	Base() Body
	Kind() Kind
	isEntity()
}

// Ship is the player craft. Exactly one exists per run.
type Ship struct {
	Body
	Thrusting    bool
	Invulnerable int // Frames of collision immunity left
	Destroyed    bool
}

func (s Ship) Base() Body { return s.Body }
func (s Ship) Kind() Kind { return KindShip }
func (Ship) isEntity()    {}

// Flicker reports whether a renderer should hide the ship this frame.
// Invulnerable ships blink every few frames.
func (s Ship) Flicker() bool {
	return s.Invulnerable > 0 && (s.Invulnerable/6)%2 == 1
}

// SizeClass is an asteroid's relative scale, 1 (small) through 4 (massive).
type SizeClass int

const (
	SizeSmall   SizeClass = 1
	SizeMedium  SizeClass = 2
	SizeLarge   SizeClass = 3
	SizeMassive SizeClass = 4
)

// Valid reports whether the size class is in range.
func (s SizeClass) Valid() bool {
	return s >= SizeSmall && s <= SizeMassive
}

// String returns the name of the size class.
func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeMassive:
		return "massive"
	default:
		return "invalid"
	}
}

// Asteroid is a drifting hazard. Outline points are offsets from Pos and
// are never mutated after creation, so snapshots may share them.
type Asteroid struct {
	Body
	Size    SizeClass
	Outline []core.Vec2
}

func (a Asteroid) Base() Body { return a.Body }
func (a Asteroid) Kind() Kind { return KindAsteroid }
func (Asteroid) isEntity()    {}

// Bullet is a projectile. Color is ColorDefault for plain shots and the
// spread powerup color for fan shots.
type Bullet struct {
	Body
	Color core.Color
}

func (b Bullet) Base() Body { return b.Body }
func (b Bullet) Kind() Kind { return KindBullet }
func (Bullet) isEntity()    {}

// Spread reports whether the bullet came from a spread shot.
func (b Bullet) Spread() bool {
	return b.Color != core.ColorDefault
}

// Particle is cosmetic debris. It never collides.
type Particle struct {
	Body
	Life    int
	MaxLife int
	Color   core.Color
}

func (p Particle) Base() Body { return p.Body }
func (p Particle) Kind() Kind { return KindParticle }
func (Particle) isEntity()    {}

// Fade returns remaining life as a fraction in (0, 1].
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// PowerupType is the effect granted by a powerup.
type PowerupType int

const (
	PowerupLife PowerupType = iota
	PowerupSpread
)

// String returns the name of the powerup type.
func (p PowerupType) String() string {
	switch p {
	case PowerupLife:
		return "life"
	case PowerupSpread:
		return "spread"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for a powerup type.
func (p PowerupType) Glyph() rune {
	switch p {
	case PowerupLife:
		return '♥'
	case PowerupSpread:
		return 'W'
	default:
		return '?'
	}
}

// Powerup is a pinned pickup with a countdown.
type Powerup struct {
	Body
	Type     PowerupType
	Lifetime int // Frames until it expires uncollected
	Color    core.Color
}

func (p Powerup) Base() Body { return p.Body }
func (p Powerup) Kind() Kind { return KindPowerup }
func (Powerup) isEntity()    {}
