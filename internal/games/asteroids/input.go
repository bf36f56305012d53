package asteroids

import (
	"github.com/vovakirdan/astro-arcade/internal/core"
)

// applyInput turns the held-key set into ship intent and handles the fire edge.
// A destroyed ship ignores input but still reports its engine as off.
func (w *World) applyInput(in core.InputFrame) {
	s := &w.ship
	if s.Destroyed {
		s.Thrusting = false
		w.audio.Thrust(false)
		return
	}

	sc := w.cfg.Ship
	if in.IsHeld(core.ActionRotateLeft) {
		s.Rotation -= sc.TurnSpeed
	}
	if in.IsHeld(core.ActionRotateRight) {
		s.Rotation += sc.TurnSpeed
	}
	s.Rotation = core.WrapAngle(s.Rotation)

	s.Thrusting = in.IsHeld(core.ActionThrust)
	if s.Thrusting {
		s.Vel = s.Vel.Add(core.FromAngle(s.Rotation, sc.Thrust))
	}
	w.audio.Thrust(s.Thrusting)

	if in.Has(core.ActionFire) {
		w.Fire()
	}
}

// Fire shoots from the ship's nose and returns the number of bullets created.
// With spread ammo it fires a three-bullet fan and spends one ammo.
// A destroyed ship cannot fire and the attempt is not counted.
func (w *World) Fire() int {
	s := w.ship
	if s.Destroyed {
		return 0
	}

	n := 1
	if w.spreadAmmo > 0 {
		fan := core.DegToRad(w.cfg.Bullets.SpreadAngleDeg)
		for _, off := range [...]float64{-fan, 0, fan} {
			w.spawnBullet(s.Rotation+off, w.spreadColor)
		}
		n = 3
		w.spreadAmmo--
		w.listener.AmmoChanged(w.spreadAmmo)
	} else {
		w.spawnBullet(s.Rotation, core.ColorDefault)
	}

	w.shots += n
	w.audio.ShotFired()
	return n
}

func (w *World) spawnBullet(angle float64, color core.Color) {
	s := w.ship
	bc := w.cfg.Bullets
	w.bullets = append(w.bullets, Bullet{
		Body: Body{
			ID:       w.newID(),
			Pos:      s.Pos.Add(core.FromAngle(s.Rotation, s.Radius)),
			Vel:      core.FromAngle(angle, bc.Speed),
			Rotation: angle,
			Radius:   bc.Radius,
		},
		Color: color,
	})
}
