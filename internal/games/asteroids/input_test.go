package asteroids

import (
	"math"
	"testing"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

func TestFireSingleShot(t *testing.T) {
	w, audio, _ := newTestWorld(t)

	in := core.NewInputFrame()
	in.Press(core.ActionFire)
	w.Step(in)

	if len(w.bullets) != 1 {
		t.Fatalf("Expected exactly 1 bullet, got %d", len(w.bullets))
	}
	if w.shots != 1 || audio.shots != 1 {
		t.Errorf("Expected 1 shot counted and played, got shots=%d sounds=%d", w.shots, audio.shots)
	}
	if w.bullets[0].Spread() {
		t.Errorf("Expected a plain bullet")
	}
}

func TestFireSpreadFan(t *testing.T) {
	w, _, listener := newTestWorld(t)
	w.spreadAmmo = 10
	rot := w.ship.Rotation

	if n := w.Fire(); n != 3 {
		t.Fatalf("Expected 3 bullets fired, got %d", n)
	}
	if len(w.bullets) != 3 {
		t.Fatalf("Expected 3 bullets, got %d", len(w.bullets))
	}

	fan := 25 * math.Pi / 180
	expected := []float64{rot - fan, rot, rot + fan}
	for i, b := range w.bullets {
		if math.Abs(b.Rotation-expected[i]) > 1e-9 {
			t.Errorf("bullet %d: expected angle %v, got %v", i, expected[i], b.Rotation)
		}
		if !b.Spread() {
			t.Errorf("bullet %d: expected spread tag", i)
		}
		dir := core.FromAngle(expected[i], w.cfg.Bullets.Speed)
		if math.Abs(b.Vel.X-dir.X) > 1e-9 || math.Abs(b.Vel.Y-dir.Y) > 1e-9 {
			t.Errorf("bullet %d: expected velocity %+v, got %+v", i, dir, b.Vel)
		}
	}

	if w.spreadAmmo != 9 || last(listener.ammo) != 9 {
		t.Errorf("Expected ammo 9, got %d (notified %v)", w.spreadAmmo, listener.ammo)
	}
	if w.shots != 3 {
		t.Errorf("Expected 3 shots counted, got %d", w.shots)
	}
}

func TestFireWhileDestroyedIgnored(t *testing.T) {
	w, audio, _ := newTestWorld(t)
	w.ship.Destroyed = true

	if n := w.Fire(); n != 0 {
		t.Errorf("Expected no bullets, got %d", n)
	}
	if w.shots != 0 || audio.shots != 0 || len(w.bullets) != 0 {
		t.Errorf("Expected nothing counted, shots=%d sounds=%d bullets=%d", w.shots, audio.shots, len(w.bullets))
	}
}

func TestRotateAndThrust(t *testing.T) {
	w, audio, _ := newTestWorld(t)
	start := w.ship.Rotation

	in := core.NewInputFrame()
	in.Hold(core.ActionRotateRight)
	w.Step(in)
	if got := w.ship.Rotation; math.Abs(got-(start+w.cfg.Ship.TurnSpeed)) > 1e-9 {
		t.Errorf("Expected rotation %v, got %v", start+w.cfg.Ship.TurnSpeed, got)
	}
	if on, _ := audio.lastThrust(); on {
		t.Errorf("Expected thrust off while only rotating")
	}

	in = core.NewInputFrame()
	in.Hold(core.ActionRotateLeft)
	w.Step(in)
	if got := w.ship.Rotation; math.Abs(got-start) > 1e-9 {
		t.Errorf("Expected rotation back to %v, got %v", start, got)
	}

	in = core.NewInputFrame()
	in.Hold(core.ActionThrust)
	w.Step(in)
	if !w.ship.Thrusting {
		t.Errorf("Expected thrusting flag")
	}
	if on, ok := audio.lastThrust(); !ok || !on {
		t.Errorf("Expected thrust on signaled")
	}
	// Nose up means thrust moves the ship toward negative Y.
	if w.ship.Vel.Y >= 0 {
		t.Errorf("Expected upward velocity, got %+v", w.ship.Vel)
	}

	w.Step(idle())
	if w.ship.Thrusting {
		t.Errorf("Expected thrusting cleared on release")
	}
}

func TestDestroyedShipIgnoresInputButStopsThrust(t *testing.T) {
	w, audio, _ := newTestWorld(t)
	w.ship.Destroyed = true
	w.ship.Thrusting = true
	rot := w.ship.Rotation

	in := core.NewInputFrame()
	in.Hold(core.ActionThrust)
	in.Hold(core.ActionRotateLeft)
	w.Step(in)

	if w.ship.Rotation != rot || w.ship.Vel != (core.Vec2{}) {
		t.Errorf("Expected destroyed ship unaffected by input")
	}
	if on, ok := audio.lastThrust(); !ok || on {
		t.Errorf("Expected thrust off signaled while destroyed")
	}
	if w.ship.Thrusting {
		t.Errorf("Expected thrusting flag cleared")
	}
}

func TestShipSpeedClamped(t *testing.T) {
	w, _, _ := newTestWorld(t)
	w.ship.Vel = core.V(100, -40)

	in := core.NewInputFrame()
	in.Hold(core.ActionThrust)
	for range 5 {
		w.Step(in)
		if l := w.ship.Vel.Len(); l > w.cfg.Ship.MaxSpeed+1e-9 {
			t.Fatalf("Expected speed <= %v, got %v", w.cfg.Ship.MaxSpeed, l)
		}
	}
}

func TestShipFriction(t *testing.T) {
	w, _, _ := newTestWorld(t)
	w.ship.Vel = core.V(2, 0)

	w.Step(idle())

	if got := w.ship.Vel.X; math.Abs(got-2*w.cfg.Ship.Friction) > 1e-9 {
		t.Errorf("Expected damped velocity %v, got %v", 2*w.cfg.Ship.Friction, got)
	}
}
