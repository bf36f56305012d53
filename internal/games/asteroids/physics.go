package asteroids

// integrate advances every entity by its velocity.
// Ship and asteroids wrap around the world; bullets are dropped once they
// leave it; particles and powerups age out.
func (w *World) integrate() {
	width, height := w.runtime.Width, w.runtime.Height
	sc := w.cfg.Ship

	s := &w.ship
	if !s.Destroyed {
		s.Pos = s.Pos.Add(s.Vel).Wrap(width, height)
		s.Vel = s.Vel.Scale(sc.Friction).ClampLen(sc.MaxSpeed)
		if s.Invulnerable > 0 {
			s.Invulnerable--
		}
	}

	for i := range w.asteroids {
		a := &w.asteroids[i]
		a.Pos = a.Pos.Add(a.Vel).Wrap(width, height)
	}

	bullets := w.bullets[:0]
	for _, b := range w.bullets {
		b.Pos = b.Pos.Add(b.Vel)
		if b.Pos.In(width, height) {
			bullets = append(bullets, b)
		}
	}
	clear(w.bullets[len(bullets):])
	w.bullets = bullets

	particles := w.particles[:0]
	for _, p := range w.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	clear(w.particles[len(particles):])
	w.particles = particles

	powerups := w.powerups[:0]
	for _, p := range w.powerups {
		p.Pos = p.Pos.Add(p.Vel)
		p.Lifetime--
		if p.Lifetime > 0 {
			powerups = append(powerups, p)
		} else {
			w.logger.Debug("powerup expired", "type", p.Type)
		}
	}
	clear(w.powerups[len(powerups):])
	w.powerups = powerups
}
