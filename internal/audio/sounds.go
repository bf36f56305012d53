package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/astro-arcade/internal/games/asteroids"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator is an endless tone whose frequency glides from `from` to `to`
// over glide samples and then holds.
type oscillator struct {
	rate     beep.SampleRate
	wave     WaveType
	from, to float64
	glide    int
	pos      int
	phase    float64
	noise    uint32
}

func newOscillator(rate beep.SampleRate, wave WaveType, from, to float64, glide time.Duration) *oscillator {
	return &oscillator{rate: rate, wave: wave, from: from, to: to, glide: rate.N(glide), noise: 0x2545f491}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq := o.to
		if o.pos < o.glide {
			freq = o.from + (o.to-o.from)*float64(o.pos)/float64(o.glide)
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			o.noise = o.noise*1664525 + 1013904223
			val = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream exponentially with time constant tau.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	tau      float64 // Seconds
	pos      int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := range n {
		t := float64(d.pos) / float64(d.rate)
		g := math.Exp(-t / d.tau)
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales s linearly by vol; vol <= 0 is silent.
// effects.Volume works in powers of Base, so the linear gain is converted.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a sine tone of length d with a short decay tail.
func note(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), &decay{streamer: sine, rate: rate, tau: d.Seconds() / 2})
}

// shotSound is a short falling zap.
func shotSound(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	osc := newOscillator(rate, WaveSquare, 1200, 380, d)
	return beep.Take(rate.N(d), newVolume(&decay{streamer: osc, rate: rate, tau: 0.04}, 0.35))
}

// explosionDuration grows with the explosion size.
func explosionDuration(size asteroids.ExplosionSize) time.Duration {
	switch size {
	case asteroids.ExplosionMassive:
		return 900 * time.Millisecond
	case asteroids.ExplosionLarge:
		return 550 * time.Millisecond
	default:
		return 280 * time.Millisecond
	}
}

// explosionSound mixes noise with a rumble; bigger explosions last longer and rumble lower.
func explosionSound(rate beep.SampleRate, size asteroids.ExplosionSize) beep.Streamer {
	d := explosionDuration(size)
	rumble := 110.0 / float64(size+1)

	noise := newOscillator(rate, WaveNoise, 0, 0, 0)
	low := newOscillator(rate, WaveSine, rumble*2, rumble, d)
	mixed := beep.Mix(newVolume(noise, 0.45), newVolume(low, 0.5))

	return beep.Take(rate.N(d), &decay{streamer: mixed, rate: rate, tau: d.Seconds() / 4})
}

// powerupSpawnSound is a rising two-note chirp.
func powerupSpawnSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(rate, 660, 70*time.Millisecond),
		note(rate, 990, 90*time.Millisecond),
	)
}

// collectSound is a major arpeggio.
func collectSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(rate, 784, 60*time.Millisecond),
		note(rate, 988, 60*time.Millisecond),
		note(rate, 1319, 120*time.Millisecond),
	)
}

// gameOverSound is a slow descending phrase.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(rate, 523, 220*time.Millisecond),
		note(rate, 392, 220*time.Millisecond),
		note(rate, 262, 480*time.Millisecond),
	)
}

// thrustLoop is an endless low engine hum.
func thrustLoop(rate beep.SampleRate) beep.Streamer {
	noise := newOscillator(rate, WaveNoise, 0, 0, 0)
	hum := newOscillator(rate, WaveSaw, 55, 55, 0)
	return beep.Mix(newVolume(noise, 0.08), newVolume(hum, 0.12))
}

// bassline is the endless ambient music: a four-note pulse.
type bassline struct {
	rate  beep.SampleRate
	notes []float64
	step  int // Samples per note
	pos   int
	phase float64
}

func newBassline(rate beep.SampleRate) *bassline {
	return &bassline{
		rate:  rate,
		notes: []float64{55, 55, 65.41, 49},
		step:  rate.N(320 * time.Millisecond),
	}
}

func (b *bassline) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (b.pos / b.step) % len(b.notes)
		inNote := float64(b.pos%b.step) / float64(b.rate)
		env := math.Exp(-inNote * 6)

		val := 0.25 * env * math.Sin(2*math.Pi*b.phase)
		samples[i][0] = val
		samples[i][1] = val

		b.phase += b.notes[idx] / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.pos++
	}
	return len(samples), true
}

func (b *bassline) Err() error { return nil }
