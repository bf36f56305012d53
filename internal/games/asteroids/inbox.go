package asteroids

var _ Listener = (*Inbox)(nil)

// HUD holds the counters a heads-up display shows, as last notified.
type HUD struct {
	Score int
	Lives int
	Ammo  int
	Wave  int
}

// Inbox is a Listener that buffers the notifications a host reacts to
// between frames and keeps the latest HUD counters.
type Inbox struct {
	hud         HUD
	accuracy    int
	waveStarted int  // Wave that began since the last TakeWave, 0 if none
	gameOver    bool // RequestGameOver arrived and is not yet taken
}

func (b *Inbox) ScoreChanged(score int) {
	b.hud.Score = score
}

func (b *Inbox) LivesChanged(lives int) {
	b.hud.Lives = lives
}

func (b *Inbox) AmmoChanged(ammo int) {
	b.hud.Ammo = ammo
}

func (b *Inbox) AccuracyChanged(percent int) {
	b.accuracy = percent
}

func (b *Inbox) WaveChanged(wave int) {
	b.hud.Wave = wave
	b.waveStarted = wave
}

func (b *Inbox) RequestGameOver() {
	b.gameOver = true
}

// HUD returns the latest notified counters.
func (b *Inbox) HUD() HUD {
	return b.hud
}

// Accuracy returns the last reported hit percentage.
func (b *Inbox) Accuracy() int {
	return b.accuracy
}

// TakeWave returns and clears the pending wave start.
func (b *Inbox) TakeWave() int {
	w := b.waveStarted
	b.waveStarted = 0
	return w
}

// TakeGameOver returns and clears the pending game-over request.
func (b *Inbox) TakeGameOver() bool {
	g := b.gameOver
	b.gameOver = false
	return g
}

// Reset forgets everything buffered.
func (b *Inbox) Reset() {
	*b = Inbox{}
}
