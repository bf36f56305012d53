package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionRotateLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRotateRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionThrust, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace, ebiten.KeyF}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// pollInput fills frame from the keyboard. Steering keys are sampled as
// held; everything else fires only on the frame the key goes down.
func pollInput(frame *core.InputFrame) {
	clear(frame.Held)
	frame.ClearPressed()

	for _, b := range bindings {
		for _, k := range b.keys {
			switch {
			case b.action.IsHeld() && ebiten.IsKeyPressed(k):
				frame.Hold(b.action)
			case !b.action.IsHeld() && inpututil.IsKeyJustPressed(k):
				frame.Press(b.action)
			}
		}
	}
}
