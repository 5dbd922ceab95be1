// Package scene defines the Scene interface driven by the game loop.
//
// The deck (live play and replays) is the only scene today; the game loop
// already supports handing over to another scene returned from Update.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game.
//
// The game loop delegates Update and Draw calls to the current scene.
// Returning a non-nil Scene from Update switches to it: the old scene gets
// OnExit, the new one OnEnter.
type Scene interface {
	// Update advances the scene by dt seconds of wall time.
	// dt may be 0; it is never negative.
	// Returns the next scene if a transition is needed, nil to stay.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter is called every time the scene becomes current.
	OnEnter()

	// OnExit is called when leaving the scene and when the window closes.
	// It must be safe to call more than once.
	OnExit()
}
