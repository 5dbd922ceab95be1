// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pirate/internal/application/scene"
)

// MaxFrameDT caps a measured frame delta, so a stalled window does not
// hand the simulation seconds of backlog at once
const MaxFrameDT = 0.25

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	// wall clock, nil while the fixed dt is used
	now  func() time.Time
	last time.Time
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.frameDelta())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// frameDelta returns the measured time since the previous Update, or the
// fixed dt when no clock is set. The first measured frame uses the fixed dt.
func (g *Game) frameDelta() float64 {
	if g.now == nil {
		return g.dt
	}
	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return g.dt
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now
	return min(max(dt, 0), MaxFrameDT)
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates and stops using the wall clock.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
	g.now = nil
}

// UseClock measures frame deltas with now instead of the fixed dt
func (g *Game) UseClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
