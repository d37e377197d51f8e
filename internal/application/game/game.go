// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/bqdemos/internal/application/scene"
	"github.com/younwookim/bqdemos/internal/timing"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	clock   timing.Clock
	screenW int
	screenH int
	frames  int
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
// A nil clock defaults to the monotonic wall clock.
func New(initialScene scene.Scene, clock timing.Clock, screenW, screenH int) *Game {
	if clock == nil {
		clock = timing.NewMonotonicClock()
	}
	g := &Game{
		current: initialScene,
		clock:   clock,
		screenW: screenW,
		screenH: screenH,
	}
	g.current.OnEnter()
	return g
}

// Update samples the clock once and updates the current scene with it.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	now := g.clock.Now()
	g.frames++

	next, err := g.current.Update(now)
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

// SetClock replaces the frame clock.
// Useful for testing or headless replays.
func (g *Game) SetClock(clock timing.Clock) {
	g.clock = clock
}

// Current returns the active scene.
func (g *Game) Current() scene.Scene {
	return g.current
}

// Frames returns the number of updates run so far.
func (g *Game) Frames() int {
	return g.frames
}

// Close runs OnExit on the active scene. Call it once when the loop ends.
func (g *Game) Close() {
	g.current.OnExit()
}
