package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the input of one frame.
//
// Pressed is edge-triggered: an action is in it for exactly one frame per
// physical press. Down is level-triggered.
type InputState struct {
	Pressed ActionSet
	Down    ActionSet
	Digit   int // 1-9 when a digit key was pressed this frame, 0 otherwise
	MouseX  int
	MouseY  int
	// Mouse buttons, edge-triggered
	LeftClick  bool
	RightClick bool
}

// InputSource yields one InputState per frame.
type InputSource interface {
	GetInput() InputState
}

// InputSystem polls ebiten once per frame
type InputSystem struct {
	bindings Bindings
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings Bindings) *InputSystem {
	return &InputSystem{bindings: bindings}
}

// Bindings returns the key bindings
func (s *InputSystem) Bindings() Bindings {
	return s.bindings
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	var in InputState
	for _, b := range s.bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			in.Pressed = in.Pressed.With(b.Action)
		}
		if ebiten.IsKeyPressed(b.Key) {
			in.Down = in.Down.With(b.Action)
		}
	}

	for i, keys := range digitKeys {
		if inpututil.IsKeyJustPressed(keys[0]) || inpututil.IsKeyJustPressed(keys[1]) {
			in.Digit = i + 1
			break
		}
	}

	in.MouseX, in.MouseY = ebiten.CursorPosition()
	in.LeftClick = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.RightClick = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	return in
}

// ScriptedInput replays a fixed list of frames, then idles.
// Useful for tests and headless runs.
type ScriptedInput struct {
	Frames []InputState
	next   int
}

// GetInput returns the next scripted frame
func (s *ScriptedInput) GetInput() InputState {
	if s.next >= len(s.Frames) {
		return InputState{}
	}
	in := s.Frames[s.next]
	s.next++
	return in
}

// Done reports whether every scripted frame was consumed
func (s *ScriptedInput) Done() bool {
	return s.next >= len(s.Frames)
}
