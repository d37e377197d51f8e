package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var keyNames = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"escape":    ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"f1":        ebiten.KeyF1,
	"f2":        ebiten.KeyF2,
	"f5":        ebiten.KeyF5,
	"f12":       ebiten.KeyF12,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
}

// digitKeys select palette colors 1-9 from the top row or the numpad.
var digitKeys = [9][2]ebiten.Key{
	{ebiten.KeyDigit1, ebiten.KeyNumpad1},
	{ebiten.KeyDigit2, ebiten.KeyNumpad2},
	{ebiten.KeyDigit3, ebiten.KeyNumpad3},
	{ebiten.KeyDigit4, ebiten.KeyNumpad4},
	{ebiten.KeyDigit5, ebiten.KeyNumpad5},
	{ebiten.KeyDigit6, ebiten.KeyNumpad6},
	{ebiten.KeyDigit7, ebiten.KeyNumpad7},
	{ebiten.KeyDigit8, ebiten.KeyNumpad8},
	{ebiten.KeyDigit9, ebiten.KeyNumpad9},
}

// ParseKey resolves a lowercase key name such as "space", "f5" or "p".
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// Binding ties an action to a key.
type Binding struct {
	Action Action
	Key    ebiten.Key
}

// Bindings maps keys to actions. One key may drive several actions.
type Bindings []Binding

// ParseBindings builds bindings from a config map of action name to key names.
func ParseBindings(m map[string][]string) (Bindings, error) {
	var b Bindings
	for actionName, keys := range m {
		a, err := ParseAction(actionName)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("action %q has no keys", actionName)
		}
		for _, keyName := range keys {
			k, err := ParseKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("action %q: %w", actionName, err)
			}
			b = append(b, Binding{Action: a, Key: k})
		}
	}
	return b, nil
}

// KeysFor returns the keys bound to a.
func (b Bindings) KeysFor(a Action) []ebiten.Key {
	var out []ebiten.Key
	for _, bind := range b {
		if bind.Action == a {
			out = append(out, bind.Key)
		}
	}
	return out
}

// Label returns a short, lowercase description of the first key bound to a,
// for on-screen hints.
func (b Bindings) Label(a Action) string {
	keys := b.KeysFor(a)
	if len(keys) == 0 {
		return "?"
	}
	for name, k := range keyNames {
		if k == keys[0] {
			return name
		}
	}
	return strings.ToLower(keys[0].String())
}
