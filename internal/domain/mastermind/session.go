package mastermind

import (
	"errors"
	"fmt"

	"github.com/younwookim/bqdemos/internal/timing"
)

// Rules fixes the shape of a game.
type Rules struct {
	Palette    []Color
	Slots      int
	MaxGuesses int
}

// DefaultRules returns six colors, four slots and eight guesses.
func DefaultRules() Rules {
	return Rules{
		Palette:    DefaultPalette(),
		Slots:      4,
		MaxGuesses: 8,
	}
}

// Validate checks the palette and limits.
func (r Rules) Validate() error {
	if len(r.Palette) < 2 || len(r.Palette) > MaxPaletteSize {
		return fmt.Errorf("palette must have between 2 and %d colors, got %d", MaxPaletteSize, len(r.Palette))
	}
	seen := make(map[Color]bool, len(r.Palette))
	for _, c := range r.Palette {
		if !c.Valid() {
			return fmt.Errorf("palette contains invalid color %d", c)
		}
		if seen[c] {
			return fmt.Errorf("palette contains %s twice", c)
		}
		seen[c] = true
	}
	if r.Slots < 1 {
		return errors.New("slots must be positive")
	}
	if r.MaxGuesses < 1 {
		return errors.New("max guesses must be positive")
	}
	return nil
}

// InPalette reports whether c is one of the palette colors.
func (r Rules) InPalette(c Color) bool {
	for _, p := range r.Palette {
		if p == c {
			return true
		}
	}
	return false
}

// Session owns one game: the secret, the guess history and the state.
// All transitions run synchronously inside Apply.
type Session struct {
	rules    Rules
	gen      *Generator
	secret   SecretCode
	history  []ScoredGuess
	state    GameState
	selected Color
}

// NewSession starts a game with a freshly drawn secret.
// Panics if rules are invalid; validate configuration before calling.
func NewSession(rules Rules, gen *Generator, now timing.Timestamp) *Session {
	if err := rules.Validate(); err != nil {
		panic("mastermind: " + err.Error())
	}
	if gen == nil {
		gen = NewGenerator(nil)
	}
	s := &Session{
		rules:    rules,
		gen:      gen,
		selected: rules.Palette[0],
	}
	s.secret = gen.Random(rules.Palette, rules.Slots)
	s.reset(now)
	return s
}

// NewSessionWithSecret starts a game with a given secret.
func NewSessionWithSecret(rules Rules, gen *Generator, secret SecretCode, now timing.Timestamp) *Session {
	if err := rules.Validate(); err != nil {
		panic("mastermind: " + err.Error())
	}
	if secret.Len() != rules.Slots {
		panic(fmt.Sprintf("mastermind: secret has %d slots, rules want %d", secret.Len(), rules.Slots))
	}
	if gen == nil {
		gen = NewGenerator(nil)
	}
	s := &Session{
		rules:    rules,
		gen:      gen,
		secret:   secret,
		selected: rules.Palette[0],
	}
	s.reset(now)
	return s
}

func (s *Session) reset(now timing.Timestamp) {
	s.history = make([]ScoredGuess, 0, s.rules.MaxGuesses)
	s.state = InProgress{StartTime: now, Row: NewWorkingRow(s.rules.Slots)}
}

// Apply runs one intent against the current state.
// It returns false when the intent does not apply (ignored, not an error).
func (s *Session) Apply(intent Intent, now timing.Timestamp) bool {
	switch st := s.state.(type) {
	case InProgress:
		return s.applyInProgress(st, intent, now)
	case EditPassword:
		return s.applyEditPassword(intent, now)
	case Victory, TooManyGuesses:
		return s.applyEnded(intent, now)
	}
	return false
}

func (s *Session) applyInProgress(st InProgress, intent Intent, now timing.Timestamp) bool {
	switch in := intent.(type) {
	case SelectColor:
		return s.selectColor(in.Color)
	case SetSlot:
		return st.Row.Set(in.Index, s.selected)
	case ClearSlot:
		return st.Row.Clear(in.Index)
	case Submit:
		guess, ok := st.Row.Complete()
		if !ok {
			return false
		}
		scored := Evaluate(guess, s.secret.code)
		s.history = append(s.history, scored)

		switch {
		case scored.Solved():
			s.state = Victory{TotalTime: now.Sub(st.StartTime)}
		case len(s.history) >= s.rules.MaxGuesses:
			s.state = TooManyGuesses{}
		default:
			s.state = InProgress{StartTime: st.StartTime, Row: NewWorkingRow(s.rules.Slots)}
		}
		return true
	case ToggleEditPassword:
		// Secret edits are only allowed before anything was played.
		if len(s.history) != 0 || !st.Row.IsEmpty() {
			return false
		}
		s.state = EditPassword{}
		return true
	}
	return false
}

func (s *Session) applyEditPassword(intent Intent, now timing.Timestamp) bool {
	switch in := intent.(type) {
	case SelectColor:
		return s.selectColor(in.Color)
	case SetSecretSlot:
		if in.Index < 0 || in.Index >= s.secret.Len() {
			return false
		}
		s.secret = s.secret.WithSlot(in.Index, s.selected)
		return true
	case ToggleEditPassword:
		s.reset(now)
		return true
	}
	return false
}

func (s *Session) applyEnded(intent Intent, now timing.Timestamp) bool {
	switch intent.(type) {
	case ReplaySamePassword:
		s.reset(now)
		return true
	case NewPassword:
		s.secret = s.gen.Random(s.rules.Palette, s.rules.Slots)
		s.reset(now)
		return true
	}
	return false
}

func (s *Session) selectColor(c Color) bool {
	if !s.rules.InPalette(c) {
		return false
	}
	s.selected = c
	return true
}

// State returns a copy of the current state.
func (s *Session) State() GameState {
	if st, ok := s.state.(InProgress); ok {
		return InProgress{StartTime: st.StartTime, Row: st.Row.Clone()}
	}
	return s.state
}

// Secret returns the current secret.
func (s *Session) Secret() SecretCode {
	return s.secret
}

// History returns the scored guesses, oldest first.
func (s *Session) History() []ScoredGuess {
	out := make([]ScoredGuess, len(s.history))
	copy(out, s.history)
	return out
}

// GuessCount returns the number of submitted guesses.
func (s *Session) GuessCount() int {
	return len(s.history)
}

// Selected returns the color carried by the cursor.
func (s *Session) Selected() Color {
	return s.selected
}

// Rules returns the session rules.
func (s *Session) Rules() Rules {
	return s.rules
}
