package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/younwookim/bqdemos/internal/domain/caterpillar"
	"github.com/younwookim/bqdemos/internal/domain/mastermind"
	"github.com/younwookim/bqdemos/internal/domain/turntimer"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// DisplayConfig is shared by every demo
type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	Scale        int    `yaml:"scale"`
	TPS          int    `yaml:"tps"`
	Title        string `yaml:"title"`
}

func (d DisplayConfig) validate() error {
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidConfig, d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("%w: display scale %d", ErrInvalidConfig, d.Scale)
	}
	if d.TPS <= 0 {
		return fmt.Errorf("%w: display tps %d", ErrInvalidConfig, d.TPS)
	}
	return nil
}

// KeyMap maps action names to key names, e.g. submit: [space].
type KeyMap map[string][]string

// ResultsConfig configures the finished-game store.
// An empty RedisURL keeps results in memory.
type ResultsConfig struct {
	RedisURL  string `yaml:"redis_url"`
	KeyPrefix string `yaml:"key_prefix"`
	Keep      int    `yaml:"keep"`
}

// MastermindConfig is the root of mastermind.yaml
type MastermindConfig struct {
	Display    DisplayConfig `yaml:"display"`
	Keys       KeyMap        `yaml:"keys"`
	Palette    []string      `yaml:"palette"`
	Slots      int           `yaml:"slots"`
	MaxGuesses int           `yaml:"max_guesses"`
	Results    ResultsConfig `yaml:"results"`
}

// Rules converts the palette names and limits into game rules.
func (c *MastermindConfig) Rules() (mastermind.Rules, error) {
	palette := make([]mastermind.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		col, err := mastermind.ParseColor(name)
		if err != nil {
			return mastermind.Rules{}, fmt.Errorf("%w: palette: %v", ErrInvalidConfig, err)
		}
		palette = append(palette, col)
	}
	rules := mastermind.Rules{Palette: palette, Slots: c.Slots, MaxGuesses: c.MaxGuesses}
	if err := rules.Validate(); err != nil {
		return mastermind.Rules{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return rules, nil
}

// Validate checks display settings and the rules.
func (c *MastermindConfig) Validate() error {
	if err := c.Display.validate(); err != nil {
		return err
	}
	if c.Results.Keep < 0 {
		return fmt.Errorf("%w: results keep %d", ErrInvalidConfig, c.Results.Keep)
	}
	_, err := c.Rules()
	return err
}

// ParticipantConfig is one seat at the table
type ParticipantConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // #rrggbb
}

// TrackerConfig is the root of turntracker.yaml
type TrackerConfig struct {
	Display      DisplayConfig       `yaml:"display"`
	Keys         KeyMap              `yaml:"keys"`
	MinTurn      time.Duration       `yaml:"min_turn"`
	Participants []ParticipantConfig `yaml:"participants"`
}

// Validate requires at least one named participant with a parseable color.
func (c *TrackerConfig) Validate() error {
	if err := c.Display.validate(); err != nil {
		return err
	}
	if c.MinTurn < 0 {
		return fmt.Errorf("%w: min_turn %s", ErrInvalidConfig, c.MinTurn)
	}
	if len(c.Participants) == 0 {
		return fmt.Errorf("%w: no participants", ErrInvalidConfig)
	}
	for i, p := range c.Participants {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: participant %d has no name", ErrInvalidConfig, i)
		}
		if _, err := ParseHexColor(p.Color); err != nil {
			return fmt.Errorf("%w: participant %s: %v", ErrInvalidConfig, p.Name, err)
		}
	}
	return nil
}

// NewTracker builds a tracker with every configured participant.
func (c *TrackerConfig) NewTracker() (*turntimer.Tracker, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	t := turntimer.NewTracker(c.MinTurn)
	for _, p := range c.Participants {
		col, _ := ParseHexColor(p.Color)
		t.AddParticipant(p.Name, col)
	}
	return t, nil
}

// CaterpillarConfig is the root of caterpillar.yaml
type CaterpillarConfig struct {
	Display     DisplayConfig `yaml:"display"`
	Keys        KeyMap        `yaml:"keys"`
	Squares     int           `yaml:"squares"`
	InitialTick time.Duration `yaml:"initial_tick"`
	SpeedFactor float64       `yaml:"speed_factor"`
	FruitScore  int           `yaml:"fruit_score"`
	Results     ResultsConfig `yaml:"results"`
}

// Rules returns the grid and speed settings as game rules.
func (c *CaterpillarConfig) Rules() caterpillar.Rules {
	return caterpillar.Rules{
		Squares:     c.Squares,
		InitialTick: c.InitialTick,
		SpeedFactor: c.SpeedFactor,
		FruitScore:  c.FruitScore,
	}
}

// Validate checks display settings and the rules.
func (c *CaterpillarConfig) Validate() error {
	if err := c.Display.validate(); err != nil {
		return err
	}
	if c.Results.Keep < 0 {
		return fmt.Errorf("%w: results keep %d", ErrInvalidConfig, c.Results.Keep)
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ParseHexColor parses "#rrggbb" or "rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
