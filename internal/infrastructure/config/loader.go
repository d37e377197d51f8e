package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/bqdemos/configs"
	"github.com/younwookim/bqdemos/internal/domain/caterpillar"
	"github.com/younwookim/bqdemos/internal/domain/turntimer"
)

// File names looked up by the loader
const (
	MastermindFile  = "mastermind.yaml"
	TrackerFile     = "turntracker.yaml"
	CaterpillarFile = "caterpillar.yaml"
)

// Loader loads demo configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Open returns a loader over dir, or over the embedded defaults when dir is empty.
func Open(dir string) *Loader {
	if dir == "" {
		return NewFSLoader(configs.FS, "embedded")
	}
	return NewLoader(dir)
}

// BasePath returns where the files are read from, for logs
func (l *Loader) BasePath() string {
	return l.basePath
}

// load decodes name over out, so fields absent from the file keep the
// values out already holds.
func (l *Loader) load(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadMastermind loads and validates mastermind.yaml
func (l *Loader) LoadMastermind() (*MastermindConfig, error) {
	cfg := DefaultMastermind()
	if err := l.load(MastermindFile, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", MastermindFile, err)
	}
	return cfg, nil
}

// LoadTracker loads and validates turntracker.yaml
func (l *Loader) LoadTracker() (*TrackerConfig, error) {
	cfg := DefaultTracker()
	if err := l.load(TrackerFile, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", TrackerFile, err)
	}
	return cfg, nil
}

// LoadCaterpillar loads and validates caterpillar.yaml
func (l *Loader) LoadCaterpillar() (*CaterpillarConfig, error) {
	cfg := DefaultCaterpillar()
	if err := l.load(CaterpillarFile, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", CaterpillarFile, err)
	}
	return cfg, nil
}

// DefaultMastermind returns the classic game: six colors, four slots, eight guesses.
func DefaultMastermind() *MastermindConfig {
	return &MastermindConfig{
		Display:    DisplayConfig{ScreenWidth: 480, ScreenHeight: 670, Scale: 1, TPS: 60, Title: "Mastermind"},
		Palette:    []string{"red", "orange", "yellow", "green", "blue", "purple"},
		Slots:      4,
		MaxGuesses: 8,
		Results:    ResultsConfig{KeyPrefix: "bqdemos:mastermind", Keep: 50},
	}
}

// DefaultTracker returns a tracker config without participants.
func DefaultTracker() *TrackerConfig {
	return &TrackerConfig{
		Display: DisplayConfig{ScreenWidth: 800, ScreenHeight: 450, Scale: 1, TPS: 60, Title: "Turn tracker"},
		MinTurn: turntimer.DefaultMinTurn,
	}
}

// DefaultCaterpillar returns a 16x16 grid starting at 200ms per move.
func DefaultCaterpillar() *CaterpillarConfig {
	r := caterpillar.DefaultRules()
	return &CaterpillarConfig{
		Display:     DisplayConfig{ScreenWidth: 512, ScreenHeight: 512, Scale: 1, TPS: 60, Title: "Caterpillar"},
		Squares:     r.Squares,
		InitialTick: r.InitialTick,
		SpeedFactor: r.SpeedFactor,
		FruitScore:  r.FruitScore,
		Results:     ResultsConfig{KeyPrefix: "bqdemos:caterpillar", Keep: 50},
	}
}

