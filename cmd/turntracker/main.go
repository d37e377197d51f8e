package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/younwookim/bqdemos/internal/application/game"
	"github.com/younwookim/bqdemos/internal/application/scene/turntracker"
	"github.com/younwookim/bqdemos/internal/application/system"
	"github.com/younwookim/bqdemos/internal/infrastructure/config"
	"github.com/younwookim/bqdemos/internal/infrastructure/obslog"
)

func main() {
	configDir := flag.String("config", "", "Directory with YAML configs (default: embedded)")
	flag.Parse()

	_ = godotenv.Load()
	if err := obslog.InitFromEnv("turntracker"); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer obslog.Sync()
	logger := obslog.L()

	loader := config.Open(*configDir)
	cfg, err := loader.LoadTracker()
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", loader.BasePath()), zap.Error(err))
	}
	tracker, err := cfg.NewTracker()
	if err != nil {
		logger.Fatal("invalid participants", zap.Error(err))
	}
	bindings, err := system.ParseBindings(cfg.Keys)
	if err != nil {
		logger.Fatal("invalid key bindings", zap.Error(err))
	}

	table := turntracker.New(turntracker.Options{
		Tracker:  tracker,
		Input:    system.NewInputSystem(bindings),
		Bindings: bindings,
		Logger:   logger,
	})

	d := cfg.Display
	g := game.New(table, nil, d.ScreenWidth, d.ScreenHeight)
	defer g.Close()

	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.TPS)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
