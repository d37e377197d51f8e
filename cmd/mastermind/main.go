package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/younwookim/bqdemos/internal/application/game"
	"github.com/younwookim/bqdemos/internal/application/replay"
	"github.com/younwookim/bqdemos/internal/application/scene/mastermind"
	"github.com/younwookim/bqdemos/internal/application/system"
	mm "github.com/younwookim/bqdemos/internal/domain/mastermind"
	"github.com/younwookim/bqdemos/internal/infrastructure/config"
	"github.com/younwookim/bqdemos/internal/infrastructure/obslog"
	"github.com/younwookim/bqdemos/internal/infrastructure/results"
	"github.com/younwookim/bqdemos/internal/timing"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Directory with YAML configs (default: embedded)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and print the outcome")
	seedFlag := flag.Int64("seed", 0, "Seed for the first password (0 draws from the clock)")
	flag.Parse()

	_ = godotenv.Load()
	if err := obslog.InitFromEnv(mastermind.GameName); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer obslog.Sync()
	logger := obslog.L()

	loader := config.Open(*configDir)
	cfg, err := loader.LoadMastermind()
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", loader.BasePath()), zap.Error(err))
	}
	rules, err := cfg.Rules()
	if err != nil {
		logger.Fatal("invalid rules", zap.Error(err))
	}

	if *replayFlag != "" {
		summary, err := RunReplay(*replayFlag, rules, logger)
		if err != nil {
			logger.Fatal("replay failed", zap.String("path", *replayFlag), zap.Error(err))
		}
		fmt.Println(summary)
		return
	}

	bindings, err := system.ParseBindings(cfg.Keys)
	if err != nil {
		logger.Fatal("invalid key bindings", zap.Error(err))
	}

	redisURL := cfg.Results.RedisURL
	if v := os.Getenv("REDIS_URL"); v != "" {
		redisURL = v
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	store, err := results.Open(ctx, redisURL, cfg.Results.KeyPrefix, cfg.Results.Keep)
	cancel()
	if err != nil {
		logger.Warn("result store unavailable, keeping results in memory", zap.Error(err))
		store = results.NewMemoryStore(cfg.Results.Keep)
	}
	defer func() { _ = store.Close() }()

	var seeds mm.SeedSource
	if *seedFlag != 0 {
		seeds = mm.NewFixedSeeds([]int64{*seedFlag}, nil)
	}

	clock := timing.NewMonotonicClock()
	now := clock.Now()
	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder(mastermind.GameName, now)
	}

	board := mastermind.New(mastermind.Options{
		Rules:      rules,
		Input:      system.NewInputSystem(bindings),
		Bindings:   bindings,
		Generator:  mm.NewGenerator(seeds),
		Store:      store,
		Recorder:   recorder,
		RecordPath: *recordFlag,
		Logger:     logger,
	}, now)

	d := cfg.Display
	g := game.New(board, clock, d.ScreenWidth, d.ScreenHeight)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.TPS)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
