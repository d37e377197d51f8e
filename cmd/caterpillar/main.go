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
	"github.com/younwookim/bqdemos/internal/application/scene/caterpillar"
	"github.com/younwookim/bqdemos/internal/application/system"
	"github.com/younwookim/bqdemos/internal/infrastructure/config"
	"github.com/younwookim/bqdemos/internal/infrastructure/obslog"
	"github.com/younwookim/bqdemos/internal/infrastructure/results"
	"github.com/younwookim/bqdemos/internal/timing"
)

func main() {
	configDir := flag.String("config", "", "Directory with YAML configs (default: embedded)")
	flag.Parse()

	_ = godotenv.Load()
	if err := obslog.InitFromEnv(caterpillar.GameName); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer obslog.Sync()
	logger := obslog.L()

	loader := config.Open(*configDir)
	cfg, err := loader.LoadCaterpillar()
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", loader.BasePath()), zap.Error(err))
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

	clock := timing.NewMonotonicClock()
	field := caterpillar.New(caterpillar.Options{
		Rules:    cfg.Rules(),
		Input:    system.NewInputSystem(bindings),
		Bindings: bindings,
		Store:    store,
		Logger:   logger,
	}, clock.Now())

	d := cfg.Display
	g := game.New(field, clock, d.ScreenWidth, d.ScreenHeight)
	defer g.Close()

	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.TPS)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
