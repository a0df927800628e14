package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gallery/config"
	"github.com/pthm-cable/gallery/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		s, err := game.NewScene(opts)
		if err != nil {
			slog.Error("failed to create scene", "error", err)
			os.Exit(1)
		}
		defer s.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
		)

		for {
			s.UpdateHeadless()

			if *maxTicks > 0 && int(s.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", s.Tick())
				return
			}
		}
	} else {
		// Graphical mode
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Orbital Gallery")
		defer rl.CloseWindow()

		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		s, err := game.NewScene(opts)
		if err != nil {
			slog.Error("failed to create scene", "error", err)
			os.Exit(1)
		}
		defer s.Unload()
		s.InitGraphics()

		for !rl.WindowShouldClose() {
			s.Update()
			s.Draw()

			if *maxTicks > 0 && int(s.Tick()) >= *maxTicks {
				break
			}
		}
	}
}
