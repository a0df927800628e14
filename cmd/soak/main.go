// Package main runs a headless soak of the scene: it clicks a random
// active body on a fixed cadence for a configured number of ticks and
// reports aggregate behavior at the end. Useful for leak hunting and
// for validating the destroy/respawn loop over long runs.
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/gallery/config"
	"github.com/pthm-cable/gallery/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 36000, "Ticks to run")
	clickEvery := flag.Int("click-every", 30, "Ticks between synthetic clicks")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	s, err := game.NewScene(game.Options{
		Seed:      rngSeed,
		LogStats:  true,
		OutputDir: *outputDir,
		Headless:  true,
	})
	if err != nil {
		slog.Error("failed to create scene", "error", err)
		os.Exit(1)
	}
	defer s.Unload()

	slog.Info("starting soak",
		"seed", rngSeed,
		"max_ticks", *maxTicks,
		"click_every", *clickEvery,
	)

	rng := rand.New(rand.NewSource(rngSeed + 1))
	var effectSamples []float64

	for int(s.Tick()) < *maxTicks {
		if *clickEvery > 0 && s.Tick()%int64(*clickEvery) == 0 {
			clickRandomActive(s, rng)
			effectSamples = append(effectSamples, float64(s.ActiveExplosions()))
		}
		s.UpdateHeadless()
	}

	sort.Float64s(effectSamples)
	report := slog.With(
		"ticks", s.Tick(),
		"elapsed", s.Elapsed(),
		"score", s.Score(),
		"live_effects", s.ActiveExplosions(),
	)
	if len(effectSamples) > 0 {
		report = report.With(
			"effects_mean", stat.Mean(effectSamples, nil),
			"effects_p90", stat.Quantile(0.9, stat.Empirical, effectSamples, nil),
		)
	}
	report.Info("soak_complete")
}

// clickRandomActive queues a click on a uniformly chosen active body.
func clickRandomActive(s *game.Scene, rng *rand.Rand) {
	states := s.BodyStates()
	active := states[:0]
	for _, st := range states {
		if st.Visible {
			active = append(active, st)
		}
	}
	if len(active) == 0 {
		return
	}
	s.Click(active[rng.Intn(len(active))].ID)
}
