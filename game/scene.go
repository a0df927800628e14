// Package game owns the scene: the orbiting bodies, the active explosion
// effects, and the wiring between destruction, score, and cleanup.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gallery/components"
	"github.com/pthm-cable/gallery/config"
	"github.com/pthm-cable/gallery/systems"
	"github.com/pthm-cable/gallery/telemetry"
)

// Options configures scene construction.
type Options struct {
	Seed           int64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Scene owns the body and explosion collections and drives one simulation
// step per external tick. All mutation happens synchronously inside Step;
// no component reaches into another's state directly.
type Scene struct {
	world *ecs.World
	rng   *rand.Rand
	cfg   *config.Config
	clock *systems.Clock

	mapper *ecs.Map5[
		components.Position,
		components.Attitude,
		components.Orbit,
		components.Body,
		components.Hit,
	]
	filter *ecs.Filter5[
		components.Position,
		components.Attitude,
		components.Orbit,
		components.Body,
		components.Hit,
	]

	// Individual component mappers for id-based lookups
	posMap   *ecs.Map1[components.Position]
	orbitMap *ecs.Map1[components.Orbit]
	bodyMap  *ecs.Map1[components.Body]
	hitMap   *ecs.Map1[components.Hit]

	// Bodies are created once at init and never removed, only toggled
	// between hit phases, so this index stays valid for the scene's life.
	entities map[uint32]ecs.Entity

	// Explosions keyed by a monotonically increasing effect id counter.
	explosions   map[uint32]*systems.Explosion
	nextBodyID   uint32
	nextEffectID uint32

	// Clicks queued between ticks; resolved entity ids from the hit test.
	pendingClicks []uint32

	explosionParams systems.ExplosionParams

	score     *ScoreTracker
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	tick   int64
	paused bool

	// Simulation ticks per update call in the graphical driver
	stepsPerUpdate int

	// Rendering collaborators; nil when headless
	gfx *graphics
}

// NewScene creates a scene with the configured body population.
func NewScene(opts Options) (*Scene, error) {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	s := &Scene{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		cfg:   cfg,
		clock: systems.NewClock(cfg.Clock.MaxDelta),
		mapper: ecs.NewMap5[
			components.Position,
			components.Attitude,
			components.Orbit,
			components.Body,
			components.Hit,
		](world),
		filter: ecs.NewFilter5[
			components.Position,
			components.Attitude,
			components.Orbit,
			components.Body,
			components.Hit,
		](world),
		posMap:   ecs.NewMap1[components.Position](world),
		orbitMap: ecs.NewMap1[components.Orbit](world),
		bodyMap:  ecs.NewMap1[components.Body](world),
		hitMap:   ecs.NewMap1[components.Hit](world),

		entities:   make(map[uint32]ecs.Entity),
		explosions: make(map[uint32]*systems.Explosion),

		explosionParams: explosionParamsFromConfig(&cfg.Explosion),

		score:          NewScoreTracker(cfg.Interaction.ScorePerKill),
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		logStats:       opts.LogStats,
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	s.output = output
	if err := s.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	s.spawnBodies()

	slog.Info("scene_initialized",
		"ships", cfg.Scene.Ships,
		"asteroids", cfg.Scene.Asteroids,
		"seed", opts.Seed,
	)

	return s, nil
}

// explosionParamsFromConfig converts the config section to system params.
func explosionParamsFromConfig(c *config.ExplosionConfig) systems.ExplosionParams {
	palette := make([]components.Color, len(c.Palette))
	for i, p := range c.Palette {
		palette[i] = components.Color{R: p.R, G: p.G, B: p.B}
	}
	return systems.ExplosionParams{
		ParticleCount:  c.ParticleCount,
		VelocityRange:  float32(c.VelocityRange),
		SizeMin:        float32(c.SizeMin),
		SizeMax:        float32(c.SizeMax),
		DampingFactor:  float32(c.DampingFactor),
		ShrinkFactor:   float32(c.ShrinkFactor),
		OpacityDecay:   float32(c.OpacityDecay),
		ReferenceTick:  c.ReferenceTick,
		FlashIntensity: float32(c.FlashIntensity),
		Palette:        palette,
	}
}

// Click queues a resolved pointer hit for the next step. The hit test
// itself is external; the scene consumes only the entity id.
func (s *Scene) Click(entityID uint32) {
	s.pendingClicks = append(s.pendingClicks, entityID)
}

// Score returns the current score.
func (s *Scene) Score() int {
	return s.score.Score()
}

// Elapsed returns seconds since scene start.
func (s *Scene) Elapsed() float64 {
	return s.clock.Elapsed()
}

// Tick returns the current simulation tick.
func (s *Scene) Tick() int64 {
	return s.tick
}

// BodyCount returns the total number of orbiting bodies.
func (s *Scene) BodyCount() int {
	return len(s.entities)
}

// ActiveExplosions returns the number of live explosion effects.
func (s *Scene) ActiveExplosions() int {
	return len(s.explosions)
}

// activeCounts tallies Active bodies per kind.
func (s *Scene) activeCounts() (ships, asteroids int) {
	query := s.filter.Query()
	for query.Next() {
		_, _, _, body, hit := query.Get()
		if !hit.Active() {
			continue
		}
		if body.Kind == components.KindShip {
			ships++
		} else {
			asteroids++
		}
	}
	return ships, asteroids
}

// Unload releases output resources.
func (s *Scene) Unload() {
	if s.output != nil {
		if err := s.output.Close(); err != nil {
			slog.Error("closing telemetry output", "error", err)
		}
	}
}
