// Command worldgen assembles a world — obstacles, resources, a weather
// event, and a starting actor — and persists it to SQLite.
package main

import (
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/talgya/hexforge/internal/actor"
	"github.com/talgya/hexforge/internal/environment"
	"github.com/talgya/hexforge/internal/game"
	"github.com/talgya/hexforge/internal/hexgrid"
	"github.com/talgya/hexforge/internal/persistence"
)

type config struct {
	Seed           int64  `env:"WORLDGEN_SEED" envDefault:"42"`
	GridRadius     int    `env:"WORLDGEN_GRID_RADIUS" envDefault:"10"`
	MaxObstacleLen int    `env:"WORLDGEN_MAX_OBSTACLE_LEN" envDefault:"5"`
	Obstacles      int    `env:"WORLDGEN_OBSTACLES" envDefault:"8"`
	Resources      int    `env:"WORLDGEN_RESOURCES" envDefault:"4"`
	DBPath         string `env:"WORLDGEN_DB_PATH" envDefault:"data/world.db"`
	ElementField   bool   `env:"WORLDGEN_ELEMENT_FIELD" envDefault:"true"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse configuration", "error", err)
		os.Exit(1)
	}

	ctx := game.NewContext(cfg.GridRadius, cfg.MaxObstacleLen)
	rng := rand.New(rand.NewSource(cfg.Seed))

	slog.Info("hexforge world generation",
		"seed", cfg.Seed,
		"grid_radius", ctx.GridRadius,
		"max_obstacle_len", ctx.MaxObstacleLen,
	)

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Obstacles ─────────────────────────────────────────────────────
	var field *environment.ElementField
	if cfg.ElementField {
		field = environment.NewElementField(cfg.Seed)
	}

	obstacles := make([]*environment.Obstacle, 0, cfg.Obstacles)
	elementCounts := make(map[game.Element]int)
	for i := 0; i < cfg.Obstacles; i++ {
		var o *environment.Obstacle
		if field != nil {
			// Tag from the affinity field at the obstacle's own origin so
			// neighboring obstacles trend toward the same element.
			o = environment.RandomObstacleInField(rng, ctx, field)
		} else {
			o = environment.RandomObstacle(rng, ctx)
		}
		obstacles = append(obstacles, o)
		elementCounts[o.Element()]++
		slog.Info("obstacle generated",
			"uid", o.UID(), "origin", o.Origin().String(),
			"cells", len(o.Cells()), "element", o.Element(),
		)
	}
	for e, c := range elementCounts {
		slog.Info("element distribution", "element", e, "obstacles", c)
	}

	// ── Resources ─────────────────────────────────────────────────────
	resources := make([]*environment.Resource, 0, cfg.Resources)
	for i := 0; i < cfg.Resources; i++ {
		var r *environment.Resource
		if field != nil {
			r = environment.RandomResourceInField(rng, ctx, field)
		} else {
			r = environment.RandomResource(rng, ctx)
		}
		resources = append(resources, r)
		slog.Info("resource generated",
			"uid", r.UID(), "origin", r.Origin().String(),
			"radius", r.Radius(), "state", r.State(), "element", r.Element(),
		)
	}

	// ── Weather ───────────────────────────────────────────────────────
	weather := environment.RandomWeatherEvent(rng, 0)
	slog.Info("weather event generated",
		"element", weather.Element(),
		"duration", weather.Duration(),
		"peak_intensity", weather.Intensity(weather.Duration()/2),
	)

	// ── Starting actor ────────────────────────────────────────────────
	hero := actor.New("Wanderer", hexgrid.Origin())
	flare := actor.NewAbility("Flare", 3, actor.Aspects{
		Aesthetics: actor.AestheticsImpressive,
		Element:    game.ElementFire,
		Method:     actor.MethodManual,
		Morality:   actor.MoralityNeutral,
		School:     actor.SchoolDestruction,
	})
	hero.AddAbility(flare)

	// ── Persist ───────────────────────────────────────────────────────
	if err := db.SaveObstacles(obstacles); err != nil {
		slog.Error("failed to save obstacles", "error", err)
		os.Exit(1)
	}
	if err := db.SaveResources(resources); err != nil {
		slog.Error("failed to save resources", "error", err)
		os.Exit(1)
	}
	if err := db.SaveActors([]*actor.Actor{hero}); err != nil {
		slog.Error("failed to save actors", "error", err)
		os.Exit(1)
	}
	if err := db.SaveMeta("seed", strconv.FormatInt(cfg.Seed, 10)); err != nil {
		slog.Error("failed to save meta", "error", err)
		os.Exit(1)
	}
	if err := db.SaveMeta("grid_radius", strconv.Itoa(ctx.GridRadius)); err != nil {
		slog.Error("failed to save meta", "error", err)
		os.Exit(1)
	}

	slog.Info("world saved",
		"obstacles", len(obstacles),
		"resources", len(resources),
		"actors", 1,
	)
}
