package main

import (
	"flag"
	"image/png"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/OCharnyshevich/hexworld/internal/config"
	"github.com/OCharnyshevich/hexworld/internal/mapgen"
	"github.com/OCharnyshevich/hexworld/internal/mapgen/hexgrid"
	"github.com/OCharnyshevich/hexworld/internal/render"
	"github.com/OCharnyshevich/hexworld/internal/ruleset"
)

func main() {
	cfg := config.DefaultConfig()

	flag.StringVar(&cfg.Type, "type", cfg.Type, "map type (default, pangaea, innerSea, continentAndIslands, twoContinents, threeContinents, fourCorners, archipelago)")
	flag.StringVar(&cfg.Shape, "shape", cfg.Shape, "map shape (rectangular, hexagonal, flatEarth)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "map width in tiles (rectangular)")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "map height in tiles (rectangular)")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "map radius in tiles (hexagonal, flatEarth)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "generation seed (0 = random)")
	flag.Float64Var(&cfg.WaterThreshold, "water-threshold", cfg.WaterThreshold, "elevation below this becomes water")
	flag.BoolVar(&cfg.WorldWrap, "wrap", cfg.WorldWrap, "wrap the world east-west")
	flag.StringVar(&cfg.Ruleset, "ruleset", cfg.Ruleset, "ruleset JSON file (empty = built-in)")
	flag.StringVar(&cfg.Out, "o", cfg.Out, "output PNG path")
	configPath := flag.String("config", "", "JSON config file, flags take precedence")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *configPath != "" {
		fromFile, err := config.LoadFile(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	rs := ruleset.Default()
	if cfg.Ruleset != "" {
		var err error
		if rs, err = ruleset.LoadFile(cfg.Ruleset); err != nil {
			log.Error("load ruleset", "error", err)
			os.Exit(1)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))

	gen, err := mapgen.NewLandmassGenerator(rs, rng, log)
	if err != nil {
		log.Error("create generator", "error", err)
		os.Exit(1)
	}

	m := hexgrid.New(cfg.MapParameters())
	gen.Generate(m)

	land := 0
	for _, t := range m.Tiles {
		if isLand(rs, t.Terrain) {
			land++
		}
	}
	log.Info("map generated",
		"type", cfg.Type, "shape", cfg.Shape, "seed", seed,
		"tiles", len(m.Tiles), "land", land, "water", len(m.Tiles)-land)

	img := render.Image(m, render.ByType(rs), 4)
	f, err := os.Create(cfg.Out)
	if err != nil {
		log.Error("create output", "error", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Error("encode png", "error", err)
		os.Exit(1)
	}
	log.Info("map written", "path", cfg.Out)
}

func isLand(rs *ruleset.Ruleset, terrain string) bool {
	for _, t := range rs.Terrains {
		if t.Name == terrain {
			return t.Type == ruleset.TerrainLand
		}
	}
	return false
}
