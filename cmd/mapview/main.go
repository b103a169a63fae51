//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OCharnyshevich/hexworld/internal/config"
	"github.com/OCharnyshevich/hexworld/internal/mapgen"
	"github.com/OCharnyshevich/hexworld/internal/mapgen/hexgrid"
	"github.com/OCharnyshevich/hexworld/internal/render"
	"github.com/OCharnyshevich/hexworld/internal/ruleset"
)

var mapTypes = []hexgrid.MapType{
	hexgrid.MapTypeDefault,
	hexgrid.MapTypePangaea,
	hexgrid.MapTypeInnerSea,
	hexgrid.MapTypeContinentAndIslands,
	hexgrid.MapTypeTwoContinents,
	hexgrid.MapTypeThreeContinents,
	hexgrid.MapTypeFourCorners,
	hexgrid.MapTypeArchipelago,
}

// game regenerates and shows a map. R reseeds, T cycles the map type.
type game struct {
	log      *slog.Logger
	rs       *ruleset.Ruleset
	pal      render.Palette
	params   hexgrid.MapParameters
	seed     int64
	typeIdx  int
	img      *ebiten.Image
	cellSize int
}

func (g *game) regenerate() error {
	g.params.Type = mapTypes[g.typeIdx]
	rng := rand.New(rand.NewPCG(uint64(g.seed), 0))
	gen, err := mapgen.NewLandmassGenerator(g.rs, rng, g.log)
	if err != nil {
		return err
	}
	m := hexgrid.New(g.params)
	gen.Generate(m)
	g.img = ebiten.NewImageFromImage(render.Image(m, g.pal, g.cellSize))
	ebiten.SetWindowTitle("hexworld: " + string(g.params.Type))
	return nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed = time.Now().UnixNano()
		return g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.typeIdx = (g.typeIdx + 1) % len(mapTypes)
		return g.regenerate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	b := g.img.Bounds()
	return b.Dx(), b.Dy()
}

func main() {
	cfg := config.DefaultConfig()
	flag.StringVar(&cfg.Shape, "shape", cfg.Shape, "map shape (rectangular, hexagonal, flatEarth)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "map width in tiles (rectangular)")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "map height in tiles (rectangular)")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "map radius in tiles (hexagonal, flatEarth)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "generation seed (0 = random)")
	flag.Float64Var(&cfg.WaterThreshold, "water-threshold", cfg.WaterThreshold, "elevation below this becomes water")
	flag.BoolVar(&cfg.WorldWrap, "wrap", cfg.WorldWrap, "wrap the world east-west")
	cell := flag.Int("cell", 8, "cell size in pixels")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	rs := ruleset.Default()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &game{
		log:      logger,
		rs:       rs,
		pal:      render.ByType(rs),
		params:   cfg.MapParameters(),
		seed:     seed,
		cellSize: *cell,
	}
	if err := g.regenerate(); err != nil {
		log.Fatal(err)
	}

	b := g.img.Bounds()
	ebiten.SetWindowSize(b.Dx(), b.Dy())

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
