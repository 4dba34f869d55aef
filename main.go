package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/throne-wars/config"
	"github.com/automoto/throne-wars/fonts"
	"github.com/automoto/throne-wars/records"
	"github.com/automoto/throne-wars/scenes"
	"github.com/automoto/throne-wars/shared/arena"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(settings scenes.Settings) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g, settings)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("tuning", "", "YAML tuning overrides")
	mapPath := flag.String("map", "", "Tiled arena map (empty = bundled arena)")
	seed := flag.Int64("seed", 0, "Random seed for every battle (0 = from clock)")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadOverrides(os.DirFS(filepath.Dir(*tuning)), filepath.Base(*tuning)); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	settings := scenes.Settings{Seed: *seed}
	if store, err := records.Open("throne-wars"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		settings.Records = store
	}
	if *mapPath != "" {
		layout, err := arena.Load(os.DirFS(filepath.Dir(*mapPath)), filepath.Base(*mapPath))
		if err != nil {
			log.Fatalf("Failed to load arena: %v", err)
		}
		settings.Layout = layout
		config.C.Width, config.C.Height = int(layout.Width), int(layout.Height)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Throne Wars")
	ebiten.SetTPS(config.Sim.TicksPerSecond)

	if err := ebiten.RunGame(NewGame(settings)); err != nil {
		log.Fatal(err)
	}
}
