package main

import (
	"flag"
	"log"

	"github.com/automoto/seed-hodl/config"
	"github.com/automoto/seed-hodl/fonts"
	"github.com/automoto/seed-hodl/scenes"
	"github.com/automoto/seed-hodl/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// resizable scenes are told when the window's logical size changes
type resizable interface {
	Resize(width, height int)
}

type Game struct {
	width, height int
	scene         Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		width:  config.C.Width,
		height: config.C.Height,
	}
	g.scene = scenes.NewStakingScene(g, g.width, g.height)

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
	if width <= 0 || height <= 0 {
		return g.width, g.height
	}
	if width != g.width || height != g.height {
		g.width, g.height = width, height
		if r, ok := g.scene.(resizable); ok {
			r.Resize(width, height)
		}
	}
	return g.width, g.height
}

func main() {
	width := flag.Int("width", config.C.Width, "initial window width")
	height := flag.Int("height", config.C.Height, "initial window height")
	days := flag.Int("days", 0, "pretend the streak started this many days ago")
	fresh := flag.Bool("fresh", false, "discard the saved streak and start a new one")
	debug := flag.Bool("debug", false, "show the debug overlay (toggle with F3)")
	flag.Parse()

	config.C.Width = *width
	config.C.Height = *height
	config.Debug.StartDaysAgo = *days
	config.Debug.Fresh = *fresh
	config.Debug.Overlay = *debug

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence; without it the streak lives only in memory
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	g := NewGame()
	err := ebiten.RunGame(g)
	if c, ok := g.scene.(interface{ Close() }); ok {
		c.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
}
