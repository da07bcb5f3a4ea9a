package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hillrush/hillrush/internal/application/game"
	"github.com/hillrush/hillrush/internal/application/scene"
	"github.com/hillrush/hillrush/internal/application/scene/playing"
	"github.com/hillrush/hillrush/internal/infrastructure/config"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recorded run from file")
	seedFlag := flag.Int64("seed", 0, "Seed for the run (0 = random)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var initial scene.Scene
	if *replayFlag != "" {
		initial, err = newReplayScene(cfg, *replayFlag)
		if err != nil {
			log.Fatalf("Failed to set up replay: %v", err)
		}
	} else {
		initial = playing.New(cfg.Physics, cfg.Entities, *seedFlag, *recordFlag)
	}

	g := game.New(initial, cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight)

	ebiten.SetWindowSize(cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight)
	ebiten.SetWindowTitle("Hill Rush")
	ebiten.SetTPS(cfg.Physics.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
