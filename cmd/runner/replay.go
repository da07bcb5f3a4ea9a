package main

import (
	"fmt"
	"log"

	"github.com/hillrush/hillrush/internal/application/replay"
	"github.com/hillrush/hillrush/internal/application/scene/playing"
	"github.com/hillrush/hillrush/internal/infrastructure/config"
)

// newReplayScene loads a recording and builds a scene that plays it
// back on the recording's own seed.
func newReplayScene(cfg *config.GameConfig, path string) (*playing.Playing, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load replay %s: %w", path, err)
	}

	log.Printf("Replaying %s: %d frames (seed: %d)", path, len(data.Frames), data.Seed)
	return playing.NewReplay(cfg.Physics, cfg.Entities, *data), nil
}
