package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/runner/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
	assert.Equal(t, 720, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 100, cfg.World.TileSize)
	assert.Equal(t, 10, cfg.World.MaxObjects)
	assert.Equal(t, 23.0, cfg.Jump.Impulse)
	assert.Equal(t, 7.0, cfg.Collision.AssumedObstacleMass)

	sand, ok := cfg.Terrain.Surfaces["sand"]
	require.True(t, ok)
	assert.Equal(t, 1.7, sand.Gravity)
	assert.Equal(t, 0.12, sand.Friction)

	require.NotEmpty(t, cfg.Spawn.Gaps)
	assert.Equal(t, 500, cfg.Spawn.Gaps[0].Gap)
	assert.Equal(t, 300, cfg.Spawn.Gaps[len(cfg.Spawn.Gaps)-1].Gap)
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader("../../../cmd/runner/configs")

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.Player.Mass)
	assert.Equal(t, 100, cfg.Player.Width)

	statue, ok := cfg.Obstacles["statue"]
	require.True(t, ok)
	assert.Equal(t, 7.0, statue.Mass)

	assert.Equal(t, 1000, cfg.Coin.Value)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/runner/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Entities)
}

func TestPhysicsConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PhysicsConfig)
		wantErr string
	}{
		{
			"zero tile size",
			func(c *PhysicsConfig) { c.World.TileSize = 0 },
			"tileSize",
		},
		{
			"no surfaces",
			func(c *PhysicsConfig) { c.Terrain.Surfaces = nil },
			"surfaces",
		},
		{
			"no spawn gaps",
			func(c *PhysicsConfig) { c.Spawn.Gaps = nil },
			"gaps",
		},
		{
			"unsorted gaps",
			func(c *PhysicsConfig) {
				c.Spawn.Gaps = []SpawnGap{{MinScore: 100, Gap: 400}, {MinScore: 50, Gap: 500}}
			},
			"sorted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader("../../../cmd/runner/configs")
			cfg, err := loader.LoadPhysics()
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
