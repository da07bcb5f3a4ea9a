package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hillrush/hillrush/internal/infrastructure/config"
)

func createTestEntitiesConfig() *config.EntitiesConfig {
	return &config.EntitiesConfig{
		Player: config.PlayerConfig{Mass: 3.0, Width: 100, Height: 100},
		Obstacles: map[string]config.ObstacleConfig{
			"statue":  {Mass: 7.0, Width: 100, Height: 100},
			"chest":   {Mass: 7.0, Width: 100, Height: 100},
			"balloon": {Mass: 1.0, Width: 100, Height: 100},
		},
		Coin:  config.CoinConfig{Size: 50, Value: 1000},
		Power: config.PowerConfig{Size: 50},
	}
}

func createTestSpawner(seed int64) *Spawner {
	return NewSpawner(createTestPhysicsConfig(), createTestEntitiesConfig(), rand.New(rand.NewSource(seed)))
}

func TestSpawnGapTable(t *testing.T) {
	s := createTestSpawner(1)

	tests := []struct {
		score    int
		expected int
	}{
		{0, 500},
		{10000, 500},
		{10001, 480},
		{30000, 480},
		{30001, 440},
		{99999, 440},
		{100001, 300},
		{5000000, 300},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, s.Gap(tt.score), "score %d", tt.score)
	}
}

func TestSpawnGapMonotonic(t *testing.T) {
	s := createTestSpawner(1)

	prev := s.Gap(0)
	for score := 0; score <= 200000; score += 500 {
		gap := s.Gap(score)
		assert.LessOrEqual(t, gap, prev, "gap must never grow with score")
		assert.Greater(t, gap, 0)
		prev = gap
	}
}

func TestSpawnerCountsDown(t *testing.T) {
	s := createTestSpawner(1)

	// The opening gap is 500 ticks of guaranteed silence
	for i := 0; i < 500; i++ {
		got := s.Update(0, 0, 1280, 500)
		require.True(t, got.Empty(), "spawned during the opening gap at tick %d", i)
	}
}

func TestSpawnerEventuallySpawns(t *testing.T) {
	s := createTestSpawner(1)

	spawned := 0
	for i := 0; i < 5000; i++ {
		got := s.Update(0, 0, 1280, 500)
		if !got.Empty() {
			spawned++

			if got.Obstacle != nil {
				assert.Equal(t, 1280, got.Obstacle.Hitbox().X())
				assert.Equal(t, 400, got.Obstacle.Hitbox().Y(), "obstacle rests on the ground")
			}
			if got.Coin != nil {
				assert.Equal(t, 450, got.Coin.Hitbox().Y())
			}
		}
	}

	assert.Greater(t, spawned, 0)
	assert.LessOrEqual(t, spawned, 5000/500+1, "never faster than the gap allows")
}

func TestSpawnerRespectsObjectCap(t *testing.T) {
	s := createTestSpawner(1)

	for i := 0; i < 5000; i++ {
		got := s.Update(0, 10, 1280, 500)
		require.True(t, got.Empty(), "spawned past the object cap")
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	a := createTestSpawner(99)
	b := createTestSpawner(99)

	for i := 0; i < 3000; i++ {
		ga := a.Update(i*3, 2, 1280, 500)
		gb := b.Update(i*3, 2, 1280, 500)
		assert.Equal(t, ga.Empty(), gb.Empty(), "tick %d diverged", i)
	}
}
