package system

import (
	"math/rand"

	"github.com/hillrush/hillrush/internal/domain/entity"
	"github.com/hillrush/hillrush/internal/domain/geom"
	"github.com/hillrush/hillrush/internal/infrastructure/config"
)

// Spawned holds at most one newly spawned object. The zero value
// means nothing spawned this tick.
type Spawned struct {
	Obstacle *entity.Obstacle
	Coin     *entity.Coin
	Power    *entity.Power
}

// Empty reports whether nothing was spawned
func (s Spawned) Empty() bool {
	return s.Obstacle == nil && s.Coin == nil && s.Power == nil
}

// Spawner drops obstacles, coins and power-ups at the right screen
// edge. A countdown timer gates spawns; the gap between spawns
// shrinks as the score grows, and the world object cap makes a
// crowded screen progressively less likely to spawn more.
type Spawner struct {
	config   *config.PhysicsConfig
	entities *config.EntitiesConfig
	rng      *rand.Rand
	timer    int
}

// NewSpawner creates a spawner with the timer at the opening gap
func NewSpawner(cfg *config.PhysicsConfig, ents *config.EntitiesConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		config:   cfg,
		entities: ents,
		rng:      rng,
		timer:    cfg.Spawn.Gaps[0].Gap,
	}
}

// Gap returns the spawn gap for a score. Entries past the first
// apply once the score strictly exceeds their threshold.
func (s *Spawner) Gap(score int) int {
	gaps := s.config.Spawn.Gaps
	gap := gaps[0].Gap
	for _, g := range gaps[1:] {
		if score <= g.MinScore {
			break
		}
		gap = g.Gap
	}
	return gap
}

// Update advances the spawn timer and possibly spawns one object at
// spawnX, resting on the ground at groundY.
func (s *Spawner) Update(score, numObjects, spawnX, groundY int) Spawned {
	if s.timer > 0 {
		s.timer--
		return Spawned{}
	}

	gap := s.Gap(score)
	trigger := s.rng.Intn(s.config.World.MaxObjects)
	if trigger < numObjects {
		// Crowded screen, back off for a random fraction of the gap
		s.timer = s.rng.Intn(gap)
		return Spawned{}
	}

	s.timer = gap
	return s.spawn(spawnX, groundY)
}

func (s *Spawner) spawn(spawnX, groundY int) Spawned {
	switch s.rng.Intn(5) {
	case 0:
		return Spawned{Obstacle: s.spawnObstacle(entity.ObstacleStatue, spawnX, groundY)}
	case 1:
		return Spawned{Obstacle: s.spawnObstacle(entity.ObstacleChest, spawnX, groundY)}
	case 2:
		return Spawned{Obstacle: s.spawnObstacle(entity.ObstacleBalloon, spawnX, groundY)}
	case 3:
		size := s.entities.Coin.Size
		pos := geom.Point{X: spawnX, Y: groundY - size}
		return Spawned{Coin: entity.NewCoin(pos, size, s.entities.Coin.Value)}
	default:
		kind := entity.PowerType(s.rng.Intn(5) + 1)
		size := s.entities.Power.Size
		pos := geom.Point{X: spawnX, Y: groundY - size}
		return Spawned{Power: entity.NewPower(kind, pos, size)}
	}
}

func (s *Spawner) spawnObstacle(kind entity.ObstacleType, spawnX, groundY int) *entity.Obstacle {
	oc, ok := s.entities.Obstacles[kind.String()]
	if !ok {
		oc = config.ObstacleConfig{Mass: 7.0, Width: s.config.World.TileSize, Height: s.config.World.TileSize}
	}
	pos := geom.Point{X: spawnX, Y: groundY - oc.Height}
	return entity.NewObstacle(kind, pos, oc.Width, oc.Height, oc.Mass)
}
