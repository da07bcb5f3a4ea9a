package system

import (
	"math/rand"

	"github.com/hillrush/hillrush/internal/domain/entity"
	"github.com/hillrush/hillrush/internal/domain/terrain"
	"github.com/hillrush/hillrush/internal/infrastructure/config"
)

// Simulation owns the whole run state and advances it one tick at a
// time. Each tick runs to completion: input, forces, integration,
// collision, scrolling, spawning, cleanup, scoring.
type Simulation struct {
	config   *config.PhysicsConfig
	entities *config.EntitiesConfig

	forces    *ForceSystem
	collision *CollisionSystem
	power     *PowerUpState
	spawner   *Spawner
	input     *InputSystem

	terrain *terrain.Terrain
	player  *entity.Player

	obstacles []*entity.Obstacle
	coins     []*entity.Coin
	powers    []*entity.Power

	score     int
	coinCount int
	distance  int
	ticks     int
	gameOver  bool
}

// NewSimulation builds a fresh run from the configs and a seeded rng
func NewSimulation(cfg *config.PhysicsConfig, ents *config.EntitiesConfig, rng *rand.Rand) *Simulation {
	forces := NewForceSystem(cfg)
	tr := terrain.New(rng, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.World.TileSize)

	s := &Simulation{
		config:    cfg,
		entities:  ents,
		forces:    forces,
		collision: NewCollisionSystem(cfg, forces),
		power:     NewPowerUpState(cfg),
		spawner:   NewSpawner(cfg, ents, rng),
		input:     NewInputSystem(cfg),
		terrain:   tr,
	}
	s.player = s.spawnPlayer()
	return s
}

// NewFlatSimulation builds a run on level asphalt, for tuning and
// deterministic tests.
func NewFlatSimulation(cfg *config.PhysicsConfig, ents *config.EntitiesConfig, rng *rand.Rand, groundY int) *Simulation {
	s := NewSimulation(cfg, ents, rng)
	s.terrain = terrain.NewFlat(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.World.TileSize, groundY)
	s.player = s.spawnPlayer()
	return s
}

func (s *Simulation) spawnPlayer() *entity.Player {
	pc := s.entities.Player
	x := s.config.Display.ScreenWidth / 4
	ground, _ := s.terrain.GroundAt(x)
	// Start embedded the same way a landing snap leaves the player
	pos := ground
	pos.Y -= pc.Height * 95 / 100
	p := entity.NewPlayer(pos, pc.Width, pc.Height, pc.Mass, s.config.Jump.Impulse, s.config.Jump.FlipRate)
	p.SetVel(s.config.Velocity.MinSpeed, 0)
	return p
}

// Player returns the player body
func (s *Simulation) Player() *entity.Player { return s.player }

// Terrain returns the scrolling ground
func (s *Simulation) Terrain() *terrain.Terrain { return s.terrain }

// Obstacles returns the live obstacles
func (s *Simulation) Obstacles() []*entity.Obstacle { return s.obstacles }

// Coins returns the live coins
func (s *Simulation) Coins() []*entity.Coin { return s.coins }

// Powers returns the live power-ups
func (s *Simulation) Powers() []*entity.Power { return s.powers }

// Score returns the accumulated score
func (s *Simulation) Score() int { return s.score }

// CoinCount returns how many coins were collected
func (s *Simulation) CoinCount() int { return s.coinCount }

// Distance returns the total pixels scrolled
func (s *Simulation) Distance() int { return s.distance }

// Ticks returns the number of ticks simulated
func (s *Simulation) Ticks() int { return s.ticks }

// GameOver reports whether the run has ended
func (s *Simulation) GameOver() bool { return s.gameOver }

// PowerState returns the power-up state
func (s *Simulation) PowerState() *PowerUpState { return s.power }

// Tick advances the simulation by one step
func (s *Simulation) Tick(in InputState) {
	if s.gameOver {
		return
	}
	s.ticks++
	stepScore := 0

	playerX := s.player.Hitbox().Center().X
	ground, onMap := s.terrain.GroundAt(playerX)
	angle := s.terrain.AngleAt(playerX)
	surface := s.terrain.TypeAt(playerX)

	s.input.ApplyInput(s.player, in, s.power.JumpBoost())

	// Forces
	s.forces.ApplyTerrainForces(s.player, s.player.Grounded(), angle, surface, s.power.GravityScale())
	if s.player.Grounded() {
		if surface == entity.TerrainWater {
			s.forces.ApplyBuoyancy(s.player, ground.Y)
		} else {
			s.forces.ApplySkateForce(s.player, angle, s.power.Active() == entity.PowerSpeedBoost)
		}
	}

	// Integration
	s.player.UpdateVel(entity.VelClamp{
		MinVX: s.config.Velocity.MinSpeed,
		MaxVX: s.config.Velocity.MaxSpeed + s.power.SpeedBoost(),
		MinVY: -s.power.FallCap(),
		MaxVY: s.config.Velocity.RiseCap,
	})
	s.player.UpdatePos()
	s.player.Flip()

	// Terrain contact
	_, vy := s.player.Vel()
	if onMap && vy <= 0 && s.player.Hitbox().Contains(ground) {
		if !s.player.CollideTerrain(ground, angle, s.collision.LandingTolerance()) {
			s.gameOver = true
		}
	} else if s.player.Grounded() && !s.player.Hitbox().Contains(ground) {
		// Rode off an edge
		s.player.SetGrounded(false)
	}

	// Obstacles
	for _, o := range s.obstacles {
		if s.collision.CollideObstacle(s.player, o, s.power.Shielded()) {
			s.gameOver = true
		}
		o.Update()
	}

	// Collectibles
	for _, c := range s.coins {
		if s.collision.Collect(s.player, c) {
			stepScore += c.Value()
			s.coinCount++
		}
	}
	for _, p := range s.powers {
		if s.collision.Collect(s.player, p) {
			s.power.Activate(p.Type())
		}
	}
	// Bouncy shoes jump off the ground on their own, every tick
	if s.power.Active() == entity.PowerBouncyShoes && s.player.Grounded() {
		s.player.Jump(s.power.JumpBoost())
	}
	s.power.Tick()

	// Scroll the world by the player's forward motion
	vx, _ := s.player.Vel()
	dist := int(s.config.Velocity.MinSpeed) + int(vx)
	s.terrain.TravelUpdate(dist)
	for _, o := range s.obstacles {
		o.Travel(float64(dist))
	}
	for _, c := range s.coins {
		c.Travel(float64(dist))
	}
	for _, p := range s.powers {
		p.Travel(float64(dist))
	}
	s.distance += dist
	stepScore += dist

	// Spawn at the right edge
	edge := s.config.Display.ScreenWidth
	spawnGround, ok := s.terrain.GroundAt(edge - 1)
	if ok {
		got := s.spawner.Update(s.score, s.objectCount(), edge, spawnGround.Y)
		switch {
		case got.Obstacle != nil:
			s.obstacles = append(s.obstacles, got.Obstacle)
		case got.Coin != nil:
			s.coins = append(s.coins, got.Coin)
		case got.Power != nil:
			s.powers = append(s.powers, got.Power)
		}
	}

	s.sweep()

	if !s.gameOver {
		s.score += stepScore * s.power.ScoreMultiplier()
	}

	// Accumulators clear at the very end so next tick starts clean
	s.player.ResetAccel()
	for _, o := range s.obstacles {
		o.ResetAccel()
	}
}

func (s *Simulation) objectCount() int {
	return len(s.obstacles) + len(s.coins) + len(s.powers)
}

// sweep removes collected pickups and anything that left the screen
func (s *Simulation) sweep() {
	obstacles := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.DeleteMe || o.Hitbox().Right() <= 0 {
			continue
		}
		obstacles = append(obstacles, o)
	}
	s.obstacles = obstacles

	coins := s.coins[:0]
	for _, c := range s.coins {
		if c.Collected() || c.Hitbox().Right() <= 0 {
			continue
		}
		coins = append(coins, c)
	}
	s.coins = coins

	powers := s.powers[:0]
	for _, p := range s.powers {
		if p.Collected() || p.Hitbox().Right() <= 0 {
			continue
		}
		powers = append(powers, p)
	}
	s.powers = powers
}
