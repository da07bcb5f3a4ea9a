package system

import (
	"math"

	"github.com/hillrush/hillrush/internal/domain/entity"
	"github.com/hillrush/hillrush/internal/domain/geom"
	"github.com/hillrush/hillrush/internal/infrastructure/config"
)

// CollisionSystem resolves player contact with obstacles and pickups
type CollisionSystem struct {
	config *config.PhysicsConfig
	forces *ForceSystem
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cfg *config.PhysicsConfig, forces *ForceSystem) *CollisionSystem {
	return &CollisionSystem{
		config: cfg,
		forces: forces,
	}
}

// CheckCollision reports whether two colliders overlap
func (s *CollisionSystem) CheckCollision(a, b entity.Collider) bool {
	return a.Hitbox().Intersects(b.Hitbox())
}

// Collect takes a pickup if the player touches it and it has not been
// taken already. Returns true only on the tick it is collected.
func (s *CollisionSystem) Collect(player *entity.Player, c entity.Collectible) bool {
	if c.Collected() {
		return false
	}
	if !player.Hitbox().Intersects(c.Hitbox()) {
		return false
	}
	c.Collect()
	return true
}

// LandingTolerance returns the landing angle tolerance in radians
func (s *CollisionSystem) LandingTolerance() float64 {
	return s.config.Collision.LandingToleranceFlips * s.config.Jump.FlipRate
}

// CollideObstacle resolves player contact with an obstacle and
// reports whether the contact kills the run.
//
// Side contact knocks the player off unless shielded; the knock is a
// 1-D elastic collision along the center line against a fixed assumed
// obstacle mass, and each obstacle only knocks once. Balloons are
// soft and never hurt from the side.
//
// Top contact while descending depends on the obstacle: a chest is
// landed on like ground, a balloon bounces the player harmlessly, a
// statue bounces but still ends the run.
func (s *CollisionSystem) CollideObstacle(player *entity.Player, o *entity.Obstacle, shielded bool) bool {
	if !player.Hitbox().Intersects(o.Hitbox()) {
		return false
	}

	// Contact box taller than wide means the player ran into the
	// obstacle's face; wider than tall means it came down on top.
	w, h := overlapBox(player.Hitbox(), o.Hitbox())
	if h > w {
		if shielded || o.Collided || o.Type() == entity.ObstacleBalloon {
			return false
		}
		s.elasticKnock(player, o)
		o.Collided = true
		return true
	}

	_, vy := player.Vel()
	if vy >= 0 {
		// Moving up through the top face, let it pass so the player
		// does not stick to obstacles mid-jump
		return false
	}

	switch o.Type() {
	case entity.ObstacleChest:
		o.Collided = true
		top := geom.Point{X: int(player.X()), Y: o.Hitbox().Top()}
		return !player.CollideTerrain(top, 0, s.LandingTolerance())
	case entity.ObstacleBalloon:
		s.bounceOff(player, o)
		return false
	default: // statue
		s.bounceOff(player, o)
		return true
	}
}

// overlapBox returns the extent-overlap dimensions of two hitboxes
func overlapBox(a, b *geom.PhysRect) (w, h int) {
	w = minInt(a.Right(), b.Right()) - maxInt(a.Left(), b.Left())
	h = minInt(a.Bottom(), b.Bottom()) - maxInt(a.Top(), b.Top())
	return w, h
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// bounceOff springs the player up off the top of an obstacle
func (s *CollisionSystem) bounceOff(player *entity.Player, o *entity.Obstacle) {
	s.forces.ApplyBounce(player, o)
	overlap := float64(player.Hitbox().Bottom() - o.Hitbox().Top())
	if overlap < 0 {
		overlap = 0
	}
	player.Bounce(s.config.Forces.SpringK * overlap)
}

// elasticKnock transfers momentum between the player and an obstacle
// along the line through their centers. The obstacle is treated as at
// rest with the configured assumed mass, so the same knock feels the
// same no matter what was hit.
func (s *CollisionSystem) elasticKnock(player *entity.Player, o *entity.Obstacle) {
	pc := player.Hitbox().Center()
	oc := o.Hitbox().Center()

	dx := float64(pc.X - oc.X)
	dy := float64(pc.Y - oc.Y)
	var angle float64
	if dx != 0 {
		angle = math.Atan(dy / dx)
	}

	pm := player.Mass()
	om := s.config.Collision.AssumedObstacleMass
	vx, _ := player.Vel()

	sin, cos := math.Sincos(angle)
	pv := vx * cos
	pf := (pm - om) * pv / (pm + om)
	of := 2 * pm * pv / (pm + om)

	// Screen-space components back to world velocity (vy positive up)
	player.SetVel(pf*cos, -pf*sin)
	o.SetVel(of*cos, -of*sin)

	// Snap the player just clear of the obstacle face
	tile := float64(s.config.World.TileSize)
	player.SetPos(float64(o.Hitbox().X())-0.95*tile, player.Y())
}
