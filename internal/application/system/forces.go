package system

import (
	"math"

	"github.com/hillrush/hillrush/internal/domain/entity"
	"github.com/hillrush/hillrush/internal/infrastructure/config"
)

// ForceSystem applies the per-tick forces acting on bodies. It only
// accumulates acceleration through Body.ApplyForce; integration is
// the owner's job.
type ForceSystem struct {
	config *config.PhysicsConfig
}

// NewForceSystem creates a new force system
func NewForceSystem(cfg *config.PhysicsConfig) *ForceSystem {
	return &ForceSystem{config: cfg}
}

// Surface returns the physics parameters for a terrain type, falling
// back to asphalt for anything unconfigured.
func (s *ForceSystem) Surface(t entity.TerrainType) config.SurfaceConfig {
	if sc, ok := s.config.Terrain.Surfaces[t.String()]; ok {
		return sc
	}
	return s.config.Terrain.Surfaces[entity.TerrainAsphalt.String()]
}

// ApplyTerrainForces applies gravity and, when grounded, the normal
// and kinetic friction forces for the surface underfoot. angle is the
// slope at the body's position (negative = uphill). gravityScale
// shrinks gravity under the lower-gravity power-up.
func (s *ForceSystem) ApplyTerrainForces(body entity.Body, grounded bool, angle float64, surface entity.TerrainType, gravityScale float64) {
	sc := s.Surface(surface)
	g := sc.Gravity * gravityScale
	m := body.Mass()

	if !grounded {
		body.ApplyForce(0, -m*g)
		return
	}

	sin, cos := math.Sincos(angle)

	// Gravity decomposed along the slope plus the normal force. The
	// perpendicular parts cancel, leaving the downhill pull.
	body.ApplyForce(m*g*sin, -m*g*cos)
	body.ApplyForce(0, m*g*cos)

	// Kinetic friction only. A body at rest gets no friction force,
	// so it stays at rest instead of jittering.
	vx, vy := body.Vel()
	if vx+vy == 0 {
		return
	}
	if vx != 0 {
		f := sc.Friction * m * g * cos
		body.ApplyForce(-math.Copysign(f, vx), 0)
	}
}

// ApplySkateForce propels a grounded player along the slope. The push
// is a fixed fraction of the player's weight, doubled while the speed
// boost is active.
func (s *ForceSystem) ApplySkateForce(player *entity.Player, angle float64, boosted bool) {
	if !player.Grounded() {
		return
	}
	f := player.Mass() / s.config.Forces.SkateDivisor
	if boosted {
		f *= 2
	}
	sin, cos := math.Sincos(angle)
	player.ApplyForce(f*cos, -f*sin)
}

// ApplyBounce pushes the player up off a springy surface with a Hooke
// force proportional to the vertical overlap.
func (s *ForceSystem) ApplyBounce(player *entity.Player, other entity.Collider) {
	overlap := float64(player.Hitbox().Bottom() - other.Hitbox().Top())
	if overlap <= 0 {
		return
	}
	player.ApplyForce(0, s.config.Forces.SpringK*overlap)
}

// ApplyBuoyancy lifts a player submerged below the waterline. The
// force grows with the submerged cross-section and the player's mass
// acting as volume density, capped at full submersion.
func (s *ForceSystem) ApplyBuoyancy(player *entity.Player, waterline int) {
	depth := player.Hitbox().Bottom() - waterline
	if depth <= 0 {
		return
	}
	if depth > player.Hitbox().Height() {
		depth = player.Hitbox().Height()
	}
	area := float64(depth * player.Hitbox().Width())
	density := s.config.Forces.BuoyancyDensityScale * player.Mass()
	g := s.Surface(entity.TerrainWater).Gravity
	player.ApplyForce(0, area*density*g)
}
