package entity

import "github.com/hillrush/hillrush/internal/domain/geom"

// Obstacle is a stationary hazard riding the terrain. It only starts
// moving when knocked by an elastic collision with the player.
type Obstacle struct {
	object

	kind ObstacleType

	// Collided latches after the first resolved contact so the same
	// obstacle never knocks the player twice.
	Collided bool

	// DeleteMe marks the obstacle for the end-of-tick sweep.
	DeleteMe bool
}

// NewObstacle creates an obstacle of the given type at pos
func NewObstacle(kind ObstacleType, pos geom.Point, width, height int, mass float64) *Obstacle {
	return &Obstacle{
		object: newObject(pos, width, height, mass),
		kind:   kind,
	}
}

// Type returns the obstacle variant
func (o *Obstacle) Type() ObstacleType { return o.kind }

// Update integrates one tick of obstacle motion. Obstacles are inert
// until a collision gives them velocity.
func (o *Obstacle) Update() {
	o.velX += o.accelX
	o.velY += o.accelY
	o.posX += o.velX
	o.posY -= o.velY
	o.AlignHitbox()
}
