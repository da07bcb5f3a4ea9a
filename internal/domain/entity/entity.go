package entity

import "github.com/hillrush/hillrush/internal/domain/geom"

// Collider exposes a hitbox for intersection tests
type Collider interface {
	Hitbox() *geom.PhysRect
}

// Dynamic is anything with velocity and accumulated acceleration.
// Velocity y is positive upward; positions use screen coordinates
// where y grows downward, so integration subtracts vy.
type Dynamic interface {
	Vel() (vx, vy float64)
	SetVel(vx, vy float64)
	Accel() (ax, ay float64)
	ResetAccel()
}

// Body is a massive dynamic collider that forces act on.
// ApplyForce only accumulates acceleration; integration happens in
// the owner's update step.
type Body interface {
	Collider
	Dynamic
	Mass() float64
	ApplyForce(fx, fy float64)
	Angle() float64
	Rotate(delta float64)
}

// Collectible is a pickup that can be collected at most once
type Collectible interface {
	Collider
	Collect()
	Collected() bool
}
