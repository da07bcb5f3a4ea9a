package entity

import "github.com/hillrush/hillrush/internal/domain/geom"

// object carries the kinematic state shared by every physical entity.
// Position is the float top-left anchor and is the source of truth;
// the integer hitbox follows it through AlignHitbox.
type object struct {
	mass   float64
	posX   float64
	posY   float64
	velX   float64
	velY   float64
	accelX float64
	accelY float64
	omega  float64
	hitbox *geom.PhysRect
}

func newObject(pos geom.Point, width, height int, mass float64) object {
	return object{
		mass:   mass,
		posX:   float64(pos.X),
		posY:   float64(pos.Y),
		hitbox: geom.New(pos.X, pos.Y, width, height),
	}
}

// X returns the top-left anchor x
func (o *object) X() float64 { return o.posX }

// Y returns the top-left anchor y
func (o *object) Y() float64 { return o.posY }

// SetPos moves the anchor and realigns the hitbox
func (o *object) SetPos(x, y float64) {
	o.posX = x
	o.posY = y
	o.AlignHitbox()
}

// Mass returns the body mass
func (o *object) Mass() float64 { return o.mass }

// Vel returns the velocity components (vy positive = rising)
func (o *object) Vel() (vx, vy float64) { return o.velX, o.velY }

// SetVel sets both velocity components
func (o *object) SetVel(vx, vy float64) {
	o.velX = vx
	o.velY = vy
}

// Accel returns the accumulated acceleration
func (o *object) Accel() (ax, ay float64) { return o.accelX, o.accelY }

// ResetAccel clears accumulated acceleration for the next tick
func (o *object) ResetAccel() {
	o.accelX = 0
	o.accelY = 0
}

// ApplyForce accumulates F/m into the acceleration. It never touches
// velocity or position.
func (o *object) ApplyForce(fx, fy float64) {
	o.accelX += fx / o.mass
	o.accelY += fy / o.mass
}

// Hitbox returns the collision rect
func (o *object) Hitbox() *geom.PhysRect { return o.hitbox }

// Angle returns the hitbox rotation
func (o *object) Angle() float64 { return o.hitbox.Angle() }

// Rotate spins the hitbox by delta radians
func (o *object) Rotate(delta float64) {
	o.hitbox.Rotate(delta)
}

// Omega returns the angular velocity in radians per tick
func (o *object) Omega() float64 { return o.omega }

// SetOmega sets the angular velocity
func (o *object) SetOmega(w float64) { o.omega = w }

// AlignHitbox snaps the hitbox anchor to the float position
func (o *object) AlignHitbox() {
	o.hitbox.Reposition(geom.Point{X: int(o.posX), Y: int(o.posY)})
}

// Travel shifts the object left by dx screen pixels (world scroll)
func (o *object) Travel(dx float64) {
	o.posX -= dx
	o.AlignHitbox()
}
