package entity

import (
	"math"

	"github.com/hillrush/hillrush/internal/domain/geom"
)

// VelClamp bounds player velocity after integration.
// Vertical bounds follow the sign convention: MinVY is the fall cap
// (negative), MaxVY the rise cap.
type VelClamp struct {
	MinVX, MaxVX float64
	MinVY, MaxVY float64
}

// Player is the skater. It owns its kinematic state and the in-air
// flip rotation; the surrounding systems decide which forces act on
// it each tick.
type Player struct {
	object

	jumpImpulse float64
	flipRate    float64

	jumping  bool
	flipping bool
	grounded bool

	// charge counts the ticks of jump hold consumed since launch
	charge int
}

// NewPlayer creates the player at pos with a width x height hitbox.
// flipRate is the rotation per tick while flipping, in radians.
func NewPlayer(pos geom.Point, width, height int, mass, jumpImpulse, flipRate float64) *Player {
	return &Player{
		object:      newObject(pos, width, height, mass),
		jumpImpulse: jumpImpulse,
		flipRate:    flipRate,
		grounded:    true,
	}
}

// Jumping reports whether the player is in a jump
func (p *Player) Jumping() bool { return p.jumping }

// Flipping reports whether the player is rotating in the air
func (p *Player) Flipping() bool { return p.flipping }

// Grounded reports whether the player is riding the terrain
func (p *Player) Grounded() bool { return p.grounded }

// SetGrounded marks the player airborne or riding
func (p *Player) SetGrounded(g bool) { p.grounded = g }

// FlipRate returns the per-tick flip rotation in radians
func (p *Player) FlipRate() float64 { return p.flipRate }

// Jump launches the player if not already jumping. boost is the
// power-up jump bonus as a fraction of the base impulse.
func (p *Player) Jump(boost float64) {
	if p.jumping {
		return
	}
	p.velY = p.jumpImpulse * (1 + boost)
	p.jumping = true
	p.flipping = true
	p.grounded = false
	p.charge = 0
}

// Charge returns the ticks of jump hold consumed this jump
func (p *Player) Charge() int { return p.charge }

// HoldJump charges the jump while the key stays held: each held tick
// adds a slice of the bonus impulse until holdFrames are consumed, so
// the hold duration sets how high the jump reaches.
func (p *Player) HoldJump(holdFrames int, holdBonus float64) {
	if !p.jumping || holdFrames <= 0 || p.charge >= holdFrames {
		return
	}
	p.charge++
	p.velY += p.jumpImpulse * holdBonus / float64(holdFrames)
}

// ResumeFlipping restarts the in-air rotation
func (p *Player) ResumeFlipping() {
	if p.jumping {
		p.flipping = true
	}
}

// StopFlipping freezes the rotation at the current angle
func (p *Player) StopFlipping() {
	p.flipping = false
}

// Flip advances the backflip rotation by one tick
func (p *Player) Flip() {
	if p.flipping {
		p.Rotate(-p.flipRate)
	}
}

// UpdateVel integrates acceleration into velocity and clamps it
func (p *Player) UpdateVel(c VelClamp) {
	p.velX += p.accelX
	p.velY += p.accelY

	if p.velX < c.MinVX {
		p.velX = c.MinVX
	}
	if p.velX > c.MaxVX {
		p.velX = c.MaxVX
	}
	if p.velY < c.MinVY {
		p.velY = c.MinVY
	}
	if p.velY > c.MaxVY {
		p.velY = c.MaxVY
	}
}

// UpdatePos integrates velocity into the vertical position. The
// horizontal component is consumed by the terrain scroll, so only y
// moves here (vy positive lifts the player, screen y grows downward).
func (p *Player) UpdatePos() {
	p.posY -= p.velY
	p.AlignHitbox()
}

// CollideTerrain lands the player on the ground point. The player is
// snapped slightly into the surface, downward motion stops, and the
// landing is judged against the slope: within tolerance the board
// aligns and the run continues (true), outside it the landing is a
// wipeout (false).
func (p *Player) CollideTerrain(ground geom.Point, angle, tolerance float64) bool {
	p.posY = float64(ground.Y) - 0.95*float64(p.hitbox.Height())
	if p.velY < 0 {
		p.velY = 0
	}
	p.omega = 0
	p.AlignHitbox()

	if math.Abs(angleDiff(p.Angle(), angle)) > tolerance {
		return false
	}

	p.hitbox.SetAngle(angle)
	p.jumping = false
	p.flipping = false
	p.grounded = true
	p.charge = 0
	return true
}

// Bounce reverses the fall and re-enters the jump state, used when
// landing on something springy.
func (p *Player) Bounce(vy float64) {
	p.velY = vy
	p.jumping = true
	p.grounded = false
}

// angleDiff returns the signed difference a-b wrapped to [-π, π)
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	if d >= math.Pi {
		d -= 2 * math.Pi
	}
	return d
}
