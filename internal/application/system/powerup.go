package system

import (
	"github.com/hillrush/hillrush/internal/domain/entity"
	"github.com/hillrush/hillrush/internal/infrastructure/config"
)

// PowerUpState tracks the active power-up and the physics parameters
// it derives. Power-ups do not stack: activating one resets every
// parameter before applying the new effect, so the newest always wins.
type PowerUpState struct {
	config *config.PhysicsConfig

	active entity.PowerType
	timer  int

	fallCap         float64
	jumpBoost       float64
	speedBoost      float64
	gravityScale    float64
	scoreMultiplier int
	shielded        bool
}

// NewPowerUpState creates the state with no power active
func NewPowerUpState(cfg *config.PhysicsConfig) *PowerUpState {
	s := &PowerUpState{config: cfg}
	s.reset()
	return s
}

// Active returns the current power type, PowerNone when idle
func (s *PowerUpState) Active() entity.PowerType { return s.active }

// Remaining returns ticks left on the active power
func (s *PowerUpState) Remaining() int { return s.timer }

// FallCap returns the fall speed cap magnitude
func (s *PowerUpState) FallCap() float64 { return s.fallCap }

// JumpBoost returns the jump impulse bonus fraction
func (s *PowerUpState) JumpBoost() float64 { return s.jumpBoost }

// SpeedBoost returns the bonus on the max horizontal speed
func (s *PowerUpState) SpeedBoost() float64 { return s.speedBoost }

// GravityScale returns the gravity multiplier
func (s *PowerUpState) GravityScale() float64 { return s.gravityScale }

// ScoreMultiplier returns the per-tick score multiplier
func (s *PowerUpState) ScoreMultiplier() int { return s.scoreMultiplier }

// Shielded reports whether side collisions are absorbed
func (s *PowerUpState) Shielded() bool { return s.shielded }

// Activate applies a power-up, replacing whatever was active
func (s *PowerUpState) Activate(p entity.PowerType) {
	s.reset()
	if p == entity.PowerNone {
		return
	}

	pw := s.config.Powerups
	switch p {
	case entity.PowerSpeedBoost:
		s.speedBoost = pw.SpeedBoost
	case entity.PowerScoreMultiplier:
		s.scoreMultiplier = pw.ScoreMultiplier
	case entity.PowerBouncyShoes:
		s.jumpBoost = pw.BouncyJumpBoost
	case entity.PowerLowerGravity:
		s.fallCap = pw.LowGravityFallCap
		s.jumpBoost = pw.LowGravityJumpBoost
		s.gravityScale = pw.LowGravityScale
	case entity.PowerShield:
		s.shielded = true
	}

	s.active = p
	s.timer = pw.DurationTicks
}

// Tick counts the active power down, expiring it at zero
func (s *PowerUpState) Tick() {
	if s.timer <= 0 {
		return
	}
	s.timer--
	if s.timer == 0 {
		s.reset()
	}
}

func (s *PowerUpState) reset() {
	s.active = entity.PowerNone
	s.timer = 0
	s.fallCap = s.config.Velocity.FallCap
	s.jumpBoost = 0
	s.speedBoost = 0
	s.gravityScale = 1
	s.scoreMultiplier = 1
	s.shielded = false
}
