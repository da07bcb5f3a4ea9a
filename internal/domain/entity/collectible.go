package entity

import "github.com/hillrush/hillrush/internal/domain/geom"

// Coin is a score pickup
type Coin struct {
	object
	value     int
	collected bool
}

// NewCoin creates a coin worth value points at pos
func NewCoin(pos geom.Point, size, value int) *Coin {
	return &Coin{
		object: newObject(pos, size, size, 1),
		value:  value,
	}
}

// Value returns the coin's score value
func (c *Coin) Value() int { return c.value }

// Collect marks the coin as taken. Collecting twice has no effect.
func (c *Coin) Collect() { c.collected = true }

// Collected reports whether the coin has been taken
func (c *Coin) Collected() bool { return c.collected }

// Power is a power-up pickup
type Power struct {
	object
	kind      PowerType
	collected bool
}

// NewPower creates a power-up of the given type at pos
func NewPower(kind PowerType, pos geom.Point, size int) *Power {
	return &Power{
		object: newObject(pos, size, size, 1),
		kind:   kind,
	}
}

// Type returns the power-up variant
func (p *Power) Type() PowerType { return p.kind }

// Collect marks the power-up as taken
func (p *Power) Collect() { p.collected = true }

// Collected reports whether the power-up has been taken
func (p *Power) Collected() bool { return p.collected }
