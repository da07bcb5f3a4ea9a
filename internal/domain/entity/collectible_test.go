package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hillrush/hillrush/internal/domain/geom"
)

func TestCoinCollectOnce(t *testing.T) {
	c := NewCoin(geom.Point{X: 100, Y: 200}, 50, 1000)

	assert.False(t, c.Collected())
	assert.Equal(t, 1000, c.Value())

	c.Collect()
	assert.True(t, c.Collected())

	// Idempotent
	c.Collect()
	assert.True(t, c.Collected())
	assert.Equal(t, 1000, c.Value())
}

func TestPowerCollect(t *testing.T) {
	p := NewPower(PowerShield, geom.Point{X: 100, Y: 200}, 50)

	assert.Equal(t, PowerShield, p.Type())
	assert.False(t, p.Collected())

	p.Collect()
	assert.True(t, p.Collected())
}

func TestCollectibleTravel(t *testing.T) {
	c := NewCoin(geom.Point{X: 100, Y: 200}, 50, 1000)

	c.Travel(30)

	assert.InDelta(t, 70, c.X(), 1e-9)
	assert.Equal(t, 70, c.Hitbox().X())
}
