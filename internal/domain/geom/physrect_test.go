package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClampsSize(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		expectedWidth  int
		expectedHeight int
	}{
		{"normal size", 100, 50, 100, 50},
		{"zero width", 0, 50, 1, 50},
		{"negative height", 100, -10, 100, 1},
		{"oversized", math.MaxInt32, 50, MaxCoord, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(0, 0, tt.width, tt.height)
			assert.Equal(t, tt.expectedWidth, r.Width())
			assert.Equal(t, tt.expectedHeight, r.Height())
		})
	}
}

func TestNewClampsPosition(t *testing.T) {
	r := New(math.MaxInt32, math.MinInt32, 10, 10)
	assert.Equal(t, MaxCoord, r.X())
	assert.Equal(t, MinCoord, r.Y())

	r.SetX(math.MinInt32)
	assert.Equal(t, MinCoord, r.X())
}

func TestCorners(t *testing.T) {
	r := New(10, 20, 100, 50)
	corners := r.Coords()

	// Clockwise from top-left
	assert.Equal(t, Point{10, 20}, corners[0])
	assert.Equal(t, Point{110, 20}, corners[1])
	assert.Equal(t, Point{110, 70}, corners[2])
	assert.Equal(t, Point{10, 70}, corners[3])
}

func TestFromCenter(t *testing.T) {
	r := FromCenter(Point{100, 100}, 40, 20)
	assert.Equal(t, 80, r.X())
	assert.Equal(t, 90, r.Y())
	assert.Equal(t, Point{100, 100}, r.Center())
}

func TestRotationRoundTrip(t *testing.T) {
	r := New(0, 0, 100, 60)
	original := r.Coords()

	for i := 0; i < 4; i++ {
		r.Rotate(math.Pi / 2)
	}

	assert.InDelta(t, 0, r.Angle(), 1e-9)
	for i := range original {
		assert.InDelta(t, original[i].X, r.Coords()[i].X, 1)
		assert.InDelta(t, original[i].Y, r.Coords()[i].Y, 1)
	}
}

func TestAngleNormalization(t *testing.T) {
	tests := []struct {
		name     string
		delta    float64
		expected float64
	}{
		{"positive", math.Pi / 4, math.Pi / 4},
		{"negative wraps", -math.Pi / 2, 3 * math.Pi / 2},
		{"full turn", 2 * math.Pi, 0},
		{"over full turn", 5 * math.Pi / 2, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(0, 0, 10, 10)
			r.Rotate(tt.delta)
			assert.InDelta(t, tt.expected, r.Angle(), 1e-9)
			assert.GreaterOrEqual(t, r.Angle(), 0.0)
			assert.Less(t, r.Angle(), 2*math.Pi)
		})
	}
}

func TestRotationPreservesCenter(t *testing.T) {
	r := New(40, 60, 100, 100)
	center := r.Center()

	r.Rotate(math.Pi / 3)

	assert.InDelta(t, center.X, r.Center().X, 1)
	assert.InDelta(t, center.Y, r.Center().Y, 1)
}

func TestContains(t *testing.T) {
	t.Run("axis aligned", func(t *testing.T) {
		r := New(0, 0, 100, 100)
		assert.True(t, r.Contains(Point{50, 50}))
		assert.True(t, r.Contains(Point{1, 1}))
		assert.False(t, r.Contains(Point{150, 50}))
		assert.False(t, r.Contains(Point{50, -10}))
	})

	t.Run("half-open boundary", func(t *testing.T) {
		r := New(0, 0, 100, 100)

		assert.True(t, r.Contains(Point{0, 50}), "left edge is inside")
		assert.True(t, r.Contains(Point{50, 0}), "top edge is inside")
		assert.True(t, r.Contains(Point{0, 0}), "top-left corner is inside")
		assert.False(t, r.Contains(Point{100, 50}), "right edge is outside")
		assert.False(t, r.Contains(Point{50, 100}), "bottom edge is outside")
		assert.False(t, r.Contains(Point{100, 100}), "bottom-right corner is outside")
	})

	t.Run("adjacent rects never share a point", func(t *testing.T) {
		left := New(0, 0, 100, 100)
		right := New(100, 0, 100, 100)

		seam := Point{100, 50}
		assert.False(t, left.Contains(seam))
		assert.True(t, right.Contains(seam))
	})

	t.Run("rotated square excludes old corner", func(t *testing.T) {
		r := New(0, 0, 100, 100)
		r.Rotate(math.Pi / 4)

		// Center survives rotation, the unrotated corner region does not
		assert.True(t, r.Contains(Point{50, 50}))
		assert.False(t, r.Contains(Point{2, 2}))
		assert.False(t, r.Contains(Point{98, 98}))
	})

	t.Run("contained point within extrema", func(t *testing.T) {
		r := New(20, 30, 80, 40)
		r.Rotate(0.7)

		for x := -50; x <= 200; x += 7 {
			for y := -50; y <= 200; y += 7 {
				p := Point{x, y}
				if r.Contains(p) {
					assert.GreaterOrEqual(t, p.X, r.Left())
					assert.LessOrEqual(t, p.X, r.Right())
					assert.GreaterOrEqual(t, p.Y, r.Top())
					assert.LessOrEqual(t, p.Y, r.Bottom())
				}
			}
		}
	})
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *PhysRect
		expected bool
	}{
		{"overlapping", New(0, 0, 100, 100), New(50, 50, 100, 100), true},
		{"disjoint", New(0, 0, 100, 100), New(300, 300, 100, 100), false},
		{"contained", New(0, 0, 100, 100), New(25, 25, 20, 20), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.expected, tt.b.Intersects(tt.a), "intersection must be symmetric")
		})
	}
}

func TestIntersectsRotated(t *testing.T) {
	a := New(0, 0, 100, 100)
	b := New(80, 80, 100, 100)
	b.Rotate(math.Pi / 4)

	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
}

func TestNearestSide(t *testing.T) {
	r := New(100, 100, 100, 100)

	tests := []struct {
		name     string
		other    *PhysRect
		expected int
	}{
		{"above", New(120, 0, 60, 60), 0},
		{"right", New(250, 120, 60, 60), 1},
		{"below", New(120, 250, 60, 60), 2},
		{"left", New(0, 120, 60, 60), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side := r.NearestSide(tt.other)
			assert.Equal(t, tt.expected, side)
			assert.GreaterOrEqual(t, side, 0)
			assert.LessOrEqual(t, side, 3)
		})
	}
}

func TestRepositionAndCenterOn(t *testing.T) {
	r := New(0, 0, 50, 30)

	r.Reposition(Point{200, 100})
	assert.Equal(t, 200, r.X())
	assert.Equal(t, 100, r.Y())

	r.CenterOn(Point{400, 400})
	assert.Equal(t, Point{400, 400}, r.Center())
}

func TestResize(t *testing.T) {
	r := New(10, 10, 50, 50)
	r.Resize(0, 200)

	require.Equal(t, 1, r.Width())
	require.Equal(t, 200, r.Height())
	assert.Equal(t, 10, r.X(), "anchor unchanged by resize")
}

func TestExtremaAfterRotation(t *testing.T) {
	r := New(0, 0, 100, 100)
	r.Rotate(math.Pi / 4)

	// A 100x100 square rotated 45 degrees spans ~141 on both axes
	assert.InDelta(t, -21, r.Left(), 1)
	assert.InDelta(t, 121, r.Right(), 1)
	assert.InDelta(t, -21, r.Top(), 1)
	assert.InDelta(t, 121, r.Bottom(), 1)
}
