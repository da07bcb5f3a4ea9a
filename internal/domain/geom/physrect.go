package geom

import "math"

// Coordinate bounds. Positions are clamped so that corner math on two
// rects can never overflow int32 arithmetic.
const (
	MaxCoord = math.MaxInt32 / 2
	MinCoord = math.MinInt32 / 2
)

// Point is an integer position in screen space (y grows downward).
type Point struct {
	X, Y int
}

// PhysRect is a rotatable rectangle used for all hitboxes.
// The four corners are kept in clockwise order starting from the
// unrotated top-left, and stay consistent with (x, y, w, h, theta)
// through every mutation.
type PhysRect struct {
	x, y    int
	width   int
	height  int
	theta   float64
	corners [4]Point
}

// New creates a rect at the given top-left anchor. Size and position
// are clamped, never rejected.
func New(x, y, width, height int) *PhysRect {
	r := &PhysRect{
		x:      clampPos(x),
		y:      clampPos(y),
		width:  clampSize(width),
		height: clampSize(height),
	}
	r.updateCorners()
	return r
}

// FromCenter creates a rect centered on the given point.
func FromCenter(center Point, width, height int) *PhysRect {
	width = clampSize(width)
	height = clampSize(height)
	return New(center.X-width/2, center.Y-height/2, width, height)
}

// X returns the unrotated top-left x.
func (r *PhysRect) X() int { return r.x }

// Y returns the unrotated top-left y.
func (r *PhysRect) Y() int { return r.y }

// Width returns the rect width.
func (r *PhysRect) Width() int { return r.width }

// Height returns the rect height.
func (r *PhysRect) Height() int { return r.height }

// Angle returns the rotation in radians, normalized to [0, 2π).
func (r *PhysRect) Angle() float64 { return r.theta }

// Coords returns the four corners, clockwise from the unrotated
// top-left.
func (r *PhysRect) Coords() [4]Point { return r.corners }

// Center returns the midpoint of the diagonal corners.
func (r *PhysRect) Center() Point {
	return Point{
		X: (r.corners[0].X + r.corners[2].X) / 2,
		Y: (r.corners[0].Y + r.corners[2].Y) / 2,
	}
}

// Left returns the smallest corner x.
func (r *PhysRect) Left() int {
	v := r.corners[0].X
	for _, c := range r.corners[1:] {
		if c.X < v {
			v = c.X
		}
	}
	return v
}

// Right returns the largest corner x.
func (r *PhysRect) Right() int {
	v := r.corners[0].X
	for _, c := range r.corners[1:] {
		if c.X > v {
			v = c.X
		}
	}
	return v
}

// Top returns the smallest corner y.
func (r *PhysRect) Top() int {
	v := r.corners[0].Y
	for _, c := range r.corners[1:] {
		if c.Y < v {
			v = c.Y
		}
	}
	return v
}

// Bottom returns the largest corner y.
func (r *PhysRect) Bottom() int {
	v := r.corners[0].Y
	for _, c := range r.corners[1:] {
		if c.Y > v {
			v = c.Y
		}
	}
	return v
}

// SetX moves the rect horizontally, preserving rotation.
func (r *PhysRect) SetX(x int) {
	r.x = clampPos(x)
	r.updateCorners()
}

// SetY moves the rect vertically, preserving rotation.
func (r *PhysRect) SetY(y int) {
	r.y = clampPos(y)
	r.updateCorners()
}

// Reposition moves the top-left anchor to p.
func (r *PhysRect) Reposition(p Point) {
	r.x = clampPos(p.X)
	r.y = clampPos(p.Y)
	r.updateCorners()
}

// CenterOn moves the rect so its center lands on p.
func (r *PhysRect) CenterOn(p Point) {
	r.Reposition(Point{X: p.X - r.width/2, Y: p.Y - r.height/2})
}

// Rotate adds delta radians to the rotation and rebuilds the corners.
func (r *PhysRect) Rotate(delta float64) {
	r.theta = normalizeAngle(r.theta + delta)
	r.updateCorners()
}

// SetAngle sets the rotation directly.
func (r *PhysRect) SetAngle(theta float64) {
	r.theta = normalizeAngle(theta)
	r.updateCorners()
}

// Resize changes the dimensions, keeping the top-left anchor and
// rotation. Sizes are clamped to [1, MaxCoord].
func (r *PhysRect) Resize(width, height int) {
	r.width = clampSize(width)
	r.height = clampSize(height)
	r.updateCorners()
}

// Contains reports whether p lies inside the rect, using an even-odd
// ray cast over the corner polygon. The boundary is half-open: for an
// unrotated rect, points on the top or left edge are inside and points
// on the bottom or right edge are outside, so adjacent rects sharing
// an edge never both claim a point on it.
func (r *PhysRect) Contains(p Point) bool {
	inside := false
	j := 3
	for i := 0; i < 4; i++ {
		ci, cj := r.corners[i], r.corners[j]
		if (ci.Y > p.Y) != (cj.Y > p.Y) {
			cross := float64(cj.X-ci.X)*float64(p.Y-ci.Y)/float64(cj.Y-ci.Y) + float64(ci.X)
			if float64(p.X) < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Intersects reports whether the rects overlap. The test is corner
// containment in both directions, so a crossing where neither rect
// holds a corner of the other is missed. At gameplay sizes this does
// not come up; the cheap test is kept on purpose.
func (r *PhysRect) Intersects(other *PhysRect) bool {
	for _, c := range other.corners {
		if r.Contains(c) {
			return true
		}
	}
	for _, c := range r.corners {
		if other.Contains(c) {
			return true
		}
	}
	return false
}

// NearestSide returns the index of the side of r closest to other,
// measured from each side midpoint to other's corners. Sides are
// numbered clockwise from the unrotated top edge: 0 top, 1 right,
// 2 bottom, 3 left.
func (r *PhysRect) NearestSide(other *PhysRect) int {
	best := 0
	bestDist := math.MaxFloat64
	for i := 0; i < 4; i++ {
		mid := midpoint(r.corners[i], r.corners[(i+1)%4])
		for _, c := range other.corners {
			d := distance(mid, c)
			if d < bestDist {
				bestDist = d
				best = i
			}
		}
	}
	return best
}

func (r *PhysRect) updateCorners() {
	base := [4]Point{
		{r.x, r.y},
		{r.x + r.width, r.y},
		{r.x + r.width, r.y + r.height},
		{r.x, r.y + r.height},
	}
	if r.theta == 0 {
		r.corners = base
		return
	}
	cx := float64(r.x) + float64(r.width)/2
	cy := float64(r.y) + float64(r.height)/2
	sin, cos := math.Sincos(r.theta)
	for i, c := range base {
		dx := float64(c.X) - cx
		dy := float64(c.Y) - cy
		r.corners[i] = Point{
			X: int(math.Round(cx + dx*cos - dy*sin)),
			Y: int(math.Round(cy + dx*sin + dy*cos)),
		}
	}
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Hypot(dx, dy)
}

func clampSize(v int) int {
	if v < 1 {
		return 1
	}
	if v > MaxCoord {
		return MaxCoord
	}
	return v
}

func clampPos(v int) int {
	if v < MinCoord {
		return MinCoord
	}
	if v > MaxCoord {
		return MaxCoord
	}
	return v
}

func normalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}
