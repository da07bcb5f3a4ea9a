package terrain

import (
	"math"
	"math/rand"

	"github.com/hillrush/hillrush/internal/domain/entity"
	"github.com/hillrush/hillrush/internal/domain/geom"
)

// Segment is one screen-width slice of ground with a per-column
// height curve.
type Segment struct {
	x     int
	curve []int
	kind  entity.TerrainType
}

// X returns the segment's left edge in screen coordinates
func (s *Segment) X() int { return s.x }

// Width returns the segment width in pixels
func (s *Segment) Width() int { return len(s.curve) }

// Type returns the segment surface type
func (s *Segment) Type() entity.TerrainType { return s.kind }

// HeightAt returns the ground y for a column local to the segment
func (s *Segment) HeightAt(local int) int { return s.curve[local] }

// Terrain is the scrolling ground: a chain of procedurally generated
// segments kept covering the screen plus a full screen of lookahead.
type Terrain struct {
	rng      *rand.Rand
	screenW  int
	screenH  int
	tileSize int
	flat     bool
	segments []*Segment
}

// New creates terrain with enough segments to cover the screen and
// the lookahead, starting on flat asphalt.
func New(rng *rand.Rand, screenW, screenH, tileSize int) *Terrain {
	t := &Terrain{
		rng:      rng,
		screenW:  screenW,
		screenH:  screenH,
		tileSize: tileSize,
	}
	first := t.genSegment(0, float64(screenH)/3, entity.TerrainAsphalt)
	t.segments = append(t.segments, first)
	t.extend()
	return t
}

// NewFlat creates level asphalt terrain at groundY. Used for tuning
// runs and tests where the ground must be predictable.
func NewFlat(screenW, screenH, tileSize, groundY int) *Terrain {
	t := &Terrain{
		rng:      rand.New(rand.NewSource(0)),
		screenW:  screenW,
		screenH:  screenH,
		tileSize: tileSize,
		flat:     true,
	}
	first := t.genSegment(0, float64(groundY), entity.TerrainAsphalt)
	t.segments = append(t.segments, first)
	t.extend()
	return t
}

// Segments returns the live segments, left to right
func (t *Terrain) Segments() []*Segment { return t.segments }

// GroundAt returns the ground point at screen column x. The second
// return is false when x is outside every segment.
func (t *Terrain) GroundAt(x int) (geom.Point, bool) {
	for _, s := range t.segments {
		if x >= s.x && x < s.x+len(s.curve) {
			return geom.Point{X: x, Y: s.curve[x-s.x]}, true
		}
	}
	return geom.Point{X: -1, Y: -1}, false
}

// TypeAt returns the surface type at screen column x
func (t *Terrain) TypeAt(x int) entity.TerrainType {
	for _, s := range t.segments {
		if x >= s.x && x < s.x+len(s.curve) {
			return s.kind
		}
	}
	return entity.TerrainAsphalt
}

// AngleAt returns the slope angle at x, taken over one tile of
// lookahead. Negative means uphill (the ground ahead is higher on
// screen, so its y is smaller).
func (t *Terrain) AngleAt(x int) float64 {
	curr, ok := t.GroundAt(x)
	if !ok {
		return 0
	}
	next, ok := t.GroundAt(x + t.tileSize)
	if !ok {
		return 0
	}
	return math.Atan(float64(next.Y-curr.Y) / float64(t.tileSize))
}

// TravelUpdate scrolls the world left by dx pixels, trims segments
// that left the screen and generates new ones on the right.
func (t *Terrain) TravelUpdate(dx int) {
	for _, s := range t.segments {
		s.x -= dx
	}
	for len(t.segments) > 0 && t.segments[0].x+len(t.segments[0].curve) <= 0 {
		t.segments = t.segments[1:]
	}
	t.extend()
}

// extend appends segments until a full screen of lookahead exists
func (t *Terrain) extend() {
	for {
		last := t.segments[len(t.segments)-1]
		right := last.x + len(last.curve)
		if right >= t.screenW*2 {
			return
		}
		startY := float64(last.curve[len(last.curve)-1])
		t.segments = append(t.segments, t.genSegment(right, startY, t.chooseType()))
	}
}

// chooseType picks the next segment surface, biased toward solid
// ground so water stays an occasional hazard.
func (t *Terrain) chooseType() entity.TerrainType {
	if t.flat {
		return entity.TerrainAsphalt
	}
	switch t.rng.Intn(8) {
	case 0:
		return entity.TerrainSand
	case 1:
		return entity.TerrainWater
	case 2, 3:
		return entity.TerrainGrass
	default:
		return entity.TerrainAsphalt
	}
}

// genSegment builds one screen-width segment starting at startY.
// Control points are laid out one per tile with bounded random steps
// and cosine-interpolated into a per-column curve. Water is flat.
func (t *Terrain) genSegment(x int, startY float64, kind entity.TerrainType) *Segment {
	width := t.screenW
	curve := make([]int, width)

	numControls := width/t.tileSize + 1
	controls := make([]float64, numControls+1)
	controls[0] = startY

	minY := float64(t.screenH) / 6
	maxY := float64(t.screenH - t.tileSize)
	for i := 1; i <= numControls; i++ {
		step := 0.0
		if kind != entity.TerrainWater && !t.flat {
			step = (t.rng.Float64()*2 - 1) * float64(t.tileSize) * 0.6
		}
		y := controls[i-1] + step
		if y < minY {
			y = minY
		}
		if y > maxY {
			y = maxY
		}
		controls[i] = y
	}

	for col := 0; col < width; col++ {
		seg := col / t.tileSize
		frac := float64(col%t.tileSize) / float64(t.tileSize)
		// Cosine interpolation between neighboring controls
		mu := (1 - math.Cos(frac*math.Pi)) / 2
		curve[col] = int(controls[seg]*(1-mu) + controls[seg+1]*mu)
	}

	return &Segment{x: x, curve: curve, kind: kind}
}
