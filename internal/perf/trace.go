package perf

import (
	"fmt"
	"image"
	"math"

	"perfskew/internal/imaging"
)

// Undefined marks an edge entry for a column or row the flood fill
// never visited. All real coordinates are >= 0.
const Undefined = -1

// EdgeMap holds the traced boundary of one perforation region as four
// directional series.
//
// North and South are indexed by column (x) and hold the topmost and
// bottommost matching row seen in that column. East and West are
// indexed by row (y) and hold the rightmost and leftmost matching
// column seen in that row. Entries are Undefined where the fill never
// reached.
type EdgeMap struct {
	North []int `json:"north"` // N[x]: minimum matching y per column
	South []int `json:"south"` // S[x]: maximum matching y per column
	East  []int `json:"east"`  // E[y]: maximum matching x per row
	West  []int `json:"west"`  // W[y]: minimum matching x per row
}

// NewEdgeMap allocates an EdgeMap for an image of the given dimensions
// with every entry Undefined.
func NewEdgeMap(width, height int) *EdgeMap {
	em := &EdgeMap{
		North: make([]int, width),
		South: make([]int, width),
		East:  make([]int, height),
		West:  make([]int, height),
	}
	for i := range em.North {
		em.North[i] = Undefined
		em.South[i] = Undefined
	}
	for i := range em.East {
		em.East[i] = Undefined
		em.West[i] = Undefined
	}
	return em
}

// Axis identifies the direction in which a flood fill escaped its
// bounding box.
type Axis string

const (
	AxisHorizontal Axis = "horizontal"
	AxisVertical   Axis = "vertical"
)

// LeakError reports a flood fill that traveled further from its seed
// than the allowed fraction of the image dimension. It indicates the
// matched region is larger than a perforation could be, e.g. a uniform
// background bleeding into the fill through noise.
type LeakError struct {
	Axis  Axis    // axis on which the limit was exceeded
	Seed  int     // seed coordinate on that axis
	Limit float64 // maximum allowed distance from the seed
	At    int     // coordinate that exceeded the limit
}

func (e *LeakError) Error() string {
	return fmt.Sprintf("%s fill leak: %d, %g, %d", e.Axis, e.Seed, e.Limit, e.At)
}

// leakFraction bounds the fill to seed ± 20% of the respective image
// dimension. A perforation is far smaller than a fifth of the frame;
// anything larger is treated as a hard error rather than a boundary.
const leakFraction = 0.20

// TraceRegion flood-fills the region of pixels around the seed that
// match base within tolerance and returns its directional boundaries.
//
// The fill is iterative and 4-connected. For every accepted point the
// four boundary series are updated by min/max accumulation, so the
// result is independent of fill order. Each point is queued at most
// once, which guarantees termination on a bounded image without
// recursion.
//
// If any visited point lies further from the seed than leakFraction of
// the image width (x axis) or height (y axis), the fill is aborted and
// a *LeakError identifying the axis is returned.
func TraceRegion(img image.Image, base imaging.RGBColor, seedX, seedY int, tolerance float64) (*EdgeMap, error) {
	width, height := imaging.Dimensions(img)
	limitX := leakFraction * float64(width)
	limitY := leakFraction * float64(height)

	em := NewEdgeMap(width, height)

	match := func(x, y int) bool {
		return imaging.SameColor(imaging.RGBAt(img, x, y), base, tolerance)
	}

	visited := make([]bool, width*height)
	todo := []Point{{X: seedX, Y: seedY}}

	for len(todo) > 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		if !match(p.X, p.Y) {
			continue
		}

		if math.Abs(float64(seedX-p.X)) > limitX {
			return nil, &LeakError{Axis: AxisHorizontal, Seed: seedX, Limit: limitX, At: p.X}
		}
		if math.Abs(float64(seedY-p.Y)) > limitY {
			return nil, &LeakError{Axis: AxisVertical, Seed: seedY, Limit: limitY, At: p.Y}
		}

		var next [4]Point
		n := 0

		// north
		if p.Y > 0 && match(p.X, p.Y-1) {
			em.North[p.X] = keepMin(em.North[p.X], p.Y-1)
			next[n] = Point{X: p.X, Y: p.Y - 1}
			n++
		}
		// south
		if p.Y < height-1 && match(p.X, p.Y+1) {
			em.South[p.X] = keepMax(em.South[p.X], p.Y+1)
			next[n] = Point{X: p.X, Y: p.Y + 1}
			n++
		}
		// east
		if p.X < width-1 && match(p.X+1, p.Y) {
			em.East[p.Y] = keepMax(em.East[p.Y], p.X+1)
			next[n] = Point{X: p.X + 1, Y: p.Y}
			n++
		}
		// west
		if p.X > 0 && match(p.X-1, p.Y) {
			em.West[p.Y] = keepMin(em.West[p.Y], p.X-1)
			next[n] = Point{X: p.X - 1, Y: p.Y}
			n++
		}

		for i := 0; i < n; i++ {
			idx := next[i].Y*width + next[i].X
			if !visited[idx] {
				visited[idx] = true
				todo = append(todo, next[i])
			}
		}
	}

	return em, nil
}

// keepMin folds a new candidate into a min accumulator that starts out
// Undefined.
func keepMin(current, candidate int) int {
	if current == Undefined || candidate < current {
		return candidate
	}
	return current
}

// keepMax folds a new candidate into a max accumulator that starts out
// Undefined.
func keepMax(current, candidate int) int {
	if current == Undefined || candidate > current {
		return candidate
	}
	return current
}
