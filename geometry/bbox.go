package geometry

import (
	"github.com/lixenwraith/planar/vmath"
)

// Bbox is an axis-aligned rectangle from left-bottom Min to right-top
// Max. Normalized() enforces the Min <= Max invariant; zero-area boxes
// occur while the user drags a corner and are tolerated everywhere
type Bbox struct {
	Min, Max Point
}

func Bb(min, max Point) Bbox {
	return Bbox{Min: min, Max: max}
}

func (b Bbox) Kind() Kind { return KindBbox }

func (b Bbox) Bounds() Bbox {
	return b.Normalized()
}

func (b Bbox) Centroid() Point {
	return Pt(
		vmath.Add(b.Min.Pos.X, b.Max.Pos.X)>>1,
		vmath.Add(b.Min.Pos.Y, b.Max.Pos.Y)>>1,
	)
}

func (b Bbox) ContainsPoint(q Point) bool {
	n := b.Normalized()
	return q.Pos.X >= n.Min.Pos.X && q.Pos.X <= n.Max.Pos.X &&
		q.Pos.Y >= n.Min.Pos.Y && q.Pos.Y <= n.Max.Pos.Y
}

// ToPolygon returns the four corners in counter-clockwise winding
func (b Bbox) ToPolygon() Polygon {
	n := b.Normalized()
	return Polygon{
		n.Min,
		Pt(n.Max.Pos.X, n.Min.Pos.Y),
		n.Max,
		Pt(n.Min.Pos.X, n.Max.Pos.Y),
	}
}

// Normalized returns the box with corners swapped so Min <= Max holds
// on both axes
func (b Bbox) Normalized() Bbox {
	return Bbox{
		Min: Pt(vmath.Min(b.Min.Pos.X, b.Max.Pos.X), vmath.Min(b.Min.Pos.Y, b.Max.Pos.Y)),
		Max: Pt(vmath.Max(b.Min.Pos.X, b.Max.Pos.X), vmath.Max(b.Min.Pos.Y, b.Max.Pos.Y)),
	}
}

// Overlaps is the cheap axis-interval test the broad phase runs.
// Touching boxes count as overlapping
func (b Bbox) Overlaps(o Bbox) bool {
	bn, on := b.Normalized(), o.Normalized()
	return bn.Min.Pos.X <= on.Max.Pos.X && on.Min.Pos.X <= bn.Max.Pos.X &&
		bn.Min.Pos.Y <= on.Max.Pos.Y && on.Min.Pos.Y <= bn.Max.Pos.Y
}

// Union returns the smallest box containing both
func (b Bbox) Union(o Bbox) Bbox {
	bn, on := b.Normalized(), o.Normalized()
	return Bbox{
		Min: Pt(vmath.Min(bn.Min.Pos.X, on.Min.Pos.X), vmath.Min(bn.Min.Pos.Y, on.Min.Pos.Y)),
		Max: Pt(vmath.Max(bn.Max.Pos.X, on.Max.Pos.X), vmath.Max(bn.Max.Pos.Y, on.Max.Pos.Y)),
	}
}

func (b Bbox) sealed() {}
