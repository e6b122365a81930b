// Package geometry provides the fixed-point shape primitives and
// collision predicates the editor and physics pipeline are built on.
// All arithmetic is Q32.32 via vmath; no floating point enters here.
package geometry

import (
	"github.com/lixenwraith/planar/vmath"
)

// Kind identifies a shape variant
type Kind uint8

const (
	KindPoint Kind = iota
	KindLine
	KindBbox
	KindCircle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindBbox:
		return "bbox"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	}
	return "unknown"
}

// Shape is the closed set of geometric primitives. Every variant
// answers the same capability set; cross-type queries reduce both
// operands to Polygon and run a single algorithm instead of
// enumerating the 25 type pairs.
type Shape interface {
	Kind() Kind
	Bounds() Bbox
	Centroid() Point
	ContainsPoint(Point) bool
	ToPolygon() Polygon

	// sealed keeps the variant set closed to this package
	sealed()
}

// Collides reports whether two shapes overlap. Symmetric by
// construction: both operands reduce to polygons and the polygon
// test examines both operands' axes.
func Collides(a, b Shape) bool {
	return polygonsCollide(a.ToPolygon(), b.ToPolygon())
}

// SeparationVector returns the minimum translation vector v such
// that translating b by v removes the overlap with a. Returns false
// when the shapes do not collide. Ties between minimal candidates
// break deterministically on the first boundary edge in winding order.
func SeparationVector(a, b Shape) (vmath.Vec2, bool) {
	pa := a.ToPolygon()
	pb := b.ToPolygon()
	if !polygonsCollide(pa, pb) {
		return vmath.Vec2{}, false
	}
	// The Minkowski difference {a-b} contains the origin while the
	// shapes overlap; the closest point on its boundary to the origin
	// is the minimum translation for b.
	md := MinkowskiDifference(pa, pb)
	return closestBoundaryPoint(md, vmath.Vec2{}), true
}
