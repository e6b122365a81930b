package geometry

import (
	"github.com/lixenwraith/planar/vmath"
)

// Point wraps a position. Identity is value equality of position
type Point struct {
	Pos vmath.Vec2
}

func Pt(x, y int64) Point {
	return Point{Pos: vmath.V(x, y)}
}

func PtVec(v vmath.Vec2) Point {
	return Point{Pos: v}
}

func (p Point) Kind() Kind { return KindPoint }

func (p Point) Bounds() Bbox {
	return Bbox{Min: p, Max: p}
}

func (p Point) Centroid() Point {
	return p
}

// ContainsPoint is coincidence within EPS on both axes
func (p Point) ContainsPoint(q Point) bool {
	return vmath.Abs(vmath.Sub(p.Pos.X, q.Pos.X)) <= vmath.EPS &&
		vmath.Abs(vmath.Sub(p.Pos.Y, q.Pos.Y)) <= vmath.EPS
}

func (p Point) ToPolygon() Polygon {
	return Polygon{p}
}

// Translate returns the point moved by v
func (p Point) Translate(v vmath.Vec2) Point {
	return Point{Pos: p.Pos.Add(v)}
}

func (p Point) sealed() {}
