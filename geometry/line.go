package geometry

import (
	"github.com/lixenwraith/planar/vmath"
)

// Line is a segment between two points. Start == End is a valid
// degenerate segment: shapes grow incrementally while the user draws,
// so a line exists as a single point before its second endpoint lands
type Line struct {
	Start, End Point
}

func Ln(start, end Point) Line {
	return Line{Start: start, End: end}
}

func (l Line) Kind() Kind { return KindLine }

func (l Line) Bounds() Bbox {
	return Bbox{
		Min: Pt(vmath.Min(l.Start.Pos.X, l.End.Pos.X), vmath.Min(l.Start.Pos.Y, l.End.Pos.Y)),
		Max: Pt(vmath.Max(l.Start.Pos.X, l.End.Pos.X), vmath.Max(l.Start.Pos.Y, l.End.Pos.Y)),
	}
}

func (l Line) Centroid() Point {
	return Pt(
		vmath.Add(l.Start.Pos.X, l.End.Pos.X)>>1,
		vmath.Add(l.Start.Pos.Y, l.End.Pos.Y)>>1,
	)
}

// ContainsPoint reports whether q lies on the segment within EPS
func (l Line) ContainsPoint(q Point) bool {
	closest := closestPointOnSegment(l.Start.Pos, l.End.Pos, q.Pos)
	return closest.Sub(q.Pos).LengthSq() <= vmath.Mul(vmath.EPS, vmath.EPS)
}

func (l Line) ToPolygon() Polygon {
	return Polygon{l.Start, l.End}
}

// IsDegenerate reports whether both endpoints coincide
func (l Line) IsDegenerate() bool {
	return l.Start.Pos == l.End.Pos
}

func (l Line) sealed() {}

// closestPointOnSegment returns the point on segment ab nearest to q
func closestPointOnSegment(a, b, q vmath.Vec2) vmath.Vec2 {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return a
	}
	t := vmath.Clamp(vmath.Div(q.Sub(a).Dot(ab), lenSq), 0, vmath.One)
	return a.Add(ab.Scale(t))
}
