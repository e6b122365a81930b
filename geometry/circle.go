package geometry

import (
	"github.com/lixenwraith/planar/vmath"
)

// CircleSegments is the tessellation used when a circle reduces to a
// polygon for collision queries. 32 keeps the inscribed-polygon error
// under 0.5% of the radius.
const CircleSegments = 32

// Circle is a center and a radius. The editor seeds new circles with
// an EPS radius while the user drags the rim out; zero and negative
// radii never occur
type Circle struct {
	Center Point
	Radius int64
}

func Cr(center Point, radius int64) Circle {
	if radius < vmath.EPS {
		radius = vmath.EPS
	}
	return Circle{Center: center, Radius: radius}
}

func (c Circle) Kind() Kind { return KindCircle }

func (c Circle) Bounds() Bbox {
	return Bbox{
		Min: Pt(vmath.Sub(c.Center.Pos.X, c.Radius), vmath.Sub(c.Center.Pos.Y, c.Radius)),
		Max: Pt(vmath.Add(c.Center.Pos.X, c.Radius), vmath.Add(c.Center.Pos.Y, c.Radius)),
	}
}

func (c Circle) Centroid() Point {
	return c.Center
}

func (c Circle) ContainsPoint(q Point) bool {
	return q.Pos.Sub(c.Center.Pos).LengthSq() <= vmath.Mul(c.Radius, c.Radius)
}

// ToPolygon returns the inscribed regular polygon, counter-clockwise
func (c Circle) ToPolygon() Polygon {
	poly := make(Polygon, 0, CircleSegments)
	for i := 0; i < CircleSegments; i++ {
		angle := int64(i) * (vmath.One / CircleSegments)
		offset := vmath.V(
			vmath.Mul(c.Radius, vmath.Cos(angle)),
			vmath.Mul(c.Radius, vmath.Sin(angle)),
		)
		poly = append(poly, PtVec(c.Center.Pos.Add(offset)))
	}
	return poly
}

func (c Circle) sealed() {}
