package geometry

import (
	"github.com/lixenwraith/planar/vmath"
)

// Polygon is an ordered vertex list; insertion order is winding order.
// No minimum vertex count: the editor grows polygons point by point,
// so 0, 1 and 2 vertex polygons flow through every consumer. A 1-point
// polygon behaves as a point, a 2-point polygon as a segment
type Polygon []Point

func (p Polygon) Kind() Kind { return KindPolygon }

func (p Polygon) Bounds() Bbox {
	if len(p) == 0 {
		return Bbox{}
	}
	min := p[0].Pos
	max := p[0].Pos
	for _, v := range p[1:] {
		min.X = vmath.Min(min.X, v.Pos.X)
		min.Y = vmath.Min(min.Y, v.Pos.Y)
		max.X = vmath.Max(max.X, v.Pos.X)
		max.Y = vmath.Max(max.Y, v.Pos.Y)
	}
	return Bbox{Min: PtVec(min), Max: PtVec(max)}
}

// Centroid is the vertex mean. An empty polygon centers on the origin
func (p Polygon) Centroid() Point {
	if len(p) == 0 {
		return Point{}
	}
	var sum vmath.Vec2
	for _, v := range p {
		sum = sum.Add(v.Pos)
	}
	n := vmath.FromInt(len(p))
	return Pt(vmath.Div(sum.X, n), vmath.Div(sum.Y, n))
}

// ContainsPoint runs even-odd ray casting for 3+ vertices and falls
// back to point/segment semantics for degenerate vertex counts
func (p Polygon) ContainsPoint(q Point) bool {
	switch len(p) {
	case 0:
		return false
	case 1:
		return p[0].ContainsPoint(q)
	case 2:
		return Line{Start: p[0], End: p[1]}.ContainsPoint(q)
	}

	inside := false
	j := len(p) - 1
	for i := 0; i < len(p); i++ {
		pi, pj := p[i].Pos, p[j].Pos
		if (pi.Y > q.Pos.Y) != (pj.Y > q.Pos.Y) {
			cross := vmath.Add(pi.X, vmath.MulDiv(
				vmath.Sub(q.Pos.Y, pi.Y),
				vmath.Sub(pj.X, pi.X),
				vmath.Sub(pj.Y, pi.Y),
			))
			if q.Pos.X < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

func (p Polygon) ToPolygon() Polygon {
	return p
}

// Translate returns a copy moved by v
func (p Polygon) Translate(v vmath.Vec2) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Translate(v)
	}
	return out
}

func (p Polygon) sealed() {}

// project returns the min and max of the vertices projected on axis.
// The axis need not be normalized for interval-overlap comparisons
func (p Polygon) project(axis vmath.Vec2) (int64, int64) {
	min, max := vmath.MaxValue, vmath.MinValue
	for _, v := range p {
		d := v.Pos.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// allCoincident reports whether every vertex shares one position, the
// state a polygon draft starts in
func allCoincident(p Polygon) bool {
	for _, v := range p[1:] {
		if v.Pos != p[0].Pos {
			return false
		}
	}
	return true
}

// isFlat reports whether every vertex lies on one line (segments
// trivially qualify). A flat polygon has no interior
func isFlat(p Polygon) bool {
	var dir vmath.Vec2
	base := p[0].Pos
	for _, v := range p[1:] {
		d := v.Pos.Sub(base)
		if d.IsZero() {
			continue
		}
		if dir.IsZero() {
			dir = d
			continue
		}
		if dir.Cross(d) != 0 {
			return false
		}
	}
	return true
}

// polygonsCollide is the separating-axis test every cross-type
// collision query funnels into. A polygon whose vertices all coincide
// collapses to point containment. Flat polygons (segments included)
// have no interior, so their edge directions are tested as axes too;
// edge perpendiculars alone cannot separate collinear disjoint segments
func polygonsCollide(a, b Polygon) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if allCoincident(a) {
		return b.ContainsPoint(a[0])
	}
	if allCoincident(b) {
		return a.ContainsPoint(b[0])
	}

	separated := func(axis vmath.Vec2) bool {
		min1, max1 := a.project(axis)
		min2, max2 := b.project(axis)
		return max1 < min2 || max2 < min1
	}

	for _, poly := range [2]Polygon{a, b} {
		flat := isFlat(poly)
		for i := range poly {
			edge := poly[(i+1)%len(poly)].Pos.Sub(poly[i].Pos)
			if edge.IsZero() {
				continue
			}
			if separated(edge.Perp()) {
				return false
			}
			if flat && separated(edge) {
				return false
			}
		}
	}
	return true
}
