package geometry

import (
	"sort"

	"github.com/lixenwraith/planar/vmath"
)

// MinkowskiDifference computes the convex polygon {a - b | a in A, b in B}
// for convex inputs: all pairwise vertex differences followed by a
// convex hull. The editor draws it directly, and SeparationVector
// reads the minimum translation off its boundary. Degenerate inputs
// propagate: an empty operand yields an empty polygon, a single-point
// operand yields a translated (and for the left operand, reflected)
// copy of the other
func MinkowskiDifference(a, b Polygon) Polygon {
	if len(a) == 0 || len(b) == 0 {
		return Polygon{}
	}
	pts := make([]vmath.Vec2, 0, len(a)*len(b))
	for _, pa := range a {
		for _, pb := range b {
			pts = append(pts, pa.Pos.Sub(pb.Pos))
		}
	}
	hull := convexHull(pts)
	out := make(Polygon, len(hull))
	for i, v := range hull {
		out[i] = PtVec(v)
	}
	return out
}

// convexHull is the monotone chain, returning vertices in
// counter-clockwise order with collinear points dropped. Input order
// does not matter; output is deterministic for a given point set
func convexHull(pts []vmath.Vec2) []vmath.Vec2 {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	// Dedupe after sorting so degenerate inputs collapse cleanly
	uniq := pts[:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			uniq = append(uniq, p)
		}
	}
	pts = uniq

	if len(pts) < 3 {
		out := make([]vmath.Vec2, len(pts))
		copy(out, pts)
		return out
	}

	cross := func(o, a, b vmath.Vec2) int64 {
		return a.Sub(o).Cross(b.Sub(o))
	}

	hull := make([]vmath.Vec2, 0, len(pts)*2)

	// Lower chain
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper chain
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull[:len(hull)-1]
}

// closestBoundaryPoint returns the point on the polygon's boundary
// nearest to q. The first minimal edge in winding order wins ties,
// keeping the result deterministic for identical inputs
func closestBoundaryPoint(p Polygon, q vmath.Vec2) vmath.Vec2 {
	switch len(p) {
	case 0:
		return vmath.Vec2{}
	case 1:
		return p[0].Pos
	}

	best := p[0].Pos
	bestDist := vmath.MaxValue
	for i := range p {
		a := p[i].Pos
		b := p[(i+1)%len(p)].Pos
		c := closestPointOnSegment(a, b, q)
		d := c.Sub(q).LengthSq()
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
