package physics

import (
	"github.com/lixenwraith/planar/geometry"
	"github.com/lixenwraith/planar/vmath"
)

// Transform places a shape in world space: rotate, then scale, then
// translate. Shapes are stored in local space and transformed fresh
// every phase; Apply never mutates its input
type Transform struct {
	Position vmath.Vec2
	Rotation vmath.Dir
	Scale    vmath.Vec2
}

// NewTransform creates an identity-rotation, unit-scale transform
func NewTransform(position vmath.Vec2) Transform {
	return Transform{
		Position: position,
		Scale:    vmath.V(vmath.One, vmath.One),
	}
}

// applyVec maps one local-space point to world space
func (t Transform) applyVec(v vmath.Vec2) vmath.Vec2 {
	r := t.Rotation.Rotate(v)
	r = vmath.V(vmath.Mul(r.X, t.Scale.X), vmath.Mul(r.Y, t.Scale.Y))
	return r.Add(t.Position)
}

// radiusScale keeps circles circular under non-uniform scale: the
// geometric mean of the absolute axis factors, never below EPS
func (t Transform) radiusScale() int64 {
	s := vmath.Sqrt(vmath.Mul(vmath.Abs(t.Scale.X), vmath.Abs(t.Scale.Y)))
	if s < vmath.EPS {
		return vmath.EPS
	}
	return s
}

// Apply returns the world-space copy of a shape. Bbox corners are
// transformed as points and re-normalized, so a rotated box stays
// axis-aligned (the box is the broad-phase volume, not an oriented
// collider)
func (t Transform) Apply(s geometry.Shape) geometry.Shape {
	switch sh := s.(type) {
	case geometry.Point:
		return geometry.PtVec(t.applyVec(sh.Pos))
	case geometry.Line:
		return geometry.Ln(
			geometry.PtVec(t.applyVec(sh.Start.Pos)),
			geometry.PtVec(t.applyVec(sh.End.Pos)),
		)
	case geometry.Bbox:
		return geometry.Bb(
			geometry.PtVec(t.applyVec(sh.Min.Pos)),
			geometry.PtVec(t.applyVec(sh.Max.Pos)),
		).Normalized()
	case geometry.Circle:
		radius := vmath.Mul(sh.Radius, t.radiusScale())
		if radius < vmath.EPS {
			radius = vmath.EPS
		}
		return geometry.Cr(geometry.PtVec(t.applyVec(sh.Center.Pos)), radius)
	case geometry.Polygon:
		out := make(geometry.Polygon, len(sh))
		for i, pt := range sh {
			out[i] = geometry.PtVec(t.applyVec(pt.Pos))
		}
		return out
	}
	return s
}
