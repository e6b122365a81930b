package vmath

// Dir is a unit rotation. The angle is Q32.32 where One represents a
// full turn, matching the Sin/Cos LUT convention, so composing
// rotations is plain addition and wrap-around is free
type Dir struct {
	angle int64
}

var DirZero = Dir{}

// DirFromAngle builds a direction from a turn fraction (One = 2pi)
func DirFromAngle(angle int64) Dir {
	return Dir{angle: angle}
}

// DirFromRadians converts a float radian angle at the input boundary
func DirFromRadians(rad float64) Dir {
	const twoPi = 6.283185307179586
	return Dir{angle: FromFloat(rad / twoPi)}
}

// Angle returns the turn fraction in Q32.32
func (d Dir) Angle() int64 {
	return d.angle
}

// Compose returns the direction rotated further by delta turns
func (d Dir) Compose(delta int64) Dir {
	return Dir{angle: d.angle + delta}
}

// Rotate applies the rotation to a vector
func (d Dir) Rotate(v Vec2) Vec2 {
	return v.Rotate(d)
}

// Project returns the component of v along the direction's axis
func (d Dir) Project(v Vec2) int64 {
	cos := Cos(d.angle)
	sin := Sin(d.angle)
	return Add(Mul(v.X, cos), Mul(v.Y, sin))
}

// IsZero reports whether the direction is the identity rotation
func (d Dir) IsZero() bool {
	return d.angle == 0
}
