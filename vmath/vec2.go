package vmath

// Vec2 is a 2D vector in Q32.32. Value type, all operations return copies
type Vec2 struct {
	X, Y int64
}

var Vec2Zero = Vec2{}

func V(x, y int64) Vec2 {
	return Vec2{X: x, Y: y}
}

// VInt builds a vector from integer coordinates
func VInt(x, y int) Vec2 {
	return Vec2{X: FromInt(x), Y: FromInt(y)}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: Add(v.X, o.X), Y: Add(v.Y, o.Y)}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: Sub(v.X, o.X), Y: Sub(v.Y, o.Y)}
}

// Scale multiplies both components by a Q32.32 factor
func (v Vec2) Scale(k int64) Vec2 {
	return Vec2{X: Mul(v.X, k), Y: Mul(v.Y, k)}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: Sub(0, v.X), Y: Sub(0, v.Y)}
}

// Dot returns the dot product in Q32.32
func (v Vec2) Dot(o Vec2) int64 {
	return Add(Mul(v.X, o.X), Mul(v.Y, o.Y))
}

// Cross returns the Z component of the 3D cross product.
// Sign gives the winding of the turn from v to o
func (v Vec2) Cross(o Vec2) int64 {
	return Sub(Mul(v.X, o.Y), Mul(v.Y, o.X))
}

// LengthSq returns the squared magnitude, saturating for large vectors
func (v Vec2) LengthSq() int64 {
	return Add(Mul(v.X, v.X), Mul(v.Y, v.Y))
}

// Length returns the Euclidean magnitude
func (v Vec2) Length() int64 {
	return Sqrt(v.LengthSq())
}

// Normalize returns the unit vector, or the zero vector for zero input
func (v Vec2) Normalize() Vec2 {
	mag := v.Length()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{X: Div(v.X, mag), Y: Div(v.Y, mag)}
}

// Perp returns the vector rotated 90 degrees counter-clockwise
func (v Vec2) Perp() Vec2 {
	return Vec2{X: Sub(0, v.Y), Y: v.X}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rotate rotates the vector by the given direction
func (v Vec2) Rotate(d Dir) Vec2 {
	cos := Cos(d.angle)
	sin := Sin(d.angle)
	return Vec2{
		X: Sub(Mul(v.X, cos), Mul(v.Y, sin)),
		Y: Add(Mul(v.X, sin), Mul(v.Y, cos)),
	}
}
