package vmath

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := VInt(3, 4)
	b := VInt(1, 2)

	sum := a.Add(b)
	if sum != VInt(4, 6) {
		t.Errorf("Expected (4,6), got (%d,%d)", ToInt(sum.X), ToInt(sum.Y))
	}

	diff := a.Sub(b)
	if diff != VInt(2, 2) {
		t.Errorf("Expected (2,2), got (%d,%d)", ToInt(diff.X), ToInt(diff.Y))
	}
}

func TestVec2Length(t *testing.T) {
	v := VInt(3, 4)
	got := ToFloat(v.Length())
	if math.Abs(got-5.0) > 1e-4 {
		t.Errorf("Expected length 5, got %f", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := VInt(10, 0)
	n := v.Normalize()
	if math.Abs(ToFloat(n.X)-1.0) > 1e-4 || ToInt(n.Y) != 0 {
		t.Errorf("Expected unit X vector, got (%f,%f)", ToFloat(n.X), ToFloat(n.Y))
	}

	if !Vec2Zero.Normalize().IsZero() {
		t.Errorf("Expected zero vector to normalize to zero")
	}
}

func TestVec2DotCross(t *testing.T) {
	a := VInt(1, 0)
	b := VInt(0, 1)
	if a.Dot(b) != 0 {
		t.Errorf("Expected perpendicular dot to be 0")
	}
	if a.Cross(b) != One {
		t.Errorf("Expected unit cross, got %f", ToFloat(a.Cross(b)))
	}
	if b.Cross(a) != -One {
		t.Errorf("Expected negated cross for swapped operands")
	}
}

func TestVec2Rotate(t *testing.T) {
	v := VInt(1, 0)
	quarter := DirFromAngle(One / 4)
	r := quarter.Rotate(v)
	if math.Abs(ToFloat(r.X)) > 0.01 || math.Abs(ToFloat(r.Y)-1.0) > 0.01 {
		t.Errorf("Expected (0,1), got (%f,%f)", ToFloat(r.X), ToFloat(r.Y))
	}
}

func TestDirProject(t *testing.T) {
	d := DirFromAngle(0)
	v := VInt(3, 7)
	if ToInt(d.Project(v)) != 3 {
		t.Errorf("Expected projection 3, got %d", ToInt(d.Project(v)))
	}
}

func TestVec2Perp(t *testing.T) {
	v := VInt(2, 1)
	p := v.Perp()
	if v.Dot(p) != 0 {
		t.Errorf("Expected perpendicular vector, dot=%d", v.Dot(p))
	}
}
