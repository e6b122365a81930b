package geometry

import (
	"testing"

	"github.com/lixenwraith/planar/vmath"
)

func TestMinkowskiDifferenceSquares(t *testing.T) {
	a := Polygon{ptI(0, 0), ptI(2, 0), ptI(2, 2), ptI(0, 2)}
	b := Polygon{ptI(1, 1), ptI(3, 1), ptI(3, 3), ptI(1, 3)}

	md := MinkowskiDifference(a, b)
	if len(md) != 4 {
		t.Fatalf("Expected 4 hull vertices for two squares, got %d", len(md))
	}

	// Difference of [0,2]^2 and [1,3]^2 spans [-3,1]^2
	bounds := md.Bounds()
	if bounds.Min.Pos.X != vmath.FromInt(-3) || bounds.Max.Pos.X != vmath.FromInt(1) {
		t.Errorf("Expected X span [-3,1], got [%d,%d]",
			vmath.ToInt(bounds.Min.Pos.X), vmath.ToInt(bounds.Max.Pos.X))
	}

	// Overlapping squares put the origin inside the difference
	if !md.ContainsPoint(Point{}) {
		t.Errorf("Expected origin inside Minkowski difference of overlapping shapes")
	}
}

func TestMinkowskiDifferenceDisjoint(t *testing.T) {
	a := Polygon{ptI(0, 0), ptI(1, 0), ptI(1, 1), ptI(0, 1)}
	b := Polygon{ptI(5, 5), ptI(6, 5), ptI(6, 6), ptI(5, 6)}
	md := MinkowskiDifference(a, b)
	if md.ContainsPoint(Point{}) {
		t.Errorf("Expected origin outside difference of disjoint shapes")
	}
}

func TestMinkowskiDifferencePointOperand(t *testing.T) {
	square := unitSquare()
	p := Polygon{ptI(3, 2)}

	// Square minus a point is the square translated by the negated point
	md := MinkowskiDifference(square, p)
	if len(md) != 4 {
		t.Fatalf("Expected 4 vertices, got %d", len(md))
	}
	want := square.Translate(vmath.VInt(-3, -2)).Bounds()
	got := md.Bounds()
	if got.Min != want.Min || got.Max != want.Max {
		t.Errorf("Expected translated copy of the square")
	}
}

func TestMinkowskiDifferenceDegenerate(t *testing.T) {
	var empty Polygon
	square := unitSquare()

	if got := MinkowskiDifference(empty, square); len(got) != 0 {
		t.Errorf("Expected empty output for empty operand, got %d vertices", len(got))
	}
	if got := MinkowskiDifference(square, empty); len(got) != 0 {
		t.Errorf("Expected empty output for empty right operand, got %d vertices", len(got))
	}

	single := Polygon{ptI(1, 1)}
	if got := MinkowskiDifference(single, single); len(got) != 1 {
		t.Errorf("Expected single-vertex output, got %d vertices", len(got))
	} else if got[0].Pos != vmath.Vec2Zero {
		t.Errorf("Expected point minus itself at origin")
	}
}

func TestConvexHullWinding(t *testing.T) {
	// Hull of a noisy square must come out counter-clockwise
	pts := []vmath.Vec2{
		vmath.VInt(0, 0), vmath.VInt(2, 0), vmath.VInt(2, 2),
		vmath.VInt(0, 2), vmath.VInt(1, 1), // interior point dropped
	}
	hull := convexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("Expected 4 hull vertices, got %d", len(hull))
	}

	// Signed area positive means counter-clockwise
	var area int64
	for i := range hull {
		j := (i + 1) % len(hull)
		area += vmath.Mul(hull[i].X, hull[j].Y) - vmath.Mul(hull[i].Y, hull[j].X)
	}
	if area <= 0 {
		t.Errorf("Expected counter-clockwise hull, signed area %d", area)
	}
}

func TestClosestBoundaryPoint(t *testing.T) {
	square := Polygon{ptI(-2, -1), ptI(1, -1), ptI(1, 1), ptI(-2, 1)}
	got := closestBoundaryPoint(square, vmath.Vec2Zero)
	// Bottom, right and top edges all sit at distance 1; the first
	// minimal edge in winding order (bottom) wins the tie
	if got != vmath.VInt(0, -1) {
		t.Errorf("Expected (0,-1), got (%f,%f)",
			vmath.ToFloat(got.X), vmath.ToFloat(got.Y))
	}
}
