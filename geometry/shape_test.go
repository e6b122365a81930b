package geometry

import (
	"math"
	"testing"

	"github.com/lixenwraith/planar/vmath"
)

func ptI(x, y int) Point {
	return Pt(vmath.FromInt(x), vmath.FromInt(y))
}

func unitSquare() Polygon {
	return Polygon{ptI(0, 0), ptI(1, 0), ptI(1, 1), ptI(0, 1)}
}

func TestBboxOverlapScenarios(t *testing.T) {
	tests := []struct {
		name string
		a, b Bbox
		want bool
	}{
		{"Overlapping", Bb(ptI(0, 0), ptI(2, 2)), Bb(ptI(1, 1), ptI(3, 3)), true},
		{"Disjoint", Bb(ptI(3, 3), ptI(5, 5)), Bb(ptI(0, 0), ptI(1, 1)), false},
		{"Contained", Bb(ptI(0, 0), ptI(4, 4)), Bb(ptI(1, 1), ptI(2, 2)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, tt.b); got != tt.want {
				t.Errorf("Expected Collides=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestCircleCircleSeparation(t *testing.T) {
	a := Cr(ptI(0, 0), vmath.One)
	b := Cr(Pt(vmath.FromFloat(1.5), 0), vmath.One)

	if !Collides(a, b) {
		t.Fatalf("Expected overlapping circles to collide")
	}

	sep, ok := SeparationVector(a, b)
	if !ok {
		t.Fatalf("Expected a separation vector for colliding circles")
	}

	mag := vmath.ToFloat(sep.Length())
	if math.Abs(mag-0.5) > 0.03 {
		t.Errorf("Expected separation magnitude ~0.5, got %f", mag)
	}
	if sep.X <= 0 || vmath.Abs(sep.Y) > vmath.Abs(sep.X)/8 {
		t.Errorf("Expected separation along +X, got (%f,%f)",
			vmath.ToFloat(sep.X), vmath.ToFloat(sep.Y))
	}
}

func TestPointOutsidePolygon(t *testing.T) {
	p := ptI(10, 10)
	poly := unitSquare()
	if Collides(p, poly) {
		t.Errorf("Expected point far outside polygon not to collide")
	}
	if poly.ContainsPoint(p) {
		t.Errorf("Expected ContainsPoint=false")
	}
}

func TestPointInsidePolygon(t *testing.T) {
	p := Pt(vmath.FromFloat(0.5), vmath.FromFloat(0.5))
	if !unitSquare().ContainsPoint(p) {
		t.Errorf("Expected center of unit square to be inside")
	}
}

// Symmetry across every ordered pair of shape kinds
func TestCollideSymmetry(t *testing.T) {
	shapes := []Shape{
		ptI(1, 1),
		Ln(ptI(0, 0), ptI(2, 2)),
		Bb(ptI(0, 0), ptI(2, 2)),
		Cr(ptI(1, 1), vmath.One),
		Polygon{ptI(0, 0), ptI(2, 0), ptI(2, 2), ptI(0, 2)},
		// Disjoint ones so symmetry covers both outcomes
		ptI(10, 10),
		Cr(ptI(-10, -10), vmath.One),
	}

	for i, a := range shapes {
		for j, b := range shapes {
			if Collides(a, b) != Collides(b, a) {
				t.Errorf("Symmetry broken for shapes %d and %d (%s vs %s)",
					i, j, a.Kind(), b.Kind())
			}
		}
	}
}

// Translating b by the separation vector must remove the overlap
func TestSeparationSoundness(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
	}{
		{"BboxBbox", Bb(ptI(0, 0), ptI(2, 2)), Bb(ptI(1, 1), ptI(3, 3))},
		{"CircleCircle", Cr(ptI(0, 0), vmath.One), Cr(Pt(vmath.FromFloat(1.5), 0), vmath.One)},
		{"BboxCircle", Bb(ptI(0, 0), ptI(2, 2)), Cr(ptI(2, 1), vmath.One)},
		{"PolygonBbox", Polygon{ptI(0, 0), ptI(3, 0), ptI(3, 3), ptI(0, 3)}, Bb(ptI(2, 2), ptI(5, 5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep, ok := SeparationVector(tt.a, tt.b)
			if !ok {
				t.Fatalf("Expected shapes to collide")
			}
			// Nudge past touching to absorb fixed-point rounding
			nudge := sep.Add(sep.Normalize().Scale(vmath.EPS * 16))
			moved := tt.b.ToPolygon().Translate(nudge)
			if polygonsCollide(tt.a.ToPolygon(), moved) {
				t.Errorf("Expected translation by separation vector to resolve overlap (sep=%f,%f)",
					vmath.ToFloat(sep.X), vmath.ToFloat(sep.Y))
			}
		})
	}
}

func TestNoCollisionNoSeparation(t *testing.T) {
	a := Cr(ptI(0, 0), vmath.One)
	b := Cr(ptI(5, 0), vmath.One)
	if Collides(a, b) {
		t.Fatalf("Expected disjoint circles")
	}
	if _, ok := SeparationVector(a, b); ok {
		t.Errorf("Expected no separation vector for non-colliding shapes")
	}
}

func TestSeparationDeterminism(t *testing.T) {
	a := Bb(ptI(0, 0), ptI(2, 2))
	b := Bb(ptI(1, 1), ptI(3, 3))
	first, ok := SeparationVector(a, b)
	if !ok {
		t.Fatalf("Expected collision")
	}
	for i := 0; i < 10; i++ {
		again, _ := SeparationVector(a, b)
		if again != first {
			t.Errorf("Expected identical inputs to give identical separation")
		}
	}
}

func TestDegenerateShapes(t *testing.T) {
	degenerateLine := Ln(ptI(1, 1), ptI(1, 1))
	if !degenerateLine.IsDegenerate() {
		t.Errorf("Expected coincident endpoints to be degenerate")
	}
	// Must behave as a point, not panic
	if !Collides(degenerateLine, ptI(1, 1)) {
		t.Errorf("Expected degenerate line to collide with coincident point")
	}

	var empty Polygon
	if Collides(empty, unitSquare()) {
		t.Errorf("Expected empty polygon to collide with nothing")
	}
	if Collides(unitSquare(), empty) {
		t.Errorf("Expected empty polygon to collide with nothing (swapped)")
	}

	single := Polygon{Pt(vmath.FromFloat(0.5), vmath.FromFloat(0.5))}
	if !Collides(single, unitSquare()) {
		t.Errorf("Expected 1-point polygon inside square to collide")
	}

	segment := Polygon{ptI(-1, 0), ptI(3, 1)}
	if !Collides(segment, unitSquare()) {
		t.Errorf("Expected crossing 2-point polygon to collide")
	}
}

func TestCollinearDisjointSegments(t *testing.T) {
	a := Ln(ptI(0, 0), ptI(1, 0))
	b := Ln(ptI(5, 0), ptI(6, 0))

	if Collides(a, b) {
		t.Errorf("Expected disjoint collinear segments not to collide")
	}
	if _, ok := SeparationVector(a, b); ok {
		t.Errorf("Expected no separation vector for disjoint segments")
	}

	// Collinear with actual overlap still collides
	c := Ln(ptI(0, 0), ptI(3, 0))
	d := Ln(ptI(2, 0), ptI(5, 0))
	if !Collides(c, d) {
		t.Errorf("Expected overlapping collinear segments to collide")
	}
}

func TestFlatPolygonsDisjoint(t *testing.T) {
	// Three collinear vertices degenerate to a segment and must
	// still separate along their own direction
	a := Polygon{ptI(0, 0), ptI(1, 0), ptI(2, 0)}
	b := Polygon{ptI(5, 0), ptI(6, 0), ptI(7, 0)}
	if Collides(a, b) {
		t.Errorf("Expected disjoint flat polygons not to collide")
	}
	if !Collides(a, Polygon{ptI(1, 0), ptI(4, 0), ptI(6, 0)}) {
		t.Errorf("Expected overlapping flat polygons to collide")
	}
}

func TestCoincidentVertexPolygons(t *testing.T) {
	// A polygon draft starts as two coincident points; two such
	// drafts far apart must not collide
	a := Polygon{ptI(0, 0), ptI(0, 0)}
	b := Polygon{ptI(5, 0), ptI(5, 0)}
	if Collides(a, b) {
		t.Errorf("Expected coincident-vertex polygons 5 units apart not to collide")
	}

	same := Polygon{ptI(5, 0), ptI(5, 0)}
	if !Collides(b, same) {
		t.Errorf("Expected coincident-vertex polygons at the same position to collide")
	}

	// Collapsed draft against a real shape acts as a point
	if !Collides(a, Bb(ptI(-1, -1), ptI(1, 1))) {
		t.Errorf("Expected collapsed polygon inside box to collide")
	}
}

func TestCircleRadiusClamped(t *testing.T) {
	c := Cr(ptI(0, 0), -vmath.One)
	if c.Radius < vmath.EPS {
		t.Errorf("Expected radius clamped to at least EPS, got %d", c.Radius)
	}
}

func TestLineContainsPoint(t *testing.T) {
	l := Ln(ptI(0, 0), ptI(4, 0))
	if !l.ContainsPoint(ptI(2, 0)) {
		t.Errorf("Expected midpoint on segment")
	}
	if l.ContainsPoint(ptI(2, 1)) {
		t.Errorf("Expected offset point off segment")
	}
	if l.ContainsPoint(ptI(5, 0)) {
		t.Errorf("Expected point past the end off segment")
	}
}

func TestCentroids(t *testing.T) {
	if got := unitSquare().Centroid(); vmath.ToFloat(got.Pos.X) != 0.5 || vmath.ToFloat(got.Pos.Y) != 0.5 {
		t.Errorf("Expected centroid (0.5,0.5), got (%f,%f)",
			vmath.ToFloat(got.Pos.X), vmath.ToFloat(got.Pos.Y))
	}
	if got := Bb(ptI(0, 0), ptI(4, 2)).Centroid(); got != ptI(2, 1) {
		t.Errorf("Expected bbox centroid (2,1)")
	}
}
