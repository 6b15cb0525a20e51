package raysphere

import (
	"math"
	"testing"
)

func TestVectorOps(t *testing.T) {
	v := Vector3{1, 2, 3}
	w := Vector3{-1, 0.5, 2}
	s := Real(3)

	add := v.Add(w)
	if add != (Vector3{0, 2.5, 5}) {
		t.Fatalf("Add mismatch: %+v", add)
	}
	sub := v.Sub(w)
	if sub != (Vector3{2, 1.5, 1}) {
		t.Fatalf("Sub mismatch: %+v", sub)
	}
	mul := v.Mul(s)
	if mul != (Vector3{3, 6, 9}) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
	dot := v.Dot(w)
	wantDot := Real(1*(-1) + 2*0.5 + 3*2)
	if dot != wantDot {
		t.Fatalf("Dot mismatch: got %.12g want %.12g", dot, wantDot)
	}
	l := v.Len()
	if math.Abs(l-math.Sqrt(14)) > 1e-12 {
		t.Fatalf("Len mismatch: %.12g", l)
	}
	n := v.Norm()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Fatalf("Norm not unit: %.12g", n.Len())
	}
}

func TestNormUnitLength(t *testing.T) {
	for _, v := range []Vector3{
		{1, 0, 0}, {0, -1, 0}, {0, 0, 1},
		{1, 1, 1}, {-3, 4, 12}, {1e-6, 2e-6, -3e-6}, {250, -1e3, 7},
	} {
		n := v.Norm()
		if math.Abs(n.Len()-1) > 1e-12 {
			t.Fatalf("|Norm(%+v)| = %.15g", v, n.Len())
		}
		// direction preserved
		if n.Dot(v) <= 0 {
			t.Fatalf("Norm(%+v) flipped direction: %+v", v, n)
		}
	}
}

func TestNormZeroVectorIsNaN(t *testing.T) {
	n := Vector3{}.Norm()
	if isFinite(n.X) || isFinite(n.Y) || isFinite(n.Z) {
		t.Fatalf("expected non-finite components for zero vector, got %+v", n)
	}
}
