package raysphere

import (
	"fmt"
	"math"
)

// Sphere is a scene primitive, constant for the whole render.
type Sphere struct {
	Center Vector3
	Radius Real
}

func NewSphere(center Vector3, radius Real) (*Sphere, error) {
	if !(radius > 0) || !isFinite(radius) {
		return nil, fmt.Errorf("sphere radius must be finite and >0, got %g", radius)
	}
	if !isFinite(center.X) || !isFinite(center.Y) || !isFinite(center.Z) {
		return nil, fmt.Errorf("sphere center must be finite, got %+v", center)
	}
	s := &Sphere{Center: center, Radius: radius}
	DebugLog("Created sphere: center=%+v radius=%g", center, radius)
	return s, nil
}

// Ray/sphere intersection, geometric form.
// Project the center onto the ray line, compare the perpendicular distance with the
// radius, then step back half a chord. D must be unit.
// Only the infinite line is tested: a sphere behind O still reports a hit with t < 0.
func intersectRaySphere(O, D Vector3, s *Sphere) (hit Hit, ok bool) {
	co := s.Center.Sub(O)
	t := co.Dot(D)
	closest := O.Add(D.Mul(t))
	dist := closest.Sub(s.Center).Len()
	if dist > s.Radius {
		return Hit{}, false
	}
	half := math.Sqrt(s.Radius*s.Radius - dist*dist)
	tHit := t - half
	return Hit{T: tHit, Point: O.Add(D.Mul(tHit))}, true
}

// Intersect reports the nearer of the two points where the ray line meets the sphere.
func (s *Sphere) Intersect(origin, dir Vector3) (Hit, bool) {
	return intersectRaySphere(origin, dir, s)
}

// Normal returns the outward unit normal at a surface point p.
func (s *Sphere) Normal(p Vector3) Vector3 {
	return p.Sub(s.Center).Mul(1 / s.Radius)
}
