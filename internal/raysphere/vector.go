package raysphere

import "gonum.org/v1/gonum/spatial/r3"

// Vector3 is a point, a direction or a color in 3D space.
type Vector3 r3.Vec

func (a Vector3) vec() r3.Vec { return r3.Vec(a) }

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3(r3.Add(a.vec(), b.vec())) }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3(r3.Sub(a.vec(), b.vec())) }
func (v Vector3) Mul(s Real) Vector3    { return Vector3(r3.Scale(s, v.vec())) }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real { return r3.Dot(a.vec(), b.vec()) }

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return r3.Norm(v.vec()) }

// Norm returns a unit-length version of the vector.
// The zero vector is outside the contract: it divides by zero and yields NaN components.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}
