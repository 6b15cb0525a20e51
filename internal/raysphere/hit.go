package raysphere

// Hit is the entry point of a ray into a surface.
// T is the signed ray parameter; Point = origin + dir*T.
type Hit struct {
	T     Real
	Point Vector3
}

// Intersectable is anything a camera ray can be tested against.
type Intersectable interface {
	Intersect(origin, dir Vector3) (Hit, bool)
	Normal(p Vector3) Vector3
}
