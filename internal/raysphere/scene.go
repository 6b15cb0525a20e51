package raysphere

// Scene is an ordered list of objects. Order is draw priority:
// without a depth test, a later object overwrites an earlier hit on the same pixel.
type Scene struct {
	Objects []Intersectable
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Add(o Intersectable) {
	s.Objects = append(s.Objects, o)
}
