package raysphere

import "math"

// Camera is a pinhole at the origin looking down -Z.
type Camera struct {
	Origin        Vector3
	Width, Height int

	// cached
	tanHalf Real
	aspect  Real
}

func NewCamera(width, height int, fov Real) Camera {
	return Camera{
		Width:   width,
		Height:  height,
		tanHalf: math.Tan(fov / 2),
		aspect:  Real(width) / Real(height),
	}
}

// PrimaryRay returns the unit direction through the center of pixel (col i, row j).
func (c Camera) PrimaryRay(i, j int) Vector3 {
	x := (2*(Real(i)+0.5)/Real(c.Width) - 1) * c.tanHalf * c.aspect
	y := -(2*(Real(j)+0.5)/Real(c.Height) - 1) * c.tanHalf
	return Vector3{x, y, -1}.Norm()
}
