package raysphere

type Real = float64

// Defaults for the built-in two-sphere scene.
const (
	ImageWidth  = 512
	ImageHeight = 512
	FOVDeg      = 90 // horizontal field of view, degrees
	MaxChannel  = 255
	PPMOut      = "output.ppm"
	PPMMagic    = "P3"
	RawPPMMagic = "P6"
)
