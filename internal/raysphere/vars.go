package raysphere

var (
	Debug = false // set to true for verbose debug output and render stats
	PNG   = false // set to true to also save a PNG next to the PPM output
	RAW   = false // set to true to write binary P6 instead of plain-text P3
	// Overrides OR-ed with the matching Config fields
	DepthTest   = false
	TrueNormals = false
	CullBehind  = false
	// Compile time check that every primitive can be placed in a Scene
	_ Intersectable = (*Sphere)(nil)
)
