package raysphere

import "fmt"

type Category uint8

const (
	Shaded      Category = iota // primary ray hit an object and was shaded
	Missed                      // primary ray missed an object
	Overwritten                 // a later object replaced an earlier hit on the same pixel
	Occluded                    // depth test kept an earlier, nearer hit
	Culled                      // hit behind the camera was culled
	Background                  // pixel left black
	numCategories
)

var categoryNames = [numCategories]string{"shaded", "missed", "overwritten", "occluded", "culled", "background"}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", c)
}

// RenderStats counts per-object ray outcomes of one render.
type RenderStats struct {
	counts [numCategories]int
}

func (s *RenderStats) log(c Category) {
	if s == nil {
		return
	}
	s.counts[c]++
}

// Count returns how many times c was recorded.
func (s *RenderStats) Count(c Category) int { return s.counts[c] }

func (s *RenderStats) print() {
	for c := Category(0); c < numCategories; c++ {
		fmt.Printf("Ray type %s: %d\n", c, s.counts[c])
	}
}
