package raysphere

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// toChannel truncates a color component into [0,255].
func toChannel(v Real) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= MaxChannel {
		return MaxChannel
	}
	return uint8(v)
}
