package movement

import (
	"image/color"
	"math"

	"github.com/automoto/drift/shared/gamemath"
)

// SpeedColor maps speed onto a gradient from red at rest to purple at top speed.
func SpeedColor(speed, maxSpeed float64) color.RGBA {
	var r float64
	if maxSpeed > 0 {
		r = gamemath.Clamp01(speed / maxSpeed)
	}
	return color.RGBA{
		R: uint8(math.Round(255 - 127*r)),
		G: 0,
		B: uint8(math.Round(128 * r)),
		A: 255,
	}
}
