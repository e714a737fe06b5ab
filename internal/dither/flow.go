package dither

import "math"

const (
	flowSpeed     = 0.0008
	verticalSpeed = 0.0005
	rippleSpeed   = 0.004
)

// Flow evaluates the flow field at normalized coordinates (nx, ny) for time t,
// smoothed pointer (mx, my) and scroll phase offset. The result is centered on
// 0.5 and nominally spans [0, 1]; it is deliberately not clamped.
func Flow(nx, ny, t, mx, my, scroll float64) float64 {
	dx := nx - mx
	dy := ny - my
	dist := math.Sqrt(dx*dx + dy*dy)

	phase := nx*6 - t*flowSpeed + scroll

	verticalWave := math.Sin(ny*3+t*verticalSpeed) * 0.4
	mainFlow := math.Sin(phase) * 0.5
	secondaryFlow := math.Sin(phase*0.8+ny*2) * 0.15
	ripple := math.Exp(-dist*4) * math.Sin(dist*12-t*rippleSpeed) * 0.3
	noise := math.Sin(nx*15+t*0.002) * math.Cos(ny*10+t*0.001) * 0.05

	return (mainFlow+secondaryFlow+verticalWave+ripple+noise)*0.5 + 0.5
}
