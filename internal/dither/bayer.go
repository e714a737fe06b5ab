package dither

// bayerMatrix is the 4x4 ordered dither matrix. Each value 0..15 appears once.
var bayerMatrix = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Bayer returns the normalized threshold in [0, 15/16] for block coordinates
// (x, y). Coordinates wrap every 4 blocks in both directions, including
// negative ones.
func Bayer(x, y int) float64 {
	return float64(bayerMatrix[y&3][x&3]) / 16.0
}

// AdjustedThreshold raises threshold t toward 1 by the density reduction d.
// d=0 leaves t unchanged and d=1 yields 1; the relative order of thresholds is
// preserved for any d.
func AdjustedThreshold(t, d float64) float64 {
	return t + (1-t)*d
}
