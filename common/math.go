package common

// Trunc converts a real-valued offset to whole pixels, rounding toward zero.
func Trunc(v float64) int {
	return int(v)
}

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
