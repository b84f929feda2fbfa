// internal/utils/math.go
package utils

// Lerp interpolates linearly between from and to.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
