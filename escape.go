package mandel

import "math"

// MaxIterations caps the escape-time iteration.
const MaxIterations = 150

// EscapeIterations iterates z = z² + c from z0 and returns the 0-based step
// at which |z| first exceeds 2, or maxIter if it never does.
func EscapeIterations(z0, c complex128, maxIter int) int {
	x, y := real(z0), imag(z0)
	cr, ci := real(c), imag(c)

	for i := range maxIter {
		x, y = x*x-y*y+cr, 2*x*y+ci
		if math.Hypot(x, y) > 2 {
			return i
		}
	}
	return maxIter
}
