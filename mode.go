package mandel

import "fmt"

// Mode selects how a pixel's plane point seeds the iteration.
// It is either Mandelbrot or Julia; no other implementations exist.
type Mode interface {
	// Seed returns the starting value and parameter for plane point p.
	Seed(p complex128) (z0, c complex128)
	String() string
	isMode()
}

// Mandelbrot iterates from z0 = 0 with c = p.
type Mandelbrot struct{}

func (Mandelbrot) Seed(p complex128) (z0, c complex128) { return 0, p }
func (Mandelbrot) String() string                       { return "Mandelbrot" }
func (Mandelbrot) isMode()                              {}

// Julia iterates from z0 = p with the fixed parameter C.
type Julia struct {
	C complex128
}

func (j Julia) Seed(p complex128) (z0, c complex128) { return p, j.C }
func (j Julia) String() string                       { return fmt.Sprintf("Julia(%s)", FormatComplex(j.C)) }
func (Julia) isMode()                                {}

// Iterations evaluates point p under mode m with the fixed cap.
func Iterations(m Mode, p complex128) int {
	z0, c := m.Seed(p)
	return EscapeIterations(z0, c, MaxIterations)
}

// FormatComplex renders c as "a + bi" with four decimals.
func FormatComplex(c complex128) string {
	sign := '+'
	im := imag(c)
	if im < 0 {
		sign = '-'
		im = -im
	}
	return fmt.Sprintf("%.4f %c %.4fi", real(c), sign, im)
}
