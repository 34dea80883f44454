package mandel

// Bounded is returned by EscapeIterations for points whose orbit never
// leaves the radius-2 disc within the iteration budget.
const Bounded = -1

// Step is the Mandelbrot map f_c(z) = z² + c.
func Step(z, c complex128) complex128 {
	return z*z + c
}

// EscapeIterations iterates f_c from z = 0 and returns the zero-based index of
// the first iteration whose result has |z| > 2, or Bounded if that never
// happens within maxIter iterations.
func EscapeIterations(c complex128, maxIter int) int {
	z := complex(0, 0)

	for i := 0; i < maxIter; i++ {
		z = Step(z, c)
		// |z| > 2 without the square root; |z| == 2 stays inside
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i
		}
	}
	return Bounded
}

// InSet reports whether c never escaped within maxIter iterations.
func InSet(c complex128, maxIter int) bool {
	return EscapeIterations(c, maxIter) == Bounded
}
