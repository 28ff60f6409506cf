package numeric

import "math"

// Float is the scalar type accepted by every curve.
type Float interface {
	~float32 | ~float64
}

// Exp returns e**x.
func Exp[T Float](x T) T {
	return T(math.Exp(float64(x)))
}

// Log returns the natural logarithm of x. Log(0) is -Inf and a negative x gives NaN.
func Log[T Float](x T) T {
	return T(math.Log(float64(x)))
}

// Pow returns x**y. A negative x with a non-integral y gives NaN.
func Pow[T Float](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// NaN returns an IEEE-754 not-a-number of type T.
func NaN[T Float]() T {
	return T(math.NaN())
}

// IsNaN reports whether x is not-a-number.
func IsNaN[T Float](x T) bool {
	return math.IsNaN(float64(x))
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[T Float](x T) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
