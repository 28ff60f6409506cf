package recruitment

import (
	"github.com/askiada/go-stockcurves/pkg/numeric"
)

// RickerFromAlt maps RickerAlt parameters onto Ricker parameters.
func RickerFromAlt[T numeric.Float](r0, phi0, a T) (alpha, beta T) {
	return numeric.Exp(a) / phi0, a / (phi0 * r0)
}

// RickerToAlt is the inverse of RickerFromAlt for a known phi0.
// alpha*phi0 <= 0 has no productivity and yields NaN or -Inf.
func RickerToAlt[T numeric.Float](alpha, beta, phi0 T) (r0, a T) {
	a = numeric.Log(alpha * phi0)

	return a / (phi0 * beta), a
}

// BevertonHoltFromSteepness maps BevertonHoltAlt parameters onto BevertonHolt parameters:
//
//	alpha = 4*r0*h/(5h-1)
//	beta  = phi0*r0*(1-h)/(5h-1)
//
// h = 0.2 makes both infinite.
func BevertonHoltFromSteepness[T numeric.Float](r0, phi0, h T) (alpha, beta T) {
	d := 5*h - 1

	return 4 * r0 * h / d, phi0 * r0 * (1 - h) / d
}

// BevertonHoltToSteepness is the inverse of BevertonHoltFromSteepness for a known phi0.
func BevertonHoltToSteepness[T numeric.Float](alpha, beta, phi0 T) (r0, h T) {
	q := alpha * phi0 / beta
	h = q / (4 + q)

	return alpha * (5*h - 1) / (4 * h), h
}

// UnfishedStock returns the spawning stock phi0*r0 at which the unfished curve is in equilibrium.
func UnfishedStock[T numeric.Float](r0, phi0 T) T {
	return phi0 * r0
}
