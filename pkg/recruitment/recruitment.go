package recruitment

import (
	"github.com/askiada/go-stockcurves/pkg/numeric"
)

// Ricker returns alpha*S*e^(-beta*S). The maximum alpha/(beta*e) is reached at S = 1/beta.
func Ricker[T numeric.Float](alpha, beta, s T) T {
	return alpha * s * numeric.Exp(-beta*s)
}

// RickerAlt is the Ricker curve scaled by unfished recruitment r0, unfished spawners-per-recruit phi0
// and productivity a:
//
//	(S/phi0) * e^(a*(1 - S/(phi0*r0)))
//
// It equals Ricker with alpha = e^a/phi0 and beta = a/(phi0*r0), see RickerFromAlt.
func RickerAlt[T numeric.Float](r0, phi0, a, s T) T {
	return (s / phi0) * numeric.Exp(a*(1-s/(phi0*r0)))
}

// BevertonHolt returns alpha*S/(beta+S). alpha is the asymptote and beta the stock giving half of it.
func BevertonHolt[T numeric.Float](alpha, beta, s T) T {
	return (alpha * s) / (beta + s)
}

// BevertonHoltAlt is the steepness form of Beverton-Holt:
//
//	4*r0*h*S / (phi0*r0*(1-h) + S*(5h-1))
//
// h is the fraction of r0 produced at 20% of unfished spawning stock phi0*r0.
func BevertonHoltAlt[T numeric.Float](r0, phi0, h, s T) T {
	return (4 * r0 * h * s) / (phi0*r0*(1-h) + s*(5*h-1))
}

// BevertonHoltDep is the depensatory Beverton-Holt alpha*S^c/(beta+S^c). With c > 1 recruitment is
// sub-proportional at low stock; c = 1 is BevertonHolt.
func BevertonHoltDep[T numeric.Float](alpha, beta, c, s T) T {
	sc := numeric.Pow(s, c)

	return (alpha * sc) / (beta + sc)
}

// Shepherd returns alpha*S/(1 + (S/beta)^c); beta is the threshold stock and c the degree of
// compensation.
func Shepherd[T numeric.Float](alpha, beta, c, s T) T {
	return alpha * s / (1 + numeric.Pow(s/beta, c))
}

// Shepard is the historical spelling of Shepherd.
//
// Deprecated: use Shepherd.
func Shepard[T numeric.Float](alpha, beta, c, s T) T {
	return Shepherd(alpha, beta, c, s)
}

// Deriso returns alpha*S*(1 - beta*c*S)^(1/c).
//
// c = -1 is a Beverton-Holt curve and c -> 0 approaches Ricker. c = 0 itself is undefined. Once
// 1 - beta*c*S turns negative with a non-integral 1/c the stock is past the valid range of the curve
// and the result is NaN.
func Deriso[T numeric.Float](alpha, beta, c, s T) T {
	return (alpha * s) * numeric.Pow(1-beta*c*s, 1/c)
}

// DiRiso is the historical spelling of Deriso.
//
// Deprecated: use Deriso.
func DiRiso[T numeric.Float](alpha, beta, c, s T) T {
	return Deriso(alpha, beta, c, s)
}
