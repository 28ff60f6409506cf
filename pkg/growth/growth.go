package growth

import (
	"github.com/askiada/go-stockcurves/pkg/numeric"
)

// Logistic returns the logistic population size at time t:
//
//	K / (1 + ((K-P0)/P0) * e^(-k*t))
//
// P0 is the initial size, k the relative growth rate and K the carrying capacity.
// P0 = 0 divides by zero.
func Logistic[T numeric.Float](p0, t, k, capacity T) T {
	return capacity / (1 + ((capacity-p0)/p0)*numeric.Exp(-k*t))
}

// HarvestedLogistic is the closed-form solution of dP/dt = k*P*(1-P/K) - c*P with P(0) = P0.
// Harvest at rate c turns it into a logistic with rate k-c and capacity K*(1-c/k).
// c = 0 is Logistic; c = k has no logistic solution and divides by zero.
func HarvestedLogistic[T numeric.Float](p0, t, k, capacity, c T) T {
	r, capH := HarvestedLogisticParams(k, capacity, c)

	return Logistic(p0, t, r, capH)
}

// HarvestedLogisticParams returns the rate and capacity of the logistic equivalent to a
// harvested logistic.
func HarvestedLogisticParams[T numeric.Float](k, capacity, c T) (rate, harvestedCapacity T) {
	return k - c, capacity * (1 - c/k)
}

// Bertalanffy returns the von Bertalanffy size at age a:
//
//	Linf * (1 - e^(-k*(a-a0)))
//
// a0 is the theoretical age at zero size.
func Bertalanffy[T numeric.Float](linf, a0, a, k T) T {
	return linf * (1 - numeric.Exp(-k*(a-a0)))
}

// BertalanffyUpdate projects a size observed at age aPrev forward to age a:
//
//	Linf + (Lprev - Linf) * e^(-k*(a-aPrev))
//
// Chained updates compose: aPrev -> a1 -> a2 equals aPrev -> a2. Starting from size zero at a0
// gives Bertalanffy.
func BertalanffyUpdate[T numeric.Float](linf, lPrev, aPrev, a, k T) T {
	return linf + (lPrev-linf)*numeric.Exp(-k*(a-aPrev))
}

// Gompertz returns alpha * e^(-beta*e^(-k*t)), with alpha the upper asymptote and beta the
// growth displacement.
func Gompertz[T numeric.Float](alpha, beta, t, k T) T {
	return alpha * numeric.Exp(-beta*numeric.Exp(-k*t))
}

// Richards returns alpha / (1 + beta*e^(-k*x))^(1/m).
//
// m = 0 divides by zero. When 1 + beta*e^(-k*x) is negative and 1/m is not an integer the result
// is NaN; there is no clamping.
func Richards[T numeric.Float](alpha, beta, x, k, m T) T {
	return alpha / numeric.Pow(1+beta*numeric.Exp(-k*x), 1/m)
}

// Richard is the historical spelling of Richards.
//
// Deprecated: use Richards.
func Richard[T numeric.Float](alpha, beta, x, k, m T) T {
	return Richards(alpha, beta, x, k, m)
}

// Schnute returns (r0 + beta*e^(k*x))^m. A negative base with non-integral m is NaN.
func Schnute[T numeric.Float](x, r0, beta, k, m T) T {
	return numeric.Pow(r0+beta*numeric.Exp(k*x), m)
}
