package selectivity

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-stockcurves/pkg/numeric"
)

// Logistic returns 1/(1 + e^(-s*(a-a50))). It is exactly 0.5 at a50 and increases with a when s > 0.
//
// The open interval (0, 1) only holds while the tail is representable: once |s*(a-a50)| passes about
// 36.7 in float64 (about 16.6 in float32) the upper tail rounds to exactly 1, and far enough below a50
// the lower tail underflows to 0.
func Logistic[T numeric.Float](a50, s, a T) T {
	return 1 / (1 + numeric.Exp(-s*(a-a50)))
}

// DoubleLogistic is a dome: an ascending logistic times the complement of a descending one.
// The result lies in [0, 1).
func DoubleLogistic[T numeric.Float](alphaAsc, betaAsc, alphaDesc, betaDesc, a T) T {
	return Logistic(alphaAsc, betaAsc, a) * (1 - Logistic(alphaDesc, betaDesc, a))
}

// Normal is a gaussian dome e^(-(a-mu)^2/(2*sigma^2)) with full selection at mu.
func Normal[T numeric.Float](mu, sigma, a T) T {
	d := a - mu

	return numeric.Exp(-(d * d) / (2 * sigma * sigma))
}

// DoubleNormal is fully selected on the plateau [peak, peak+top] and falls off with a gaussian
// of width sigmaAsc below it and sigmaDesc above it. A NaN age or plateau bound gives NaN.
func DoubleNormal[T numeric.Float](peak, top, sigmaAsc, sigmaDesc, a T) T {
	end := peak + top
	if numeric.IsNaN(a) || numeric.IsNaN(end) {
		return numeric.NaN[T]()
	}

	switch {
	case a < peak:
		return Normal(peak, sigmaAsc, a)
	case a > end:
		return Normal(end, sigmaDesc, a)
	default:
		return 1
	}
}

// ExponentialLogistic is the Thompson (1994) curve
//
//	1/(1-gamma) * ((1-gamma)/gamma)^gamma * e^(alpha*gamma*(beta-a)) / (1 + e^(alpha*(beta-a)))
//
// scaled so the maximum is 1. gamma in (0, 1) sets the dome; as gamma goes to 0 it becomes a logistic.
// For u = alpha*(beta-a) > 0 the ratio is evaluated as e^((gamma-1)*u)/(1+e^(-u)) so a far tail
// goes to 0 instead of Inf/Inf.
func ExponentialLogistic[T numeric.Float](alpha, beta, gamma, a T) T {
	u := alpha * (beta - a)
	scale := numeric.Pow((1-gamma)/gamma, gamma) / (1 - gamma)
	if u > 0 {
		return scale * numeric.Exp((gamma-1)*u) / (1 + numeric.Exp(-u))
	}

	return scale * numeric.Exp(gamma*u) / (1 + numeric.Exp(u))
}

// CubicSpline would interpolate selectivity through knots. It is not supported.
func CubicSpline[T numeric.Float](knots, values []T, a T) (T, error) {
	return numeric.NaN[T](), errors.Wrapf(ErrNotImplemented, "cubic spline over %d knots", len(knots))
}

// NonParametric would read one free selectivity value per age class. It is not supported.
func NonParametric[T numeric.Float](values []T, a T) (T, error) {
	return numeric.NaN[T](), errors.Wrapf(ErrNotImplemented, "non-parametric over %d classes", len(values))
}
