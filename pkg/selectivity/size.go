package selectivity

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-stockcurves/pkg/numeric"
)

// SizeLogistic is Logistic over length l with l50 the length at 50% selection.
func SizeLogistic[T numeric.Float](l50, s, l T) T {
	return Logistic(l50, s, l)
}

// SizeDoubleLogistic is DoubleLogistic over length.
func SizeDoubleLogistic[T numeric.Float](alphaAsc, betaAsc, alphaDesc, betaDesc, l T) T {
	return DoubleLogistic(alphaAsc, betaAsc, alphaDesc, betaDesc, l)
}

// SizeNormal is Normal over length.
func SizeNormal[T numeric.Float](mu, sigma, l T) T {
	return Normal(mu, sigma, l)
}

// SizeDoubleNormal is DoubleNormal over length.
func SizeDoubleNormal[T numeric.Float](peak, top, sigmaAsc, sigmaDesc, l T) T {
	return DoubleNormal(peak, top, sigmaAsc, sigmaDesc, l)
}

// SizeExponentialLogistic is ExponentialLogistic over length.
func SizeExponentialLogistic[T numeric.Float](alpha, beta, gamma, l T) T {
	return ExponentialLogistic(alpha, beta, gamma, l)
}

// SizeCubicSpline is not supported.
func SizeCubicSpline[T numeric.Float](knots, values []T, l T) (T, error) {
	v, err := CubicSpline(knots, values, l)

	return v, errors.Wrap(err, "size based")
}

// SizeNonParametric is not supported.
func SizeNonParametric[T numeric.Float](values []T, l T) (T, error) {
	v, err := NonParametric(values, l)

	return v, errors.Wrap(err, "size based")
}
