// Package selectivity provides selectivity curves: the probability that a fish of a given age or size
// is caught by a gear.
//
// The age-based evaluators are Logistic, DoubleLogistic, Normal, DoubleNormal and ExponentialLogistic.
// The size-based family (SizeLogistic, SizeDoubleLogistic, ...) has the same closed forms with length
// as the independent variable and forwards to the age-based bodies.
//
// CubicSpline and NonParametric are declared but unsupported. They return NaN together with an error
// wrapping ErrNotImplemented, never a zero that could be mistaken for "not selected".
package selectivity
