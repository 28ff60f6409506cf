// Package growth provides somatic growth curves: expected size as a function of age or time.
//
// Each evaluator is a pure function of its parameters and one independent variable. Nothing is
// validated; a parameter region where a curve is undefined surfaces as NaN or an infinity through
// IEEE-754 propagation, and the caller decides what that means for its likelihood.
//
// Richards is the general form of the family. Logistic is Richards with m = 1 and Bertalanffy is
// Richards with m = -1, and for a positive asymptote Richards can be rewritten as Schnute. The
// curve package exposes those mappings as exact conversions.
package growth
