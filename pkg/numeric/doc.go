// Package numeric holds the scalar convention shared by the curve families.
//
// Every evaluator in growth, recruitment and selectivity is generic over Float, so the same formula
// compiles against float32 or float64 depending on the precision the surrounding model needs. The
// elementary operations are computed in float64 and narrowed back to T. They have no side effects and
// are safe for concurrent use.
package numeric
