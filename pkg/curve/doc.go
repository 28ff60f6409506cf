// Package curve is the boundary a fitting engine talks to.
//
// Every growth, recruitment and selectivity model is one Variant of a closed enumeration. A Variant
// knows its Family, the Basis of its independent variable and the ordered names of its parameters.
// Historical spellings such as Richard, Shepard or DiRiso are aliases that Lookup resolves to the one
// canonical variant, so no formula has a second body.
//
// New checks the shape of a parameter vector once and returns a Curve whose Eval is a pure function
// of the independent variable. Shape problems are errors: ErrUnknownVariant, ErrParamCount, and
// ErrNotImplemented for the declared selectivity variants that have no closed form. Domain problems
// are not: a parameter region where the formula is undefined evaluates to NaN or an infinity.
//
// Variants that describe the same curve are linked in a reparameterization graph. Each directed
// edge is an exact algebraic mapping between parameter vectors, and Convert composes the mappings
// along the shortest path, so that
//
//	c1, _ := curve.New(curve.BevertonHoltAlt, r0, phi0, h)
//	p, _ := curve.Convert(curve.BevertonHoltAlt, curve.BevertonHolt, []float64{r0, phi0, h})
//	c2, _ := curve.New(curve.BevertonHolt, p...)
//
// gives c1.Eval(s) == c2.Eval(s) up to rounding for every s.
package curve
