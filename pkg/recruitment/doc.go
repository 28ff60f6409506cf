// Package recruitment provides stock-recruitment relationships: expected recruitment as a function of
// spawning stock S.
//
// Two parameterizations exist for Ricker and for Beverton-Holt. The classical alpha/beta forms are
// Ricker and BevertonHolt. The biologically scaled forms are RickerAlt, using unfished recruitment R0,
// unfished spawners-per-recruit phi0 and productivity A, and BevertonHoltAlt, using R0, phi0 and
// steepness h. They describe the same curves. The conversion functions in this package map one
// parameter set onto the other, and callers must convert explicitly rather than mix the two.
//
// Steepness is meaningful on (0.2, 1). Nothing is validated here: a value outside that range gives a
// curve that need not be monotone, and undefined points come back as NaN or an infinity.
package recruitment
