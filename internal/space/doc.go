// Package space builds comparable search spaces from an experiment's
// command-line arguments.
//
// A dimension is declared inline with the "~" marker:
//
//	--lr~loguniform(1e-5, 1.0)
//	--layers~uniform(1, 8, discrete=True)
//	--dropout~normal(0.5, 0.1, shape=2)
//
// Plain arguments ("--epochs=10", positional values) are not dimensions and
// are ignored. Dimension names are stored under a leading "/" namespace so
// they never collide with positional arguments; Dimension.ShortName strips it.
//
// Whitespace inside a prior is insignificant: "normal(0,2)" and
// "normal(0, 2)" describe the same dimension.
package space
