// Package config decodes labeling problems from TOML files.
//
// A problem file describes the grid, the label set, the data and smoothness
// costs and the solve settings:
//
//	[grid]
//	width = 4
//	height = 3
//	connectivity = "4"
//
//	[labels]
//	count = 3
//
//	[data]
//	observations = [0, 0, 2, 1, 0, 0, 2, 2, 1, 1, 2, 2]
//	penalty = "abs"
//	scale = 4
//
//	[smooth]
//	kind = "potts"
//	weight = 5
//
//	[solve]
//	random = true
//	seed = 7
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults. Every validation failure wraps ErrInvalidProblem.
//
// Problem.Encode writes the TOML form back out. Synthesize produces seeded
// test problems (label bands corrupted by random noise) in the same shape.
package config
