// SPDX-License-Identifier: MIT

// Package stats provides the small statistics surface of lvlsci: extrema
// queries over numeric sequences (ArgMin, ArgMax, Min, Max) and simple
// ordinary-least-squares regression on paired samples.
//
// All functions are pure and stateless. Empty input is a distinct error,
// never a sentinel value like -1 or NaN; a predictor with zero variance is
// reported as rank deficiency instead of producing an unstable fit.
//
// Regression delegates the numerics to gonum's stat package and packages
// the fit as a Regression value with named accessors plus an ordered
// dynamic view for the scripting boundary.
package stats
