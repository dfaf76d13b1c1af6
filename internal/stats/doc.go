// Package stats computes descriptive statistics over a numeric dataset:
// mean, median, tie-inclusive mode, population variance and standard
// deviation.
//
// All functions expect a non-empty input. Compute checks this up front and
// returns ErrEmptyDataset instead of letting the arithmetic divide by zero.
package stats
