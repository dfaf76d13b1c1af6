package stats

import "errors"

var (
	// ErrEmptyDataset is returned when statistics are requested for a
	// dataset without any values.
	ErrEmptyDataset = errors.New("no valid numeric data to compute statistics")

	// ErrNegativeVariance is returned by StdDev when given a variance below
	// zero, which real inputs cannot produce.
	ErrNegativeVariance = errors.New("variance must be non-negative")
)
