package model

// Statistics holds the descriptive statistics of a numeric dataset.
type Statistics struct {
	// Count is the number of values the statistics were computed over.
	Count int `json:"count"`

	// Mean is the arithmetic average.
	Mean float64 `json:"mean"`

	// Median is the middle value of the sorted data, or the average of the
	// two middle values for an even count.
	Median float64 `json:"median"`

	// Modes lists every value tied at the highest frequency, in first-seen order.
	Modes []float64 `json:"modes"`

	// Variance is the population variance (divisor N).
	Variance float64 `json:"variance"`

	// StdDev is the square root of Variance.
	StdDev float64 `json:"std_deviation"`
}

// Conversion is a number together with its integer base renderings.
type Conversion struct {
	// Original is the value as read from the input file.
	Original float64 `json:"original"`

	// Integer is Original truncated toward zero.
	Integer int64 `json:"integer"`

	// Binary is the base-2 rendering of Integer, e.g. "0b1010" or "-0b1010".
	Binary string `json:"binary"`

	// Hex is the base-16 rendering of Integer, e.g. "0xa" or "-0xa".
	Hex string `json:"hex"`
}
