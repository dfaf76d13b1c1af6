package model

// SkippedEntry records an input line that could not be parsed as a number.
type SkippedEntry struct {
	// Line is the 1-based line number in the input file.
	Line int `json:"line"`

	// Text is the whitespace-trimmed content of the line.
	Text string `json:"text"`
}

// Dataset is an ordered sequence of numbers read from one input file.
// Order matches the line order of the file.
type Dataset struct {
	// Source is the path the values were read from.
	Source string `json:"source"`

	// Values holds the parsed numbers in file order.
	Values []float64 `json:"values"`

	// Skipped lists malformed lines that were left out of Values.
	Skipped []SkippedEntry `json:"skipped,omitempty"`
}

// Len returns the number of parsed values.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Values)
}

// IsEmpty reports whether the dataset holds no values.
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Tokens is an ordered sequence of whitespace-delimited words.
type Tokens struct {
	// Source is the path the words were read from.
	Source string `json:"source"`

	// Words holds every token in order of appearance.
	Words []string `json:"words"`
}

// Len returns the number of tokens.
func (t *Tokens) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Words)
}
