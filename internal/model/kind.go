package model

import (
	"fmt"
	"strings"
)

// Kind identifies one of the three reporting pipelines.
type Kind int

const (
	// KindStatistics computes descriptive statistics over numbers.
	KindStatistics Kind = iota

	// KindConversion renders numbers in binary and hexadecimal.
	KindConversion

	// KindWordCount counts token frequencies in free-form text.
	KindWordCount
)

// String returns the short name used on the command line and in logs.
func (k Kind) String() string {
	switch k {
	case KindStatistics:
		return "statistics"
	case KindConversion:
		return "conversion"
	case KindWordCount:
		return "wordcount"
	default:
		return "unknown"
	}
}

// ResultBaseName returns the fixed results file name without extension.
func (k Kind) ResultBaseName() string {
	switch k {
	case KindStatistics:
		return "StatisticsResults"
	case KindConversion:
		return "ConversionResults"
	case KindWordCount:
		return "WordCountResults"
	default:
		return "Results"
	}
}

// DefaultResultFile returns the fixed text results file name.
func (k Kind) DefaultResultFile() string {
	return k.ResultBaseName() + ".txt"
}

// SuccessMessage returns the completion line printed after the results
// file has been written.
func (k Kind) SuccessMessage(file string) string {
	switch k {
	case KindStatistics:
		return fmt.Sprintf("Descriptive statistics calculated successfully. Results saved to %s.", file)
	case KindConversion:
		return fmt.Sprintf("Conversion completed successfully. Results saved to %s.", file)
	case KindWordCount:
		return fmt.Sprintf("Word count completed successfully. Results saved to %s.", file)
	default:
		return fmt.Sprintf("Results saved to %s.", file)
	}
}

// ParseKind converts a pipeline name back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "statistics", "stats":
		return KindStatistics, nil
	case "conversion", "convert":
		return KindConversion, nil
	case "wordcount", "words":
		return KindWordCount, nil
	default:
		return 0, fmt.Errorf("unknown pipeline %q", s)
	}
}
