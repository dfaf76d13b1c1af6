package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/nao1215/batchstat/internal/model"
)

// ErrOutOfRange is returned when a value cannot be represented as an int64
// after truncation.
var ErrOutOfRange = errors.New("value out of int64 range")

// int64Bound is 2^63, the first float64 that no longer fits in an int64.
const int64Bound = float64(1 << 63)

// Truncate drops the fractional part of v toward zero.
func Truncate(v float64) (int64, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}
	t := math.Trunc(v)
	if t < -int64Bound || t >= int64Bound {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}
	return int64(t), nil
}

// Binary returns n in base 2 with a "0b" prefix.
func Binary(n int64) string {
	return format(n, 2, "0b")
}

// Hex returns n in lowercase base 16 with a "0x" prefix.
func Hex(n int64) string {
	return format(n, 16, "0x")
}

// format writes the magnitude as unsigned so math.MinInt64 keeps its value.
func format(n int64, base int, prefix string) string {
	if n < 0 {
		return "-" + prefix + strconv.FormatUint(uint64(-n), base)
	}
	return prefix + strconv.FormatUint(uint64(n), base)
}

// Convert truncates every value and renders it in binary and hexadecimal.
// The result preserves input order.
func Convert(values []float64) ([]model.Conversion, error) {
	out := make([]model.Conversion, 0, len(values))
	for i, v := range values {
		n, err := Truncate(v)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		out = append(out, model.Conversion{
			Original: v,
			Integer:  n,
			Binary:   Binary(n),
			Hex:      Hex(n),
		})
	}
	return out, nil
}
