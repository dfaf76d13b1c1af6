package stats

import (
	"errors"
	"math"
	"slices"
	"sort"
	"testing"

	"github.com/nao1215/batchstat/internal/model"
)

// referenceMedian is a straightforward sort-based median used to check Median.
func referenceMedian(data []float64) float64 {
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func TestMean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{name: "single value", data: []float64{4}, want: 4},
		{name: "integers", data: []float64{2, 4, 4, 4, 5, 5, 7, 9}, want: 5},
		{name: "negative and positive", data: []float64{-3, 3}, want: 0},
		{name: "fractions", data: []float64{0.5, 1.5}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Mean(tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Mean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMedian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{name: "odd length", data: []float64{3, 1, 2}, want: 2},
		{name: "even length", data: []float64{4, 1, 3, 2}, want: 2.5},
		{name: "single value", data: []float64{7}, want: 7},
		{name: "duplicates", data: []float64{5, 5, 1, 5}, want: 5},
		{name: "negatives", data: []float64{-10, -2, -7}, want: -7},
		{name: "unsorted long", data: []float64{9, 2, 7, 4, 5, 5, 4, 2}, want: 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Median(tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Median() = %v, want %v", got, tt.want)
			}
			if ref := referenceMedian(tt.data); got != ref {
				t.Errorf("Median() = %v, reference median = %v", got, ref)
			}
		})
	}
}

func TestMedian_DoesNotReorderInput(t *testing.T) {
	t.Parallel()

	data := []float64{3, 1, 2}
	if _, err := Median(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(data, []float64{3, 1, 2}) {
		t.Errorf("input was modified: %v", data)
	}
}

func TestMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []float64
		want []float64
	}{
		{name: "two tied modes", data: []float64{1, 1, 2, 2, 3}, want: []float64{1, 2}},
		{name: "single mode", data: []float64{4, 1, 4, 2}, want: []float64{4}},
		{name: "all unique returns every value", data: []float64{3, 1, 2}, want: []float64{3, 1, 2}},
		{name: "first-seen order", data: []float64{9, 1, 1, 9}, want: []float64{9, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Mode(tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Mode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVarianceAndStdDev(t *testing.T) {
	t.Parallel()

	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	mean, err := Mean(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	variance, err := Variance(data, mean)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if variance != 4 {
		t.Errorf("Variance() = %v, want 4", variance)
	}

	stddev, err := StdDev(variance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stddev != 2 {
		t.Errorf("StdDev() = %v, want 2", stddev)
	}
}

func TestStdDev_NegativeVariance(t *testing.T) {
	t.Parallel()

	_, err := StdDev(-1)
	if !errors.Is(err, ErrNegativeVariance) {
		t.Errorf("expected ErrNegativeVariance, got %v", err)
	}
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := Mean(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Mean: expected ErrEmptyDataset, got %v", err)
	}
	if _, err := Median(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Median: expected ErrEmptyDataset, got %v", err)
	}
	if _, err := Mode(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Mode: expected ErrEmptyDataset, got %v", err)
	}
	if _, err := Variance(nil, 0); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Variance: expected ErrEmptyDataset, got %v", err)
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	t.Run("computes all fields", func(t *testing.T) {
		t.Parallel()

		ds := &model.Dataset{
			Source: "data.txt",
			Values: []float64{2, 4, 4, 4, 5, 5, 7, 9},
		}

		got, err := Compute(ds)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.Count != 8 {
			t.Errorf("Count = %d, want 8", got.Count)
		}
		if got.Mean != 5 {
			t.Errorf("Mean = %v, want 5", got.Mean)
		}
		if got.Median != 4.5 {
			t.Errorf("Median = %v, want 4.5", got.Median)
		}
		if !slices.Equal(got.Modes, []float64{4}) {
			t.Errorf("Modes = %v, want [4]", got.Modes)
		}
		if got.Variance != 4 {
			t.Errorf("Variance = %v, want 4", got.Variance)
		}
		if got.StdDev != 2 {
			t.Errorf("StdDev = %v, want 2", got.StdDev)
		}
	})

	t.Run("rejects empty dataset", func(t *testing.T) {
		t.Parallel()

		_, err := Compute(&model.Dataset{Source: "empty.txt"})
		if !errors.Is(err, ErrEmptyDataset) {
			t.Fatalf("expected ErrEmptyDataset, got %v", err)
		}
	})

	t.Run("rejects nil dataset", func(t *testing.T) {
		t.Parallel()

		_, err := Compute(nil)
		if !errors.Is(err, ErrEmptyDataset) {
			t.Fatalf("expected ErrEmptyDataset, got %v", err)
		}
	})

	t.Run("stddev is finite for constant data", func(t *testing.T) {
		t.Parallel()

		got, err := Compute(&model.Dataset{Values: []float64{3, 3, 3}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Variance != 0 || math.IsNaN(got.StdDev) || got.StdDev != 0 {
			t.Errorf("expected zero variance and stddev, got %v / %v", got.Variance, got.StdDev)
		}
	})
}
