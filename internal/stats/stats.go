package stats

import (
	"fmt"
	"math"
	"slices"

	"github.com/nao1215/batchstat/internal/model"
)

// Mean returns the arithmetic average of data.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data)), nil
}

// Median returns the middle value of data after sorting a copy ascending.
// For an even count it returns the average of the two middle values.
func Median(data []float64) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, ErrEmptyDataset
	}

	sorted := slices.Clone(data)
	slices.Sort(sorted)

	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	}
	return sorted[n/2], nil
}

// Mode returns every value whose frequency equals the highest observed
// frequency, in the order the values first appear in data. When all values
// are distinct every value is returned.
func Mode(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}

	table := model.NewFrequencyTable[float64]()
	for _, v := range data {
		table.Add(v)
	}

	maxCount := table.MaxCount()
	modes := make([]float64, 0, 1)
	for _, e := range table.Entries() {
		if e.Count == maxCount {
			modes = append(modes, e.Key)
		}
	}
	return modes, nil
}

// Variance returns the population variance of data around mean: the mean
// of squared deviations, divided by N.
func Variance(data []float64, mean float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	var sum float64
	for _, v := range data {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(data)), nil
}

// StdDev returns the square root of variance.
func StdDev(variance float64) (float64, error) {
	if variance < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrNegativeVariance, variance)
	}
	return math.Sqrt(variance), nil
}

// Compute calculates all descriptive statistics for ds.
func Compute(ds *model.Dataset) (*model.Statistics, error) {
	if ds.IsEmpty() {
		if ds != nil && ds.Source != "" {
			return nil, fmt.Errorf("%w in '%s'", ErrEmptyDataset, ds.Source)
		}
		return nil, ErrEmptyDataset
	}

	data := ds.Values

	mean, err := Mean(data)
	if err != nil {
		return nil, err
	}
	median, err := Median(data)
	if err != nil {
		return nil, err
	}
	modes, err := Mode(data)
	if err != nil {
		return nil, err
	}
	variance, err := Variance(data, mean)
	if err != nil {
		return nil, err
	}
	stddev, err := StdDev(variance)
	if err != nil {
		return nil, err
	}

	return &model.Statistics{
		Count:    len(data),
		Mean:     mean,
		Median:   median,
		Modes:    modes,
		Variance: variance,
		StdDev:   stddev,
	}, nil
}
