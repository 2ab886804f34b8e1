package metrics

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// DistanceSummary aggregates a slice of distances, typically the output of
// MinDistances, into headline statistics.
type DistanceSummary struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// Summary computes summary statistics over the given distances.
func Summary(dists []float64) (DistanceSummary, error) {
	if len(dists) == 0 {
		return DistanceSummary{}, errors.Wrap(ErrEmptyInput, "no distances to summarize")
	}
	var (
		summary DistanceSummary
		err     error
	)
	if summary.Mean, err = stats.Mean(dists); err != nil {
		return DistanceSummary{}, err
	}
	if summary.Median, err = stats.Median(dists); err != nil {
		return DistanceSummary{}, err
	}
	if summary.Min, err = stats.Min(dists); err != nil {
		return DistanceSummary{}, err
	}
	if summary.Max, err = stats.Max(dists); err != nil {
		return DistanceSummary{}, err
	}
	return summary, nil
}
