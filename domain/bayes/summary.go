package bayes

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"gobayes/domain/core"
)

// SummaryFromSamples computes a DataSummary (mean and standard error of the
// mean) from raw observations. The SE uses the sample standard deviation.
func SummaryFromSamples(samples []float64) (DataSummary, error) {
	if len(samples) < 2 {
		return DataSummary{}, fmt.Errorf("%w: need at least 2 samples, got %d", core.ErrInsufficientData, len(samples))
	}

	mean, err := stats.Mean(samples)
	if err != nil {
		return DataSummary{}, fmt.Errorf("failed to compute mean: %w", err)
	}
	sd, err := stats.StandardDeviationSample(samples)
	if err != nil {
		return DataSummary{}, fmt.Errorf("failed to compute standard deviation: %w", err)
	}
	if sd == 0 {
		return DataSummary{}, core.NewDegenerateError("samples have zero variance")
	}

	return DataSummary{
		Mean: mean,
		SE:   sd / math.Sqrt(float64(len(samples))),
	}, nil
}
