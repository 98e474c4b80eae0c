package entroscope

import (
	"math"
	"sort"
)

// SequenceStats is a descriptive snapshot of an entropy sequence.
type SequenceStats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Stddev float64
	P50    float64
	P99    float64
}

// Describe computes summary statistics over a sequence of entropy values,
// typically the output of SlidingWindow.Compute. An empty sequence yields the
// zero value.
func Describe(entropies []float64) SequenceStats {
	if len(entropies) == 0 {
		return SequenceStats{}
	}

	sorted := make([]float64, len(entropies))
	copy(sorted, entropies)
	sort.Float64s(sorted)

	var sum float64
	for _, e := range sorted {
		sum += e
	}
	mean := sum / float64(len(sorted))

	var variance float64
	for _, e := range sorted {
		diff := e - mean
		variance += diff * diff
	}
	stddev := math.Sqrt(variance / float64(len(sorted)))

	return SequenceStats{
		Count:  len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Stddev: stddev,
		P50:    sorted[len(sorted)*50/100],
		P99:    sorted[len(sorted)*99/100],
	}
}
