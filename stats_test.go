package entroscope

import (
	"math"
	"testing"
)

// TestDescribe_KnownSequence verifies the snapshot against hand-computed
// values.
func TestDescribe_KnownSequence(t *testing.T) {
	stats := Describe([]float64{0.0, 1.0, 2.0, 3.0, 4.0})

	if stats.Count != 5 {
		t.Errorf("Count %d, expected 5", stats.Count)
	}
	if stats.Min != 0.0 || stats.Max != 4.0 {
		t.Errorf("Min/Max [%.2f, %.2f], expected [0, 4]", stats.Min, stats.Max)
	}
	if math.Abs(stats.Mean-2.0) > 1e-9 {
		t.Errorf("Mean %.6f, expected 2.0", stats.Mean)
	}
	if math.Abs(stats.Stddev-math.Sqrt(2.0)) > 1e-9 {
		t.Errorf("Stddev %.6f, expected √2", stats.Stddev)
	}
	if stats.P50 != 2.0 {
		t.Errorf("P50 %.6f, expected 2.0", stats.P50)
	}

	t.Logf("✓ Describe: count=%d mean=%.2f stddev=%.4f p50=%.2f", stats.Count, stats.Mean, stats.Stddev, stats.P50)
}

// TestDescribe_Empty verifies the zero-value convention for an empty
// sequence.
func TestDescribe_Empty(t *testing.T) {
	stats := Describe(nil)
	if stats != (SequenceStats{}) {
		t.Errorf("Empty sequence: %+v, expected zero value", stats)
	}

	t.Logf("✓ Empty sequence → zero snapshot")
}

// TestDescribe_AgreesWithRange verifies Describe and SlidingWindow.Range
// report the same extremes over the same data.
func TestDescribe_AgreesWithRange(t *testing.T) {
	data := []byte("AAAAABCD")

	sw, err := NewSlidingWindow(2)
	if err != nil {
		t.Fatalf("Construction failed: %v", err)
	}

	entropies, err := sw.Compute(data)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	min, max, err := sw.Range(data)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}

	stats := Describe(entropies)
	if stats.Min != min || stats.Max != max {
		t.Errorf("Describe extremes [%.6f, %.6f] differ from Range [%.6f, %.6f]",
			stats.Min, stats.Max, min, max)
	}

	t.Logf("✓ Describe and Range agree: [%.4f, %.4f] over %d windows", min, max, stats.Count)
}
