package entroscope

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for entropy properties.
type AssertionConfig struct {
	// Absolute tolerance for floating-point entropy comparisons
	Tolerance float64

	// Window sizes exercised by the umbrella assertion
	WindowSizes []int
}

// DefaultAssertionConfig returns conservative tolerances.
//
// Entropy arithmetic is a short sum of log2 terms over at most 256 symbols;
// 1e-9 absolute tolerance leaves room for summation-order differences between
// the incremental and naive paths while catching any real bookkeeping defect.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Tolerance:   1e-9,
		WindowSizes: []int{1, 2, 4, 8, 16},
	}
}

// AssertEntropyBounds verifies the fundamental range property:
//
//	0 ≤ Shannon(data) ≤ log2(min(256, len(data)))
//
// Every byte sequence must satisfy this; a violation means the probability
// normalization is broken.
func AssertEntropyBounds(t *testing.T, data []byte) {
	t.Helper()

	entropy := Shannon(data)

	if entropy < 0 {
		t.Errorf("Entropy negative: %.6f bits for %d bytes\n"+
			"Probabilities cannot produce negative information.", entropy, len(data))
	}

	if len(data) > 0 {
		limit := MaxEntropy(len(data))
		if entropy > limit+1e-9 {
			t.Errorf("Entropy above alphabet limit: %.6f bits (max: %.6f for %d bytes)\n"+
				"The distribution claims more diversity than the input can hold.",
				entropy, limit, len(data))
		}
	}

	t.Logf("✓ Bounds hold: H = %.4f bits (limit: %.4f, %d bytes)",
		entropy, MaxEntropy(len(data)), len(data))
}

// AssertUniformEntropy verifies that a sequence of exactly k equally frequent
// distinct symbols measures log2(k) bits.
//
// Mathematical property:
//
//	p_i = 1/k for all i  ⇒  H = -Σ (1/k)·log2(1/k) = log2(k)
func AssertUniformEntropy(t *testing.T, data []byte, k int, cfg AssertionConfig) {
	t.Helper()

	entropy := Shannon(data)
	expected := math.Log2(float64(k))

	if math.Abs(entropy-expected) > cfg.Tolerance {
		t.Errorf("Uniform distribution over %d symbols: got %.10f bits, expected log2(%d) = %.10f",
			k, entropy, k, expected)
	}

	t.Logf("✓ Uniform over %d symbols: H = %.4f = log2(%d)", k, entropy, k)
}

// AssertMatchesNaive verifies the core correctness contract of the sliding
// engine: the incremental result must equal, element-wise within tolerance,
// an independent from-scratch recount of every window.
//
// A mismatch means the remove/add bookkeeping diverged from the definition,
// which silently corrupts every value after the divergence point.
func AssertMatchesNaive(t *testing.T, data []byte, windowSize int, cfg AssertionConfig) {
	t.Helper()

	sw, err := NewSlidingWindow(windowSize)
	if err != nil {
		t.Fatalf("Failed to construct engine for window %d: %v", windowSize, err)
	}

	incremental, err := sw.Compute(data)
	if err != nil {
		t.Fatalf("Compute failed for window %d over %d bytes: %v", windowSize, len(data), err)
	}

	expected := len(data) - windowSize + 1
	if len(incremental) != expected {
		t.Fatalf("Sequence length %d, expected %d (len(data)=%d, w=%d)",
			len(incremental), expected, len(data), windowSize)
	}

	for i := range incremental {
		naive := Shannon(data[i : i+windowSize])
		if math.Abs(incremental[i]-naive) > cfg.Tolerance {
			t.Errorf("Window %d diverged: incremental %.12f, naive %.12f (Δ=%.3g)",
				i, incremental[i], naive, math.Abs(incremental[i]-naive))
		}
	}

	t.Logf("✓ Incremental matches naive recount: %d windows of %d bytes", len(incremental), windowSize)
}

// AssertEncodingInvariance verifies that text and its UTF-8 byte encoding
// measure identical entropy: the normalization step must be observable only
// as a type change, never as a value change.
func AssertEncodingInvariance(t *testing.T, text string) {
	t.Helper()

	fromString := ShannonString(text)
	fromBytes := Shannon([]byte(text))

	if fromString != fromBytes {
		t.Errorf("Encoding changed the measurement: string %.12f, bytes %.12f", fromString, fromBytes)
	}

	t.Logf("✓ Encoding invariant: H = %.4f bits for %q", fromString, text)
}

// AssertEntropyProperties runs every property assertion against one input
// with default tolerances.
func AssertEntropyProperties(t *testing.T, data []byte) {
	t.Helper()

	cfg := DefaultAssertionConfig()

	t.Run("Bounds", func(t *testing.T) {
		AssertEntropyBounds(t, data)
	})

	t.Run("IncrementalNaiveEquivalence", func(t *testing.T) {
		for _, w := range cfg.WindowSizes {
			if w > len(data) {
				continue
			}
			AssertMatchesNaive(t, data, w, cfg)
		}
	})
}
