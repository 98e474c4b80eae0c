package entroscope

import "math"

// Shannon computes the aggregate Shannon entropy of data in bits per symbol.
//
// This is the degenerate sliding window where the window covers the whole
// input: build one frequency distribution over every byte, take its entropy.
// It is implemented directly (rather than through SlidingWindow) because it
// has no window semantics and no precondition: an empty input returns 0.0 by
// convention instead of failing.
//
// Bounds: 0 ≤ Shannon(data) ≤ log2(min(256, len(data))).
func Shannon(data []byte) float64 {
	if len(data) == 0 {
		return 0.0
	}

	var h ByteHistogram
	for _, b := range data {
		h.Add(b)
	}
	return h.Entropy()
}

// ShannonString computes the aggregate Shannon entropy of s after encoding
// it to UTF-8 bytes.
//
// Entropy is always defined over bytes, never over code points. The encoding
// step is the single, explicit normalization boundary for textual input:
// ShannonString(s) and Shannon([]byte(s)) are identical for every s.
func ShannonString(s string) float64 {
	return Shannon([]byte(s))
}

// MaxEntropy returns the maximum possible entropy in bits for an observation
// set of the given size: log2(min(256, size)). A set of n symbols can spread
// probability over at most n distinct values, and never over more than the
// 256-value byte alphabet. Returns 0 for size ≤ 1.
func MaxEntropy(size int) float64 {
	if size <= 1 {
		return 0.0
	}
	if size > AlphabetSize {
		size = AlphabetSize
	}
	return math.Log2(float64(size))
}
