package entroscope

import "math"

// AlphabetSize is the number of distinct byte values a histogram tracks.
const AlphabetSize = 256

// ByteHistogram tracks occurrence counts for every byte value (0-255) in the
// current observation set and computes the Shannon entropy of that
// distribution.
//
// The counts live in a dense fixed-size array indexed by byte value, not a
// hash map. Add, Remove and per-symbol lookup are O(1) with no hashing, and
// iterating the populated symbols is a bounded 256-slot scan. The total is
// tracked incrementally alongside the counts, so Entropy never has to re-sum
// the array.
//
// Invariant: the sum of all counts equals Total() at every point between
// method calls. Counts are exact integers; floating point enters only in the
// final log/sum of Entropy.
//
// Example:
//
//	var h ByteHistogram
//	h.Add('A')
//	h.Add('A')
//	h.Add('B')
//	h.Add('B')
//	fmt.Printf("%.1f bits\n", h.Entropy()) // 1.0 bits
type ByteHistogram struct {
	counts [AlphabetSize]int
	total  int
}

// Add records one occurrence of symbol b. Any byte value is accepted.
func (h *ByteHistogram) Add(b byte) {
	h.counts[b]++
	h.total++
}

// Remove erases one occurrence of symbol b.
//
// The caller must have previously added b and not yet removed it. Removing an
// absent symbol means the caller's add/remove bookkeeping is broken, and a
// negative count would silently corrupt every subsequent entropy value, so
// this panics instead of returning an error.
func (h *ByteHistogram) Remove(b byte) {
	if h.counts[b] == 0 {
		panic("entroscope: Remove of symbol with zero count (add/remove bookkeeping is broken)")
	}
	h.counts[b]--
	h.total--
}

// Count returns the number of recorded occurrences of symbol b.
func (h *ByteHistogram) Count(b byte) int {
	return h.counts[b]
}

// Total returns the size of the current observation set.
func (h *ByteHistogram) Total() int {
	return h.total
}

// Distinct returns the number of symbols with a non-zero count.
func (h *ByteHistogram) Distinct() int {
	n := 0
	for _, c := range h.counts {
		if c > 0 {
			n++
		}
	}
	return n
}

// Entropy computes the Shannon entropy of the current distribution in bits:
//
//	H = -Σ p_i · log2(p_i)  where  p_i = count_i / total
//
// Symbols with count 0 are skipped by an explicit branch; they contribute
// nothing and must never reach log2(0). An empty histogram has entropy 0.0
// by convention.
//
// The value is computed fresh from the counts on every call. Callers
// interleave Add and Remove arbitrarily between calls, so there is nothing
// safe to cache.
func (h *ByteHistogram) Entropy() float64 {
	if h.total == 0 {
		return 0.0
	}

	total := float64(h.total)
	entropy := 0.0

	for _, c := range h.counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}

	return entropy
}

// Reset clears all counts and the total to zero, ready to seed a new
// observation set.
func (h *ByteHistogram) Reset() {
	h.counts = [AlphabetSize]int{}
	h.total = 0
}
