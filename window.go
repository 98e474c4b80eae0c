package entroscope

// SlidingWindow computes the Shannon entropy of every overlapping fixed-size
// window across a byte stream.
//
// The naive approach rebuilds the frequency distribution from scratch for
// each of the len(data)-w+1 windows, costing O(w) per window. SlidingWindow
// instead maintains one ByteHistogram across the whole pass: each slide
// removes the byte that fell out of the window and adds the byte that
// entered, so window maintenance is O(1) per step regardless of window size.
//
// Cost model:
//   - Seeding the first window: O(w)
//   - Each subsequent window: one Remove, one Add, one entropy pass over at
//     most 256 populated symbols
//   - Total: O(len(data) + 256·windows) vs the naive O(w·windows)
//
// The saving is in window maintenance, which matters when windows are large;
// the entropy pass itself is bounded by the alphabet either way.
//
// A SlidingWindow is not safe for concurrent use: the remove/add sequence is
// strictly ordered and non-commutative under interleaving. Independent
// computations should each construct their own instance.
//
// Example:
//
//	sw, err := NewSlidingWindow(8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entropies, err := sw.Compute(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i, e := range entropies {
//	    fmt.Printf("offset %d: %.4f bits\n", i, e)
//	}
type SlidingWindow struct {
	windowSize int
	hist       ByteHistogram // Reused across the whole pass; the point of the design
}

// PositionEntropy pairs an entropy value with the zero-based start offset of
// the window it was measured over: position i covers data[i : i+windowSize].
type PositionEntropy struct {
	Position int
	Entropy  float64
}

// NewSlidingWindow creates an engine for the given window size.
// Returns an *InvalidConfigError if windowSize is not positive.
func NewSlidingWindow(windowSize int) (*SlidingWindow, error) {
	if windowSize <= 0 {
		return nil, &InvalidConfigError{Field: "window size", Value: windowSize}
	}
	return &SlidingWindow{windowSize: windowSize}, nil
}

// WindowSize returns the fixed window width configured at construction.
func (sw *SlidingWindow) WindowSize() int {
	return sw.windowSize
}

// Compute returns one entropy value per window start position, in order.
// The result has length len(data) - WindowSize() + 1.
//
// Returns an *InsufficientDataError (and no partial sequence) when data is
// shorter than the window.
func (sw *SlidingWindow) Compute(data []byte) ([]float64, error) {
	w := sw.windowSize
	if len(data) < w {
		return nil, &InsufficientDataError{DataLen: len(data), WindowSize: w}
	}

	entropies := make([]float64, 0, len(data)-w+1)

	// Seed the first window.
	sw.hist.Reset()
	for _, b := range data[:w] {
		sw.hist.Add(b)
	}
	entropies = append(entropies, sw.hist.Entropy())

	// Slide: drop the departing byte, take in the entering one.
	for i := 1; i <= len(data)-w; i++ {
		sw.hist.Remove(data[i-1])
		sw.hist.Add(data[i+w-1])
		entropies = append(entropies, sw.hist.Entropy())
	}

	return entropies, nil
}

// ComputeWithPositions is Compute with each value paired to its window start
// offset.
func (sw *SlidingWindow) ComputeWithPositions(data []byte) ([]PositionEntropy, error) {
	entropies, err := sw.Compute(data)
	if err != nil {
		return nil, err
	}

	results := make([]PositionEntropy, len(entropies))
	for i, e := range entropies {
		results[i] = PositionEntropy{Position: i, Entropy: e}
	}
	return results, nil
}

// Range returns the minimum and maximum entropy across all windows.
//
// The (0, 0) branch for an empty sequence is a defensive default: Compute
// fails loudly on short input before an empty sequence can be produced.
func (sw *SlidingWindow) Range(data []byte) (min, max float64, err error) {
	entropies, err := sw.Compute(data)
	if err != nil {
		return 0, 0, err
	}
	if len(entropies) == 0 {
		return 0, 0, nil
	}

	min, max = entropies[0], entropies[0]
	for _, e := range entropies[1:] {
		if e < min {
			min = e
		}
		if e > max {
			max = e
		}
	}
	return min, max, nil
}
