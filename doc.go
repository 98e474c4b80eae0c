// Package entroscope measures local randomness and structure in byte streams.
//
// # Overview
//
// entroscope computes Shannon entropy (bits of information per symbol) over a
// byte stream, both as a single aggregate value and as a sequence of values
// for every overlapping fixed-size window sliding across the stream. The
// per-window profile characterizes *where* data is random or structured,
// which drives format detection, anomaly spotting, and compression-potential
// estimation.
//
// # Architecture
//
// The package components:
//
//   - histogram.go  - ByteHistogram: dense 256-slot frequency model
//   - entropy.go    - Aggregate entropy (Shannon, ShannonString, MaxEntropy)
//   - window.go     - SlidingWindow: incremental per-window entropy engine
//   - stats.go      - Descriptive statistics over an entropy sequence
//   - parallel.go   - Bulk per-chunk scanning with a worker pool
//   - compress.go   - Compression-ratio correlation (LZ4 vs entropy bound)
//   - render.go     - ASCII sparkline and heatmap rendering
//   - assertions.go - Test helpers for entropy properties
//
// # Quick Start
//
// Aggregate entropy of a byte sequence:
//
//	h := entroscope.Shannon(data)
//	fmt.Printf("%.4f bits per byte\n", h)
//
// Per-window entropy profile:
//
//	sw, err := entroscope.NewSlidingWindow(64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entropies, err := sw.Compute(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(entroscope.Sparkline(entropies, 80))
//
// # Shannon Entropy
//
// For a discrete distribution over byte values:
//
//	H = -Σ p_i · log2(p_i)  where  p_i = count_i / total
//
// Interpretation:
//   - H = 0:            One repeated symbol (fully predictable)
//   - H ≈ 1:            Two symbols in balance (one coin flip per byte)
//   - H ≈ 4.5:          Typical English text
//   - H → 8:            Uniform over all 256 values (random/compressed/encrypted)
//
// The upper bound is log2(min(256, n)) for n symbols: a window of n bytes can
// spread probability over at most n distinct values, never more than the
// 256-value alphabet. The entropy of an empty set is 0.0 by convention.
//
// Entropy is always defined over bytes. Text is normalized through one
// explicit UTF-8 encoding step (ShannonString); there is no entropy over
// abstract code points.
//
// # The Sliding Window
//
// For window size w over n bytes there are n-w+1 overlapping windows.
// Recounting each window from scratch costs O(w) per slide; SlidingWindow
// instead keeps one ByteHistogram alive across the whole pass and updates it
// incrementally - remove the byte that left, add the byte that entered - so
// window maintenance is O(1) per slide regardless of w.
//
// The correctness contract: the incremental sequence equals, element-wise
// within floating-point tolerance, an independent from-scratch recount of
// every window. AssertMatchesNaive pins this property in tests.
//
// # Errors
//
// Two failure modes cross the API boundary, both explicit values:
//
//   - InvalidConfigError:     non-positive window or chunk size at construction
//   - InsufficientDataError:  input shorter than the window, with both lengths
//
// Removing a symbol the histogram never saw is not an error value: it means
// the engine's own bookkeeping is broken, and it panics rather than letting
// negative counts silently corrupt every subsequent value.
//
// # Concurrency
//
// All computation is synchronous and deterministic. A ByteHistogram or
// SlidingWindow must never be shared across goroutines: the remove/add
// sequence is strictly ordered. ScanChunks parallelizes the safe way - one
// private histogram per worker over disjoint chunks.
//
// # Testing
//
// Use the assertion helpers to pin entropy properties:
//
//	func TestMyFormat(t *testing.T) {
//	    data := loadSample(t)
//
//	    // 0 ≤ H ≤ log2(min(256, n))
//	    entroscope.AssertEntropyBounds(t, data)
//
//	    // Incremental sliding result == naive per-window recount
//	    entroscope.AssertMatchesNaive(t, data, 64, entroscope.DefaultAssertionConfig())
//	}
//
// # Philosophy
//
// Aggregate entropy answers: "How random is this data?"
// entroscope answers: "Where is it random?"
//
// A file that averages 6 bits per byte may be structured text with an
// embedded compressed blob. The sliding profile separates the regions; the
// aggregate hides them.
//
// # See Also
//
//   - examples/file-scan - runnable demo over text, binary patterns and files
package entroscope
