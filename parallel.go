package entroscope

import (
	"context"
	"runtime"
	"sync"
)

// ChunkResult is the aggregate entropy of one disjoint chunk of the input.
type ChunkResult struct {
	Index   int     // Chunk ordinal, 0-based
	Offset  int     // Byte offset of the chunk start
	Length  int     // Chunk length (the final chunk may be short)
	Entropy float64 // Aggregate Shannon entropy of the chunk, in bits
}

// ScanConfig controls a bulk chunked scan.
type ScanConfig struct {
	ChunkSize int // Bytes per chunk
	Workers   int // Concurrent workers (0 = runtime.NumCPU())
}

// DefaultScanConfig returns sensible defaults for bulk analysis.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		ChunkSize: 4096,
		Workers:   runtime.NumCPU(),
	}
}

// ScanChunks splits data into fixed-size disjoint chunks and computes the
// aggregate entropy of each chunk concurrently, returning results in chunk
// order.
//
// Entropy computation is strictly sequential within one distribution, so a
// single histogram can never be shared across goroutines. Parallelism across
// *independent* inputs is fine, and disjoint chunks are exactly that: every
// worker owns its own ByteHistogram, reset between chunks.
//
// Returns an *InvalidConfigError for a non-positive chunk size, and ctx.Err()
// if the context is cancelled before the scan completes. An empty input
// yields an empty result.
func ScanChunks(ctx context.Context, data []byte, cfg ScanConfig) ([]ChunkResult, error) {
	if cfg.ChunkSize <= 0 {
		return nil, &InvalidConfigError{Field: "chunk size", Value: cfg.ChunkSize}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	numChunks := (len(data) + cfg.ChunkSize - 1) / cfg.ChunkSize
	if numChunks == 0 {
		return []ChunkResult{}, nil
	}
	if workers > numChunks {
		workers = numChunks
	}

	// Workers write to disjoint indices, so no further synchronization
	// is needed on the results slice.
	results := make([]ChunkResult, numChunks)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			var h ByteHistogram
			for idx := range jobs {
				offset := idx * cfg.ChunkSize
				end := offset + cfg.ChunkSize
				if end > len(data) {
					end = len(data)
				}

				h.Reset()
				for _, b := range data[offset:end] {
					h.Add(b)
				}

				results[idx] = ChunkResult{
					Index:   idx,
					Offset:  offset,
					Length:  end - offset,
					Entropy: h.Entropy(),
				}
			}
		}()
	}

	cancelled := false
feed:
	for idx := 0; idx < numChunks; idx++ {
		select {
		case <-ctx.Done():
			cancelled = true
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled {
		return nil, ctx.Err()
	}
	return results, nil
}
