package entroscope

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"
)

// TestScanChunks_MatchesSequential verifies every chunk result equals the
// aggregate entropy of that chunk computed directly.
func TestScanChunks_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, 10000)
	for i := range data {
		data[i] = byte(rng.Intn(256))
	}

	cfg := ScanConfig{ChunkSize: 1024, Workers: 4}
	results, err := ScanChunks(context.Background(), data, cfg)
	if err != nil {
		t.Fatalf("ScanChunks failed: %v", err)
	}

	expectedChunks := (len(data) + cfg.ChunkSize - 1) / cfg.ChunkSize
	if len(results) != expectedChunks {
		t.Fatalf("Got %d chunks, expected %d", len(results), expectedChunks)
	}

	for i, r := range results {
		if r.Index != i {
			t.Errorf("Result %d carries index %d (ordering broken)", i, r.Index)
		}
		if r.Offset != i*cfg.ChunkSize {
			t.Errorf("Chunk %d offset %d, expected %d", i, r.Offset, i*cfg.ChunkSize)
		}

		direct := Shannon(data[r.Offset : r.Offset+r.Length])
		if math.Abs(r.Entropy-direct) > 1e-9 {
			t.Errorf("Chunk %d: parallel %.10f, sequential %.10f", i, r.Entropy, direct)
		}
	}

	last := results[len(results)-1]
	if last.Offset+last.Length != len(data) {
		t.Errorf("Chunks do not cover the input: last ends at %d of %d", last.Offset+last.Length, len(data))
	}

	t.Logf("✓ %d chunks match sequential computation, full coverage", len(results))
}

// TestScanChunks_ShortFinalChunk verifies an input that doesn't divide evenly.
func TestScanChunks_ShortFinalChunk(t *testing.T) {
	data := []byte("AAAABBBBCC") // 10 bytes, chunk 4 → 4+4+2

	results, err := ScanChunks(context.Background(), data, ScanConfig{ChunkSize: 4, Workers: 2})
	if err != nil {
		t.Fatalf("ScanChunks failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Got %d chunks, expected 3", len(results))
	}
	if results[2].Length != 2 {
		t.Errorf("Final chunk length %d, expected 2", results[2].Length)
	}
	if results[0].Entropy != 0.0 {
		t.Errorf("AAAA chunk entropy %.6f, expected 0.0", results[0].Entropy)
	}

	t.Logf("✓ Uneven split: lengths %d/%d/%d", results[0].Length, results[1].Length, results[2].Length)
}

// TestScanChunks_EmptyInput verifies an empty input yields no chunks and no
// error.
func TestScanChunks_EmptyInput(t *testing.T) {
	results, err := ScanChunks(context.Background(), nil, DefaultScanConfig())
	if err != nil {
		t.Fatalf("ScanChunks over empty input failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Got %d chunks for empty input", len(results))
	}

	t.Logf("✓ Empty input → empty result, no error")
}

// TestScanChunks_InvalidChunkSize verifies configuration validation.
func TestScanChunks_InvalidChunkSize(t *testing.T) {
	for _, size := range []int{0, -5} {
		_, err := ScanChunks(context.Background(), []byte("data"), ScanConfig{ChunkSize: size})

		var cfgErr *InvalidConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("ChunkSize %d: error type %T, expected *InvalidConfigError", size, err)
			continue
		}

		t.Logf("✓ Rejected chunk size %d: %v", size, err)
	}
}

// TestScanChunks_Cancellation verifies a cancelled context aborts the scan
// with ctx.Err().
func TestScanChunks_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancelled before the scan starts

	data := make([]byte, 100000)
	_, err := ScanChunks(ctx, data, ScanConfig{ChunkSize: 64, Workers: 2})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Got %v, expected context.Canceled", err)
	}

	t.Logf("✓ Cancellation surfaces as %v", err)
}
