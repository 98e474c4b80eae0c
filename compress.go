package entroscope

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// CompressibilityReport correlates measured compression with the entropy of
// the same data.
//
// Shannon entropy bounds lossless compression: data with H bits of entropy
// per 8-bit symbol cannot be compressed below H/8 of its original size by
// any symbol-wise coder. TheoreticalRatio is that bound (1 - H/8); Ratio is
// what an actual LZ4 block pass achieved. Low-entropy data should show both
// ratios high, high-entropy data both near zero. LZ4 also exploits repeated
// sequences that a symbol-frequency model cannot see, so Ratio may exceed
// TheoreticalRatio on patterned data.
type CompressibilityReport struct {
	OriginalSize     int
	CompressedSize   int
	Ratio            float64 // Fraction of size saved by LZ4 (0 = incompressible)
	Entropy          float64 // Aggregate Shannon entropy, bits per byte
	TheoreticalRatio float64 // Entropy-derived bound: 1 - Entropy/8
}

// EstimateCompressibility compresses data with an LZ4 block pass and reports
// the measured ratio alongside the entropy-derived bound. An empty input
// yields a zero report.
func EstimateCompressibility(data []byte) (CompressibilityReport, error) {
	if len(data) == 0 {
		return CompressibilityReport{}, nil
	}

	entropy := Shannon(data)

	buf := make([]byte, lz4.CompressBlockBound(len(data)))
	sz, err := lz4.CompressBlock(data, buf, nil)
	if err != nil {
		return CompressibilityReport{}, fmt.Errorf("lz4 compression: %w", err)
	}

	report := CompressibilityReport{
		OriginalSize:     len(data),
		Entropy:          entropy,
		TheoreticalRatio: 1.0 - entropy/8.0,
	}

	if sz == 0 {
		// CompressBlock signals an incompressible block with 0.
		report.CompressedSize = len(data)
		report.Ratio = 0.0
		return report, nil
	}

	report.CompressedSize = sz
	report.Ratio = 1.0 - float64(sz)/float64(len(data))
	return report, nil
}
