package analyzer

import (
	"gonum.org/v1/gonum/stat"

	"go-produce-validator/pkg/models"
)

// StatsExtractor reduces raw image data (or declared dimensions when no data
// is available) to the fixed statistics record the scorer consumes. This is
// the designated replacement point for a real pixel-level analyzer:
// swapping in histogram-based brightness/contrast, true edge-variance
// sharpness and learned produce segmentation must not change the
// ImageStatistics shape.
type StatsExtractor interface {
	Extract(raw []byte, width, height int) models.ImageStatistics
}

const (
	// minAnalyzableBytes is the smallest payload worth sampling; anything
	// shorter gets the "unknown" defaults instead of a misleading analysis.
	minAnalyzableBytes = 100
	// sampleWindow caps how many leading bytes feed the mean/std-dev sample.
	sampleWindow = 1000
	// produceSizeBytes is a size proxy for produce presence until real color
	// segmentation replaces this extractor.
	produceSizeBytes = 10000

	// sharpnessContrastFactor derives the sharpness proxy from contrast.
	sharpnessContrastFactor = 3.0

	neutralBrightness = 140.0
	neutralContrast   = 50.0
	neutralSharpness  = 180.0

	unknownBrightness = 128.0
	unknownContrast   = 50.0
	unknownSharpness  = 150.0
)

// sampleExtractor is the placeholder statistics backend. It derives
// statistics from a leading byte sample rather than decoded pixels.
type sampleExtractor struct{}

// NewSampleExtractor creates the byte-sampling statistics extractor.
func NewSampleExtractor() StatsExtractor {
	return &sampleExtractor{}
}

// Extract is a pure function of its inputs. With no raw data it returns a
// fixed neutral record using the declared dimensions, standing in for
// "fetch and decode the image".
func (e *sampleExtractor) Extract(raw []byte, width, height int) models.ImageStatistics {
	if raw == nil {
		return models.ImageStatistics{
			Width:            width,
			Height:           height,
			Brightness:       neutralBrightness,
			Contrast:         neutralContrast,
			Sharpness:        neutralSharpness,
			HasProduceColors: true,
		}
	}

	stats := models.ImageStatistics{
		Width:            width,
		Height:           height,
		HasProduceColors: len(raw) > produceSizeBytes,
	}

	if len(raw) < minAnalyzableBytes {
		stats.Brightness = unknownBrightness
		stats.Contrast = unknownContrast
		stats.Sharpness = unknownSharpness
		return stats
	}

	window := raw
	if len(window) > sampleWindow {
		window = window[:sampleWindow]
	}
	sample := make([]float64, len(window))
	for i, b := range window {
		sample[i] = float64(b)
	}

	stats.Brightness = stat.Mean(sample, nil)
	stats.Contrast = stat.StdDev(sample, nil)
	stats.Sharpness = stats.Contrast * sharpnessContrastFactor
	return stats
}
