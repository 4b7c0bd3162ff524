package scoring

// ScoringThresholds defines configurable thresholds and deduction weights for
// quality scoring. All values are read-only after construction and safe for
// concurrent use.
type ScoringThresholds struct {
	// Resolution thresholds
	MinWidth  int
	MinHeight int

	// Brightness thresholds (mean pixel value, 0-255)
	MinBrightness float64
	MaxBrightness float64

	// Borderline brightness band. Values inside [MinBrightness, BorderlineDark)
	// or (BorderlineBright, MaxBrightness] pass the hard checks but still
	// reduce confidence.
	BorderlineDark   float64
	BorderlineBright float64

	// Sharpness threshold (edge-variance proxy)
	MinSharpness float64

	// Fixed severities for the non-graduated checks
	LowResolutionSeverity float64
	NoProduceSeverity     float64

	// Score deductions per check
	LowResolutionDeduction float64
	BrightnessWeight       float64
	SharpnessWeight        float64
	NoProduceDeduction     float64

	// Grade cutoffs on the clamped score
	GradeACutoff float64
	GradeBCutoff float64
	GradeCCutoff float64

	// Confidence model
	BaseConfidence        float64
	SeverityConfidenceHit float64
	BorderlineHit         float64
	MinConfidence         float64
	MaxConfidence         float64
}

// DefaultScoringThresholds returns the production scoring thresholds.
func DefaultScoringThresholds() ScoringThresholds {
	return ScoringThresholds{
		MinWidth:               1024,
		MinHeight:              768,
		MinBrightness:          40.0,
		MaxBrightness:          220.0,
		BorderlineDark:         60.0,
		BorderlineBright:       180.0,
		MinSharpness:           100.0,
		LowResolutionSeverity:  0.5,
		NoProduceSeverity:      0.8,
		LowResolutionDeduction: 0.20,
		BrightnessWeight:       0.25,
		SharpnessWeight:        0.30,
		NoProduceDeduction:     0.40,
		GradeACutoff:           0.85,
		GradeBCutoff:           0.65,
		GradeCCutoff:           0.45,
		BaseConfidence:         0.9,
		SeverityConfidenceHit:  0.1,
		BorderlineHit:          0.1,
		MinConfidence:          0.3,
		MaxConfidence:          0.99,
	}
}
