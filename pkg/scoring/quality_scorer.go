package scoring

import (
	"fmt"

	"go-produce-validator/pkg/models"
)

// Suggester resolves remediation text for an issue type in a given language.
type Suggester interface {
	Suggest(issueType string, language string) string
}

// QualityScorer turns image statistics into a quality prediction. It is a
// pure computation: no I/O, no shared mutable state, deterministic for a
// given statistics record.
type QualityScorer struct {
	thresholds ScoringThresholds
	suggester  Suggester
}

// NewQualityScorer creates a quality scorer with default thresholds.
func NewQualityScorer(suggester Suggester) *QualityScorer {
	return NewQualityScorerWithThresholds(DefaultScoringThresholds(), suggester)
}

// NewQualityScorerWithThresholds creates a quality scorer with custom thresholds.
func NewQualityScorerWithThresholds(thresholds ScoringThresholds, suggester Suggester) *QualityScorer {
	return &QualityScorer{
		thresholds: thresholds,
		suggester:  suggester,
	}
}

// Score evaluates the independent quality checks in a fixed order
// (resolution, brightness, sharpness, produce presence) and derives a grade,
// a confidence value and the detected issues. Checks never short-circuit
// each other; the two brightness checks are mutually exclusive.
func (qs *QualityScorer) Score(stats models.ImageStatistics) models.QualityPrediction {
	t := qs.thresholds

	rawScore := 1.0
	var issues []models.QualityIssue

	// 1. Resolution
	if stats.Width < t.MinWidth || stats.Height < t.MinHeight {
		issues = append(issues, qs.newIssue(
			models.IssueLowResolution,
			t.LowResolutionSeverity,
			fmt.Sprintf("Image resolution %dx%d is below the required %dx%d", stats.Width, stats.Height, t.MinWidth, t.MinHeight),
		))
		rawScore -= t.LowResolutionDeduction
	}

	// 2. Brightness (at most one of dark/bright fires)
	if stats.Brightness < t.MinBrightness {
		severity := (t.MinBrightness - stats.Brightness) / t.MinBrightness
		issues = append(issues, qs.newIssue(
			models.IssueTooDark,
			severity,
			fmt.Sprintf("Image is too dark (brightness %.1f, minimum %.0f)", stats.Brightness, t.MinBrightness),
		))
		rawScore -= t.BrightnessWeight * severity
	} else if stats.Brightness > t.MaxBrightness {
		severity := (stats.Brightness - t.MaxBrightness) / (255.0 - t.MaxBrightness)
		issues = append(issues, qs.newIssue(
			models.IssueTooBright,
			severity,
			fmt.Sprintf("Image is too bright (brightness %.1f, maximum %.0f)", stats.Brightness, t.MaxBrightness),
		))
		rawScore -= t.BrightnessWeight * severity
	}

	// 3. Sharpness
	if stats.Sharpness < t.MinSharpness {
		severity := (t.MinSharpness - stats.Sharpness) / t.MinSharpness
		issues = append(issues, qs.newIssue(
			models.IssueBlurry,
			severity,
			fmt.Sprintf("Image is blurry (sharpness %.1f, minimum %.0f)", stats.Sharpness, t.MinSharpness),
		))
		rawScore -= t.SharpnessWeight * severity
	}

	// 4. Produce presence
	if !stats.HasProduceColors {
		issues = append(issues, qs.newIssue(
			models.IssueNoProduce,
			t.NoProduceSeverity,
			"No produce detected in the image",
		))
		rawScore -= t.NoProduceDeduction
	}

	rawScore = clamp(rawScore, 0.0, 1.0)

	return models.QualityPrediction{
		Grade:      qs.gradeFor(rawScore),
		Confidence: qs.confidenceFor(stats, issues),
		Issues:     issues,
	}
}

func (qs *QualityScorer) newIssue(issueType models.QualityIssueType, severity float64, message string) models.QualityIssue {
	return models.QualityIssue{
		Type:       issueType,
		Severity:   severity,
		Message:    message,
		Suggestion: qs.suggester.Suggest(string(issueType), "en"),
	}
}

func (qs *QualityScorer) gradeFor(score float64) models.Grade {
	t := qs.thresholds
	switch {
	case score >= t.GradeACutoff:
		return models.GradeA
	case score >= t.GradeBCutoff:
		return models.GradeB
	case score >= t.GradeCCutoff:
		return models.GradeC
	default:
		return models.GradeReject
	}
}

// confidenceFor reduces the base confidence by each issue's raw severity and
// applies a flat hit when brightness sits in the borderline band, whether or
// not a hard brightness issue fired.
func (qs *QualityScorer) confidenceFor(stats models.ImageStatistics, issues []models.QualityIssue) float64 {
	t := qs.thresholds

	confidence := t.BaseConfidence
	for _, issue := range issues {
		confidence -= t.SeverityConfidenceHit * issue.Severity
	}
	if stats.Brightness < t.BorderlineDark || stats.Brightness > t.BorderlineBright {
		confidence -= t.BorderlineHit
	}

	return clamp(confidence, t.MinConfidence, t.MaxConfidence)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
