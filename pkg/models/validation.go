package models

// Grade is the ordered quality bucket assigned to a photo.
// Ordering is A > B > C > REJECT.
type Grade string

const (
	GradeA      Grade = "A"
	GradeB      Grade = "B"
	GradeC      Grade = "C"
	GradeReject Grade = "REJECT"
)

// QualityIssueType identifies a specific, named defect detected in a photo.
type QualityIssueType string

const (
	IssueTooDark       QualityIssueType = "TOO_DARK"
	IssueTooBright     QualityIssueType = "TOO_BRIGHT"
	IssueBlurry        QualityIssueType = "BLURRY"
	IssueNoProduce     QualityIssueType = "NO_PRODUCE"
	IssueLowResolution QualityIssueType = "LOW_RESOLUTION"
	// IssuePoorFraming is part of the issue taxonomy but not raised by the
	// current scoring rules.
	IssuePoorFraming QualityIssueType = "POOR_FRAMING"
)

// ImageStatistics is the fixed feature set the scorer consumes.
// It is produced fresh per request and never mutated after construction.
type ImageStatistics struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	Brightness       float64 `json:"brightness"` // mean pixel value, 0-255
	Contrast         float64 `json:"contrast"`   // std deviation, 0-255
	Sharpness        float64 `json:"sharpness"`  // edge-variance proxy, >= 0
	HasProduceColors bool    `json:"has_produce_colors"`
}

// QualityIssue describes one detected defect with its severity and
// remediation text. Severity is normalized: 0 = at threshold, 1 = maximally
// bad for the statistic's value range.
type QualityIssue struct {
	Type       QualityIssueType `json:"type"`
	Severity   float64          `json:"severity"`
	Message    string           `json:"message"`
	Suggestion string           `json:"suggestion"`
}

// QualityPrediction is the scorer output: a grade, the model's confidence in
// that grade, and the detected issues in check-evaluation order.
type QualityPrediction struct {
	Grade      Grade          `json:"grade"`
	Confidence float64        `json:"confidence"`
	Issues     []QualityIssue `json:"issues"`
}

// PhotoValidationRequest carries one photo submission. ImageData holds the
// raw image bytes when the caller inlines them; when absent the pipeline
// falls back to declared dimensions and neutral statistics.
type PhotoValidationRequest struct {
	PhotoURL  string `json:"photo_url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData []byte `json:"image_data,omitempty"`
}

// ValidationIssue is the caller-facing shape of a detected issue.
type ValidationIssue struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// PhotoValidationResult is the caller-facing validation outcome.
// QualityScore is a fixed function of Grade alone, never of the internal
// deduction arithmetic. IsValid requires both a non-REJECT grade and an
// empty issue list.
type PhotoValidationResult struct {
	IsValid      bool              `json:"is_valid"`
	QualityScore float64           `json:"quality_score"`
	Grade        Grade             `json:"grade"`
	Confidence   float64           `json:"confidence"`
	Issues       []ValidationIssue `json:"issues"`
}
