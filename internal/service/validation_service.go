package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-produce-validator/internal/analyzer"
	apperrors "go-produce-validator/internal/errors"
	"go-produce-validator/internal/logger"
	"go-produce-validator/internal/observer"
	"go-produce-validator/pkg/models"
	"go-produce-validator/pkg/scoring"
)

// PhotoValidationService wraps the scoring pipeline behind the caller-facing
// validation contract.
type PhotoValidationService interface {
	Validate(ctx context.Context, request models.PhotoValidationRequest) (*models.PhotoValidationResult, error)
}

// gradeScores maps a grade to the externally reported quality score. This
// table is deliberately independent of the internal deduction arithmetic.
var gradeScores = map[models.Grade]float64{
	models.GradeA:      0.95,
	models.GradeB:      0.75,
	models.GradeC:      0.55,
	models.GradeReject: 0.25,
}

// unknownGradeScore is the defensive fallback for an unrecognized grade
// value; unreachable while the grade enumeration stays closed.
const unknownGradeScore = 0.5

type photoValidationService struct {
	extractor analyzer.StatsExtractor
	scorer    *scoring.QualityScorer
	events    observer.Subject
}

// NewPhotoValidationService creates the validation orchestrator.
func NewPhotoValidationService(
	extractor analyzer.StatsExtractor,
	scorer *scoring.QualityScorer,
	events observer.Subject,
) PhotoValidationService {
	return &photoValidationService{
		extractor: extractor,
		scorer:    scorer,
		events:    events,
	}
}

// Validate runs extraction and scoring for one photo and shapes the
// caller-facing result. Extraction and scoring failures are not retried and
// never produce a partial result: they are logged with request context and
// returned to the caller as internal errors.
func (s *photoValidationService) Validate(ctx context.Context, request models.PhotoValidationRequest) (result *models.PhotoValidationResult, err error) {
	requestID := uuid.NewString()
	startTime := time.Now()

	s.events.NotifyObservers(ctx, observer.ValidationEvent{
		EventType: observer.ValidationStarted,
		Timestamp: startTime,
		RequestID: requestID,
		PhotoURL:  request.PhotoURL,
	})

	// The extractor and scorer are pure and report no errors themselves; a
	// replacement statistics backend may still panic on malformed input.
	// Surface that as an internal error instead of tearing down the request
	// goroutine, with no degraded fallback result.
	defer func() {
		if r := recover(); r != nil {
			failure := fmt.Errorf("quality scoring pipeline panicked: %v", r)
			logger.WithError(failure).WithFields(logrus.Fields{
				"request_id": requestID,
				"photo_url":  request.PhotoURL,
			}).Error("Photo validation failed")

			s.events.NotifyObservers(ctx, observer.ValidationEvent{
				EventType:    observer.ValidationFailed,
				Timestamp:    time.Now(),
				RequestID:    requestID,
				PhotoURL:     request.PhotoURL,
				Duration:     time.Since(startTime),
				ErrorMessage: failure.Error(),
			})

			result = nil
			err = apperrors.NewInternalError("photo validation failed", failure)
		}
	}()

	stats := s.extractor.Extract(request.ImageData, request.Width, request.Height)
	prediction := s.scorer.Score(stats)

	issues := make([]models.ValidationIssue, 0, len(prediction.Issues))
	for _, issue := range prediction.Issues {
		issues = append(issues, models.ValidationIssue{
			Type:       string(issue.Type),
			Message:    issue.Message,
			Suggestion: issue.Suggestion,
		})
	}

	result = &models.PhotoValidationResult{
		IsValid:      prediction.Grade != models.GradeReject && len(prediction.Issues) == 0,
		QualityScore: scoreForGrade(prediction.Grade),
		Grade:        prediction.Grade,
		Confidence:   prediction.Confidence,
		Issues:       issues,
	}

	s.events.NotifyObservers(ctx, observer.ValidationEvent{
		EventType:    observer.ValidationCompleted,
		Timestamp:    time.Now(),
		RequestID:    requestID,
		PhotoURL:     request.PhotoURL,
		Duration:     time.Since(startTime),
		IsValid:      result.IsValid,
		Grade:        string(result.Grade),
		QualityScore: result.QualityScore,
		IssueCount:   len(result.Issues),
	})

	return result, nil
}

func scoreForGrade(grade models.Grade) float64 {
	if score, ok := gradeScores[grade]; ok {
		return score
	}
	return unknownGradeScore
}
