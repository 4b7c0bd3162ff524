package observer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// EventType represents the type of validation event
type EventType string

const (
	// ValidationStarted when a photo validation begins
	ValidationStarted EventType = "validation_started"
	// ValidationCompleted when a photo validation finishes successfully
	ValidationCompleted EventType = "validation_completed"
	// ValidationFailed when a photo validation fails
	ValidationFailed EventType = "validation_failed"
)

// ValidationEvent is the observability record emitted around each photo
// validation.
type ValidationEvent struct {
	EventType    EventType     `json:"event_type"`
	Timestamp    time.Time     `json:"timestamp"`
	RequestID    string        `json:"request_id"`
	PhotoURL     string        `json:"photo_url"`
	Duration     time.Duration `json:"duration"`
	IsValid      bool          `json:"is_valid"`
	Grade        string        `json:"grade,omitempty"`
	QualityScore float64       `json:"quality_score"`
	IssueCount   int           `json:"issue_count"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// Observer defines the interface for event observers
type Observer interface {
	OnEvent(ctx context.Context, event ValidationEvent)
	GetObserverName() string
}

// Subject defines the interface for event publishers
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	NotifyObservers(ctx context.Context, event ValidationEvent)
}

// LoggingObserver logs validation events
type LoggingObserver struct {
	logger *logrus.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *logrus.Logger) Observer {
	return &LoggingObserver{
		logger: logger,
	}
}

// OnEvent handles validation events by logging them
func (o *LoggingObserver) OnEvent(ctx context.Context, event ValidationEvent) {
	fields := logrus.Fields{
		"event_type": event.EventType,
		"request_id": event.RequestID,
		"photo_url":  event.PhotoURL,
	}

	switch event.EventType {
	case ValidationStarted:
		o.logger.WithFields(fields).Debug("Photo validation started")
	case ValidationCompleted:
		fields["is_valid"] = event.IsValid
		fields["grade"] = event.Grade
		fields["quality_score"] = event.QualityScore
		fields["issue_count"] = event.IssueCount
		fields["duration_ms"] = event.Duration.Milliseconds()
		o.logger.WithFields(fields).Info("Photo validation completed")
	case ValidationFailed:
		fields["error"] = event.ErrorMessage
		fields["duration_ms"] = event.Duration.Milliseconds()
		o.logger.WithFields(fields).Error("Photo validation failed")
	default:
		o.logger.WithFields(fields).Info("Validation event occurred")
	}
}

// GetObserverName returns the observer name
func (o *LoggingObserver) GetObserverName() string {
	return "logging_observer"
}

// MetricsObserver aggregates counters from validation events
type MetricsObserver struct {
	mu                sync.RWMutex
	totalValidations  int64
	validPhotos       int64
	invalidPhotos     int64
	failedValidations int64
	totalDuration     time.Duration
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

// OnEvent handles validation events by updating counters
func (o *MetricsObserver) OnEvent(ctx context.Context, event ValidationEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch event.EventType {
	case ValidationCompleted:
		o.totalValidations++
		o.totalDuration += event.Duration
		if event.IsValid {
			o.validPhotos++
		} else {
			o.invalidPhotos++
		}
	case ValidationFailed:
		o.totalValidations++
		o.failedValidations++
	}
}

// GetObserverName returns the observer name
func (o *MetricsObserver) GetObserverName() string {
	return "metrics_observer"
}

// GetMetrics returns a snapshot of the current counters
func (o *MetricsObserver) GetMetrics() map[string]interface{} {
	o.mu.RLock()
	defer o.mu.RUnlock()

	completed := o.validPhotos + o.invalidPhotos
	avgDuration := time.Duration(0)
	if completed > 0 {
		avgDuration = o.totalDuration / time.Duration(completed)
	}

	return map[string]interface{}{
		"total_validations":  o.totalValidations,
		"valid_photos":       o.validPhotos,
		"invalid_photos":     o.invalidPhotos,
		"failed_validations": o.failedValidations,
		"avg_duration_ms":    avgDuration.Milliseconds(),
	}
}

// EventPublisher implements the Subject interface
type EventPublisher struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{
		observers: make([]Observer, 0),
	}
}

// Subscribe adds an observer
func (p *EventPublisher) Subscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

// Unsubscribe removes an observer
func (p *EventPublisher) Unsubscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, obs := range p.observers {
		if obs.GetObserverName() == observer.GetObserverName() {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			break
		}
	}
}

// NotifyObservers notifies all observers of an event. Observers run inline:
// the pipeline does no work heavy enough to justify fan-out goroutines, and
// inline delivery keeps the metrics counters deterministic per request.
func (p *EventPublisher) NotifyObservers(ctx context.Context, event ValidationEvent) {
	p.mu.RLock()
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.mu.RUnlock()

	for _, obs := range observers {
		obs.OnEvent(ctx, event)
	}
}
