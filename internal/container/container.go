package container

import (
	"fmt"
	"net/http"

	"go-produce-validator/internal/config"
	"go-produce-validator/internal/factory"
	"go-produce-validator/internal/logger"
	"go-produce-validator/internal/observer"
	"go-produce-validator/internal/service"
	"go-produce-validator/internal/storage"
	"go-produce-validator/internal/transport"
	"go-produce-validator/pkg/localization"
	"go-produce-validator/pkg/scoring"
)

// Container holds all application dependencies
type Container struct {
	config       *config.Config
	photoFetcher storage.PhotoFetcher
	localizer    *localization.SuggestionLocalizer
	scorer       *scoring.QualityScorer
	validator    service.PhotoValidationService
	metrics      *observer.MetricsObserver
	handler      http.Handler
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Build dependency graph
	factories := factory.NewComponentFactory()

	photoFetcher, err := factories.StorageFactory.CreateFetcher(cfg.StorageBackend, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create photo fetcher: %w", err)
	}

	extractor, err := factories.ExtractorFactory.CreateExtractor(factory.SampleExtractor)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats extractor: %w", err)
	}

	localizer := localization.NewSuggestionLocalizer()
	scorer := scoring.NewQualityScorer(localizer)

	metrics := observer.NewMetricsObserver()
	events := observer.NewEventPublisher()
	events.Subscribe(observer.NewLoggingObserver(logger.Logger))
	events.Subscribe(metrics)

	validator := service.NewPhotoValidationService(extractor, scorer, events)
	handler := transport.NewHandler(validator, localizer, photoFetcher, metrics, cfg)

	return &Container{
		config:       cfg,
		photoFetcher: photoFetcher,
		localizer:    localizer,
		scorer:       scorer,
		validator:    validator,
		metrics:      metrics,
		handler:      handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}
