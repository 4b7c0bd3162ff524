package factory

import (
	"fmt"

	"go-produce-validator/internal/analyzer"
	"go-produce-validator/internal/config"
	"go-produce-validator/internal/storage"
)

// ExtractorType represents different statistics backends
type ExtractorType string

const (
	// SampleExtractor derives statistics from a leading byte sample
	SampleExtractor ExtractorType = "sample"
	// PixelExtractor will derive statistics from decoded pixels once a real
	// image-analysis backend lands
	PixelExtractor ExtractorType = "pixel"
)

// ExtractorFactory creates statistics extractors
type ExtractorFactory interface {
	CreateExtractor(extractorType ExtractorType) (analyzer.StatsExtractor, error)
}

// StorageFactory creates photo fetcher implementations
type StorageFactory interface {
	CreateFetcher(backend string, cfg *config.Config) (storage.PhotoFetcher, error)
}

// extractorFactory implements ExtractorFactory
type extractorFactory struct{}

// NewExtractorFactory creates a new extractor factory
func NewExtractorFactory() ExtractorFactory {
	return &extractorFactory{}
}

// CreateExtractor creates an extractor based on the specified type
func (f *extractorFactory) CreateExtractor(extractorType ExtractorType) (analyzer.StatsExtractor, error) {
	switch extractorType {
	case SampleExtractor:
		return analyzer.NewSampleExtractor(), nil
	case PixelExtractor:
		// The statistics contract stays fixed when this backend arrives, so
		// callers of the factory will not change.
		return nil, fmt.Errorf("pixel extractor not yet implemented")
	default:
		return nil, fmt.Errorf("unsupported extractor type: %s", extractorType)
	}
}

// storageFactory implements StorageFactory
type storageFactory struct{}

// NewStorageFactory creates a new storage factory
func NewStorageFactory() StorageFactory {
	return &storageFactory{}
}

// CreateFetcher creates a photo fetcher for the configured backend
func (f *storageFactory) CreateFetcher(backend string, cfg *config.Config) (storage.PhotoFetcher, error) {
	switch backend {
	case config.StorageHTTP:
		return storage.NewHTTPPhotoFetcher(), nil
	case config.StorageAzure:
		return storage.NewAzurePhotoFetcher(cfg.AzureAccountName, cfg.AzureAccountKey)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}
}

// ComponentFactory combines all factories
type ComponentFactory struct {
	ExtractorFactory ExtractorFactory
	StorageFactory   StorageFactory
}

// NewComponentFactory creates a new component factory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{
		ExtractorFactory: NewExtractorFactory(),
		StorageFactory:   NewStorageFactory(),
	}
}
