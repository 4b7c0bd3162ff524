package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("Expected default request timeout 30s, got %s", cfg.RequestTimeout)
	}
	if cfg.FetchImages {
		t.Error("Expected image fetching to default to off")
	}
	if cfg.StorageBackend != StorageHTTP {
		t.Errorf("Expected default storage backend http, got %s", cfg.StorageBackend)
	}
	if cfg.DefaultWidth != 1024 || cfg.DefaultHeight != 768 {
		t.Errorf("Expected default dimensions 1024x768, got %dx%d", cfg.DefaultWidth, cfg.DefaultHeight)
	}
}

func TestLoadFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := LoadFromEnv(); err == nil {
		t.Error("Expected error for non-numeric port")
	}
}

func TestLoadFromEnv_PortOutOfRange(t *testing.T) {
	t.Setenv("PORT", "70000")

	if _, err := LoadFromEnv(); err == nil {
		t.Error("Expected error for out-of-range port")
	}
}

func TestLoadFromEnv_FetchImagesEnabled(t *testing.T) {
	t.Setenv("FETCH_IMAGES", "true")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !cfg.FetchImages {
		t.Error("Expected image fetching to be enabled")
	}
}

func TestLoadFromEnv_AzureBackendRequiresCredentials(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", StorageAzure)

	if _, err := LoadFromEnv(); err == nil {
		t.Error("Expected error for azure backend without credentials")
	}

	t.Setenv("AZURE_ACCOUNT_NAME", "produce-photos")
	t.Setenv("AZURE_ACCOUNT_KEY", "c2VjcmV0")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Unexpected error with credentials set: %v", err)
	}
	if cfg.StorageBackend != StorageAzure {
		t.Errorf("Expected azure backend, got %s", cfg.StorageBackend)
	}
}

func TestLoadFromEnv_UnsupportedBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "ftp")

	if _, err := LoadFromEnv(); err == nil {
		t.Error("Expected error for unsupported storage backend")
	}
}

func TestLoadFromEnv_BadDurationFallsBackToDefault(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("Expected fallback to 30s, got %s", cfg.RequestTimeout)
	}
}

func TestServerAddress(t *testing.T) {
	cfg := &Config{Host: " 0.0.0.0 ", Port: " 9090 "}
	if got := cfg.ServerAddress(); got != "0.0.0.0:9090" {
		t.Errorf("Expected 0.0.0.0:9090, got %s", got)
	}
}
