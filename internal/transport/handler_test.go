package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"go-produce-validator/internal/analyzer"
	"go-produce-validator/internal/config"
	"go-produce-validator/internal/observer"
	"go-produce-validator/internal/service"
	"go-produce-validator/internal/storage"
	"go-produce-validator/pkg/localization"
	"go-produce-validator/pkg/models"
	"go-produce-validator/pkg/scoring"
)

func testConfig() *config.Config {
	return &config.Config{
		Host:               "127.0.0.1",
		Port:               "8080",
		RequestTimeout:     10 * time.Second,
		PhotoFetchTimeout:  5 * time.Second,
		MaxRequestBodySize: 25 * 1024 * 1024,
		FetchImages:        false,
		StorageBackend:     config.StorageHTTP,
		DefaultWidth:       1024,
		DefaultHeight:      768,
	}
}

func newTestHandler(cfg *config.Config) http.Handler {
	gin.SetMode(gin.TestMode)

	localizer := localization.NewSuggestionLocalizer()
	scorer := scoring.NewQualityScorer(localizer)
	metrics := observer.NewMetricsObserver()
	events := observer.NewEventPublisher()
	events.Subscribe(metrics)

	validator := service.NewPhotoValidationService(analyzer.NewSampleExtractor(), scorer, events)
	return NewHandler(validator, localizer, storage.NewHTTPPhotoFetcher(), metrics, cfg)
}

func postValidate(t *testing.T, handler http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/validate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestValidateEndpoint_DefaultsDimensions(t *testing.T) {
	handler := newTestHandler(testConfig())

	rec := postValidate(t, handler, ValidatePhotoRequest{
		PhotoURL: "https://photos.example.com/tomato.jpg",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result models.PhotoValidationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	// Defaulted 1024x768 passes the resolution check; neutral statistics
	// pass everything else
	if !result.IsValid {
		t.Errorf("Expected valid result with defaulted dimensions, got %+v", result)
	}
	if result.Grade != models.GradeA {
		t.Errorf("Expected grade A, got %s", result.Grade)
	}
}

func TestValidateEndpoint_LowResolution(t *testing.T) {
	handler := newTestHandler(testConfig())

	rec := postValidate(t, handler, ValidatePhotoRequest{
		PhotoURL: "https://photos.example.com/small.jpg",
		Width:    500,
		Height:   500,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result models.PhotoValidationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if result.IsValid {
		t.Error("Expected invalid result for 500x500 photo")
	}
	if result.Grade != models.GradeB {
		t.Errorf("Expected grade B, got %s", result.Grade)
	}
	if result.QualityScore != 0.75 {
		t.Errorf("Expected quality score 0.75, got %f", result.QualityScore)
	}
	if len(result.Issues) != 1 || result.Issues[0].Type != "LOW_RESOLUTION" {
		t.Errorf("Expected a single LOW_RESOLUTION issue, got %v", result.Issues)
	}
}

func TestValidateEndpoint_MissingURL(t *testing.T) {
	handler := newTestHandler(testConfig())

	rec := postValidate(t, handler, map[string]interface{}{
		"width":  1024,
		"height": 768,
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing photo_url, got %d", rec.Code)
	}
}

func TestValidateEndpoint_URLWithoutHost(t *testing.T) {
	handler := newTestHandler(testConfig())

	rec := postValidate(t, handler, ValidatePhotoRequest{
		PhotoURL: "not-a-real-url",
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for host-less URL, got %d", rec.Code)
	}
}

func TestValidateEndpoint_FetchImages(t *testing.T) {
	// A photo server handing out a payload too small to analyze
	photoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write(make([]byte, 50))
	}))
	defer photoServer.Close()

	cfg := testConfig()
	cfg.FetchImages = true
	handler := newTestHandler(cfg)

	rec := postValidate(t, handler, ValidatePhotoRequest{
		PhotoURL: photoServer.URL + "/tiny.jpg",
		Width:    2000,
		Height:   1500,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result models.PhotoValidationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	// The fetched 50-byte payload fails the produce size proxy
	if result.Grade != models.GradeC {
		t.Errorf("Expected grade C, got %s", result.Grade)
	}
	if len(result.Issues) != 1 || result.Issues[0].Type != "NO_PRODUCE" {
		t.Errorf("Expected a single NO_PRODUCE issue, got %v", result.Issues)
	}
}

func TestValidateEndpoint_FetchFailure(t *testing.T) {
	photoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer photoServer.Close()

	cfg := testConfig()
	cfg.FetchImages = true
	handler := newTestHandler(cfg)

	rec := postValidate(t, handler, ValidatePhotoRequest{
		PhotoURL: photoServer.URL + "/missing.jpg",
	})

	if rec.Code != http.StatusBadGateway {
		t.Errorf("Expected 502 for unfetchable photo, got %d", rec.Code)
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	handler := newTestHandler(testConfig())
	localizer := localization.NewSuggestionLocalizer()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "Hindi suggestion",
			query: "type=TOO_DARK&language=hi",
			want:  localizer.Suggest("TOO_DARK", "hi"),
		},
		{
			name:  "Missing language defaults to English",
			query: "type=BLURRY",
			want:  localizer.Suggest("BLURRY", "en"),
		},
		{
			name:  "Unknown language falls back to English",
			query: "type=TOO_DARK&language=xx",
			want:  localizer.Suggest("TOO_DARK", "en"),
		},
		{
			name:  "Unknown type falls back to generic text",
			query: "type=NOT_A_TYPE&language=en",
			want:  localization.FallbackSuggestion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/suggestions?"+tt.query, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d", rec.Code)
			}

			var resp SuggestionResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Suggestion != tt.want {
				t.Errorf("Expected suggestion %q, got %q", tt.want, resp.Suggestion)
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestHandler(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 from health check, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestHandler(testConfig())

	// Two validations: one valid, one invalid
	postValidate(t, handler, ValidatePhotoRequest{PhotoURL: "https://p.example.com/a.jpg"})
	postValidate(t, handler, ValidatePhotoRequest{PhotoURL: "https://p.example.com/b.jpg", Width: 320, Height: 240})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 from metrics, got %d", rec.Code)
	}

	var counters map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &counters); err != nil {
		t.Fatalf("Failed to decode metrics: %v", err)
	}
	if counters["total_validations"].(float64) != 2 {
		t.Errorf("Expected 2 total validations, got %v", counters["total_validations"])
	}
	if counters["valid_photos"].(float64) != 1 {
		t.Errorf("Expected 1 valid photo, got %v", counters["valid_photos"])
	}
}
