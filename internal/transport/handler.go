package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-produce-validator/internal/config"
	apperrors "go-produce-validator/internal/errors"
	"go-produce-validator/internal/logger"
	"go-produce-validator/internal/observer"
	"go-produce-validator/internal/service"
	"go-produce-validator/internal/storage"
	"go-produce-validator/pkg/localization"
	"go-produce-validator/pkg/models"
)

func validatePhotoURL(photoURL string) error {
	// Parse URL
	parsedURL, err := url.Parse(photoURL)
	if err != nil {
		return apperrors.NewValidationError("Invalid URL format", err)
	}
	// Check if host is present
	if parsedURL.Host == "" {
		return apperrors.NewValidationError("URL must have a valid host", nil)
	}

	return nil
}

// ValidatePhotoRequest is the wire shape of a photo validation call.
// ImageData is base64 over JSON; width/height are optional and default to
// the configured dimensions at this boundary, not in the scorer.
type ValidatePhotoRequest struct {
	PhotoURL  string `json:"photo_url" binding:"required"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	ImageData []byte `json:"image_data,omitempty"`
}

// SuggestionResponse is the wire shape of a localized suggestion lookup.
type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func NewHandler(
	validator service.PhotoValidationService,
	localizer *localization.SuggestionLocalizer,
	fetcher storage.PhotoFetcher,
	metrics *observer.MetricsObserver,
	cfg *config.Config,
) http.Handler {
	r := gin.Default()

	// Add middleware
	r.Use(
		requestSizeLimiter(cfg.MaxRequestBodySize),
		errorHandler(),
	)

	// Configure routes
	r.GET("/health", healthCheck)
	r.GET("/metrics", validationMetrics(metrics))
	r.GET("/suggestions", localizedSuggestion(localizer))
	r.POST("/validate", validatePhoto(validator, fetcher, cfg))

	return r
}

func validatePhoto(validator service.PhotoValidationService, fetcher storage.PhotoFetcher, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		// Log request start
		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"user_agent": c.Request.UserAgent(),
			"ip":         c.ClientIP(),
		}).Info("Processing photo validation request")

		var req ValidatePhotoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"ip": c.ClientIP(),
			}).Error("Invalid request format")
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		// Validate photo URL
		if err := validatePhotoURL(req.PhotoURL); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"photo_url": req.PhotoURL,
				"ip":        c.ClientIP(),
			}).Error("Invalid photo URL")

			respondError(c, apperrors.GetStatusCode(err), "invalid photo URL", err)
			return
		}

		// Missing dimensions default here, at the transport boundary
		if req.Width <= 0 {
			req.Width = cfg.DefaultWidth
		}
		if req.Height <= 0 {
			req.Height = cfg.DefaultHeight
		}

		// Optionally pull the photo bytes so the pipeline analyzes real data
		// instead of the neutral-default statistics.
		if cfg.FetchImages && len(req.ImageData) == 0 {
			data, err := fetchPhoto(ctx, fetcher, req.PhotoURL, cfg.PhotoFetchTimeout)
			if err != nil {
				logger.WithError(err).WithFields(logrus.Fields{
					"photo_url": req.PhotoURL,
					"ip":        c.ClientIP(),
				}).Error("Failed to fetch photo")

				respondError(c, apperrors.GetStatusCode(err), "failed to fetch photo", err)
				return
			}
			req.ImageData = data
		}

		result, err := validator.Validate(ctx, models.PhotoValidationRequest{
			PhotoURL:  req.PhotoURL,
			Width:     req.Width,
			Height:    req.Height,
			ImageData: req.ImageData,
		})
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "photo validation failed", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func fetchPhoto(ctx context.Context, fetcher storage.PhotoFetcher, photoURL string, timeout time.Duration) ([]byte, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	data, err := fetcher.FetchPhoto(fetchCtx, photoURL)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewTimeoutError("Photo fetch timeout", err)
		}
		return nil, apperrors.NewNetworkError("Failed to fetch photo", err)
	}
	return data, nil
}

// localizedSuggestion resolves remediation text for an issue type. The
// lookup never fails: unknown types and languages resolve through the
// fallback chain.
func localizedSuggestion(localizer *localization.SuggestionLocalizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		issueType := c.Query("type")
		language := c.DefaultQuery("language", localization.DefaultLanguage)

		c.JSON(http.StatusOK, SuggestionResponse{
			Suggestion: localizer.Suggest(issueType, language),
		})
	}
}

func validationMetrics(metrics *observer.MetricsObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, metrics.GetMetrics())
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			respondError(c, determineStatusCode(err), "request processing failed", err)
		}
	}
}

func determineStatusCode(err error) int {
	// Check if it's a custom app error first
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.StatusCode
	}

	// Fallback to context-based errors
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	// Log the error with context
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
