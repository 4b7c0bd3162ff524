package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PhotoFetcher retrieves the raw bytes of a submitted photo. The bytes are
// handed to the statistics extractor as-is; no decoding happens here.
type PhotoFetcher interface {
	FetchPhoto(ctx context.Context, photoURL string) ([]byte, error)
}

// maxPhotoBytes caps a single photo download (20MB).
const maxPhotoBytes = 20 * 1024 * 1024

// HTTPPhotoFetcher implements PhotoFetcher over plain HTTP(S)
type HTTPPhotoFetcher struct {
	client *http.Client
}

// NewHTTPPhotoFetcher creates an HTTP photo fetcher with pooled connections
// and bounded timeouts.
func NewHTTPPhotoFetcher() PhotoFetcher {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     30 * time.Second,

		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		DisableCompression:     false,
		MaxResponseHeaderBytes: 4096,

		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
	}

	return &HTTPPhotoFetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,

			// Prevent redirects to avoid unexpected behavior
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("too many redirects (limit: 3)")
				}
				return nil
			},
		},
	}
}

// FetchPhoto downloads the photo, retrying transient failures up to three
// attempts. 4xx responses are never retried.
func (h *HTTPPhotoFetcher) FetchPhoto(ctx context.Context, photoURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", photoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	req.Header.Set("Accept", "image/jpeg, image/png, image/webp, image/gif, */*")
	req.Header.Set("User-Agent", "Go-Produce-Validator/1.0")
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < 3; attempt++ {
		resp, err = h.client.Do(req)

		if err != nil {
			lastErr = err
		}

		if err == nil && resp != nil && resp.StatusCode == http.StatusOK {
			break
		}

		if err == nil && resp != nil {
			func() {
				defer resp.Body.Close()

				if resp.StatusCode >= 400 && resp.StatusCode < 500 {
					lastErr = fmt.Errorf("client error: status code %d", resp.StatusCode)
					return
				}
				if resp.StatusCode >= 500 {
					lastErr = fmt.Errorf("server error: status code %d", resp.StatusCode)
				}
			}()

			// 4xx is non-retryable
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				resp = nil
				break
			}
		}

		if attempt < 2 && (err != nil || (resp != nil && resp.StatusCode >= 500)) {
			time.Sleep(time.Duration(attempt+1) * time.Second)
		}

		if resp != nil && (err != nil || resp.StatusCode != http.StatusOK) {
			resp = nil
		}
	}

	if resp == nil || (err == nil && resp.StatusCode != http.StatusOK) {
		if lastErr != nil {
			return nil, fmt.Errorf("failed to fetch photo after 3 attempts: %w", lastErr)
		}
		return nil, fmt.Errorf("failed to fetch photo after 3 attempts: unknown error")
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read photo body: %w", err)
	}

	return data, nil
}
