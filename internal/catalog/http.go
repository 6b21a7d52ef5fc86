package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"societies/internal/domain"
	appErrors "societies/internal/errors"
)

// DefaultTimeout bounds a catalog download.
const DefaultTimeout = 5 * time.Second

// maxCatalogBytes caps the response body read from a remote catalog.
const maxCatalogBytes = 8 << 20

// HTTPSource downloads a catalog document.
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		if timeout <= 0 {
			return
		}
		client := *s.httpClient
		client.Timeout = timeout
		s.httpClient = &client
	}
}

// NewHTTPSource creates a source that fetches url on every List call.
func NewHTTPSource(url string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		url:        url,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the catalog location.
func (s *HTTPSource) URL() string { return s.url }

// List fetches and decodes the remote catalog.
func (s *HTTPSource) List(ctx context.Context) ([]domain.Society, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("invalid catalog url %q", s.url), err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")
	req.Header.Set("User-Agent", "societies-catalog")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeCatalogUnavailable, "fetch catalog", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("catalog not found: %s", s.url), nil)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, appErrors.New(appErrors.CodeCatalogUnavailable, fmt.Sprintf("fetch catalog: status %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes+1))
	if err != nil {
		return nil, appErrors.New(appErrors.CodeCatalogUnavailable, "read catalog body", err)
	}
	if len(data) > maxCatalogBytes {
		return nil, appErrors.New(appErrors.CodeCatalogUnavailable, fmt.Sprintf("catalog exceeds %d bytes", maxCatalogBytes), nil)
	}
	societies, err := Decode(data, formatForResponse(resp, req.URL.Path))
	if err != nil {
		return nil, err
	}
	catalogLog.Logf("fetched %d societies from %s", len(societies), s.url)
	return societies, nil
}

func formatForResponse(resp *http.Response, urlPath string) Format {
	if strings.Contains(resp.Header.Get("Content-Type"), "json") {
		return FormatJSON
	}
	return FormatForPath(path.Base(urlPath))
}
