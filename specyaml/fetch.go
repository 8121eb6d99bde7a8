package specyaml

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultBaseURL is the raw-content root that spec files are fetched from
// by default.
const DefaultBaseURL = "https://raw.githubusercontent.com/DataDog/integrations-core/refs/heads/master"

const specFilePath = "assets/configuration/spec.yaml"

// ErrFetchSpec indicates a failed remote spec retrieval.
var ErrFetchSpec = errors.New("fetch spec")

// Fetcher retrieves spec.yaml documents for named integrations over HTTP.
//
// Create instances with [NewFetcher].
type Fetcher struct {
	client  *http.Client
	baseURL string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// NewFetcher creates a Fetcher with the given options. The default uses
// [DefaultBaseURL] and [http.DefaultClient].
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:  http.DefaultClient,
		baseURL: DefaultBaseURL,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// WithBaseURL sets the raw-content root to fetch spec files from.
func WithBaseURL(baseURL string) FetcherOption {
	return func(f *Fetcher) {
		f.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for retrieval.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// Fetch retrieves the spec.yaml content for the named integration.
func (f *Fetcher) Fetch(ctx context.Context, integration string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s", f.baseURL, integration, specFilePath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchSpec, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchSpec, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body.

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: unexpected status %s", ErrFetchSpec, url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchSpec, err)
	}

	return data, nil
}
