// Package widget implements the random-insult display component: a single
// cache-busted fetch of the collection and uniform random selection over the
// fetched snapshot.
package widget

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/joanrios/insultari/internal/insults"
)

// Fetcher retrieves the whole collection from wherever it is published.
type Fetcher interface {
	Fetch(ctx context.Context) (*insults.Collection, error)
}

// HTTPFetcher fetches insults.json relative to a base URL. Every request
// carries a timestamp query parameter so intermediate caches are defeated.
type HTTPFetcher struct {
	client        *resty.Client
	retryAttempts uint
	now           func() time.Time
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher for the document published under baseURL.
func NewHTTPFetcher(baseURL string, retryAttempts uint) *HTTPFetcher {
	client := resty.New()
	client.SetBaseURL(baseURL)

	return &HTTPFetcher{
		client:        client,
		retryAttempts: retryAttempts,
		now:           time.Now,
	}
}

// isRetryableError determines if a fetch error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "status code: 5") {
		return true
	}
	return false
}

// Fetch issues one GET of insults.json and parses the document.
func (f *HTTPFetcher) Fetch(ctx context.Context) (*insults.Collection, error) {
	var collection *insults.Collection
	if err := retry.Do(
		func() error {
			fetched, err := f.fetch(ctx)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			collection = fetched
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(f.retryAttempts+1),
		retry.LastErrorOnly(true),
	); err != nil {
		return nil, fmt.Errorf("fetch insults.json > %w", err)
	}
	return collection, nil
}

func (f *HTTPFetcher) fetch(ctx context.Context) (*insults.Collection, error) {
	res, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("t", strconv.FormatInt(f.now().UnixMilli(), 10)).
		Get("insults.json")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	var collection insults.Collection
	if err := json.Unmarshal(res.Body(), &collection); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return &collection, nil
}
