package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dexview/internal/catalog"
)

type Options struct {
	BaseURL     string
	Concurrency int
	Timeout     time.Duration
	HTTPClient  *http.Client
	Logger      *zap.Logger
}

type Client struct {
	baseURL     string
	concurrency int
	http        *http.Client
	logger      *zap.Logger
}

func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		concurrency: concurrency,
		http:        httpClient,
		logger:      logger,
	}
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// FetchCatalog fetches the first limit entries of the list endpoint and then
// every detail document in parallel. The result keeps list order. The first
// failure cancels the outstanding requests.
func (c *Client) FetchCatalog(ctx context.Context, limit int) ([]catalog.Entity, error) {
	listURL := fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, limit)

	var list listResponse
	if err := c.getJSON(ctx, listURL, &list); err != nil {
		return nil, fmt.Errorf("fetching catalog list: %w", err)
	}
	c.logger.Debug("fetched catalog list", zap.Int("results", len(list.Results)), zap.Int("count", list.Count))

	entities := make([]catalog.Entity, len(list.Results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, link := range list.Results {
		g.Go(func() error {
			var p pokemon
			if err := c.getJSON(gctx, link.URL, &p); err != nil {
				return fmt.Errorf("fetching %s: %w", link.Name, err)
			}
			entities[i] = p.entity()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Info("fetched catalog", zap.Int("entities", len(entities)))
	return entities, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}
