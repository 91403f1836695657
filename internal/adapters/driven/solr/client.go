// Package solr implements the index service against the Solr JSON
// update API. Each language variant of the index lives in its own
// core; update sessions accumulate documents and commit once.
package solr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
	"github.com/sitepark/citygov-search/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.IndexService = (*Client)(nil)

// defaultRequestsPerSecond throttles update requests against a shared
// Solr instance.
const defaultRequestsPerSecond = 10

// Client talks to a Solr instance holding one core per index language.
type Client struct {
	baseURL    string
	index      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) { client.httpClient = c }
}

// WithRateLimit overrides the update request rate limit.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(client *Client) {
		client.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// NewClient creates a Solr client for the index with the given base
// name. baseURL is the Solr root, e.g. "http://localhost:8983".
func NewClient(baseURL, index string, opts ...Option) *Client {
	client := &Client{
		baseURL:    baseURL,
		index:      index,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Updater returns a new update session for the language's core.
func (c *Client) Updater(lang string) (driven.IndexUpdater, error) {
	return &Updater{
		client: c,
		core:   c.coreName(lang),
	}, nil
}

// coreName resolves the core holding the given language variant. The
// default language lives in the base core; other languages get a
// core suffixed with the language tag.
func (c *Client) coreName(lang string) string {
	if lang == "" {
		return c.index
	}
	return c.index + "-" + lang
}

// Updater is one cumulative update session against a single core.
type Updater struct {
	client *Client
	core   string
	docs   []*domain.IndexDocument
}

// AddDocument queues a document for the next Update.
func (u *Updater) AddDocument(doc *domain.IndexDocument) {
	u.docs = append(u.docs, doc)
}

// Update submits all queued documents in one request and commits.
func (u *Updater) Update(ctx context.Context) error {
	if err := u.client.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	fields := make([]map[string]any, len(u.docs))
	for i, doc := range u.docs {
		fields[i] = doc.Fields()
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encoding update request: %w", err)
	}

	url := fmt.Sprintf("%s/solr/%s/update?commit=true", u.client.baseURL, u.core)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.client.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending update request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("solr update failed for core %q: status %d: %s", u.core, resp.StatusCode, detail)
	}

	logger.Debug("committed %d documents to core %s", len(u.docs), u.core)
	u.docs = nil
	return nil
}
