package solr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
)

// Ensure Client implements the query interfaces.
var (
	_ driven.Search  = (*Client)(nil)
	_ driven.Suggest = (*Client)(nil)
)

// selectResponse is the subset of the Solr select response we read.
type selectResponse struct {
	ResponseHeader struct {
		QTime int64 `json:"QTime"`
	} `json:"responseHeader"`
	Response struct {
		NumFound int `json:"numFound"`
		Docs     []struct {
			ID string `json:"id"`
		} `json:"docs"`
	} `json:"response"`
}

// Search executes the query against the select handler of the
// language's core, one fq parameter per filter.
func (c *Client) Search(ctx context.Context, query *domain.SearchQuery) (*domain.SearchResult, error) {
	params := url.Values{}
	text := query.Text
	if text == "" {
		text = "*:*"
	}
	params.Set("q", text)
	params.Set("q.op", string(query.Operator))
	params.Set("start", strconv.Itoa(query.Offset))
	params.Set("rows", strconv.Itoa(query.Limit))
	params.Set("fl", "id")
	params.Set("wt", "json")
	for _, filter := range query.Filters {
		params.Add("fq", filter.Query())
	}

	var parsed selectResponse
	if err := c.get(ctx, query.Lang, "select", params, &parsed); err != nil {
		return nil, err
	}

	ids := make([]string, len(parsed.Response.Docs))
	for i, doc := range parsed.Response.Docs {
		ids[i] = doc.ID
	}
	return &domain.SearchResult{
		Total:   parsed.Response.NumFound,
		Offset:  query.Offset,
		Limit:   query.Limit,
		IDs:     ids,
		QueryMS: parsed.ResponseHeader.QTime,
	}, nil
}

// suggestResponse is the subset of the terms response we read.
type suggestResponse struct {
	Terms map[string]json.RawMessage `json:"terms"`
}

// suggestField is the catch-all completion field of the index schema.
const suggestField = "suggest"

// Suggest executes a completion query through the terms handler,
// restricted by the same filters as a search.
func (c *Client) Suggest(ctx context.Context, query *domain.SuggestQuery) (*domain.SuggestResult, error) {
	params := url.Values{}
	params.Set("terms.fl", suggestField)
	params.Set("terms.prefix", query.Text)
	params.Set("terms.limit", strconv.Itoa(query.Limit))
	params.Set("wt", "json")
	for _, filter := range query.Filters {
		params.Add("fq", filter.Query())
	}

	var parsed suggestResponse
	if err := c.get(ctx, query.Lang, "terms", params, &parsed); err != nil {
		return nil, err
	}

	result := &domain.SuggestResult{}
	raw, ok := parsed.Terms[suggestField]
	if !ok {
		return result, nil
	}

	// The terms component interleaves term and count in one array.
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decoding terms response: %w", err)
	}
	for i := 0; i+1 < len(entries); i += 2 {
		var term string
		var hits int
		if err := json.Unmarshal(entries[i], &term); err != nil {
			return nil, fmt.Errorf("decoding suggest term: %w", err)
		}
		if err := json.Unmarshal(entries[i+1], &hits); err != nil {
			return nil, fmt.Errorf("decoding suggest hits: %w", err)
		}
		result.Suggestions = append(result.Suggestions, domain.Suggestion{Term: term, Hits: hits})
	}
	return result, nil
}

// get performs a GET against a query handler of the language's core.
func (c *Client) get(ctx context.Context, lang, handler string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/solr/%s/%s?%s", c.baseURL, c.coreName(lang), handler, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building %s request: %w", handler, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending %s request: %w", handler, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("solr %s failed: status %d: %s", handler, resp.StatusCode, detail)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", handler, err)
	}
	return nil
}
