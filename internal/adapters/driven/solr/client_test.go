package solr

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepark/citygov-search/internal/core/domain"
)

func TestCoreName(t *testing.T) {
	client := NewClient("http://localhost:8983", "citygov")

	assert.Equal(t, "citygov", client.coreName(""))
	assert.Equal(t, "citygov-de", client.coreName("de"))
	assert.Equal(t, "citygov-en", client.coreName("en"))
}

func TestUpdater_Update(t *testing.T) {
	var gotPath string
	var gotQuery string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "citygov", WithRateLimit(1000, 10))
	updater, err := client.Updater("de")
	require.NoError(t, err)

	updater.AddDocument(&domain.IndexDocument{ID: "12", Title: "Orga"})
	updater.AddDocument(&domain.IndexDocument{ID: "34"})
	require.NoError(t, updater.Update(context.Background()))

	assert.Equal(t, "/solr/citygov-de/update", gotPath)
	assert.Equal(t, "commit=true", gotQuery)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "12", docs[0]["id"])
	assert.Equal(t, "Orga", docs[0]["title"])
	assert.Equal(t, "34", docs[1]["id"])
	assert.NotContains(t, docs[1], "title")
}

func TestUpdater_Update_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "core not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "citygov", WithRateLimit(1000, 10))
	updater, err := client.Updater("")
	require.NoError(t, err)

	updater.AddDocument(&domain.IndexDocument{ID: "12"})
	err = updater.Update(context.Background())
	assert.ErrorContains(t, err, "status 404")
}

func TestSearch(t *testing.T) {
	var gotPath string
	var gotParams map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotParams = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"responseHeader": {"QTime": 7},
			"response": {"numFound": 2, "docs": [{"id": "1001"}, {"id": "1002"}]}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "citygov", WithRateLimit(1000, 10))
	result, err := client.Search(context.Background(), &domain.SearchQuery{
		Lang:     "de",
		Offset:   5,
		Limit:    10,
		Operator: domain.OperatorOr,
		Filters: []domain.Filter{
			domain.QueryFilter("sp_contenttype:citygovPerson"),
			domain.NotFilter{Filter: domain.ContentTypeFilter{"pdf"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "/solr/citygov-de/select", gotPath)
	assert.Equal(t, []string{"*:*"}, gotParams["q"])
	assert.Equal(t, []string{"OR"}, gotParams["q.op"])
	assert.Equal(t, []string{"5"}, gotParams["start"])
	assert.Equal(t, []string{"10"}, gotParams["rows"])
	assert.Equal(t, []string{"sp_contenttype:citygovPerson", "-(contenttype:(pdf))"}, gotParams["fq"])

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, []string{"1001", "1002"}, result.IDs)
	assert.Equal(t, int64(7), result.QueryMS)
}

func TestSuggest(t *testing.T) {
	var gotParams map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParams = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"terms": {"suggest": ["Pan", 3, "Panther", 1]}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "citygov", WithRateLimit(1000, 10))
	result, err := client.Suggest(context.Background(), &domain.SuggestQuery{
		Text:  "Pa",
		Lang:  "de",
		Limit: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"suggest"}, gotParams["terms.fl"])
	assert.Equal(t, []string{"Pa"}, gotParams["terms.prefix"])
	assert.Equal(t, []string{"5"}, gotParams["terms.limit"])

	require.Len(t, result.Suggestions, 2)
	assert.Equal(t, domain.Suggestion{Term: "Pan", Hits: 3}, result.Suggestions[0])
	assert.Equal(t, domain.Suggestion{Term: "Panther", Hits: 1}, result.Suggestions[1])
}

func TestSuggest_EmptyTerms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"terms": {}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "citygov", WithRateLimit(1000, 10))
	result, err := client.Suggest(context.Background(), &domain.SuggestQuery{Text: "x", Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, result.Suggestions)
}

func TestSearch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "citygov", WithRateLimit(1000, 10))
	_, err := client.Search(context.Background(), &domain.SearchQuery{Limit: 10})
	assert.ErrorContains(t, err, "status 500")
}
