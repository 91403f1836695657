package driving

import (
	"context"

	"github.com/sitepark/citygov-search/internal/core/domain"
)

// IndexReport summarises one indexing run.
type IndexReport struct {
	// Indexed counts the successfully enriched and submitted documents.
	Indexed int

	// Failed maps resource locations to their enrichment errors.
	Failed map[string]error
}

// IndexingService runs the enrichment pipeline over resources.
type IndexingService interface {
	// IndexResource enriches a single resource into its index
	// document without submitting it.
	IndexResource(ctx context.Context, res *domain.Resource) (*domain.IndexDocument, error)

	// IndexAll enriches and submits all given resources. A failed
	// document is reported and skipped; it does not abort the run.
	IndexAll(ctx context.Context, resources []*domain.Resource) (*IndexReport, error)

	// Cleanup releases the enrichers' resources.
	Cleanup()
}

// PersonSearchService answers the person directory search and suggest
// operations of the GraphQL API.
type PersonSearchService interface {
	Search(ctx context.Context, input *domain.SearchPersonInput) (*domain.SearchResult, error)
	Suggest(ctx context.Context, field domain.PersonField, input *domain.SuggestPersonInput) (*domain.SuggestResult, error)
}
