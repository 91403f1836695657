package driven

import (
	"context"

	"github.com/sitepark/citygov-search/internal/core/domain"
)

// IndexService hands out update sessions against the search index.
type IndexService interface {
	// Updater returns a cumulative update session for the index of
	// the given language.
	Updater(lang string) (IndexUpdater, error)
}

// IndexUpdater is one update session. Documents accumulate until
// Update commits them in a single call. Callers must not interleave
// unrelated updates into the same session.
type IndexUpdater interface {
	// AddDocument queues a document for the next Update.
	AddDocument(doc *domain.IndexDocument)

	// Update submits all queued documents and commits.
	Update(ctx context.Context) error
}

// DocumentEnricher is one stage of the enrichment chain. Each enricher
// inspects the resource's object type and either contributes fields or
// returns the document unchanged.
type DocumentEnricher interface {
	// EnrichDocument adds derived fields to doc based on the
	// resource. The returned document is the same instance; the
	// pointer return mirrors the chain's hand-over contract.
	EnrichDocument(ctx context.Context, res *domain.Resource, doc *domain.IndexDocument, processID string) (*domain.IndexDocument, error)

	// Cleanup releases resources held across enrichment calls.
	Cleanup()
}

// OrganisationPathEnricher computes the organisation ancestor path for
// a document. The organisation enricher implements it; person and
// product enrichers consume it for their primary memberships and
// responsibilities.
type OrganisationPathEnricher interface {
	EnrichOrganisationPath(ctx context.Context, res *domain.Resource, doc *domain.IndexDocument) (*domain.IndexDocument, error)
}

// ContentCollector extracts searchable text from structured content
// blocks.
type ContentCollector interface {
	// Collect returns the concatenated text of all matching blocks.
	Collect(blocks []domain.ContentBlock) string
}
