package driven

import (
	"context"

	"github.com/sitepark/citygov-search/internal/core/domain"
)

// Search executes generic search queries against the index.
type Search interface {
	Search(ctx context.Context, query *domain.SearchQuery) (*domain.SearchResult, error)
}

// Suggest executes completion queries against one index field.
type Suggest interface {
	Suggest(ctx context.Context, query *domain.SuggestQuery) (*domain.SuggestResult, error)
}

// CompetenceFilter resolves a competence filter input to the set of
// matching person IDs.
type CompetenceFilter interface {
	// FilteredPersonIDs returns the matches for the input. An input
	// with no set fields yields Filtered false and no error. Query
	// failures propagate as errors, never as an empty match set.
	FilteredPersonIDs(ctx context.Context, input *domain.CompetenceFilterInput) (*domain.CompetenceMatches, error)
}
