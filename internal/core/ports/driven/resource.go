package driven

import (
	"context"

	"github.com/sitepark/citygov-search/internal/core/domain"
)

// ResourceLoader loads content resources by location.
// Implementations may cache; Cleanup releases per-process caches.
type ResourceLoader interface {
	// Load returns the resource at location in the given language.
	// Returns an error wrapping domain.ErrNotFound if no resource
	// exists there.
	Load(ctx context.Context, location, lang string) (*domain.Resource, error)

	// Cleanup releases per-process caches.
	Cleanup()
}

// HierarchyLoader resolves the position of a resource within the
// organisation hierarchy.
type HierarchyLoader interface {
	// LoadPrimaryPath returns the primary ancestor chain of the
	// resource at location, root first, including the resource itself
	// as the last element.
	LoadPrimaryPath(ctx context.Context, location string) ([]*domain.Resource, error)

	// Cleanup releases per-process caches.
	Cleanup()
}
