// Package resource implements the resource loader and hierarchy
// loader over a docroot of exported JSON resource files.
//
// A resource at location "/orga.php" is expected at
// <docroot>/orga.php.json. Loaded resources are cached per process;
// Cleanup drops the cache.
package resource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
	"github.com/sitepark/citygov-search/internal/logger"
)

// Ensure Store implements the interfaces.
var (
	_ driven.ResourceLoader  = (*Store)(nil)
	_ driven.HierarchyLoader = (*Store)(nil)
)

// hierarchyTree names the tree holding the organisation hierarchy.
const hierarchyTree = "citygovOrganisation"

// Store loads resources from a docroot of JSON files.
type Store struct {
	docroot string

	mu    sync.RWMutex
	cache map[string]*domain.Resource
}

// NewStore creates a store over the given docroot.
func NewStore(docroot string) *Store {
	return &Store{
		docroot: docroot,
		cache:   make(map[string]*domain.Resource),
	}
}

// Load returns the resource at location. The language parameter is
// accepted for the port's contract; language variants share one
// docroot here.
func (s *Store) Load(_ context.Context, location, _ string) (*domain.Resource, error) {
	s.mu.RLock()
	cached, ok := s.cache[location]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	data, err := os.ReadFile(s.resolvePath(location))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("resource %q: %w", location, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading resource %q: %w", location, err)
	}

	res, err := domain.DecodeResource(data)
	if err != nil {
		return nil, fmt.Errorf("resource %q: %w: %w", location, domain.ErrInvalidResource, err)
	}
	if res.Location == "" {
		res.Location = location
	}

	s.mu.Lock()
	s.cache[location] = res
	s.mu.Unlock()

	return res, nil
}

// Cleanup drops the resource cache.
func (s *Store) Cleanup() {
	s.mu.Lock()
	s.cache = make(map[string]*domain.Resource)
	s.mu.Unlock()
	logger.Debug("resource cache cleared")
}

// LoadPrimaryPath walks the primary parent chain of the resource at
// location upwards and returns the chain root first, the resource
// itself last. A parent loop is an error.
func (s *Store) LoadPrimaryPath(ctx context.Context, location string) ([]*domain.Resource, error) {
	var path []*domain.Resource
	seen := map[string]bool{}

	current := location
	for current != "" {
		if seen[current] {
			return nil, fmt.Errorf("resolving hierarchy of %q: %w", location, domain.ErrHierarchyCycle)
		}
		seen[current] = true

		res, err := s.Load(ctx, current, "")
		if err != nil {
			return nil, err
		}
		path = append([]*domain.Resource{res}, path...)

		current = primaryParent(res)
	}

	return path, nil
}

// primaryParent returns the location of the resource's primary parent
// within the organisation tree, or "" at the root. With no parent
// flagged primary, a sole parent counts as primary; multiple
// unflagged parents resolve to the lexicographically first ID to keep
// the walk deterministic.
func primaryParent(res *domain.Resource) string {
	tree, ok := res.Base.Trees[hierarchyTree]
	if !ok || len(tree.Parents) == 0 {
		return ""
	}

	ids := make([]string, 0, len(tree.Parents))
	for id, parent := range tree.Parents {
		if parent.IsPrimary {
			return parent.URL
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return tree.Parents[ids[0]].URL
}

// resolvePath maps a resource location to its file below the docroot.
func (s *Store) resolvePath(location string) string {
	cleaned := filepath.Clean("/" + strings.TrimPrefix(location, "/"))
	return filepath.Join(s.docroot, cleaned+".json")
}
