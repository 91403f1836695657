package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
	"github.com/sitepark/citygov-search/internal/core/ports/driving"
	"github.com/sitepark/citygov-search/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.IndexingService = (*Pipeline)(nil)

// Pipeline runs the document enricher chain over resources and
// submits the finished documents to the search index.
//
// Each resource gets its own document instance; an enrichment failure
// aborts that single document and is reported, never the whole run.
type Pipeline struct {
	enrichers []driven.DocumentEnricher
	index     driven.IndexService
}

// NewPipeline creates a pipeline over the given enricher chain.
func NewPipeline(index driven.IndexService, enrichers ...driven.DocumentEnricher) *Pipeline {
	return &Pipeline{
		enrichers: enrichers,
		index:     index,
	}
}

// IndexResource enriches a single resource into its index document
// without submitting it.
func (p *Pipeline) IndexResource(ctx context.Context, res *domain.Resource) (*domain.IndexDocument, error) {
	processID := uuid.New().String()
	return p.enrich(ctx, res, processID)
}

// IndexAll enriches and submits all given resources, grouped into one
// update session per language. Failed documents are collected in the
// report and skipped.
func (p *Pipeline) IndexAll(ctx context.Context, resources []*domain.Resource) (*driving.IndexReport, error) {
	processID := uuid.New().String()
	report := &driving.IndexReport{Failed: make(map[string]error)}
	updaters := make(map[string]driven.IndexUpdater)

	for _, res := range resources {
		doc, err := p.enrich(ctx, res, processID)
		if err != nil {
			logger.Error("enriching %s: %v", res.Location, err)
			report.Failed[res.Location] = err
			continue
		}

		updater, ok := updaters[res.Language]
		if !ok {
			updater, err = p.index.Updater(res.Language)
			if err != nil {
				return nil, fmt.Errorf("requesting index updater: %w", err)
			}
			updaters[res.Language] = updater
		}
		updater.AddDocument(doc)
		report.Indexed++
		logger.Debug("enriched %s (%s)", res.Location, res.ObjectType)
	}

	for lang, updater := range updaters {
		if err := updater.Update(ctx); err != nil {
			return nil, fmt.Errorf("committing index update for language %q: %w", lang, err)
		}
	}

	logger.Info("indexed %d documents, %d failed", report.Indexed, len(report.Failed))
	return report, nil
}

// Cleanup releases the enrichers' resources.
func (p *Pipeline) Cleanup() {
	for _, enricher := range p.enrichers {
		enricher.Cleanup()
	}
}

// enrich builds the initial document shell and passes it through the
// enricher chain.
func (p *Pipeline) enrich(ctx context.Context, res *domain.Resource, processID string) (*domain.IndexDocument, error) {
	doc := &domain.IndexDocument{
		ID:  res.ID,
		URL: res.Location,
	}

	var err error
	for _, enricher := range p.enrichers {
		doc, err = enricher.EnrichDocument(ctx, res, doc, processID)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}
