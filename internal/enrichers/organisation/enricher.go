package organisation

import (
	"context"
	"strings"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
	"github.com/sitepark/citygov-search/internal/enrichers"
)

// Ensure Enricher implements the interfaces.
var (
	_ driven.DocumentEnricher         = (*Enricher)(nil)
	_ driven.OrganisationPathEnricher = (*Enricher)(nil)
)

// Enricher computes the index fields of citygovOrganisation resources.
// Its path resolution is shared with the person and product enrichers
// through driven.OrganisationPathEnricher.
type Enricher struct {
	attrs     domain.ChannelAttributes
	index     driven.IndexService
	hierarchy driven.HierarchyLoader
}

// New creates an organisation enricher.
func New(attrs domain.ChannelAttributes, index driven.IndexService, hierarchy driven.HierarchyLoader) *Enricher {
	return &Enricher{
		attrs:     attrs,
		index:     index,
		hierarchy: hierarchy,
	}
}

// Cleanup releases the hierarchy loader's caches.
func (e *Enricher) Cleanup() {
	e.hierarchy.Cleanup()
}

// EnrichDocument populates the organisation fields of doc. Resources
// of any other object type pass through untouched.
func (e *Enricher) EnrichDocument(
	ctx context.Context,
	res *domain.Resource,
	doc *domain.IndexDocument,
	_ string,
) (*domain.IndexDocument, error) {
	if res.ObjectType != domain.TypeOrganisation {
		return doc, nil
	}

	data := res.Metadata.Organisation
	if data == nil {
		data = &domain.OrganisationData{}
	}

	enrichers.EnrichName(doc, data.Name)

	doc, err := e.EnrichOrganisationPath(ctx, res, doc)
	if err != nil {
		return nil, err
	}

	if err := enrichers.AddAlternativeDocuments(ctx, e.attrs, e.index, res, doc); err != nil {
		return nil, domain.NewEnrichmentError(res.Location, "Unable to add alternative documents", err)
	}

	doc.Keywords = append(doc.Keywords, data.SynonymList...)

	doc.SpCitygovOrganisationtoken = []string{data.Token}
	content := append([]string{doc.Content}, doc.SpCitygovOrganisationtoken...)
	doc.Content = strings.TrimSpace(strings.Join(content, " "))

	return doc, nil
}

// EnrichOrganisationPath sets sp_organisation to the resource's
// numeric ID and merges the numeric IDs of the primary ancestor path
// into sp_organisation_path. Hierarchy failures are wrapped into an
// enrichment error carrying the resource's location.
func (e *Enricher) EnrichOrganisationPath(
	ctx context.Context,
	res *domain.Resource,
	doc *domain.IndexDocument,
) (*domain.IndexDocument, error) {
	doc.SpOrganisation = res.NumericID()

	path, err := e.hierarchy.LoadPrimaryPath(ctx, res.Location)
	if err != nil {
		return nil, domain.NewEnrichmentError(res.Location, "Unable to enrich sp_organisation_path", err)
	}
	for _, ancestor := range path {
		doc.SpOrganisationPath = append(doc.SpOrganisationPath, ancestor.NumericID())
	}
	return doc, nil
}
