package product

import (
	"context"
	"regexp"
	"strings"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
	"github.com/sitepark/citygov-search/internal/enrichers"
)

// Ensure Enricher implements the interface.
var _ driven.DocumentEnricher = (*Enricher)(nil)

// whitespace collapses runs of whitespace in extracted content.
var whitespace = regexp.MustCompile(`\s+`)

// Enricher computes the index fields of citygovProduct resources:
// name fields, leika keys, the primary responsibility's organisation
// path, online service annotations, alternative-title documents and
// rich-text content.
type Enricher struct {
	attrs        domain.ChannelAttributes
	index        driven.IndexService
	loader       driven.ResourceLoader
	organisation driven.OrganisationPathEnricher
	collector    driven.ContentCollector
}

// New creates a product enricher.
func New(
	attrs domain.ChannelAttributes,
	index driven.IndexService,
	loader driven.ResourceLoader,
	organisation driven.OrganisationPathEnricher,
	collector driven.ContentCollector,
) *Enricher {
	return &Enricher{
		attrs:        attrs,
		index:        index,
		loader:       loader,
		organisation: organisation,
		collector:    collector,
	}
}

// Cleanup releases the resource loader's caches.
func (e *Enricher) Cleanup() {
	e.loader.Cleanup()
}

// EnrichDocument populates the product fields of doc. Resources of
// any other object type pass through untouched.
func (e *Enricher) EnrichDocument(
	ctx context.Context,
	res *domain.Resource,
	doc *domain.IndexDocument,
	_ string,
) (*domain.IndexDocument, error) {
	if res.ObjectType != domain.TypeProduct {
		return doc, nil
	}

	data := res.Metadata.Product
	if data == nil {
		data = &domain.ProductData{}
	}

	enrichers.EnrichName(doc, data.Name)
	// The product sort value is set even for unnamed products.
	doc.SpSortvalue = enrichers.Transliterate(data.Name)

	if len(data.LeikaKeys) > 0 {
		doc.SetMetaString("leikanumber", data.LeikaKeys)
	}

	doc, err := e.enrichOrganisationPath(ctx, res, data, doc)
	if err != nil {
		return nil, err
	}

	if len(data.OnlineServices.ServiceList.Items) > 0 {
		doc.SpContentType = append(doc.SpContentType, "citygovOnlineService")
	}

	if err := enrichers.AddAlternativeDocuments(ctx, e.attrs, e.index, res, doc); err != nil {
		return nil, domain.NewEnrichmentError(res.Location, "Unable to add alternative documents", err)
	}

	if len(data.SynonymList) > 0 {
		doc.Keywords = append(doc.Keywords, data.SynonymList...)
	}

	content := whitespace.ReplaceAllString(e.collector.Collect(data.Content), " ")
	doc.Content = strings.TrimSpace(doc.Content + " " + content)

	return doc, nil
}

// enrichOrganisationPath merges the ancestor path of the first primary
// responsibility carrying an organisation URL. Only one primary
// responsibility is honoured even if multiple exist.
func (e *Enricher) enrichOrganisationPath(
	ctx context.Context,
	res *domain.Resource,
	data *domain.ProductData,
	doc *domain.IndexDocument,
) (*domain.IndexDocument, error) {
	for _, responsibility := range data.ResponsibilityList.Items {
		if !responsibility.Primary {
			continue
		}
		if responsibility.Organisation == nil || responsibility.Organisation.URL == "" {
			continue
		}

		orga, err := e.loader.Load(ctx, responsibility.Organisation.URL, res.Language)
		if err != nil {
			return nil, domain.NewEnrichmentError(res.Location, "Unable to enrich organisation_path for product", err)
		}
		doc, err = e.organisation.EnrichOrganisationPath(ctx, orga, doc)
		if err != nil {
			return nil, domain.NewEnrichmentError(res.Location, "Unable to enrich organisation_path for product", err)
		}
		break
	}
	return doc, nil
}
