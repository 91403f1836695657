package person

import (
	"context"
	"strings"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
	"github.com/sitepark/citygov-search/internal/enrichers"
)

// Ensure Enricher implements the interface.
var _ driven.DocumentEnricher = (*Enricher)(nil)

// Enricher computes the index fields of citygovPerson resources,
// resolving membership and competence references through the resource
// loader.
type Enricher struct {
	loader       driven.ResourceLoader
	organisation driven.OrganisationPathEnricher
}

// New creates a person enricher. The organisation parameter supplies
// the shared organisation path resolution.
func New(loader driven.ResourceLoader, organisation driven.OrganisationPathEnricher) *Enricher {
	return &Enricher{
		loader:       loader,
		organisation: organisation,
	}
}

// Cleanup releases the resource loader's caches.
func (e *Enricher) Cleanup() {
	e.loader.Cleanup()
}

// EnrichDocument populates the person fields of doc. Resources of any
// other object type pass through untouched.
func (e *Enricher) EnrichDocument(
	ctx context.Context,
	res *domain.Resource,
	doc *domain.IndexDocument,
	_ string,
) (*domain.IndexDocument, error) {
	if res.ObjectType != domain.TypePerson {
		return doc, nil
	}

	data := res.Metadata.Person
	if data == nil {
		data = &domain.PersonData{}
	}

	doc.SpCitygovFirstname = data.Firstname
	doc.SpCitygovLastname = data.Lastname

	// Sort value with two search criteria. The `aaa` separator
	// ensures that, for example, `SchmittaaaOtto` sorts before
	// `SchmittmannaaaHans`.
	sortName := enrichers.Transliterate(data.Lastname + "aaa" + data.Firstname)
	doc.SpSortvalue = sortName
	if letter := firstRune(sortName); letter != "" {
		doc.SpCitygovStartletter = letter
		doc.SpStartletter = letter
	}

	doc, err := e.enrichOrganisations(ctx, res, data, doc)
	if err != nil {
		return nil, domain.NewEnrichmentError(res.Location, "Unable to enrich organisation for person", err)
	}

	doc, err = e.enrichProducts(ctx, res, data, doc)
	if err != nil {
		return nil, domain.NewEnrichmentError(res.Location, "Unable to enrich products for person", err)
	}

	doc.SpCitygovFunction = strings.TrimSpace(data.Function.Name + " " + data.Function.Appendix)
	doc.Content = strings.TrimSpace(doc.Content + " " + doc.SpCitygovFunction)

	return doc, nil
}

// enrichOrganisations resolves every membership with an organisation
// URL: names and synonyms accumulate into sp_citygov_organisation,
// tokens (dots replaced with spaces) into sp_citygov_organisationtoken.
// A primary membership additionally contributes the organisation path,
// computed from the loaded organisation resource.
func (e *Enricher) enrichOrganisations(
	ctx context.Context,
	res *domain.Resource,
	data *domain.PersonData,
	doc *domain.IndexDocument,
) (*domain.IndexDocument, error) {
	names := []string{}
	tokens := []string{}

	for _, membership := range data.MembershipList.Items {
		if membership.Organisation == nil || membership.Organisation.URL == "" {
			continue
		}

		orga, err := e.loader.Load(ctx, membership.Organisation.URL, res.Language)
		if err != nil {
			return nil, err
		}

		orgaData := orga.Metadata.Organisation
		if orgaData == nil {
			orgaData = &domain.OrganisationData{}
		}

		names = append(names, orgaData.Name)
		if orgaData.Token != "" {
			tokens = append(tokens, strings.ReplaceAll(orgaData.Token, ".", " "))
		}
		names = append(names, orgaData.SynonymList...)

		if membership.Primary {
			doc, err = e.organisation.EnrichOrganisationPath(ctx, orga, doc)
			if err != nil {
				return nil, err
			}
		}
	}

	doc.SpCitygovOrganisation = names
	doc.SpCitygovOrganisationtoken = tokens
	return doc, nil
}

// enrichProducts resolves every competence with a product URL into
// sp_citygov_product, accumulating product names and synonyms.
func (e *Enricher) enrichProducts(
	ctx context.Context,
	res *domain.Resource,
	data *domain.PersonData,
	doc *domain.IndexDocument,
) (*domain.IndexDocument, error) {
	names := []string{}

	for _, competence := range data.CompetenceList.Items {
		if competence.Product == nil || competence.Product.URL == "" {
			continue
		}

		product, err := e.loader.Load(ctx, competence.Product.URL, res.Language)
		if err != nil {
			return nil, err
		}

		productData := product.Metadata.Product
		if productData == nil {
			productData = &domain.ProductData{}
		}

		names = append(names, productData.Name)
		names = append(names, productData.SynonymList...)
	}

	doc.SpCitygovProduct = names
	return doc, nil
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
