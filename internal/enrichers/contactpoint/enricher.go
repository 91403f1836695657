package contactpoint

import (
	"context"
	"strings"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
)

// Ensure Enricher implements the interface.
var _ driven.DocumentEnricher = (*Enricher)(nil)

// Enricher extracts the contact sub-fields shared by organisations
// and persons: phone numbers, email addresses and the visit address.
type Enricher struct{}

// New creates a contact-point enricher.
func New() *Enricher {
	return &Enricher{}
}

// Cleanup is a no-op; the enricher holds no resources.
func (e *Enricher) Cleanup() {}

// EnrichDocument flattens the resource's contact point into the
// document. Only organisations and persons carry contact points;
// other object types pass through untouched.
func (e *Enricher) EnrichDocument(
	_ context.Context,
	res *domain.Resource,
	doc *domain.IndexDocument,
	_ string,
) (*domain.IndexDocument, error) {
	if res.ObjectType != domain.TypeOrganisation && res.ObjectType != domain.TypePerson {
		return doc, nil
	}

	contact := res.Metadata.ContactPoint
	if contact == nil {
		contact = &domain.ContactPoint{}
	}

	phones := []string{}
	for _, entry := range contact.ContactData.PhoneList {
		if entry.Phone.NationalNumber != "" {
			phones = append(phones, entry.Phone.NationalNumber)
		}
	}
	doc.SpCitygovPhone = phones

	emails := []string{}
	for _, entry := range contact.ContactData.EmailList {
		if entry.Email != "" {
			emails = append(emails, entry.Email)
		}
	}
	doc.SpCitygovEmail = emails

	doc.SpCitygovAddress = addressSearchValue(contact.AddressData)

	return doc, nil
}

// addressSearchValue space-joins the address parts. Missing parts
// collapse through the trim and the join, not by being skipped.
func addressSearchValue(address domain.AddressData) string {
	return strings.TrimSpace(address.BuildingName + " " + address.Street + " " + address.Housenumber)
}
