package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ObjectType discriminates the kinds of content resources this module
// enriches. Resources of any other type pass through untouched.
type ObjectType string

const (
	TypeOrganisation ObjectType = "citygovOrganisation"
	TypePerson       ObjectType = "citygovPerson"
	TypeProduct      ObjectType = "citygovProduct"
)

// Resource is a content node loaded from the resource store.
// Enrichers only read it; ownership stays with the content layer.
type Resource struct {
	// Location is the resource's address within the content store,
	// e.g. "/stadtplanungsamt.php".
	Location string `json:"url"`

	// ID is the numeric-looking resource identifier.
	ID string `json:"id"`

	Name       string     `json:"name"`
	ObjectType ObjectType `json:"objectType"`
	Language   string     `json:"locale"`

	Metadata Metadata `json:"metadata"`
	Base     Base     `json:"base"`
}

// Metadata holds the typed per-kind data sections of a resource.
// Sections not present on the resource stay nil.
type Metadata struct {
	Organisation *OrganisationData `json:"citygovOrganisation,omitempty"`
	Person       *PersonData       `json:"citygovPerson,omitempty"`
	Product      *ProductData      `json:"citygovProduct,omitempty"`
	ContactPoint *ContactPoint     `json:"contactPoint,omitempty"`
}

// OrganisationData is the citygovOrganisation metadata section.
type OrganisationData struct {
	Name                string   `json:"name"`
	Token               string   `json:"token"`
	SynonymList         []string `json:"synonymList"`
	AlternativeNameList []string `json:"alternativeNameList"`
}

// PersonData is the citygovPerson metadata section.
type PersonData struct {
	Firstname           string         `json:"firstname"`
	Lastname            string         `json:"lastname"`
	Function            PersonFunction `json:"function"`
	MembershipList      MembershipList `json:"membershipList"`
	CompetenceList      CompetenceList `json:"competenceList"`
	AlternativeNameList []string       `json:"alternativeNameList"`
}

// PersonFunction describes the role a person holds.
type PersonFunction struct {
	Name     string `json:"name"`
	Appendix string `json:"appendix"`
}

// MembershipList wraps the items array of a person's memberships.
type MembershipList struct {
	Items []Membership `json:"items"`
}

// Membership links a person to an organisation. A membership without
// an organisation URL contributes nothing and is not an error.
type Membership struct {
	Primary      bool         `json:"primary"`
	Organisation *ResourceRef `json:"organisation,omitempty"`
}

// CompetenceList wraps the items array of a person's competences.
type CompetenceList struct {
	Items []Competence `json:"items"`
}

// Competence links a person to a product they are responsible for.
type Competence struct {
	Primary bool         `json:"primary"`
	Product *ResourceRef `json:"product,omitempty"`
}

// ResourceRef is a foreign-key style reference to another resource.
type ResourceRef struct {
	URL string `json:"url"`
}

// ProductData is the citygovProduct metadata section.
type ProductData struct {
	Name                string             `json:"name"`
	LeikaKeys           []string           `json:"leikaKeys"`
	SynonymList         []string           `json:"synonymList"`
	AlternativeNameList []string           `json:"alternativeNameList"`
	ResponsibilityList  ResponsibilityList `json:"responsibilityList"`
	OnlineServices      OnlineServiceList  `json:"onlineServices"`
	Content             []ContentBlock     `json:"content"`
}

// ResponsibilityList wraps the items array of a product's responsibilities.
type ResponsibilityList struct {
	Items []Responsibility `json:"items"`
}

// Responsibility links a product to an organisation. The first entry
// flagged primary designates the canonical parent organisation.
type Responsibility struct {
	Primary      bool         `json:"primary"`
	Organisation *ResourceRef `json:"organisation,omitempty"`
}

// OnlineServiceList wraps the online service references of a product.
type OnlineServiceList struct {
	ServiceList ServiceList `json:"serviceList"`
}

// ServiceList carries the raw list plus the items variant used by the
// teaser feature resolution.
type ServiceList struct {
	Items []ResourceRef `json:"items"`
}

// ContentBlock is one node of a product's structured rich-text content.
type ContentBlock struct {
	Type     string         `json:"type"`
	Text     string         `json:"text"`
	Children []ContentBlock `json:"items,omitempty"`
}

// ContactPoint is the shared contact metadata of organisations and persons.
type ContactPoint struct {
	ContactData ContactData `json:"contactData"`
	AddressData AddressData `json:"addressData"`
}

// ContactData holds phone and email entries.
type ContactData struct {
	PhoneList []PhoneEntry `json:"phoneList"`
	EmailList []EmailEntry `json:"emailList"`
}

// PhoneEntry wraps a single phone number record.
type PhoneEntry struct {
	Phone Phone `json:"phone"`
}

// Phone carries the dialable number parts.
type Phone struct {
	NationalNumber string `json:"nationalNumber"`
}

// EmailEntry is a single email address record.
type EmailEntry struct {
	Email string `json:"email"`
}

// AddressData holds the visit address parts.
type AddressData struct {
	BuildingName string `json:"buildingName"`
	Street       string `json:"street"`
	Housenumber  string `json:"housenumber"`
}

// Base carries structural information maintained by the content
// platform, in particular the organisation hierarchy trees.
type Base struct {
	Trees map[string]Tree `json:"trees,omitempty"`
}

// Tree describes the position of a resource within a named hierarchy.
type Tree struct {
	Parents map[string]ParentRef `json:"parents,omitempty"`
}

// ParentRef points at a parent node within a hierarchy tree.
type ParentRef struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"isPrimary"`
}

// NumericID returns the resource ID as integer. Non-numeric IDs map
// to zero, matching the permissive behaviour of the content platform.
func (r *Resource) NumericID() int {
	id, err := strconv.Atoi(r.ID)
	if err != nil {
		return 0
	}
	return id
}

// AlternativeNames returns the alternative name list of the metadata
// section matching the resource's object type, or nil.
func (r *Resource) AlternativeNames() []string {
	switch r.ObjectType {
	case TypeOrganisation:
		if r.Metadata.Organisation != nil {
			return r.Metadata.Organisation.AlternativeNameList
		}
	case TypePerson:
		if r.Metadata.Person != nil {
			return r.Metadata.Person.AlternativeNameList
		}
	case TypeProduct:
		if r.Metadata.Product != nil {
			return r.Metadata.Product.AlternativeNameList
		}
	}
	return nil
}

// DecodeResource parses the JSON representation of a resource.
func DecodeResource(data []byte) (*Resource, error) {
	var r Resource
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding resource: %w", err)
	}
	return &r, nil
}
