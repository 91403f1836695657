package domain

import (
	"fmt"
	"strings"
)

// PersonField names the searchable fields of the person directory.
type PersonField string

const (
	FieldFirstname    PersonField = "firstname"
	FieldLastname     PersonField = "lastname"
	FieldProduct      PersonField = "product"
	FieldFunction     PersonField = "function"
	FieldOrganisation PersonField = "organisation"
	FieldAddress      PersonField = "address"
	FieldPhonenumber  PersonField = "phonenumber"
)

// PersonFilterInput is the field bag of a person search. Empty fields
// are not filtered on.
type PersonFilterInput struct {
	Firstname    string
	Lastname     string
	Product      string
	Function     string
	Organisation string
	Address      string
	Phonenumber  string
}

// Value returns the input value for the given field.
func (p *PersonFilterInput) Value(field PersonField) string {
	if p == nil {
		return ""
	}
	switch field {
	case FieldFirstname:
		return p.Firstname
	case FieldLastname:
		return p.Lastname
	case FieldProduct:
		return p.Product
	case FieldFunction:
		return p.Function
	case FieldOrganisation:
		return p.Organisation
	case FieldAddress:
		return p.Address
	case FieldPhonenumber:
		return p.Phonenumber
	}
	return ""
}

// SearchPersonInput is the input of the person search operation.
type SearchPersonInput struct {
	Person     *PersonFilterInput
	Competence *CompetenceFilterInput
	Lang       string
	Offset     int
	Limit      int
}

// SuggestPersonInput is the input of the person suggest operation.
type SuggestPersonInput struct {
	Person     *PersonFilterInput
	Competence *CompetenceFilterInput
	Lang       string
	Limit      int
}

// QueryOperator joins the terms of a search query.
type QueryOperator string

const (
	OperatorAnd QueryOperator = "AND"
	OperatorOr  QueryOperator = "OR"
)

// Filter restricts a search or suggest query. Query returns the
// filter in the index engine's query syntax.
type Filter interface {
	Query() string
}

// QueryFilter is a raw query-syntax filter clause.
type QueryFilter string

func (f QueryFilter) Query() string { return string(f) }

// ContentTypeFilter matches documents of the given content types.
type ContentTypeFilter []string

func (f ContentTypeFilter) Query() string {
	return fmt.Sprintf("contenttype:(%s)", strings.Join(f, " OR "))
}

// NotFilter inverts another filter.
type NotFilter struct {
	Filter Filter
}

func (f NotFilter) Query() string {
	return fmt.Sprintf("-(%s)", f.Filter.Query())
}

// SearchQuery is a generic search request handed to the search engine.
type SearchQuery struct {
	Text     string
	Lang     string
	Offset   int
	Limit    int
	Filters  []Filter
	Operator QueryOperator
}

// SearchResult is the outcome of a search query.
type SearchResult struct {
	Total   int
	Offset  int
	Limit   int
	IDs     []string
	QueryMS int64
}

// SuggestQuery is a completion request for one index field.
type SuggestQuery struct {
	Text    string
	Lang    string
	Filters []Filter
	Limit   int
}

// Suggestion is one completion proposal with its hit count.
type Suggestion struct {
	Term string
	Hits int
}

// SuggestResult is the outcome of a suggest query.
type SuggestResult struct {
	Suggestions []Suggestion
}

// Link points at a resource, for teaser rendering.
type Link struct {
	URL   string
	Label string
}

// OnlineService is an online civil service offering linked from a
// product resource.
type OnlineService struct {
	Link Link
}
