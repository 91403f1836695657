package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
	"github.com/sitepark/citygov-search/internal/core/ports/driving"
	"github.com/sitepark/citygov-search/internal/logger"
)

// Ensure PersonSearch implements the interface.
var _ driving.PersonSearchService = (*PersonSearch)(nil)

// defaultLimit caps search and suggest results when the input does
// not say otherwise.
const defaultLimit = 10

// PersonSearch answers the person directory search and suggest
// operations: it translates the structured filter inputs into index
// query filters and executes them through the search engine ports.
type PersonSearch struct {
	search     driven.Search
	suggest    driven.Suggest
	competence driven.CompetenceFilter
}

// NewPersonSearch creates the person search service. The competence
// parameter may be nil when no competence side-database is configured.
func NewPersonSearch(search driven.Search, suggest driven.Suggest, competence driven.CompetenceFilter) *PersonSearch {
	return &PersonSearch{
		search:     search,
		suggest:    suggest,
		competence: competence,
	}
}

// Search executes a person search.
func (s *PersonSearch) Search(ctx context.Context, input *domain.SearchPersonInput) (*domain.SearchResult, error) {
	filters, err := s.createFilters(ctx, input.Person, input.Competence)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	query := &domain.SearchQuery{
		Text:     "",
		Lang:     input.Lang,
		Offset:   input.Offset,
		Limit:    limit,
		Filters:  filters,
		Operator: domain.OperatorOr,
	}

	result, err := s.search.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching persons: %w", err)
	}
	return result, nil
}

// Suggest executes a completion query for one person field.
func (s *PersonSearch) Suggest(ctx context.Context, field domain.PersonField, input *domain.SuggestPersonInput) (*domain.SuggestResult, error) {
	filters, err := s.createFilters(ctx, input.Person, input.Competence)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	query := &domain.SuggestQuery{
		Text:    input.Person.Value(field),
		Lang:    input.Lang,
		Filters: filters,
		Limit:   limit,
	}

	result, err := s.suggest.Suggest(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("suggesting %s: %w", field, err)
	}
	return result, nil
}

// createFilters builds the filter list shared by search and suggest:
// the person content-type restriction, the PDF exclusion, one clause
// per non-empty person field, and the competence id filter.
func (s *PersonSearch) createFilters(
	ctx context.Context,
	person *domain.PersonFilterInput,
	competence *domain.CompetenceFilterInput,
) ([]domain.Filter, error) {
	filters := []domain.Filter{
		domain.QueryFilter("sp_contenttype:citygovPerson"),
		domain.NotFilter{Filter: domain.ContentTypeFilter{"pdf"}},
	}

	filters = append(filters, personFieldFilters(person)...)

	competenceFilters, err := s.competenceFilters(ctx, competence)
	if err != nil {
		return nil, err
	}
	filters = append(filters, competenceFilters...)

	return filters, nil
}

// personFieldFilters creates one filter per non-empty field of the
// person input.
func personFieldFilters(person *domain.PersonFilterInput) []domain.Filter {
	if person == nil {
		return nil
	}

	fields := []domain.PersonField{
		domain.FieldFirstname,
		domain.FieldLastname,
		domain.FieldProduct,
		domain.FieldFunction,
		domain.FieldOrganisation,
		domain.FieldAddress,
		domain.FieldPhonenumber,
	}

	var filters []domain.Filter
	for _, field := range fields {
		value := person.Value(field)
		if value == "" {
			continue
		}
		filters = append(filters, fieldFilter(field, value))
	}
	return filters
}

// fieldFilter maps a person field to its index query clause: a
// wildcard-or-exact clause, for organisations additionally OR-ed with
// an exact token clause.
func fieldFilter(field domain.PersonField, value string) domain.Filter {
	switch field {
	case domain.FieldFirstname:
		return domain.QueryFilter(fmt.Sprintf("sp_citygov_firstname:(%s* OR %s)", value, value))
	case domain.FieldLastname:
		return domain.QueryFilter(fmt.Sprintf("sp_citygov_lastname:(%s* OR %s)", value, value))
	case domain.FieldProduct:
		return domain.QueryFilter(fmt.Sprintf("sp_citygov_product:(%s* OR %s)", value, value))
	case domain.FieldFunction:
		return domain.QueryFilter(fmt.Sprintf("sp_citygov_function:(%s* OR %s)", value, value))
	case domain.FieldOrganisation:
		return domain.QueryFilter(fmt.Sprintf(
			"sp_citygov_organisation:(%s* OR %s) OR sp_citygov_organisationtoken:%s",
			value, value, value,
		))
	case domain.FieldAddress:
		return domain.QueryFilter(fmt.Sprintf("sp_citygov_address:(%s* OR %s)", value, value))
	case domain.FieldPhonenumber:
		return domain.QueryFilter(fmt.Sprintf("sp_citygov_phone:(%s* OR %s)", value, value))
	}
	return domain.QueryFilter("")
}

// competenceFilters resolves the competence input through the range
// side-database into an id filter. No filter fields contribute
// nothing; an active filter with zero matches yields a filter that
// matches no document at all.
func (s *PersonSearch) competenceFilters(ctx context.Context, input *domain.CompetenceFilterInput) ([]domain.Filter, error) {
	if s.competence == nil || !input.HasFilter() {
		return nil, nil
	}

	matches, err := s.competence.FilteredPersonIDs(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("resolving competence filter: %w", err)
	}
	if !matches.Filtered {
		return nil, nil
	}
	if len(matches.IDs) == 0 {
		logger.Debug("competence filter matched no persons")
		return []domain.Filter{domain.NotFilter{Filter: domain.QueryFilter("id:*")}}, nil
	}

	ids := make([]string, len(matches.IDs))
	for i, id := range matches.IDs {
		ids[i] = strconv.Itoa(id)
	}
	return []domain.Filter{
		domain.QueryFilter(fmt.Sprintf("id:(%s)", strings.Join(ids, " OR "))),
	}, nil
}
