// Package sqlite provides the SQLite-backed competence range store.
//
// The CompetenceRange table encodes per-person responsibility ranges
// as fixed-width, uppercase alphanumeric string intervals. Filtering
// is a lexicographic containment test between the stored interval and
// the normalised filter value.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"unicode"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
)

// Ensure CompetenceStore implements the interface.
var _ driven.CompetenceFilter = (*CompetenceStore)(nil)

// Range type discriminators of the CompetenceRange table.
const (
	typePrefix       = "prefix"
	typeTIN          = "tin"
	typeFile         = "file"
	typeLicensePlate = "licensePlate"
)

// Fixed widths of the license plate components.
const (
	regionWidth = 3
	letterWidth = 2
	numberWidth = 4
)

// CompetenceStore resolves competence filters against the range
// side-database. The connection is opened lazily on first use and
// reused for the lifetime of the store.
type CompetenceStore struct {
	path string

	once sync.Once
	db   *sql.DB
	err  error
}

// NewCompetenceStore creates a store over the SQLite database at path.
// The database is not touched until the first query.
func NewCompetenceStore(path string) *CompetenceStore {
	return &CompetenceStore{path: path}
}

// database opens the connection once and reuses it.
func (s *CompetenceStore) database() (*sql.DB, error) {
	s.once.Do(func() {
		db, err := sql.Open("sqlite", s.path+"?_pragma=busy_timeout(5000)")
		if err != nil {
			s.err = fmt.Errorf("opening competence database: %w", err)
			return
		}
		s.db = db
	})
	return s.db, s.err
}

// Close closes the database connection if it was opened.
func (s *CompetenceStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateSchema creates the CompetenceRange table if it does not
// exist. The table is normally provisioned by the content platform;
// this exists for local setups.
func (s *CompetenceStore) CreateSchema(ctx context.Context) error {
	db, err := s.database()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS CompetenceRange (
			person INTEGER,
			product INTEGER,
			"group" INTEGER,
			type TEXT,
			rangeFrom TEXT,
			rangeTo TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("creating CompetenceRange table: %w", err)
	}
	return nil
}

// rangeCondition is one conjunctive predicate over the range table.
type rangeCondition struct {
	rangeType string
	from      string
	to        string
}

// FilteredPersonIDs resolves the filter input to the distinct person
// IDs whose stored ranges contain the filter's value range. An input
// with no set fields yields Filtered false; an active filter with no
// matching rows yields Filtered true and an empty ID list.
func (s *CompetenceStore) FilteredPersonIDs(
	ctx context.Context,
	input *domain.CompetenceFilterInput,
) (*domain.CompetenceMatches, error) {
	conditions := buildConditions(input)
	if len(conditions) == 0 {
		return &domain.CompetenceMatches{Filtered: false}, nil
	}

	db, err := s.database()
	if err != nil {
		return nil, err
	}

	clauses := make([]string, len(conditions))
	args := make([]any, 0, len(conditions)*3)
	for i, cond := range conditions {
		clauses[i] = "(type = ? AND rangeFrom <= ? AND rangeTo >= ?)"
		args = append(args, cond.rangeType, cond.from, cond.to)
	}
	query := "SELECT DISTINCT person FROM CompetenceRange WHERE " + strings.Join(clauses, " AND ")

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying competence ranges: %w", err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning person id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating competence ranges: %w", err)
	}

	return &domain.CompetenceMatches{Filtered: true, IDs: ids}, nil
}

// buildConditions turns the set fields of the input into range
// predicates. Scalar fields test containment of a single value; the
// license plate components span a value range of their own.
func buildConditions(input *domain.CompetenceFilterInput) []rangeCondition {
	if !input.HasFilter() {
		return nil
	}

	var conditions []rangeCondition
	if input.Prefix != "" {
		conditions = append(conditions, scalarCondition(typePrefix, input.Prefix))
	}
	if input.TIN != "" {
		conditions = append(conditions, scalarCondition(typeTIN, input.TIN))
	}
	if input.File != "" {
		conditions = append(conditions, scalarCondition(typeFile, input.File))
	}
	if input.LicensePlateRegion != "" || input.LicensePlateLetter != "" || input.LicensePlateNumber != "" {
		conditions = append(conditions, licensePlateCondition(
			input.LicensePlateRegion,
			input.LicensePlateLetter,
			input.LicensePlateNumber,
		))
	}
	return conditions
}

// scalarCondition tests whether the normalised value falls within a
// stored range: both bounds carry the same value.
func scalarCondition(rangeType, value string) rangeCondition {
	normalised := normalise(value)
	return rangeCondition{rangeType: rangeType, from: normalised, to: normalised}
}

// licensePlateCondition computes the searchFrom/searchTo pair for the
// license plate components. Unset components default to their full
// span; set components are truncated to their fixed width or padded:
// letters right-padded with 'A' for the lower and 'Z' for the upper
// bound, the number left-padded with '0'. The bounds join the
// components with single spaces, REGION LETTER NUMBER.
func licensePlateCondition(region, letter, number string) rangeCondition {
	regionFrom, regionTo := componentSpan(region, regionWidth, "AAA", "ZZZ", padRight)
	letterFrom, letterTo := componentSpan(letter, letterWidth, "AA", "ZZ", padRight)
	numberFrom, numberTo := numberSpan(number)

	searchFrom := regionFrom + " " + letterFrom + " " + numberFrom
	searchTo := regionTo + " " + letterTo + " " + numberTo
	return rangeCondition{
		rangeType: typeLicensePlate,
		from:      normalise(searchFrom),
		to:        normalise(searchTo),
	}
}

// componentSpan derives the from/to pair of a letter component.
func componentSpan(value string, width int, defaultFrom, defaultTo string, pad padFunc) (string, string) {
	if value == "" {
		return defaultFrom, defaultTo
	}
	return fitWidth(value, width, "A", pad), fitWidth(value, width, "Z", pad)
}

// numberSpan derives the from/to pair of the number component, which
// is left-padded with '0' on both bounds.
func numberSpan(value string) (string, string) {
	if value == "" {
		return "0000", "9999"
	}
	padded := fitWidth(value, numberWidth, "0", padLeft)
	return padded, padded
}

type padFunc func(s, fill string, width int) string

// fitWidth truncates value to width or pads it with fill.
func fitWidth(value string, width int, fill string, pad padFunc) string {
	runes := []rune(value)
	if len(runes) > width {
		return string(runes[:width])
	}
	if len(runes) < width {
		return pad(value, fill, width)
	}
	return value
}

func padRight(s, fill string, width int) string {
	return s + strings.Repeat(fill, width-len([]rune(s)))
}

func padLeft(s, fill string, width int) string {
	return strings.Repeat(fill, width-len([]rune(s))) + s
}

// normalise trims and uppercases the value and replaces every
// non-alphanumeric rune with a single space, so that range comparison
// is a plain lexicographic string comparison.
func normalise(value string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(value)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}
