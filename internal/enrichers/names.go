package enrichers

import (
	"strings"

	"github.com/sitepark/citygov-search/internal/core/domain"
)

// umlauts is the fixed transliteration table applied to organisation
// and product names before deriving sort values and start letters.
var umlauts = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"Ä", "Ae",
	"Ö", "Oe",
	"Ü", "Ue",
)

// Transliterate replaces German umlauts with their ASCII digraphs.
func Transliterate(name string) string {
	return umlauts.Replace(name)
}

// EnrichName sets the name-derived document fields from the
// transliterated name: sp_name, sp_title, title, both start letter
// fields and the sort value. An empty name leaves the document
// untouched.
func EnrichName(doc *domain.IndexDocument, name string) {
	name = Transliterate(name)
	if name == "" {
		return
	}
	doc.SpName = name
	doc.SpTitle = name
	doc.Title = name
	letter := startLetter(name)
	doc.SpCitygovStartletter = letter
	doc.SpStartletter = letter
	doc.SpSortvalue = name
}

// startLetter returns the first rune of s as a string.
func startLetter(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
