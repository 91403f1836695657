// Package richtext extracts searchable text from the structured
// rich-text content blocks of product resources.
package richtext

import (
	"regexp"
	"strings"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
)

// Ensure Collector implements the interface.
var _ driven.ContentCollector = (*Collector)(nil)

// blockTypeRichText marks content blocks carrying editorial text.
const blockTypeRichText = "richText"

// tags matches markup remnants inside rich-text values.
var tags = regexp.MustCompile(`<[^>]*>`)

// Collector gathers the text of all rich-text blocks in a content
// tree, depth first.
type Collector struct{}

// New creates a rich-text collector.
func New() *Collector {
	return &Collector{}
}

// Collect returns the concatenated, tag-stripped text of all
// rich-text blocks, in document order.
func (c *Collector) Collect(blocks []domain.ContentBlock) string {
	var parts []string
	collect(blocks, &parts)
	return strings.Join(parts, " ")
}

func collect(blocks []domain.ContentBlock, parts *[]string) {
	for _, block := range blocks {
		if block.Type == blockTypeRichText && block.Text != "" {
			*parts = append(*parts, tags.ReplaceAllString(block.Text, " "))
		}
		collect(block.Children, parts)
	}
}
