package enrichers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
)

// AddAlternativeDocuments emits one additional index document per
// alternative name of the resource, cloned from the already enriched
// origin document. Each clone gets the alternative name's derived
// fields, a distinct identity (<id>-<i>, <url>?cg_at_id=<i>) and
// cleared keywords, description and content so the clones do not
// pollute full-text relevance.
//
// All clones go through one update session, committed once. When the
// channel flag is off or the resource has no alternative names, no
// session is requested at all.
func AddAlternativeDocuments(
	ctx context.Context,
	attrs domain.ChannelAttributes,
	index driven.IndexService,
	res *domain.Resource,
	origin *domain.IndexDocument,
) error {
	if !attrs.AddAlternativeDocuments {
		return nil
	}
	names := res.AlternativeNames()
	if len(names) == 0 {
		return nil
	}

	updater, err := index.Updater(res.Language)
	if err != nil {
		return fmt.Errorf("requesting index updater: %w", err)
	}
	for i, name := range names {
		doc := origin.Clone()
		EnrichName(doc, name)
		doc.Keywords = nil
		doc.Description = ""
		doc.Content = ""
		doc.ID = origin.ID + "-" + strconv.Itoa(i)
		doc.URL = origin.URL + "?cg_at_id=" + strconv.Itoa(i)
		updater.AddDocument(doc)
	}
	if err := updater.Update(ctx); err != nil {
		return fmt.Errorf("updating alternative documents: %w", err)
	}
	return nil
}
