package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepark/citygov-search/internal/core/domain"
	"github.com/sitepark/citygov-search/internal/core/ports/driven"
)

type recordingUpdater struct {
	lang    string
	docs    []*domain.IndexDocument
	updates int
}

func (u *recordingUpdater) AddDocument(doc *domain.IndexDocument) {
	u.docs = append(u.docs, doc)
}

func (u *recordingUpdater) Update(ctx context.Context) error {
	u.updates++
	return nil
}

type recordingIndex struct {
	updaters map[string]*recordingUpdater
}

func newRecordingIndex() *recordingIndex {
	return &recordingIndex{updaters: make(map[string]*recordingUpdater)}
}

func (s *recordingIndex) Updater(lang string) (driven.IndexUpdater, error) {
	if u, ok := s.updaters[lang]; ok {
		return u, nil
	}
	u := &recordingUpdater{lang: lang}
	s.updaters[lang] = u
	return u, nil
}

// fieldEnricher writes a marker keyword, failing on a configured
// location. It records the process IDs it sees.
type fieldEnricher struct {
	failOn     string
	processIDs []string
	cleaned    bool
}

func (e *fieldEnricher) EnrichDocument(
	ctx context.Context,
	res *domain.Resource,
	doc *domain.IndexDocument,
	processID string,
) (*domain.IndexDocument, error) {
	e.processIDs = append(e.processIDs, processID)
	if res.Location == e.failOn {
		return nil, errors.New("enrichment failed")
	}
	doc.Keywords = append(doc.Keywords, "enriched")
	return doc, nil
}

func (e *fieldEnricher) Cleanup() { e.cleaned = true }

func TestIndexResource(t *testing.T) {
	enricher := &fieldEnricher{}
	pipeline := NewPipeline(newRecordingIndex(), enricher)
	res := &domain.Resource{Location: "/orga.php", ID: "12", Language: "de"}

	doc, err := pipeline.IndexResource(context.Background(), res)
	require.NoError(t, err)

	assert.Equal(t, "12", doc.ID)
	assert.Equal(t, "/orga.php", doc.URL)
	assert.Equal(t, []string{"enriched"}, doc.Keywords)
	require.Len(t, enricher.processIDs, 1)
	assert.NotEmpty(t, enricher.processIDs[0])
}

func TestIndexAll(t *testing.T) {
	enricher := &fieldEnricher{}
	index := newRecordingIndex()
	pipeline := NewPipeline(index, enricher)

	report, err := pipeline.IndexAll(context.Background(), []*domain.Resource{
		{Location: "/a.php", ID: "1", Language: "de"},
		{Location: "/b.php", ID: "2", Language: "de"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Indexed)
	assert.Empty(t, report.Failed)

	updater := index.updaters["de"]
	require.NotNil(t, updater)
	assert.Len(t, updater.docs, 2)
	assert.Equal(t, 1, updater.updates)

	// one process id for the whole run
	require.Len(t, enricher.processIDs, 2)
	assert.Equal(t, enricher.processIDs[0], enricher.processIDs[1])
}

func TestIndexAll_FailureIsolation(t *testing.T) {
	enricher := &fieldEnricher{failOn: "/broken.php"}
	index := newRecordingIndex()
	pipeline := NewPipeline(index, enricher)

	report, err := pipeline.IndexAll(context.Background(), []*domain.Resource{
		{Location: "/a.php", ID: "1", Language: "de"},
		{Location: "/broken.php", ID: "2", Language: "de"},
		{Location: "/c.php", ID: "3", Language: "de"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Indexed)
	require.Len(t, report.Failed, 1)
	assert.ErrorContains(t, report.Failed["/broken.php"], "enrichment failed")

	updater := index.updaters["de"]
	require.NotNil(t, updater)
	assert.Len(t, updater.docs, 2)
}

func TestIndexAll_PerLanguageUpdaters(t *testing.T) {
	index := newRecordingIndex()
	pipeline := NewPipeline(index, &fieldEnricher{})

	report, err := pipeline.IndexAll(context.Background(), []*domain.Resource{
		{Location: "/a.php", ID: "1", Language: "de"},
		{Location: "/b.php", ID: "2", Language: "en"},
		{Location: "/c.php", ID: "3", Language: "de"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Indexed)

	require.Len(t, index.updaters, 2)
	assert.Len(t, index.updaters["de"].docs, 2)
	assert.Len(t, index.updaters["en"].docs, 1)
	assert.Equal(t, 1, index.updaters["de"].updates)
	assert.Equal(t, 1, index.updaters["en"].updates)
}

func TestIndexAll_ChainOrder(t *testing.T) {
	first := &fieldEnricher{}
	second := &fieldEnricher{}
	pipeline := NewPipeline(newRecordingIndex(), first, second)

	doc, err := pipeline.IndexResource(context.Background(), &domain.Resource{Location: "/a.php", ID: "1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"enriched", "enriched"}, doc.Keywords)
}

func TestPipeline_Cleanup(t *testing.T) {
	first := &fieldEnricher{}
	second := &fieldEnricher{}
	pipeline := NewPipeline(newRecordingIndex(), first, second)

	pipeline.Cleanup()
	assert.True(t, first.cleaned)
	assert.True(t, second.cleaned)
}
