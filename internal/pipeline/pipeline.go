// Package pipeline reads directory records, classifies each into a district,
// and aggregates per-district counts.
package pipeline

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/petalworks/florist-cli/internal/model"
	"github.com/petalworks/florist-cli/internal/rules"
)

// Tagger classifies records into districts and preserves input order.
type Tagger struct {
	classifier *rules.Classifier
	workers    int
}

// NewTagger creates a Tagger. Classification is a pure function per record, so
// records are classified concurrently by up to workers goroutines; workers <= 0
// means sequential.
func NewTagger(classifier *rules.Classifier, workers int) *Tagger {
	if workers <= 0 {
		workers = 1
	}
	return &Tagger{classifier: classifier, workers: workers}
}

// Tag classifies every record and returns tagged records in input order.
func (t *Tagger) Tag(ctx context.Context, records []model.Record) ([]model.TaggedRecord, error) {
	tagged := make([]model.TaggedRecord, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)
	for i, rec := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tagged[i] = rec.Tagged(t.classifier.Classify(rec))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tagged, nil
}

// Aggregate counts tagged records per district label.
func Aggregate(tagged []model.TaggedRecord) model.DistrictCounts {
	counts := make(model.DistrictCounts, len(tagged))
	for _, tr := range tagged {
		counts[tr.District]++
	}
	return counts
}

// Summarize returns count entries sorted by descending count. Ties keep the
// order in which the district was first encountered in the tagged records.
func Summarize(tagged []model.TaggedRecord) []model.DistrictCount {
	counts := make(model.DistrictCounts, len(tagged))
	var order []string
	for _, tr := range tagged {
		if _, seen := counts[tr.District]; !seen {
			order = append(order, tr.District)
		}
		counts[tr.District]++
	}

	summary := make([]model.DistrictCount, 0, len(order))
	for _, district := range order {
		summary = append(summary, model.DistrictCount{District: district, Count: counts[district]})
	}
	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].Count > summary[j].Count
	})
	return summary
}
