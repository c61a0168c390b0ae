package rules

import (
	"strings"

	"github.com/petalworks/florist-cli/internal/geo"
	"github.com/petalworks/florist-cli/internal/model"
)

// DistrictUnresolved is the sentinel label assigned when no rule and no
// coordinate fallback yields a district. Downstream consumers treat it as
// "needs manual review", not as a failure.
const DistrictUnresolved = "待確認"

// Classifier applies the rule cascade: keyword, road, override, then
// nearest-centroid fallback. It is immutable after construction and safe for
// concurrent use.
type Classifier struct {
	keywords  []Rule
	roads     []Rule
	overrides []Rule
	resolver  *geo.Resolver
}

// NewClassifier builds a Classifier from a rule set. Empty tables fall back
// to the built-in defaults.
func NewClassifier(rs RuleSet) *Classifier {
	if len(rs.Keywords) == 0 {
		rs.Keywords = DefaultKeywords
	}
	if len(rs.Roads) == 0 {
		rs.Roads = DefaultRoads
	}
	if len(rs.Overrides) == 0 {
		rs.Overrides = DefaultOverrides
	}
	return &Classifier{
		keywords:  rs.Keywords,
		roads:     rs.Roads,
		overrides: rs.Overrides,
		resolver:  geo.NewResolver(rs.Centroids),
	}
}

// Classify returns exactly one district label for the record. The cascade is
// strict: the first stage that matches wins and later stages are not consulted.
func (c *Classifier) Classify(rec model.Record) string {
	combined := rec.Name + " " + rec.Address + " " + rec.URL
	for _, r := range c.keywords {
		if strings.Contains(combined, r.Match) {
			return r.District
		}
	}

	for _, r := range c.roads {
		if strings.Contains(rec.Address, r.Match) {
			return r.District
		}
	}

	for _, r := range c.overrides {
		if rec.Name == r.Match {
			return r.District
		}
	}

	if coord, ok := geo.ExtractCoordinate(rec.URL); ok {
		return c.resolver.Nearest(coord)
	}

	return DistrictUnresolved
}
