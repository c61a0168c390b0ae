package rules

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/petalworks/florist-cli/internal/geo"
)

// RuleSet bundles the three rule tables and the centroid registry. Slice
// order is definition order and drives tie-breaking, so a RuleSet loaded from
// YAML classifies identically across runs.
type RuleSet struct {
	Keywords  []Rule         `yaml:"keywords"`
	Roads     []Rule         `yaml:"roads"`
	Overrides []Rule         `yaml:"overrides"`
	Centroids []geo.Centroid `yaml:"centroids"`
}

// DefaultRuleSet returns the built-in tables and centroids.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Keywords:  DefaultKeywords,
		Roads:     DefaultRoads,
		Overrides: DefaultOverrides,
		Centroids: geo.DefaultCentroids,
	}
}

// LoadRuleSet reads a rule set from a YAML file. An empty path returns the
// built-in defaults; tables omitted from the file also fall back to defaults.
func LoadRuleSet(path string) (RuleSet, error) {
	if path == "" {
		return DefaultRuleSet(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, eris.Wrapf(err, "rules: read rule file %s", path)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return RuleSet{}, eris.Wrapf(err, "rules: parse rule file %s", path)
	}

	def := DefaultRuleSet()
	if len(rs.Keywords) == 0 {
		rs.Keywords = def.Keywords
	}
	if len(rs.Roads) == 0 {
		rs.Roads = def.Roads
	}
	if len(rs.Overrides) == 0 {
		rs.Overrides = def.Overrides
	}
	if len(rs.Centroids) == 0 {
		rs.Centroids = def.Centroids
	}
	return rs, nil
}
