package assets

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/plus3/topdown/geom"
	"gopkg.in/yaml.v3"
)

// Placement puts one instance of an entity type on the map.
type Placement struct {
	Name          string `yaml:"-"`
	Type          string `yaml:"type"`
	geom.Position `yaml:",inline"`
}

// ParsePlacements decodes a mapping of instance name to placement. The result
// is sorted by instance name so spawning is reproducible.
func ParsePlacements(data []byte) ([]Placement, error) {
	var byName map[string]Placement
	if err := yaml.Unmarshal(data, &byName); err != nil {
		return nil, fmt.Errorf("assets: parse placements: %w", err)
	}

	placements := make([]Placement, 0, len(byName))
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		p := byName[name]
		p.Name = name
		if p.Type == "" {
			return nil, fmt.Errorf("assets: placement %s has no type", name)
		}
		placements = append(placements, p)
	}
	return placements, nil
}

func LoadPlacements(filename string) ([]Placement, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", filename, err)
	}
	placements, err := ParsePlacements(data)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", filename, err)
	}
	return placements, nil
}
