package assets

import (
	"github.com/plus3/topdown/mask"
	"github.com/sirupsen/logrus"
)

// Paths locates the assets a world starts from. Leaving Map or Mask empty
// opts out of placements or terrain collision. A path that is set but cannot
// be loaded is always an error.
type Paths struct {
	Types string
	Map   string
	Mask  string
}

// Bundle is everything loaded at startup.
type Bundle struct {
	Catalog    *Catalog
	Placements []Placement
	Mask       *mask.Mask
}

// LoadBundle loads the catalog, placements and collision mask. Any missing or
// malformed asset fails the whole load, and placements are checked against
// the catalog before anything is returned.
func LoadBundle(paths Paths, log logrus.FieldLogger) (*Bundle, error) {
	catalog, err := LoadCatalog(paths.Types, log)
	if err != nil {
		return nil, err
	}
	b := &Bundle{Catalog: catalog}

	if paths.Map != "" {
		if b.Placements, err = LoadPlacements(paths.Map); err != nil {
			return nil, err
		}
		if err := catalog.Check(b.Placements); err != nil {
			return nil, err
		}
	} else {
		log.Info("no map configured, starting without placements")
	}

	if paths.Mask != "" {
		if b.Mask, err = mask.Load(paths.Mask); err != nil {
			return nil, err
		}
	} else {
		log.Info("no collision mask configured, terrain collision disabled")
	}
	return b, nil
}
