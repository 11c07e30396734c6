package assets

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// Catalog is the set of entity types of one asset directory together with
// the atlas their images were assigned in.
type Catalog struct {
	types map[string]*EntityType
	atlas *Atlas
}

// NewCatalog resolves types against a fresh atlas. Types are resolved in
// name order, so atlas indices do not depend on the argument order.
func NewCatalog(types ...*EntityType) (*Catalog, error) {
	c := &Catalog{
		types: make(map[string]*EntityType, len(types)),
		atlas: NewAtlas(),
	}
	for _, et := range types {
		if _, dup := c.types[et.Name]; dup {
			return nil, fmt.Errorf("assets: entity type %s defined twice", et.Name)
		}
		c.types[et.Name] = et
	}
	for _, name := range c.Names() {
		if err := c.types[name].resolve(c.atlas); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadCatalog parses every .yaml file in dir as an entity type named after
// the file stem. Subdirectories and other files are skipped.
func LoadCatalog(dir string, log logrus.FieldLogger) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", dir, err)
	}

	var types []*EntityType
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !isSpecFile(entry.Name()) {
			continue
		}
		filename := filepath.Join(dir, entry.Name())
		et, err := loadEntityType(filename)
		if err != nil {
			return nil, err
		}
		log.WithField("type", et.Name).Debug("loaded entity type")
		types = append(types, et)
	}

	c, err := NewCatalog(types...)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"dir":    dir,
		"types":  len(c.types),
		"images": c.atlas.Len(),
	}).Info("entity catalog loaded")
	return c, nil
}

func loadEntityType(filename string) (*EntityType, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", filename, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return ParseEntityType(name, f)
}

func (c *Catalog) Type(name string) (*EntityType, bool) {
	et, ok := c.types[name]
	return et, ok
}

// Names returns the type names in lexical order.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.types))
}

func (c *Catalog) Atlas() *Atlas {
	return c.atlas
}

// Check verifies that every placement references a known type.
func (c *Catalog) Check(placements []Placement) error {
	for _, p := range placements {
		if _, ok := c.types[p.Type]; !ok {
			return fmt.Errorf("%w: placement %s references %q", ErrUnknownType, p.Name, p.Type)
		}
	}
	return nil
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
