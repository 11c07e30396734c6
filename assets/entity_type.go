// Package assets loads the authored game data: entity type definitions, map
// placements and the image atlas they reference.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"path"
	"slices"
	"time"

	"github.com/plus3/topdown/anim"
	"github.com/plus3/topdown/geom"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownType = errors.New("assets: unknown entity type")
	ErrImageSpec   = errors.New("assets: exactly one of image, animation or animations must be set")
)

// DefaultClip names the clip of a type declared with a single `animation` list.
const DefaultClip = "default"

type FrameSpec struct {
	Image    string `yaml:"image"`
	Duration uint64 `yaml:"duration"`
}

type InteractionSpec struct {
	Name        string        `yaml:"name"`
	Position    geom.Position `yaml:"position"`
	MaxDistance uint16        `yaml:"max_distance"`
}

// EntityType is one entity definition as authored in YAML.
type EntityType struct {
	Name string `yaml:"-"`

	geom.Size   `yaml:",inline"`
	Collision   *geom.Rect             `yaml:"collision"`
	Interaction *InteractionSpec       `yaml:"interaction"`
	Image       string                 `yaml:"image"`
	Animation   []FrameSpec            `yaml:"animation"`
	Animations  map[string][]FrameSpec `yaml:"animations"`

	// Resolved by the catalog.
	StaticAtlas int         `yaml:"-"`
	Table       *anim.Table `yaml:"-"`
}

// ParseEntityType decodes a single entity type. Unknown keys are rejected.
func ParseEntityType(name string, r io.Reader) (*EntityType, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var et EntityType
	if err := dec.Decode(&et); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("assets: entity type %s is empty", name)
		}
		return nil, fmt.Errorf("assets: parse entity type %s: %w", name, err)
	}
	et.Name = name
	et.StaticAtlas = -1

	if err := et.validate(); err != nil {
		return nil, err
	}
	return &et, nil
}

// ParseEntityTypeBytes is ParseEntityType for in-memory data.
func ParseEntityTypeBytes(name string, data []byte) (*EntityType, error) {
	return ParseEntityType(name, bytes.NewReader(data))
}

func (et *EntityType) validate() error {
	set := 0
	if et.Image != "" {
		set++
	}
	if et.Animation != nil {
		set++
	}
	if et.Animations != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w (type %s)", ErrImageSpec, et.Name)
	}

	for clip, frames := range et.clips() {
		if len(frames) == 0 {
			return fmt.Errorf("assets: type %s: clip %q has no frames", et.Name, clip)
		}
		for i, f := range frames {
			if f.Image == "" {
				return fmt.Errorf("assets: type %s: clip %q frame %d has no image", et.Name, clip, i)
			}
		}
	}
	return nil
}

// clips returns the animation clips of the type, or nil for a static image.
func (et *EntityType) clips() map[string][]FrameSpec {
	switch {
	case et.Animations != nil:
		return et.Animations
	case et.Animation != nil:
		return map[string][]FrameSpec{DefaultClip: et.Animation}
	default:
		return nil
	}
}

// Animated reports whether instances of the type carry an animation state.
func (et *EntityType) Animated() bool {
	return et.Table != nil
}

// imageKey names an image relative to the image root: images live in a
// directory named after their type.
func (et *EntityType) imageKey(image string) string {
	return path.Join(et.Name, image)
}

// resolve assigns atlas indices to every image of the type and builds its
// animation table. Clips are visited in lexical order.
func (et *EntityType) resolve(atlas *Atlas) error {
	clips := et.clips()
	if clips == nil {
		et.StaticAtlas = atlas.Add(et.imageKey(et.Image))
		et.Table = nil
		return nil
	}

	table := make(map[string]anim.Clip, len(clips))
	for _, name := range slices.Sorted(maps.Keys(clips)) {
		clip := make(anim.Clip, 0, len(clips[name]))
		for _, f := range clips[name] {
			clip = append(clip, anim.Frame{
				Atlas:    atlas.Add(et.imageKey(f.Image)),
				Duration: time.Duration(f.Duration) * time.Millisecond,
			})
		}
		table[name] = clip
	}

	t, err := anim.NewTable(table)
	if err != nil {
		return fmt.Errorf("assets: type %s: %w", et.Name, err)
	}
	et.StaticAtlas = -1
	et.Table = t
	return nil
}

// InitialAtlas is the atlas index a fresh instance shows before its first tick.
func (et *EntityType) InitialAtlas() int {
	if et.Table == nil {
		return et.StaticAtlas
	}
	clip, _ := et.Table.Clip(et.Table.Default())
	return clip[0].Atlas
}
