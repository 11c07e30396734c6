// Package anim drives sprite animation: named clips of timed atlas frames and
// a per-entity cursor that plays them.
package anim

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
)

var (
	ErrUnknownClip = errors.New("anim: unknown clip")
	ErrEmptyClip   = errors.New("anim: clip has no frames")
)

// Frame is one atlas image shown for Duration.
type Frame struct {
	Atlas    int
	Duration time.Duration
}

// Clip is an ordered, looping sequence of frames.
type Clip []Frame

// Table maps clip names to clips. It is built once per entity type and
// shared read-only by every instance of that type.
type Table struct {
	clips map[string]Clip
}

// NewTable validates clips and wraps them in a Table. The map is not copied.
func NewTable(clips map[string]Clip) (*Table, error) {
	if len(clips) == 0 {
		return nil, fmt.Errorf("%w: table is empty", ErrEmptyClip)
	}
	for name, clip := range clips {
		if len(clip) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyClip, name)
		}
		for i, frame := range clip {
			if frame.Duration < 0 {
				return nil, fmt.Errorf("anim: clip %q frame %d has negative duration", name, i)
			}
		}
	}
	return &Table{clips: clips}, nil
}

// Clip returns the clip stored under name.
func (t *Table) Clip(name string) (Clip, bool) {
	clip, ok := t.clips[name]
	return clip, ok
}

func (t *Table) Has(name string) bool {
	_, ok := t.clips[name]
	return ok
}

// Names returns the clip names in lexical order.
func (t *Table) Names() []string {
	return slices.Sorted(maps.Keys(t.clips))
}

// Default is the clip an entity starts on: "idle" when present, otherwise
// the lexically first name.
func (t *Table) Default() string {
	if t.Has(Idle) {
		return Idle
	}
	return t.Names()[0]
}

func (t *Table) mustClip(name string) Clip {
	clip, ok := t.clips[name]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownClip, name))
	}
	return clip
}
