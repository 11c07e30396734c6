package anim

import (
	"fmt"
	"time"
)

// Clip names used by the movement resolver.
const (
	Idle          = "idle"
	WalkRight     = "walk_right"
	WalkLeft      = "walk_left"
	WalkUp        = "walk_up"
	WalkDown      = "walk_down"
	InteractLeft  = "interact_left"
	InteractRight = "interact_right"
)

// Phase tags whether a state is mid-clip or waiting to cut to frame 0.
type Phase uint8

const (
	Playing Phase = iota
	Restarted
)

func (p Phase) String() string {
	if p == Restarted {
		return "restarted"
	}
	return "playing"
}

// State is the animation cursor of a single entity.
type State struct {
	name     string
	index    int
	phase    Phase
	elapsed  time.Duration
	duration time.Duration
}

// NewState returns a state about to show the first frame of name. It panics
// when table has no such clip.
func NewState(table *Table, name string) State {
	table.mustClip(name)
	return State{name: name, phase: Restarted}
}

func (s *State) Name() string { return s.name }
func (s *State) Index() int   { return s.index }
func (s *State) Phase() Phase { return s.phase }

// Elapsed is the time spent on the current frame so far.
func (s *State) Elapsed() time.Duration { return s.elapsed }

// Start switches to the clip name. Starting the clip that is already playing
// changes nothing, including the frame timer.
func (s *State) Start(name string) {
	if name == s.name {
		return
	}
	s.name = name
	s.Restart()
}

// Restart rewinds the current clip to frame 0 on the next tick.
func (s *State) Restart() {
	s.index = 0
	s.phase = Restarted
	s.elapsed = 0
}

// Tick advances the state by dt and returns the atlas index to display and
// whether a new frame was selected this tick.
//
// The tick after a restart shows frame 0 and arms the timer with its duration
// without consuming dt. Otherwise the timer runs and, once it reaches the
// frame duration, the cursor moves one frame and re-arms with the duration of
// the new frame. Time past the deadline carries over but never enough to
// skip a frame.
func (s *State) Tick(table *Table, dt time.Duration) (atlas int, changed bool) {
	clip := table.mustClip(s.name)
	if s.index >= len(clip) {
		panic(fmt.Errorf("anim: clip %q has no frame %d", s.name, s.index))
	}

	if s.phase == Restarted {
		s.phase = Playing
		s.elapsed = 0
		s.duration = clip[0].Duration
		return clip[0].Atlas, true
	}

	s.elapsed += dt
	if s.elapsed < s.duration {
		return clip[s.index].Atlas, false
	}

	overshoot := s.elapsed - s.duration
	s.index = (s.index + 1) % len(clip)
	frame := clip[s.index]
	s.duration = frame.Duration
	s.elapsed = min(overshoot, max(frame.Duration-1, 0))
	return frame.Atlas, true
}

// Rebind adopts a reloaded table for the playing clip and returns the atlas
// index to show right away. A cursor past the end of the new clip restarts.
// Otherwise the elapsed time is kept and the timer is re-armed with the
// current frame's new duration.
func (s *State) Rebind(table *Table) (atlas int) {
	clip := table.mustClip(s.name)
	if s.index >= len(clip) {
		s.Restart()
		return clip[0].Atlas
	}
	if s.phase == Playing {
		s.duration = clip[s.index].Duration
	}
	return clip[s.index].Atlas
}
