package game

import "github.com/plus3/topdown/ecs"

// AnimationSystem advances every animation by the tick and copies the frame
// to show into the sprite.
type AnimationSystem struct {
	Entities ecs.Query[struct {
		*Animation
		*Sprite
	}]
}

func (s *AnimationSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Entities.Values() {
		atlas, _ := item.Animation.State.Tick(item.Animation.Table, frame.Delta)
		item.Sprite.Atlas = atlas
	}
}
