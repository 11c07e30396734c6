package ecs

import "time"

// UpdateFrame is handed to every system during one scheduler tick.
type UpdateFrame struct {
	Delta    time.Duration
	Commands *Commands
	Storage  *Storage
}

// DeltaTime returns the tick length in seconds.
func (f *UpdateFrame) DeltaTime() float64 {
	return f.Delta.Seconds()
}
