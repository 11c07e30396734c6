package game

// Intent is the per-tick input singleton written by the host.
type Intent struct {
	X, Y     float64
	Interact bool
	Cancel   bool
}

// Merge combines input sources: axes are summed and clamped to [-1, 1] and
// gestures are pending when any source reports them.
func (i Intent) Merge(others ...Intent) Intent {
	for _, o := range others {
		i.X += o.X
		i.Y += o.Y
		i.Interact = i.Interact || o.Interact
		i.Cancel = i.Cancel || o.Cancel
	}
	i.X = clamp(i.X)
	i.Y = clamp(i.Y)
	return i
}

// Idle reports whether the intent asks for no spatial work this tick.
func (i Intent) Idle() bool {
	return i.X == 0 && i.Y == 0 && !i.Interact
}

func clamp(v float64) float64 {
	return max(-1, min(1, v))
}
