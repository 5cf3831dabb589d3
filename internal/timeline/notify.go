package timeline

// Notifier is a minimal synchronous fan-out signal with no payload.
// Listeners subscribe once (typically at construction) and are invoked in
// subscription order on the caller's goroutine.
//
// The timeline carries two of these: Changed fires on every mutation that
// needs a repaint (including playhead motion), Committed fires only at
// persistence points (drag release, add, remove, property edit; never a
// playback tick).
type Notifier struct {
	fns []func()
}

// Subscribe registers a listener. Listeners cannot be removed; subscribe
// with a closure that checks its own liveness if that matters.
func (n *Notifier) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	n.fns = append(n.fns, fn)
}

func (n *Notifier) notify() {
	for _, fn := range n.fns {
		fn()
	}
}
