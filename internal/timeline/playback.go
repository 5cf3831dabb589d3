package timeline

import (
	"math"
	"time"
)

// TickInterval is the playback clock period hosts should drive Advance
// with.
const TickInterval = 40 * time.Millisecond

// Playing reports whether the playback clock is running.
func (t *Timeline) Playing() bool { return t.playing }

// TogglePlay starts or pauses playback. Not a persistence point.
func (t *Timeline) TogglePlay() {
	t.playing = !t.playing
	t.Changed.notify()
}

// Playhead is the integer playhead position in timeline-space units,
// truncated from the continuously advancing accurate position.
func (t *Timeline) Playhead() int { return t.playhead }

// AccuratePlayhead is the unrounded playhead position.
func (t *Timeline) AccuratePlayhead() float64 { return t.accuratePlayhead }

// Advance moves the playback clock forward by elapsed wall time. It is a
// no-op while paused. Ticks are never persistence points; only Changed
// fires.
func (t *Timeline) Advance(elapsed time.Duration) {
	if !t.playing {
		return
	}
	t.accuratePlayhead += elapsed.Seconds() * PixelsPerSecond
	playhead := int(math.Trunc(t.accuratePlayhead))
	if playhead == t.playhead {
		t.Changed.notify()
		return
	}
	t.playhead = playhead
	t.recomputePlayback()
	t.Changed.notify()
}

// SetPlayhead jumps both playhead forms to pos and recomputes the
// playing/next sets.
func (t *Timeline) SetPlayhead(pos float64) {
	t.accuratePlayhead = pos
	t.playhead = int(math.Trunc(pos))
	t.recomputePlayback()
	t.Changed.notify()
}

// IsPlaying reports whether e is currently under the playhead.
func (t *Timeline) IsPlaying(e Element) bool {
	_, ok := t.playingSet[e.ID()]
	return ok
}

// recomputePlayback rebuilds the playing and next-per-row sets for the
// current playhead and fires transition hooks for the differences: exits
// for elements that left the playing set, enters for new arrivals, and
// next-in-row for elements newly first beyond the playhead. Hooks fire in
// row stacking order, elements in start order.
func (t *Timeline) recomputePlayback() {
	playhead := float64(t.playhead)
	newPlaying := make(map[ElementID]Element, len(t.playingSet))
	newNext := make(map[*Row]Element, len(t.rows))

	for _, row := range t.rows {
		for _, e := range row.Elements() {
			if e.Start() <= playhead && playhead < e.Start()+e.Length() {
				newPlaying[e.ID()] = e
			}
		}
		if next := row.NextAfter(playhead); next != nil {
			newNext[row] = next
		}
	}

	for _, row := range t.rows {
		for _, e := range row.Elements() {
			_, was := t.playingSet[e.ID()]
			_, now := newPlaying[e.ID()]
			if was && !now {
				t.fireExit(e)
			}
		}
	}
	for _, row := range t.rows {
		for _, e := range row.Elements() {
			if _, now := newPlaying[e.ID()]; now {
				if _, was := t.playingSet[e.ID()]; !was {
					t.fireEnter(e)
				}
			}
		}
		if next, ok := newNext[row]; ok && t.nextSet[row] != next {
			t.fireNext(next)
		}
	}

	t.playingSet = newPlaying
	t.nextSet = newNext
}

func (t *Timeline) fireEnter(e Element) {
	if tr, ok := e.(Transitioner); ok {
		tr.Enter()
	}
	if t.OnElementEnter != nil {
		t.OnElementEnter(e)
	}
}

func (t *Timeline) fireExit(e Element) {
	if tr, ok := e.(Transitioner); ok {
		tr.Exit()
	}
	if t.OnElementExit != nil {
		t.OnElementExit(e)
	}
}

func (t *Timeline) fireNext(e Element) {
	if tr, ok := e.(Transitioner); ok {
		tr.EnterNextInRow()
	}
	if t.OnElementNext != nil {
		t.OnElementNext(e)
	}
}
