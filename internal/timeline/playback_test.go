package timeline

import (
	"testing"
	"time"
)

// hookCounts wires counting callbacks into a timeline's transition hooks.
type hookCounts struct {
	enters, exits, nexts int
}

func countHooks(tl *Timeline) *hookCounts {
	c := &hookCounts{}
	tl.OnElementEnter = func(Element) { c.enters++ }
	tl.OnElementExit = func(Element) { c.exits++ }
	tl.OnElementNext = func(Element) { c.nexts++ }
	return c
}

func TestAdvanceSweepFiresEnterAndExitOnce(t *testing.T) {
	tl := New(nil)
	row := NewRow(RowLighting)
	tl.AddRow(row)
	tl.Add(row, NewLightingCue(50, 30))

	counts := countHooks(tl)
	tl.TogglePlay()

	// 5 s at 10 units/s reaches the cue's start exactly.
	tl.Advance(5 * time.Second)
	if counts.enters != 1 {
		t.Fatalf("enters = %d after reaching start, want 1", counts.enters)
	}

	// Tick across the interior: no further transitions.
	for i := 0; i < 50; i++ {
		tl.Advance(TickInterval)
	}
	if counts.enters != 1 || counts.exits != 0 {
		t.Fatalf("mid-span counts = %+v, want 1 enter, 0 exits", *counts)
	}

	// Past the end: the end position itself is exclusive.
	tl.Advance(5 * time.Second)
	if counts.exits != 1 {
		t.Fatalf("exits = %d after passing end, want 1", counts.exits)
	}
	if counts.enters != 1 {
		t.Fatalf("enters = %d after passing end, want 1", counts.enters)
	}
}

func TestPlayheadAtEndIsOutside(t *testing.T) {
	tl := New(nil)
	row := NewRow(RowLighting)
	tl.AddRow(row)
	cue := NewLightingCue(50, 30)
	tl.Add(row, cue)

	tl.SetPlayhead(79)
	if !tl.IsPlaying(cue) {
		t.Fatal("79 is inside [50, 80)")
	}
	tl.SetPlayhead(80)
	if tl.IsPlaying(cue) {
		t.Fatal("80 is outside the half-open span")
	}
}

func TestNextInRowFiresOnChange(t *testing.T) {
	tl := New(nil)
	row := NewRow(RowLighting)
	tl.AddRow(row)
	a := NewLightingCue(50, 10)
	b := NewLightingCue(100, 10)
	tl.Add(row, a)
	tl.Add(row, b)

	counts := countHooks(tl)

	// Jumping past A makes B the next element in the row.
	tl.SetPlayhead(60)
	if counts.nexts != 1 {
		t.Fatalf("nexts = %d, want 1", counts.nexts)
	}
	// The next element is unchanged: no refire.
	tl.SetPlayhead(70)
	if counts.nexts != 1 {
		t.Fatalf("nexts = %d after no-change jump, want 1", counts.nexts)
	}
	// Past B there is no next.
	tl.SetPlayhead(200)
	if counts.nexts != 1 {
		t.Fatalf("nexts = %d past the last element, want 1", counts.nexts)
	}
}

func TestAdvanceIsNoOpWhilePaused(t *testing.T) {
	tl := New(nil)
	tl.Advance(10 * time.Second)
	if tl.AccuratePlayhead() != 0 || tl.Playhead() != 0 {
		t.Fatalf("paused Advance moved the playhead to %v", tl.AccuratePlayhead())
	}
}

func TestAdvanceNeverCommits(t *testing.T) {
	tl := New(nil)
	row := NewRow(RowLighting)
	tl.AddRow(row)
	tl.Add(row, NewLightingCue(0, 100))

	commits := 0
	tl.Committed.Subscribe(func() { commits++ })

	tl.TogglePlay()
	for i := 0; i < 100; i++ {
		tl.Advance(TickInterval)
	}
	tl.TogglePlay()
	if commits != 0 {
		t.Fatalf("playback fired %d commits, want 0", commits)
	}
}

func TestPlayheadTruncatesTowardZero(t *testing.T) {
	tl := New(nil)
	tl.SetPlayhead(55.9)
	if tl.Playhead() != 55 {
		t.Fatalf("Playhead() = %d, want 55", tl.Playhead())
	}
	if tl.AccuratePlayhead() != 55.9 {
		t.Fatalf("AccuratePlayhead() = %v, want 55.9", tl.AccuratePlayhead())
	}
}

// transitionCue records the transitions delivered to the element itself.
type transitionCue struct {
	*LightingCue
	enters, exits, nexts int
}

func (c *transitionCue) Enter()          { c.enters++ }
func (c *transitionCue) Exit()           { c.exits++ }
func (c *transitionCue) EnterNextInRow() { c.nexts++ }

func TestTransitionerReceivesOwnTransitions(t *testing.T) {
	tl := New(nil)
	row := NewRow(RowLighting)
	tl.AddRow(row)
	cue := &transitionCue{LightingCue: NewLightingCue(50, 10)}
	tl.Add(row, cue)

	tl.SetPlayhead(50)
	tl.SetPlayhead(100)
	if cue.enters != 1 || cue.exits != 1 {
		t.Fatalf("cue transitions = %d enters, %d exits; want 1 and 1", cue.enters, cue.exits)
	}
}

func TestDeleteWhilePlayingFiresNoExit(t *testing.T) {
	tl := New(nil)
	row := NewRow(RowLighting)
	tl.AddRow(row)
	cue := NewLightingCue(0, 100)
	tl.Add(row, cue)
	tl.SetPlayhead(50)

	counts := countHooks(tl)
	tl.Remove(cue)
	if counts.exits != 0 {
		t.Fatalf("exits = %d after removing a playing element, want 0", counts.exits)
	}
	if tl.IsPlaying(cue) {
		t.Fatal("removed element must leave the playing set")
	}
}
