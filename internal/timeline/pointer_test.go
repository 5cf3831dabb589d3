package timeline

import "testing"

// lightingFixture builds a timeline with a single Lighting row holding one
// cue at [100, 200). With lighting rows 60 high and RowPadding 6, the
// element body spans y ∈ [3, 57).
func lightingFixture(t *testing.T) (*Timeline, *Row, *LightingCue) {
	t.Helper()
	tl := New(nil)
	row := NewRow(RowLighting)
	tl.AddRow(row)
	cue := NewLightingCue(100, 100)
	tl.Add(row, cue)
	return tl, row, cue
}

func TestClickSelectsWithoutCommitting(t *testing.T) {
	tl, _, cue := lightingFixture(t)

	commits := 0
	tl.Committed.Subscribe(func() { commits++ })

	tl.PointerMove(150, 30)
	if tl.Hovering() != cue {
		t.Fatal("expected hover over the cue body")
	}
	tl.PointerDown(150, 30)
	tl.PointerUp(150, 30)
	if tl.Selected() != cue {
		t.Fatal("expected click to select the cue")
	}
	if commits != 0 {
		t.Fatalf("click fired %d commits, want 0", commits)
	}
}

func TestClickOnEmptySpaceClearsSelection(t *testing.T) {
	tl, _, cue := lightingFixture(t)
	tl.Select(cue)

	tl.PointerMove(400, 30)
	tl.PointerDown(400, 30)
	tl.PointerUp(400, 30)
	if tl.Selected() != nil {
		t.Fatal("expected empty-space click to clear the selection")
	}
}

func TestRightHandleResizeKeepsLeftEdge(t *testing.T) {
	tl, _, cue := lightingFixture(t)

	commits := 0
	tl.Committed.Subscribe(func() { commits++ })

	tl.PointerMove(195, 30)
	if !tl.ResizeCursor() {
		t.Fatal("expected resize affordance inside the right handle band")
	}
	tl.PointerDown(195, 30)
	tl.PointerMove(245, 30)
	tl.PointerUp(245, 30)

	if cue.Start() != 100 || cue.Length() != 150 {
		t.Fatalf("cue = [%v, len %v], want [100, len 150]", cue.Start(), cue.Length())
	}
	if commits != 1 {
		t.Fatalf("resize fired %d commits, want 1", commits)
	}
}

func TestLeftHandleResizeSnapsAndKeepsRightEdge(t *testing.T) {
	tl, row, cue := lightingFixture(t)
	// Anchor element ending at 100, right against the dragged cue.
	tl.Add(row, NewLightingCue(0, 100))
	cue.SetStart(150)
	cue.SetLength(60)

	tl.PointerMove(149, 30)
	tl.PointerDown(149, 30)
	// Raw left edge lands at 104; the anchor's end at 100 is 4 units away
	// and captures it, with the displaced amount folded into the length.
	tl.PointerMove(103, 30)
	tl.PointerUp(103, 30)

	if cue.Start() != 100 || cue.Length() != 110 {
		t.Fatalf("cue = [%v, len %v], want [100, len 110]", cue.Start(), cue.Length())
	}
}

func TestResizeCrossoverFlips(t *testing.T) {
	tl, _, cue := lightingFixture(t)

	tl.PointerMove(195, 30)
	tl.PointerDown(195, 30)
	// Dragging the right handle 145 px left leaves length at -45; release
	// flips the span so it ends where it used to start.
	tl.PointerMove(50, 30)
	tl.PointerUp(50, 30)

	if cue.Start() != 55 || cue.Length() != 45 {
		t.Fatalf("cue = [%v, len %v], want [55, len 45]", cue.Start(), cue.Length())
	}
}

func TestResizeEnforcesMinLengthAtRelease(t *testing.T) {
	tl, _, cue := lightingFixture(t)

	tl.PointerMove(195, 30)
	tl.PointerDown(195, 30)
	tl.PointerMove(95.5, 30)
	if cue.Length() != 0.5 {
		t.Fatalf("mid-drag length = %v, want the raw 0.5", cue.Length())
	}
	tl.PointerUp(95.5, 30)
	if cue.Length() != cue.MinLength() {
		t.Fatalf("released length = %v, want the minimum %v", cue.Length(), cue.MinLength())
	}
}

func TestDragMoveAcrossRows(t *testing.T) {
	tl, row, cue := lightingFixture(t)
	second := NewRow(RowLighting)
	tl.AddRow(second)

	tl.PointerMove(150, 30)
	tl.PointerDown(150, 30)
	// First motion promotes the press to a move anchored there; dropping
	// into the second row's band (y ∈ [60, 120)) reassigns the element.
	tl.PointerMove(150, 90)
	tl.PointerUp(150, 90)

	if row.Contains(cue) {
		t.Fatal("cue should have left the first row")
	}
	if !second.Contains(cue) {
		t.Fatal("cue should have joined the second row")
	}
	if cue.Start() != 100 {
		t.Fatalf("start = %v, want 100 (vertical drag only)", cue.Start())
	}
}

func TestDragMoveRejectsIncompatibleRow(t *testing.T) {
	tl, row, cue := lightingFixture(t)
	scene := NewSceneRow("Projector")
	tl.AddRow(scene)

	tl.PointerMove(150, 30)
	tl.PointerDown(150, 30)
	tl.PointerMove(150, 40) // promotes the press to a move anchored at 150
	tl.PointerMove(170, 90)
	tl.PointerUp(170, 90)

	if !row.Contains(cue) {
		t.Fatal("cue must stay on its row when the target rejects its kind")
	}
	if cue.Start() != 120 {
		t.Fatalf("start = %v, want 120 (horizontal component still applies)", cue.Start())
	}
}

func TestSeekGutterScrubsWithoutCommitting(t *testing.T) {
	tl := New(nil)
	timeRow := NewRow(RowTime)
	tl.AddRow(timeRow)
	tl.Add(timeRow, NewTimeClock(0, 60))

	commits := 0
	tl.Committed.Subscribe(func() { commits++ })

	tl.PointerDown(150, 10)
	if tl.Playhead() != 150 {
		t.Fatalf("playhead = %d, want 150 after gutter press", tl.Playhead())
	}
	tl.PointerMove(200, 10)
	if tl.Playhead() != 200 {
		t.Fatalf("playhead = %d, want 200 mid-scrub", tl.Playhead())
	}
	// Below the gutter the scrub pauses but the gesture stays alive.
	tl.PointerMove(250, 30)
	if tl.Playhead() != 200 {
		t.Fatalf("playhead = %d, want 200 while outside the gutter", tl.Playhead())
	}
	tl.PointerUp(250, 30)
	if commits != 0 {
		t.Fatalf("seek fired %d commits, want 0", commits)
	}
}

func TestTimeRulerReachableBelowGutter(t *testing.T) {
	tl := New(nil)
	timeRow := NewRow(RowTime)
	tl.AddRow(timeRow)
	clock := NewTimeClock(0, 60)
	tl.Add(timeRow, clock)

	tl.PointerMove(150, 30)
	if tl.Hovering() != clock {
		t.Fatal("expected the ruler body below the gutter to be hoverable")
	}
	tl.PointerMove(150, 10)
	if tl.Hovering() != nil {
		t.Fatal("the gutter strip must not hover the ruler")
	}
}

func TestZoomKeepsPointerPositionStationary(t *testing.T) {
	tl := New(nil)

	scroll := tl.Zoom(100, 200, 50)
	if got := tl.Scale(); !approx(got, 1.1) {
		t.Fatalf("scale = %v, want 1.1", got)
	}
	if !approx(scroll, 70) {
		t.Fatalf("corrected scroll = %v, want 70", scroll)
	}
}

func approx(got, want float64) bool {
	d := got - want
	return d < 1e-9 && d > -1e-9
}

func TestZoomClampsScale(t *testing.T) {
	tl := New(nil)
	tl.SetScale(ScaleMax)
	tl.Zoom(10000, 0, 0)
	if got := tl.Scale(); got != ScaleMax {
		t.Fatalf("scale = %v, want clamped to %v", got, ScaleMax)
	}
	tl.SetScale(ScaleMin)
	tl.Zoom(-10000, 0, 0)
	if got := tl.Scale(); got != ScaleMin {
		t.Fatalf("scale = %v, want clamped to %v", got, ScaleMin)
	}
}
