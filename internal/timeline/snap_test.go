package timeline

import "testing"

func TestSnapToElementEdgeWithinThreshold(t *testing.T) {
	tl := New(nil)
	row := NewRow(RowLighting)
	tl.AddRow(row)
	anchor := NewLightingCue(0, 100)
	dragged := NewLightingCue(150, 50)
	tl.Add(row, anchor)
	tl.Add(row, dragged)

	got, ok := tl.snap(103, dragged)
	if !ok || got != 100 {
		t.Fatalf("snap(103) = %v, %v; want 100, true (anchor end within 3 units)", got, ok)
	}

	got, ok = tl.snap(110, dragged)
	if ok {
		t.Fatalf("snap(110) = %v, %v; want no snap at 10 units distance", got, ok)
	}
}

func TestSnapThresholdIsScreenDistance(t *testing.T) {
	tl := New(nil)
	row := NewRow(RowLighting)
	tl.AddRow(row)
	anchor := NewLightingCue(0, 100)
	dragged := NewLightingCue(150, 50)
	tl.Add(row, anchor)
	tl.Add(row, dragged)

	// 4 units from the candidate: snaps at scale 1 (4 px) but not at
	// scale 2 (8 px).
	if _, ok := tl.snap(104, dragged); !ok {
		t.Fatal("expected snap at scale 1")
	}
	tl.SetScale(2)
	if got, ok := tl.snap(104, dragged); ok {
		t.Fatalf("snap(104) at scale 2 = %v; want no snap", got)
	}
}

func TestSnapsExcludeSelf(t *testing.T) {
	tl := New(nil)
	row := NewRow(RowLighting)
	tl.AddRow(row)
	cue := NewLightingCue(40, 20)
	tl.Add(row, cue)

	for _, c := range tl.Snaps(cue, false) {
		if c == 40 || c == 60 {
			t.Fatalf("candidate %v comes from the excluded element", c)
		}
	}
}

func TestSnapsIncludeOriginAndPlayhead(t *testing.T) {
	tl := New(nil)
	tl.SetPlayhead(77)

	candidates := tl.Snaps(nil, false)
	if len(candidates) != 2 || candidates[0] != 0 || candidates[1] != 77 {
		t.Fatalf("candidates = %v, want [0 77]", candidates)
	}
}

func TestCoarseSnapsKeepOnlyLabeledMarkings(t *testing.T) {
	tl := New(nil)
	row := NewRow(RowTime)
	tl.AddRow(row)
	// 120 bpm, 4/4: a marking every 5 units, labeled every 20.
	tl.Add(row, NewTimeMusic(0, 8, 120, 4, 1, 0))

	fine := tl.Snaps(nil, false)
	coarse := tl.Snaps(nil, true)

	has := func(set []float64, v float64) bool {
		for _, c := range set {
			if c == v {
				return true
			}
		}
		return false
	}
	if !has(fine, 5) {
		t.Fatal("fine candidates should include the unlabeled beat at 5")
	}
	if has(coarse, 5) {
		t.Fatal("coarse candidates should drop the unlabeled beat at 5")
	}
	if !has(coarse, 20) {
		t.Fatal("coarse candidates should keep the bar start at 20")
	}
	// Element edges survive coarse filtering.
	if !has(coarse, 40) {
		t.Fatal("coarse candidates should keep the ruler's end edge at 40")
	}
}

func TestTimeSnapsSortedAndScopedToTimeRows(t *testing.T) {
	tl := New(nil)
	lighting := NewRow(RowLighting)
	tl.AddRow(lighting)
	tl.Add(lighting, NewLightingCue(3, 4))

	timeRow := NewRow(RowTime)
	tl.AddRow(timeRow)
	tl.Add(timeRow, NewTimeClock(0, 2))

	marks := tl.timeSnaps(false)
	want := []float64{0, 10, 20}
	if len(marks) != len(want) {
		t.Fatalf("marks = %v, want %v", marks, want)
	}
	for i := range want {
		if marks[i] != want[i] {
			t.Fatalf("marks = %v, want %v", marks, want)
		}
	}
}
