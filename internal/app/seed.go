package app

import "github.com/showctl/cueline/internal/timeline"

// seedStarterShow populates a brand-new timeline with a small demo show:
// a full row stack, a clock segment followed by a music segment on the
// Time row, and a handful of scene cuts across the two output rows. The
// first committed edit persists it.
func seedStarterShow(tl *timeline.Timeline) {
	labels := timeline.NewRow(timeline.RowLabel)
	tl.AddRow(labels)
	tl.Add(labels, timeline.NewLabel(0, 120, "Opening"))

	tl.AddRow(timeline.NewRow(timeline.RowGuide))

	timeRow := timeline.NewRow(timeline.RowTime)
	tl.AddRow(timeRow)
	tl.Add(timeRow, timeline.NewTimeClock(0, 30))
	tl.Add(timeRow, timeline.NewTimeMusic(
		30*timeline.PixelsPerSecond, 60,
		timeline.DefaultBPM, timeline.DefaultBeatsPerBar,
		timeline.DefaultStartingBar, timeline.DefaultStartingBeat,
	))

	tl.AddRow(timeline.NewRow(timeline.RowLighting))

	projector := timeline.NewSceneRow("Projector")
	tl.AddRow(projector)
	stream := timeline.NewSceneRow("Stream")
	tl.AddRow(stream)

	scenes := tl.Scenes().Scenes()
	seedCue := func(row *timeline.Row, start, length float64, index int) {
		if index >= len(scenes) {
			return
		}
		tl.Add(row, timeline.NewSceneCue(tl.Scenes(), start, length, "", scenes[index].ID))
	}
	seedCue(projector, 0, 100, 0)
	seedCue(projector, 300, 50, 2)
	seedCue(projector, 900, 50, 2)
	seedCue(stream, 100, 100, 1)
}
