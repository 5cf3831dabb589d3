package timeline

import (
	"fmt"
	"strconv"

	"github.com/showctl/cueline/internal/theme"
)

// PixelsPerSecond fixes the conversion between wall-clock time and
// timeline-space units. One second of show time is this many units at
// scale 1.
const PixelsPerSecond = 10

const timeNameInset = 3

// Marking is one ruler tick: a timeline-space position and an optional
// label. Labeled markings are "coarse" snap points (whole seconds, bar
// starts); unlabeled ones only participate in fine snapping.
type Marking struct {
	Pos   float64
	Label string
}

// Ruler is the extra capability of Time-row elements: a finite, restartable
// marking sequence spanning [Start, Start+Length], a label slot width for
// painting, and a short name chip.
type Ruler interface {
	Element
	Markings() []Marking
	MarkingLabelWidth() float64
	Name() string
}

// TimeClock is a wall-clock ruler. Its length is derived from a duration
// in whole seconds; setting the length back-computes and truncates the
// duration, so the length/duration relationship is intentionally
// quantized.
type TimeClock struct {
	base
	duration int // seconds
}

func NewTimeClock(start float64, seconds int) *TimeClock {
	t := &TimeClock{duration: seconds}
	t.start = start
	return t
}

func (t *TimeClock) Kind() ElementKind { return KindTimeClock }
func (t *TimeClock) Duration() int     { return t.duration }

func (t *TimeClock) Length() float64 {
	return float64(t.duration) * PixelsPerSecond
}

func (t *TimeClock) SetLength(length float64) {
	t.duration = int(length / PixelsPerSecond)
}

func (t *TimeClock) MinLength() float64 { return PixelsPerSecond }

// Markings yields one tick per whole second, each labeled minutes:seconds.
func (t *TimeClock) Markings() []Marking {
	marks := make([]Marking, 0, t.duration)
	x := t.start
	for i := 0; i < t.duration; i++ {
		marks = append(marks, Marking{Pos: x, Label: clockLabel(i)})
		x += PixelsPerSecond
	}
	return marks
}

func (t *TimeClock) MarkingLabelWidth() float64 { return PixelsPerSecond }

func (t *TimeClock) Name() string {
	return "◷ " + clockLabel(t.duration)
}

func (t *TimeClock) DisplayText() string { return t.Name() }

func (t *TimeClock) Fields() []Field {
	return []Field{
		timeStartField(&t.base),
		{
			Name:  "Duration (s)",
			Value: strconv.Itoa(t.duration),
			Set: func(v string) error {
				n, err := strconv.Atoi(v)
				if err != nil {
					return fmt.Errorf("duration: %w", err)
				}
				if n < 1 {
					return fmt.Errorf("duration must be at least 1 second")
				}
				t.duration = n
				return nil
			},
		},
	}
}

func (t *TimeClock) Paint(s Surface, r Rect, st State) {
	paintTimeChip(s, r, t.Name())
}

func clockLabel(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// TimeMusic is a musical ruler: one marking per beat at the configured
// tempo, labeled with the bar number on the first beat of each bar. The
// duration is counted in beats and quantized the same way TimeClock
// quantizes seconds.
type TimeMusic struct {
	base
	duration     int // beats
	bpm          int
	beatsPerBar  int
	startingBar  int
	startingBeat int
}

func NewTimeMusic(start float64, beats, bpm, beatsPerBar, startingBar, startingBeat int) *TimeMusic {
	t := &TimeMusic{
		duration:     beats,
		bpm:          bpm,
		beatsPerBar:  beatsPerBar,
		startingBar:  startingBar,
		startingBeat: startingBeat,
	}
	t.start = start
	return t
}

func (t *TimeMusic) Kind() ElementKind { return KindTimeMusic }
func (t *TimeMusic) Duration() int     { return t.duration }
func (t *TimeMusic) BPM() int          { return t.bpm }
func (t *TimeMusic) BeatsPerBar() int  { return t.beatsPerBar }
func (t *TimeMusic) StartingBar() int  { return t.startingBar }
func (t *TimeMusic) StartingBeat() int { return t.startingBeat }

func (t *TimeMusic) pixelsPerBeat() float64 {
	return 60 / float64(t.bpm) * PixelsPerSecond
}

func (t *TimeMusic) Length() float64 {
	return float64(t.duration) * t.pixelsPerBeat()
}

func (t *TimeMusic) SetLength(length float64) {
	t.duration = int(length * float64(t.bpm) / 60 / PixelsPerSecond)
}

func (t *TimeMusic) MinLength() float64 { return PixelsPerSecond }

// Markings yields one tick per beat. A beat that lands on a bar boundary
// (offset by the starting beat) is labeled with its bar number; all other
// beats are unlabeled fine ticks.
func (t *TimeMusic) Markings() []Marking {
	marks := make([]Marking, 0, t.duration)
	x := t.start
	step := t.pixelsPerBeat()
	for beat := 0; beat < t.duration; beat++ {
		index := beat + t.startingBeat
		label := ""
		if index%t.beatsPerBar == 0 {
			label = strconv.Itoa(t.startingBar + index/t.beatsPerBar)
		}
		marks = append(marks, Marking{Pos: x, Label: label})
		x += step
	}
	return marks
}

func (t *TimeMusic) MarkingLabelWidth() float64 {
	return t.pixelsPerBeat() * float64(t.beatsPerBar)
}

func (t *TimeMusic) Name() string {
	return "♩=" + strconv.Itoa(t.bpm)
}

func (t *TimeMusic) DisplayText() string { return t.Name() }

func (t *TimeMusic) Fields() []Field {
	return []Field{
		timeStartField(&t.base),
		intField("Duration (beats)", &t.duration, 1),
		intField("BPM", &t.bpm, 1),
		intField("Beats per bar", &t.beatsPerBar, 1),
		intField("Starting bar", &t.startingBar, 0),
		intField("Starting beat", &t.startingBeat, 0),
	}
}

func (t *TimeMusic) Paint(s Surface, r Rect, st State) {
	paintTimeChip(s, r, t.Name())
}

func timeStartField(b *base) Field {
	return Field{
		Name:  "Start (px)",
		Value: formatUnit(b.start),
		Set: func(v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			b.start = f
			return nil
		},
	}
}

func intField(name string, target *int, minValue int) Field {
	return Field{
		Name:  name,
		Value: strconv.Itoa(*target),
		Set: func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if n < minValue {
				return fmt.Errorf("%s must be at least %d", name, minValue)
			}
			*target = n
			return nil
		},
	}
}

// paintTimeChip draws the flat time segment background with its name at
// the left edge when it fits.
func paintTimeChip(s Surface, r Rect, name string) {
	s.FillRect(r, theme.TimeBackground, false)
	s.StrokeRect(r, theme.Outline)
	if s.TextWidth(name)+timeNameInset < r.W {
		text := Rect{X: r.X + timeNameInset, Y: r.Y, W: r.W - timeNameInset, H: r.H}
		s.Text(text, AlignLeft, theme.Text, name)
	}
}
