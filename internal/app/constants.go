package app

// Terminal projection constants. The timeline engine works in pixel space;
// the terminal works in character cells. A cell is taller than it is wide,
// so the two axes use different densities.
const (
	// PxPerColumn is how many timeline pixels one terminal column covers.
	PxPerColumn = 4.0

	// PxPerRow is how many timeline pixels one terminal row covers.
	PxPerRow = 10.0
)

// Layout constants define the fixed chrome around the timeline grid.
const (
	// FooterRows is the number of rows reserved for the status footer.
	FooterRows = 2

	// PropsPaneWidth is the width of the property editor pane on the right.
	PropsPaneWidth = 34

	// WheelStep is the synthetic wheel delta applied per wheel event. The
	// terminal reports clicks, not angle deltas, so one notch is scaled up
	// to roughly match a mouse wheel's angle delta.
	WheelStep = 120.0
)

// Input limits define maximum sizes for user input
const (
	// InputCharLimit is the maximum number of characters allowed in
	// property editor inputs.
	InputCharLimit = 120
)
