package gallery

// confirmFraction is the share of the available travel a drag must cover
// at release time to count as an exit confirmation.
const confirmFraction = 0.6

type trackerState int

const (
	trackerIdle trackerState = iota
	trackerTracking
	trackerConfirmed
	trackerCancelled
)

// exitTracker interprets one vertical drag against the available travel
// distance. An instance lives for exactly one touch sequence and is
// discarded at release whatever the outcome.
type exitTracker struct {
	track  float32
	startY float32
	offset float32
	state  trackerState
}

func newExitTracker(trackLength float32) *exitTracker {
	if trackLength < 0 {
		trackLength = 0
	}
	return &exitTracker{track: trackLength}
}

// begin records the start coordinate of the touch sequence.
func (t *exitTracker) begin(y float32) {
	if t.state != trackerIdle {
		return
	}
	t.state = trackerTracking
	t.startY = y
}

// move updates the upward displacement from the start coordinate, clamped
// to [0, trackLength], and returns it as the visual offset to apply.
func (t *exitTracker) move(y float32) float32 {
	if t.state != trackerTracking {
		return t.offset
	}
	d := t.startY - y
	if d < 0 {
		d = 0
	}
	if d > t.track {
		d = t.track
	}
	t.offset = d
	return d
}

// release ends the gesture and reports whether the exit was confirmed.
func (t *exitTracker) release() bool {
	if t.state != trackerTracking {
		return false
	}
	// Compare in float64: the float32 product rounds 0.6*100 up to
	// 60.000004, which would reject a release at exactly the threshold.
	if t.track > 0 && float64(t.offset) >= confirmFraction*float64(t.track) {
		t.state = trackerConfirmed
		return true
	}
	t.state = trackerCancelled
	return false
}

// cancel aborts a tracking gesture without firing anything.
func (t *exitTracker) cancel() {
	if t.state == trackerTracking {
		t.state = trackerCancelled
	}
}
