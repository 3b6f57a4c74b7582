package tracker

import (
	"sort"

	"gocv.io/x/gocv"
)

// Tracker owns the set of waves being tracked and advances it one frame at
// a time.  A frame is consumed by the fixed cycle Update, Reap, Deduplicate,
// Admit, in that order.  ProcessFrame runs the whole cycle.  The tracked set
// is kept in ascending birth order for downstream consumers and must only
// be mutated from a single goroutine.
type Tracker struct {
	cfg Config
	// tracked holds the live waves in ascending birth order
	tracked []*Wave
	// recognized collects dead waves that crossed the recognition
	// thresholds during their life
	recognized []*Wave
}

// NewTracker returns a tracker with an empty tracked set
func NewTracker(cfg Config) *Tracker {
	return &Tracker{
		cfg: cfg,
	}
}

// ProcessFrame consumes one frame: the mask the preprocessor produced for
// it and the candidate waves the ShapeFilter detected in it.  Admission is
// skipped on the stream's final frame, where every live wave is flushed
// instead
func (t *Tracker) ProcessFrame(mask gocv.Mat, candidates []*Wave,
	frameNumber, totalFrames int) {

	t.Update(mask, frameNumber, totalFrames)
	t.Reap()
	t.Deduplicate()

	if frameNumber < totalFrames {
		t.Admit(candidates)
	}
}

// Update advances every tracked wave against the frame's binary mask
func (t *Tracker) Update(mask gocv.Mat, frameNumber, totalFrames int) {

	finalFrame := frameNumber == totalFrames

	for _, w := range t.tracked {
		w.Advance(mask, frameNumber, finalFrame)
	}
}

// Reap removes the waves whose death frame was set this cycle.  Dead waves
// that became recognized move to the recognized collection, dead
// unrecognized waves are discarded permanently
func (t *Tracker) Reap() {

	alive := make([]*Wave, 0, len(t.tracked))

	for _, w := range t.tracked {
		if w.Alive() {
			alive = append(alive, w)
			continue
		}
		if w.Recognized() {
			t.recognized = append(t.recognized, w)
		}
	}

	t.tracked = alive
}

// Deduplicate collapses waves that represent the same physical wave.  A
// younger wave whose leading edge projection falls inside an older wave's
// capture band is a section of that wave and is removed.  The surviving set
// is restored to ascending birth order
func (t *Tracker) Deduplicate() {

	// newest first so the younger of any overlapping pair is the one removed
	sort.SliceStable(t.tracked, func(i, j int) bool {
		return t.tracked[i].birth > t.tracked[j].birth
	})

	removed := make([]bool, len(t.tracked))

	for i, w := range t.tracked {
		y := leadingEdgeY(w.centroid, w.axisAngle)

		// scan only the older waves.  The first overlap suffices
		for j := i + 1; j < len(t.tracked); j++ {
			if inCaptureBand(y, t.tracked[j].searchQuad) {
				removed[i] = true
				break
			}
		}
	}

	kept := make([]*Wave, 0, len(t.tracked))
	for i, w := range t.tracked {
		if !removed[i] {
			kept = append(kept, w)
		}
	}
	t.tracked = kept

	sort.SliceStable(t.tracked, func(i, j int) bool {
		return t.tracked[i].birth < t.tracked[j].birth
	})
}

// Admit adds the frame's candidate waves to the tracked set.  A candidate
// whose leading edge projection falls inside the capture band of any wave
// already being tracked is a section of that wave, not a new one, and is
// discarded
func (t *Tracker) Admit(candidates []*Wave) {

	for _, c := range candidates {
		if !t.willBeMerged(c) {
			t.tracked = append(t.tracked, c)
		}
	}
}

// willBeMerged applies the shared capture band predicate between a
// candidate and the tracked set
func (t *Tracker) willBeMerged(c *Wave) bool {

	y := leadingEdgeY(c.centroid, c.axisAngle)

	for _, w := range t.tracked {
		if inCaptureBand(y, w.searchQuad) {
			return true
		}
	}

	return false
}

// Tracked returns the waves currently being tracked in ascending birth
// order
func (t *Tracker) Tracked() []*Wave {
	return t.tracked
}

// Recognized returns the dead waves that were recognized during their life
func (t *Tracker) Recognized() []*Wave {
	return t.recognized
}
