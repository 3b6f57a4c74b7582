package tracker

import (
	"image"
	"testing"
)

func TestFilterContoursThresholds(t *testing.T) {

	cfg := testConfig()

	tests := []struct {
		name    string
		contour []image.Point
		want    bool
	}{
		{
			name:    "long narrow shape accepted",
			contour: rectContour(40, 80, 60, 5),
			want:    true,
		},
		{
			name:    "undersized shape rejected",
			contour: rectContour(40, 80, 6, 4),
			want:    false,
		},
		{
			name: "square shape rejected by inertia",
			// equal principal moments degenerate to ratio 1
			contour: rectContour(40, 60, 21, 21),
			want:    false,
		},
		{
			name:    "round-ish shape rejected",
			contour: rectContour(40, 60, 24, 20),
			want:    false,
		},
		{
			name:    "empty contour rejected",
			contour: nil,
			want:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewShapeFilter(cfg, NewIDGenerator())
			sections := f.FilterContours([][]image.Point{tc.contour}, 1)

			if got := len(sections) == 1; got != tc.want {
				t.Errorf("accepted = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterContoursCandidateState(t *testing.T) {

	cfg := testConfig()
	f := NewShapeFilter(cfg, NewIDGenerator())

	contour := rectContour(40, 80, 60, 5)
	sections := f.FilterContours([][]image.Point{contour}, 7)

	if len(sections) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(sections))
	}

	w := sections[0]

	// the candidate's initial representation is the contour itself
	if w.Mass() != len(contour) {
		t.Errorf("initial mass = %d, want %d", w.Mass(), len(contour))
	}

	if w.Birth() != 7 {
		t.Errorf("birth = %d, want 7", w.Birth())
	}

	if !w.Alive() {
		t.Error("new candidate should be alive")
	}

	if w.Recognized() {
		t.Error("new candidate should not be recognized")
	}

	if w.Centroid() == centroidInvalid {
		t.Error("new candidate should have a valid centroid")
	}

	if len(w.CentroidHistory()) != 1 {
		t.Errorf("centroid history length = %d, want 1", len(w.CentroidHistory()))
	}
}

func TestFilterIssuesIncreasingIDs(t *testing.T) {

	cfg := testConfig()
	f := NewShapeFilter(cfg, NewIDGenerator())

	contours := [][]image.Point{
		rectContour(40, 20, 60, 5),
		rectContour(40, 80, 60, 5),
		rectContour(40, 140, 60, 5),
	}

	sections := f.FilterContours(contours, 1)

	if len(sections) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(sections))
	}

	var last int64
	for _, w := range sections {
		if w.ID() <= last {
			t.Errorf("ids not strictly increasing: %d after %d", w.ID(), last)
		}
		last = w.ID()
	}

	// a second frame continues the same sequence
	more := f.FilterContours(contours[:1], 2)

	if len(more) != 1 || more[0].ID() <= last {
		t.Errorf("id sequence did not continue across frames")
	}
}
