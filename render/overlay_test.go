package render

import (
	"image"
	"testing"

	"gocv.io/x/gocv"

	"github.com/citrusvanilla/go-wavetrack/tracker"
)

// testWave returns a wave built from a long narrow contour so it carries a
// valid centroid, bounding quad and history
func testWave(t *testing.T) *tracker.Wave {
	t.Helper()

	contour := make([]image.Point, 0)
	for x := 100; x < 160; x++ {
		contour = append(contour, image.Pt(x, 80))
	}
	for x := 159; x >= 100; x-- {
		contour = append(contour, image.Pt(x, 84))
	}

	return tracker.NewWave(contour, 1, 1, tracker.DefaultConfig())
}

func TestClipToFrameInsideQuad(t *testing.T) {

	quad := tracker.Quad{
		image.Pt(50, 50),
		image.Pt(100, 50),
		image.Pt(100, 80),
		image.Pt(50, 80),
	}

	poly := clipToFrame(quad, 320, 180)

	if len(poly) != 4 {
		t.Fatalf("clipped polygon has %d vertices, want 4", len(poly))
	}

	for _, p := range poly {
		found := false
		for _, q := range quad {
			if p == q {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("vertex %v not part of the unclipped quad", p)
		}
	}
}

func TestClipToFrameOutOfBoundsQuad(t *testing.T) {

	quad := tracker.Quad{
		image.Pt(-40, -20),
		image.Pt(400, -20),
		image.Pt(400, 100),
		image.Pt(-40, 100),
	}

	poly := clipToFrame(quad, 320, 180)

	if len(poly) == 0 {
		t.Fatal("clipped polygon is empty")
	}

	for _, p := range poly {
		if p.X < 0 || p.X > 319 || p.Y < 0 || p.Y > 179 {
			t.Errorf("vertex %v outside frame bounds", p)
		}
	}
}

func TestWaveColorStableForID(t *testing.T) {

	if waveColor(3) != waveColor(3) {
		t.Error("wave color not stable for the same id")
	}

	if waveColor(3) != waveColor(3+int64(len(waveColors))) {
		t.Error("palette does not wrap by modulo")
	}
}

func TestWaveBoxesAndTrailsDraw(t *testing.T) {

	img := gocv.Zeros(180, 320, gocv.MatTypeCV8UC3)
	defer img.Close()

	waves := []*tracker.Wave{testWave(t)}

	WaveBoxes(&img, waves, DefaultFont(), 1)
	Trails(&img, waves, DefaultTrailStyle())

	sum := img.Sum()

	if sum.Val1+sum.Val2+sum.Val3 == 0 {
		t.Error("nothing was drawn onto the frame")
	}
}
