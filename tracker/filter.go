package tracker

import (
	"image"
	"math"

	"gocv.io/x/gocv"
)

// inertiaEpsilon guards the inertia ratio computation against a near zero
// principal moment denominator
const inertiaEpsilon = 1e-2

// ShapeFilter screens the raw contours found in a frame's binary mask and
// converts the survivors into candidate waves.  Only contours that are both
// large enough and sufficiently long and narrow pass, everything else is a
// whitecap, spray or noise and is silently discarded.
type ShapeFilter struct {
	cfg Config
	ids *IDGenerator
}

// NewShapeFilter returns a filter that issues wave ids from the given
// generator
func NewShapeFilter(cfg Config, ids *IDGenerator) *ShapeFilter {
	return &ShapeFilter{
		cfg: cfg,
		ids: ids,
	}
}

// DetectSections finds the contours of the connected foreground components
// in the binary mask and returns one candidate wave per accepted contour
func (f *ShapeFilter) DetectSections(mask gocv.Mat, frameNumber int) []*Wave {

	contours := gocv.FindContours(mask, gocv.RetrievalList, gocv.ChainApproxNone)
	defer contours.Close()

	raw := make([][]image.Point, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		raw = append(raw, contours.At(i).ToPoints())
	}

	return f.FilterContours(raw, frameNumber)
}

// FilterContours screens the given contours and converts each accepted one
// into a new candidate wave born on frameNumber
func (f *ShapeFilter) FilterContours(contours [][]image.Point, frameNumber int) []*Wave {

	var sections []*Wave

	for _, contour := range contours {
		if !f.keep(contour) {
			continue
		}
		sections = append(sections, NewWave(contour, frameNumber,
			f.ids.GetNext(), f.cfg))
	}

	return sections
}

// keep reports whether a contour meets the area and inertia requirements of
// a candidate wave
func (f *ShapeFilter) keep(contour []image.Point) bool {

	if len(contour) == 0 {
		return false
	}

	moms := contourMoments(contour)

	// filter by area
	if moms["m00"] < f.cfg.MinContourArea {
		return false
	}

	// filter by inertia, the ratio of the minimum to maximum principal
	// moments derived from the second order central moments
	mu11 := moms["mu11"]
	mu20 := moms["mu20"]
	mu02 := moms["mu02"]

	denom := math.Sqrt(math.Pow(2*mu11, 2) + math.Pow(mu20-mu02, 2))

	ratio := 0.0

	if denom > inertiaEpsilon {
		cosMin := (mu20 - mu02) / denom
		sinMin := 2 * mu11 / denom
		cosMax := -cosMin
		sinMax := -sinMin

		iMin := 0.5*(mu20+mu02) - 0.5*(mu20-mu02)*cosMin - mu11*sinMin
		iMax := 0.5*(mu20+mu02) - 0.5*(mu20-mu02)*cosMax - mu11*sinMax

		ratio = iMin / iMax
	} else {
		// degenerate second moments, treat the shape as perfectly round so
		// the upper ratio bound always rejects it
		ratio = 1
	}

	return ratio >= f.cfg.MinInertiaRatio && ratio < f.cfg.MaxInertiaRatio
}

// contourMoments calculates the spatial and central moments of a contour
// treated as a polygon
func contourMoments(contour []image.Point) map[string]float64 {

	pts := gocv.NewMatWithSize(len(contour), 1, gocv.MatTypeCV32SC2)
	defer pts.Close()

	for i, p := range contour {
		pts.SetIntAt(i, 0, int32(p.X))
		pts.SetIntAt(i, 1, int32(p.Y))
	}

	return gocv.Moments(pts, false)
}
