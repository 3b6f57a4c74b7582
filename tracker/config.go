package tracker

// Config defines the tunable constants used by wave detection and tracking.
// The zero value is not usable, start from DefaultConfig.
type Config struct {
	// MinContourArea is the minimum contour area (zeroth image moment) a
	// detected shape must have to become a candidate wave
	MinContourArea float64
	// MinInertiaRatio is the lower bound (inclusive) on the ratio of minimum
	// to maximum principal moments of inertia of a candidate contour
	MinInertiaRatio float64
	// MaxInertiaRatio is the upper bound (exclusive) on the inertia ratio.
	// Long narrow shapes have a ratio near zero, round shapes near one
	MaxInertiaRatio float64
	// SearchRegionBuffer is the half height in pixels of the capture band a
	// wave searches for its representation in the next frame
	SearchRegionBuffer int
	// AxisAngleDegrees is the fixed angle of wave travel relative to the
	// horizontal frame axis.  It is assigned to every wave at creation and
	// never re-estimated
	AxisAngleDegrees float64
	// DisplacementThreshold is the orthogonal displacement in pixels a wave
	// must reach for recognition
	DisplacementThreshold int
	// MassThreshold is the pixel mass a wave must reach for recognition
	MassThreshold int
	// HistoryLength is the maximum number of entries kept in the centroid
	// and displacement histories.  Oldest entries are evicted first
	HistoryLength int
	// FrameWidth is the width of the analysis frame in pixels
	FrameWidth int
	// FrameHeight is the height of the analysis frame in pixels
	FrameHeight int
}

// DefaultConfig returns the tracking constants tuned for 320x180 analysis
// frames of surf footage
func DefaultConfig() Config {
	return Config{
		MinContourArea:        100,
		MinInertiaRatio:       0.0,
		MaxInertiaRatio:       0.1,
		SearchRegionBuffer:    15,
		AxisAngleDegrees:      5.0,
		DisplacementThreshold: 10,
		MassThreshold:         1000,
		HistoryLength:         20,
		FrameWidth:            320,
		FrameHeight:           180,
	}
}
