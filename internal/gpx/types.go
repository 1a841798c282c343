package gpx

import (
	"time"
)

// Point represents one GPS fix flattened out of a GPX file.
// Points are created once during loading and never mutated afterwards.
type Point struct {
	Timestamp time.Time // always UTC
	Lat       float64
	Lon       float64

	// Elevation in meters. HasElevation is false only when no point in the
	// whole file carried an <ele>; otherwise missing values are filled from
	// the nearest point that had one.
	Elevation    float64
	HasElevation bool
}
