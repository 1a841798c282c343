package gpx

import (
	"errors"
	"fmt"

	gogpx "github.com/tkrajina/gpxgo/gpx"
)

// ErrNoPoints signals that the file parsed fine but contains no track points.
var ErrNoPoints = errors.New("gpx file contains no track points")

// LoadFile parses a GPX file and returns all track points from all tracks
// and segments, in file order.
func LoadFile(filename string) ([]Point, error) {
	parsed, err := gogpx.ParseFile(filename)
	if err != nil {
		return nil, fmt.Errorf("parse gpx: %w", err)
	}

	return collectPoints(parsed)
}

// LoadBytes parses in-memory GPX data.
func LoadBytes(data []byte) ([]Point, error) {
	parsed, err := gogpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse gpx: %w", err)
	}

	return collectPoints(parsed)
}

// collectPoints flattens all tracks and segments into one ordered slice and
// fills elevation gaps so that 3D distance never sees a bogus zero step.
func collectPoints(doc *gogpx.GPX) ([]Point, error) {
	var points []Point

	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			for _, pt := range seg.Points {
				p := Point{
					Timestamp: pt.Timestamp.UTC(),
					Lat:       pt.GetLatitude(),
					Lon:       pt.GetLongitude(),
				}
				if ele := pt.GetElevation(); ele.NotNull() {
					p.Elevation = ele.Value()
					p.HasElevation = true
				}
				points = append(points, p)
			}
		}
	}

	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	fillElevation(points)
	return points, nil
}

// fillElevation forward-fills missing elevations from the previous reading,
// then backfills any leading gap from the first reading. A file with no
// elevation at all is left untouched (every HasElevation stays false).
func fillElevation(points []Point) {
	lastKnown := -1
	for i := range points {
		if points[i].HasElevation {
			if lastKnown == -1 && i > 0 {
				for k := 0; k < i; k++ {
					points[k].Elevation = points[i].Elevation
					points[k].HasElevation = true
				}
			}
			lastKnown = i
			continue
		}
		if lastKnown >= 0 {
			points[i].Elevation = points[lastKnown].Elevation
			points[i].HasElevation = true
		}
	}
}
