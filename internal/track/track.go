// Package track turns an ordered sequence of GPS points into a model with
// O(1) cumulative distance and time lookups between any two indices.
package track

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aldavis0101/gpx-interval/internal/gpx"
)

var (
	// ErrEmptyTrack is returned when a track is built from zero points.
	ErrEmptyTrack = errors.New("track contains no points")

	// ErrTooFewPoints is returned when fewer than two points are available;
	// no interval can be formed from a single fix.
	ErrTooFewPoints = errors.New("track needs at least two points")

	// ErrUnorderedTrack is returned when timestamps decrease. Out-of-order
	// data is a file integrity problem, not something to repair silently.
	ErrUnorderedTrack = errors.New("track points are not in timestamp order")

	// ErrIndexOutOfRange is returned by the range queries for indices
	// outside 0 <= i <= j < Len().
	ErrIndexOutOfRange = errors.New("point index out of range")
)

// DistanceMode selects whether altitude contributes to step distances.
type DistanceMode int

const (
	// Mode3D combines horizontal distance with the altitude delta.
	Mode3D DistanceMode = iota
	// Mode2D ignores altitude entirely. Useful for e.g. sailing, where
	// noisy GPS altitude would skew distances.
	Mode2D
)

func (m DistanceMode) String() string {
	if m == Mode2D {
		return "2d"
	}
	return "3d"
}

// Track owns an ordered point sequence plus cumulative time and distance
// arrays built once at construction. Read-only after New returns.
type Track struct {
	points  []gpx.Point
	cumTime []float64 // seconds since point 0, cumTime[0] = 0
	cumDist []float64 // meters since point 0, cumDist[0] = 0
	mode    DistanceMode
}

// New builds a Track from points in non-decreasing timestamp order.
// Duplicate timestamps are allowed; they yield zero-duration segments.
func New(points []gpx.Point, mode DistanceMode) (*Track, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTrack
	}
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}

	cumTime := make([]float64, len(points))
	cumDist := make([]float64, len(points))

	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if cur.Timestamp.Before(prev.Timestamp) {
			return nil, fmt.Errorf("%w: point %d (%s) before point %d (%s)",
				ErrUnorderedTrack,
				i, cur.Timestamp.Format(time.RFC3339),
				i-1, prev.Timestamp.Format(time.RFC3339))
		}
		cumTime[i] = cumTime[i-1] + cur.Timestamp.Sub(prev.Timestamp).Seconds()
		cumDist[i] = cumDist[i-1] + stepDistance(prev, cur, mode)
	}

	return &Track{
		points:  points,
		cumTime: cumTime,
		cumDist: cumDist,
		mode:    mode,
	}, nil
}

// Len returns the number of points.
func (t *Track) Len() int { return len(t.points) }

// Mode returns the distance mode the track was built with.
func (t *Track) Mode() DistanceMode { return t.mode }

// Point returns the point at index i. The index must be valid.
func (t *Track) Point(i int) gpx.Point { return t.points[i] }

// Start returns the first point of the track.
func (t *Track) Start() gpx.Point { return t.points[0] }

// TotalTime returns the elapsed seconds over the whole track.
func (t *Track) TotalTime() float64 { return t.cumTime[len(t.cumTime)-1] }

// TotalDistance returns the distance in meters over the whole track.
func (t *Track) TotalDistance() float64 { return t.cumDist[len(t.cumDist)-1] }

// TimeBetween returns the elapsed seconds from point i to point j.
func (t *Track) TimeBetween(i, j int) (float64, error) {
	if err := t.checkRange(i, j); err != nil {
		return 0, err
	}
	return t.cumTime[j] - t.cumTime[i], nil
}

// DistanceBetween returns the meters traveled from point i to point j.
func (t *Track) DistanceBetween(i, j int) (float64, error) {
	if err := t.checkRange(i, j); err != nil {
		return 0, err
	}
	return t.cumDist[j] - t.cumDist[i], nil
}

func (t *Track) checkRange(i, j int) error {
	if i < 0 || j < i || j >= len(t.points) {
		return fmt.Errorf("%w: [%d, %d] with %d points", ErrIndexOutOfRange, i, j, len(t.points))
	}
	return nil
}

// stepDistance computes the distance of one segment. In 3D mode the
// altitude delta is combined with the horizontal distance Pythagorean-style.
func stepDistance(a, b gpx.Point, mode DistanceMode) float64 {
	horizontal := haversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
	if mode == Mode2D || !a.HasElevation || !b.HasElevation {
		return horizontal
	}

	vertical := math.Abs(b.Elevation - a.Elevation)
	return math.Sqrt(horizontal*horizontal + vertical*vertical)
}

// haversineDistance calculates the great-circle distance in meters.
func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // meters

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
