package track

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/aldavis0101/gpx-interval/internal/gpx"
)

var testStart = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

// linearTrack builds n points heading north at steady pace, one per second.
func linearTrack(n int) []gpx.Point {
	points := make([]gpx.Point, n)
	for i := range points {
		points[i] = gpx.Point{
			Timestamp:    testStart.Add(time.Duration(i) * time.Second),
			Lat:          46.0 + float64(i)*0.0001,
			Lon:          7.0,
			Elevation:    1000,
			HasElevation: true,
		}
	}
	return points
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, Mode3D); !errors.Is(err, ErrEmptyTrack) {
		t.Errorf("Expected ErrEmptyTrack, got %v", err)
	}

	if _, err := New(linearTrack(1), Mode3D); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("Expected ErrTooFewPoints, got %v", err)
	}

	points := linearTrack(3)
	points[2].Timestamp = testStart.Add(-time.Second)
	if _, err := New(points, Mode3D); !errors.Is(err, ErrUnorderedTrack) {
		t.Errorf("Expected ErrUnorderedTrack, got %v", err)
	}
}

func TestCumulativeArraysNonDecreasing(t *testing.T) {
	tr, err := New(linearTrack(50), Mode3D)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if tr.cumTime[0] != 0 || tr.cumDist[0] != 0 {
		t.Errorf("Expected zero origin, got cumTime[0]=%f cumDist[0]=%f", tr.cumTime[0], tr.cumDist[0])
	}

	for i := 1; i < tr.Len(); i++ {
		if tr.cumTime[i] < tr.cumTime[i-1] {
			t.Errorf("cumTime decreased at %d: %f < %f", i, tr.cumTime[i], tr.cumTime[i-1])
		}
		if tr.cumDist[i] < tr.cumDist[i-1] {
			t.Errorf("cumDist decreased at %d: %f < %f", i, tr.cumDist[i], tr.cumDist[i-1])
		}
	}
}

func TestDuplicateTimestampsAllowed(t *testing.T) {
	points := linearTrack(4)
	points[2].Timestamp = points[1].Timestamp // zero-duration segment

	tr, err := New(points, Mode3D)
	if err != nil {
		t.Fatalf("Duplicate timestamps should not fail: %v", err)
	}

	elapsed, err := tr.TimeBetween(1, 2)
	if err != nil {
		t.Fatalf("TimeBetween failed: %v", err)
	}
	if elapsed != 0 {
		t.Errorf("Expected zero-duration segment, got %f", elapsed)
	}
}

func TestHaversineDistance(t *testing.T) {
	// 0.1 degree of latitude is roughly 11.1 km
	dist := haversineDistance(46.0, 7.0, 46.1, 7.0)

	expected := 11100.0
	tolerance := 500.0

	if math.Abs(dist-expected) > tolerance {
		t.Errorf("Haversine distance incorrect: got %.0fm, expected ~%.0fm", dist, expected)
	}
}

func TestTimeAndDistanceBetween(t *testing.T) {
	tr, err := New(linearTrack(10), Mode3D)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	elapsed, err := tr.TimeBetween(2, 7)
	if err != nil {
		t.Fatalf("TimeBetween failed: %v", err)
	}
	if elapsed != 5.0 {
		t.Errorf("Expected 5s between points 2 and 7, got %f", elapsed)
	}

	dist, err := tr.DistanceBetween(0, 9)
	if err != nil {
		t.Fatalf("DistanceBetween failed: %v", err)
	}
	// 9 steps of 0.0001 degree latitude, ~11.1m each
	if math.Abs(dist-100.0) > 5.0 {
		t.Errorf("Expected ~100m over the track, got %.1fm", dist)
	}

	full, _ := tr.DistanceBetween(0, 9)
	if full != tr.TotalDistance() {
		t.Errorf("DistanceBetween(0, N-1) should equal TotalDistance")
	}
}

func TestIndexOutOfRange(t *testing.T) {
	tr, err := New(linearTrack(5), Mode3D)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cases := [][2]int{{-1, 2}, {3, 1}, {0, 5}, {5, 5}}
	for _, c := range cases {
		if _, err := tr.TimeBetween(c[0], c[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("TimeBetween(%d, %d): expected ErrIndexOutOfRange, got %v", c[0], c[1], err)
		}
		if _, err := tr.DistanceBetween(c[0], c[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("DistanceBetween(%d, %d): expected ErrIndexOutOfRange, got %v", c[0], c[1], err)
		}
	}
}

func Test2DVs3DDistance(t *testing.T) {
	points := linearTrack(10)
	for i := range points {
		points[i].Elevation = 1000 + float64(i)*10 // 10m climb per ~11m step
	}

	tr2d, err := New(points, Mode2D)
	if err != nil {
		t.Fatalf("New 2D failed: %v", err)
	}
	tr3d, err := New(points, Mode3D)
	if err != nil {
		t.Fatalf("New 3D failed: %v", err)
	}

	if tr3d.TotalDistance() <= tr2d.TotalDistance() {
		t.Errorf("3D distance (%.1fm) should exceed 2D distance (%.1fm) on a climb",
			tr3d.TotalDistance(), tr2d.TotalDistance())
	}
}

func Test3DWithoutElevationFallsBackTo2D(t *testing.T) {
	points := linearTrack(5)
	for i := range points {
		points[i].HasElevation = false
	}

	tr3d, err := New(points, Mode3D)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	tr2d, err := New(points, Mode2D)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if tr3d.TotalDistance() != tr2d.TotalDistance() {
		t.Errorf("Without elevation data 3D mode should match 2D: %.3f vs %.3f",
			tr3d.TotalDistance(), tr2d.TotalDistance())
	}
}
