package interval

import (
	"github.com/aldavis0101/gpx-interval/internal/gpx"
	"github.com/aldavis0101/gpx-interval/internal/track"
)

// Result describes the best window found for one Spec. It is an independent
// value with no reference back to the track.
type Result struct {
	Spec        Spec
	StartIndex  int
	EndIndex    int
	StartOffset float64 // seconds from track start to StartPoint
	EndOffset   float64 // seconds from track start to EndPoint
	Elapsed     float64 // seconds
	Distance    float64 // meters
	Speed       float64 // m/s; 0 when Elapsed is 0 (duplicate timestamps)
	StartPoint  gpx.Point
	EndPoint    gpx.Point
}

// Find locates the optimal contiguous window for the given spec.
// It returns nil when the track cannot satisfy the spec: total distance
// below a distance target, or no window containing at least one segment
// fits inside a time target. A nil result is a normal outcome, not an error.
//
// Both scans move their two indices forward only, so each call is O(N).
// Correctness relies on cumTime and cumDist being non-decreasing, which
// track.New guarantees.
func Find(tr *track.Track, spec Spec) (*Result, error) {
	if spec.Mode == ByTime {
		return findFarthest(tr, spec)
	}
	return findFastest(tr, spec)
}

// findFastest finds the minimum-elapsed window covering at least the target
// distance. Ties keep the earliest start.
//
// Candidate starts run through index n-3: the final segment never opens a
// window of its own, except on a two-point track where it is the only
// window there is.
func findFastest(tr *track.Track, spec Spec) (*Result, error) {
	n := tr.Len()
	if tr.TotalDistance() < spec.Target {
		return nil, nil
	}

	lastStart := n - 2 // exclusive
	if lastStart < 1 {
		lastStart = 1
	}

	var best *Result
	j := 1
	for i := 0; i < lastStart; i++ {
		if j <= i {
			j = i + 1
		}
		// Advance j to the first index covering the target from i. Later
		// starts need an equal or later j, so j never moves backward.
		reached := false
		for j < n {
			dist, err := tr.DistanceBetween(i, j)
			if err != nil {
				return nil, err
			}
			if dist < spec.Target {
				j++
				continue
			}
			elapsed, err := tr.TimeBetween(i, j)
			if err != nil {
				return nil, err
			}
			if best == nil || elapsed < best.Elapsed {
				best = newResult(tr, spec, i, j, elapsed, dist)
			}
			reached = true
			// Keep j where it is: [i+1, j] may also cover the target.
			break
		}
		if !reached {
			// Even the suffix from i falls short; shorter suffixes will too.
			break
		}
	}

	return best, nil
}

// findFarthest finds the maximum-distance window whose duration does not
// exceed the target. Ties keep the earliest start. When the whole track is
// shorter than the target the windows simply run to the last point.
func findFarthest(tr *track.Track, spec Spec) (*Result, error) {
	n := tr.Len()

	var best *Result
	j := 0
	for i := 0; i+1 < n; i++ {
		if j < i {
			j = i
		}
		// Advance j to the last index still within the time budget.
		// Shrinking the start can only shrink the window's duration, so the
		// previous j is always still valid for the next i.
		for j+1 < n {
			elapsed, err := tr.TimeBetween(i, j+1)
			if err != nil {
				return nil, err
			}
			if elapsed > spec.Target {
				break
			}
			j++
		}
		if j == i {
			// Not even one segment fits; the next start may fare better.
			continue
		}

		dist, err := tr.DistanceBetween(i, j)
		if err != nil {
			return nil, err
		}
		if best == nil || dist > best.Distance {
			elapsed, err := tr.TimeBetween(i, j)
			if err != nil {
				return nil, err
			}
			best = newResult(tr, spec, i, j, elapsed, dist)
		}
	}

	return best, nil
}

func newResult(tr *track.Track, spec Spec, start, end int, elapsed, dist float64) *Result {
	speed := 0.0
	if elapsed > 0 {
		speed = dist / elapsed
	}
	startOffset, _ := tr.TimeBetween(0, start) // 0 <= start < Len always holds here
	return &Result{
		Spec:        spec,
		StartIndex:  start,
		EndIndex:    end,
		StartOffset: startOffset,
		EndOffset:   startOffset + elapsed,
		Elapsed:     elapsed,
		Distance:    dist,
		Speed:       speed,
		StartPoint:  tr.Point(start),
		EndPoint:    tr.Point(end),
	}
}
