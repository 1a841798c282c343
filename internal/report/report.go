// Package report formats search results for humans and machines.
package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/ringsaturn/tzf"

	"github.com/aldavis0101/gpx-interval/internal/interval"
	"github.com/aldavis0101/gpx-interval/internal/track"
)

const metersPerSecToMph = 2.236936

// Location resolves the IANA timezone at the given coordinate so timestamps
// can be reported in track-local time. Falls back to UTC when the lookup
// fails (e.g. open ocean).
func Location(lat, lon float64) *time.Location {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return time.UTC
	}

	name := finder.GetTimezoneName(lon, lat)
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// PrintSummary writes the track header: date, size, total distance and time.
func PrintSummary(w io.Writer, filename string, tr *track.Track, loc *time.Location) {
	start := tr.Start().Timestamp.In(loc)

	fmt.Fprintf(w, "📊 Processed %d points from %s\n", tr.Len(), filename)
	fmt.Fprintf(w, "date: %s\n", start.Format("2006-01-02 15:04:05 (UTC-07:00, MST)"))
	fmt.Fprintf(w, "total distance: %.1f m (%s)\n", tr.TotalDistance(), tr.Mode())
	fmt.Fprintf(w, "total time: %.1f sec\n", tr.TotalTime())
}

// PrintResult writes one per-spec block. A nil result means the track could
// not satisfy the spec; that is reported, not treated as a failure.
func PrintResult(w io.Writer, spec interval.Spec, res *interval.Result, loc *time.Location) {
	if spec.Mode == interval.ByDistance {
		fmt.Fprintf(w, "\ntarget interval: %s (%.1f m):\n", spec, spec.Target)
	} else {
		fmt.Fprintf(w, "\ntarget interval: %s (%.1f sec):\n", spec, spec.Target)
	}

	if res == nil {
		fmt.Fprintf(w, "no interval found (track too short)\n")
		return
	}

	fmt.Fprintf(w, "start=%s (T+%s) (index=%d)\n",
		res.StartPoint.Timestamp.In(loc).Format("15:04:05"),
		formatOffset(res.StartOffset), res.StartIndex)
	fmt.Fprintf(w, "end=%s (T+%s) (index=%d)\n",
		res.EndPoint.Timestamp.In(loc).Format("15:04:05"),
		formatOffset(res.EndOffset), res.EndIndex)
	fmt.Fprintf(w, "time=%.2f sec\n", res.Elapsed)

	distUnit := spec.Unit
	if spec.Mode == interval.ByTime {
		distUnit = interval.Miles
	}
	fmt.Fprintf(w, "dist=%.1f m (%.3f %s)\n", res.Distance, distUnit.FromMeters(res.Distance), distUnit)
	fmt.Fprintf(w, "speed=%.2f m/s (%.2f mph)\n", res.Speed, res.Speed*metersPerSecToMph)
}

// formatOffset renders seconds since track start as HH:MM:SS.
func formatOffset(seconds float64) string {
	total := int(math.Round(seconds))
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
