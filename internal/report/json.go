package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/aldavis0101/gpx-interval/internal/interval"
	"github.com/aldavis0101/gpx-interval/internal/track"
)

// Run is the machine-readable output of one invocation.
type Run struct {
	File          string           `json:"file"`
	Points        int              `json:"points"`
	DistanceMode  string           `json:"distance_mode"`
	StartTime     time.Time        `json:"start_time"`
	TotalDistance float64          `json:"total_distance_m"`
	TotalTime     float64          `json:"total_time_sec"`
	Intervals     []IntervalRecord `json:"intervals"`
}

// IntervalRecord is the JSON form of one spec's outcome. Achievable gates
// the result fields: when false they hold zero values and carry no meaning.
// The numeric fields are always serialized, since zero is a legitimate
// result value (a window starting at the first point, or a zero-duration
// window from duplicate timestamps).
type IntervalRecord struct {
	Spec       string     `json:"spec"`
	Target     float64    `json:"target"`
	TargetUnit string     `json:"target_unit"`
	Achievable bool       `json:"achievable"`
	StartIndex int        `json:"start_index"`
	EndIndex   int        `json:"end_index"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	StartSec   float64    `json:"start_offset_sec"`
	EndSec     float64    `json:"end_offset_sec"`
	Elapsed    float64    `json:"elapsed_sec"`
	Distance   float64    `json:"distance_m"`
	SpeedMS    float64    `json:"speed_ms"`
	SpeedMph   float64    `json:"speed_mph"`
}

// BuildRun assembles the JSON output. Results must parallel specs; a nil
// entry marks a spec the track could not satisfy.
func BuildRun(filename string, tr *track.Track, specs []interval.Spec, results []*interval.Result) Run {
	run := Run{
		File:          filename,
		Points:        tr.Len(),
		DistanceMode:  tr.Mode().String(),
		StartTime:     tr.Start().Timestamp,
		TotalDistance: tr.TotalDistance(),
		TotalTime:     tr.TotalTime(),
		Intervals:     make([]IntervalRecord, 0, len(specs)),
	}

	for i, spec := range specs {
		rec := IntervalRecord{
			Spec:       spec.String(),
			Target:     spec.Target,
			TargetUnit: unitForTarget(spec),
		}
		if i < len(results) && results[i] != nil {
			res := results[i]
			startTime := res.StartPoint.Timestamp
			endTime := res.EndPoint.Timestamp
			rec.Achievable = true
			rec.StartIndex = res.StartIndex
			rec.EndIndex = res.EndIndex
			rec.StartTime = &startTime
			rec.EndTime = &endTime
			rec.StartSec = res.StartOffset
			rec.EndSec = res.EndOffset
			rec.Elapsed = res.Elapsed
			rec.Distance = res.Distance
			rec.SpeedMS = res.Speed
			rec.SpeedMph = res.Speed * metersPerSecToMph
		}
		run.Intervals = append(run.Intervals, rec)
	}

	return run
}

// WriteJSON writes the run as indented JSON.
func WriteJSON(w io.Writer, run Run) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func unitForTarget(spec interval.Spec) string {
	if spec.Mode == interval.ByDistance {
		return "m"
	}
	return "sec"
}
