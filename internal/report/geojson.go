package report

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/aldavis0101/gpx-interval/internal/interval"
	"github.com/aldavis0101/gpx-interval/internal/track"
)

// WriteGeoJSON exports the winning windows as a FeatureCollection with one
// LineString per achieved spec, for inspection in any GeoJSON viewer.
// Nil results (unreachable specs) are skipped.
func WriteGeoJSON(w io.Writer, tr *track.Track, results []*interval.Result) error {
	fc := geojson.NewFeatureCollection()

	for _, res := range results {
		if res == nil {
			continue
		}

		line := make(orb.LineString, 0, res.EndIndex-res.StartIndex+1)
		for i := res.StartIndex; i <= res.EndIndex; i++ {
			p := tr.Point(i)
			line = append(line, orb.Point{p.Lon, p.Lat})
		}

		feature := geojson.NewFeature(line)
		feature.Properties["spec"] = res.Spec.String()
		feature.Properties["start_index"] = res.StartIndex
		feature.Properties["end_index"] = res.EndIndex
		feature.Properties["elapsed_sec"] = res.Elapsed
		feature.Properties["distance_m"] = res.Distance
		feature.Properties["speed_ms"] = res.Speed
		fc.Append(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}

	_, err = w.Write(append(data, '\n'))
	return err
}
