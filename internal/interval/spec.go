// Package interval defines interval specifications and the search engine
// that finds the best matching window within a track.
package interval

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidSpec is returned for strings that don't look like "100m",
	// "1mi", "30sec" etc.
	ErrInvalidSpec = errors.New("interval specification must be <number><unit>")

	// ErrInvalidUnit is returned when the magnitude parses but the unit
	// token is not recognized.
	ErrInvalidUnit = errors.New("unrecognized interval unit")
)

// Mode selects the search criterion.
type Mode int

const (
	// ByDistance finds the fastest window covering at least the target distance.
	ByDistance Mode = iota
	// ByTime finds the longest distance covered within the target duration.
	ByTime
)

// Unit is a closed enumeration of recognized interval units.
type Unit int

const (
	Feet Unit = iota
	Yards
	Meters
	Kilometers
	Miles
	NauticalMiles
	Seconds
	Minutes
	Hours
)

// unitInfo binds a unit token to its mode and its normalization factor
// (meters per unit for distances, seconds per unit for durations).
type unitInfo struct {
	unit   Unit
	mode   Mode
	factor float64
}

var unitTable = map[string]unitInfo{
	"ft":  {Feet, ByDistance, 0.3048},
	"yd":  {Yards, ByDistance, 0.9144},
	"m":   {Meters, ByDistance, 1},
	"km":  {Kilometers, ByDistance, 1000},
	"mi":  {Miles, ByDistance, 1609.344},
	"nm":  {NauticalMiles, ByDistance, 1852},
	"sec": {Seconds, ByTime, 1},
	"min": {Minutes, ByTime, 60},
	"hr":  {Hours, ByTime, 3600},
}

var unitTokens = map[Unit]string{
	Feet:          "ft",
	Yards:         "yd",
	Meters:        "m",
	Kilometers:    "km",
	Miles:         "mi",
	NauticalMiles: "nm",
	Seconds:       "sec",
	Minutes:       "min",
	Hours:         "hr",
}

func (u Unit) String() string { return unitTokens[u] }

// FromMeters converts a distance in meters into this unit.
// Only meaningful for distance units.
func (u Unit) FromMeters(m float64) float64 {
	return m / unitTable[unitTokens[u]].factor
}

var specPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)([a-z]+)$`)

// Spec is one parsed interval request, normalized to meters or seconds.
type Spec struct {
	Mode      Mode
	Magnitude float64 // as written, in Unit
	Unit      Unit
	Target    float64 // meters (ByDistance) or seconds (ByTime)
}

// ParseSpec parses a specification like "100m", "1mi", "2.5km" or "30sec".
// Unknown units fail with ErrInvalidUnit before any track work happens.
func ParseSpec(s string) (Spec, error) {
	m := specPattern.FindStringSubmatch(s)
	if m == nil {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidSpec, s)
	}

	info, ok := unitTable[m[2]]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q (recognized: %s)", ErrInvalidUnit, m[2], RecognizedUnits())
	}

	magnitude, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidSpec, s)
	}

	return Spec{
		Mode:      info.mode,
		Magnitude: magnitude,
		Unit:      info.unit,
		Target:    magnitude * info.factor,
	}, nil
}

// ParseSpecs parses a list of specifications, stopping at the first error.
func ParseSpecs(strs []string) ([]Spec, error) {
	specs := make([]Spec, 0, len(strs))
	for _, s := range strs {
		spec, err := ParseSpec(s)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (s Spec) String() string {
	return strconv.FormatFloat(s.Magnitude, 'f', -1, 64) + s.Unit.String()
}

// RecognizedUnits lists all valid unit tokens for error messages and usage text.
func RecognizedUnits() string {
	return "ft, yd, m, km, mi, nm (distance); sec, min, hr (time)"
}
