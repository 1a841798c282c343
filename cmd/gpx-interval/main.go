package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aldavis0101/gpx-interval/internal/config"
	"github.com/aldavis0101/gpx-interval/internal/gpx"
	"github.com/aldavis0101/gpx-interval/internal/interval"
	"github.com/aldavis0101/gpx-interval/internal/report"
	"github.com/aldavis0101/gpx-interval/internal/track"
)

// defaultIntervals is used when neither flags nor the config file name any.
var defaultIntervals = []string{"100m", "1mi", "5mi"}

// intervalList collects repeatable -i/-interval flags.
type intervalList []string

func (l *intervalList) String() string { return strings.Join(*l, ",") }

func (l *intervalList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	var intervals intervalList
	var (
		use2D       = flag.Bool("2d", false, "Ignore GPS altitude when computing distances")
		configFile  = flag.String("config", "", "Optional YAML config file with run defaults")
		jsonOut     = flag.Bool("json", false, "Print results as JSON instead of text")
		geojsonFile = flag.String("geojson", "", "Write winning intervals to a GeoJSON file")
		version     = flag.Bool("version", false, "Show version information")
	)
	flag.Var(&intervals, "i", "Target interval, e.g. 100m, 1mi, 30sec (repeatable)")
	flag.Var(&intervals, "interval", "Alias for -i")

	flag.Usage = func() {
		fmt.Printf("gpx-interval - find the best interval within a GPX track\n\n")
		fmt.Printf("usage: gpx-interval [options] <file>.gpx\n\n")
		fmt.Printf("examples:\n")
		fmt.Printf("  gpx-interval ride.gpx\n")
		fmt.Printf("  gpx-interval -i 1mi -i 5min ride.gpx\n")
		fmt.Printf("  gpx-interval -2d -i 100m sail.gpx\n\n")
		fmt.Printf("units: %s\n\n", interval.RecognizedUnits())
		fmt.Printf("options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Println("gpx-interval v1.0.0 - best-interval finder for GPX tracks")
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	filename := flag.Arg(0)

	// Config file fills in whatever the flags left unset.
	if *configFile != "" {
		cfg, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if len(intervals) == 0 {
			intervals = cfg.Intervals
		}
		if cfg.Use2D {
			*use2D = true
		}
		if *geojsonFile == "" {
			*geojsonFile = cfg.GeoJSON
		}
	}
	if len(intervals) == 0 {
		intervals = defaultIntervals
	}

	// Validate specs before touching the file; a bad unit should fail fast.
	specs, err := interval.ParseSpecs(intervals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if !*jsonOut {
		fmt.Printf("📖 Reading GPX file: %s\n", filename)
	}
	points, err := gpx.LoadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading GPX file: %v\n", err)
		os.Exit(1)
	}

	mode := track.Mode3D
	if *use2D {
		mode = track.Mode2D
	}

	tr, err := track.New(points, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building track: %v\n", err)
		os.Exit(1)
	}

	results := make([]*interval.Result, len(specs))
	for i, spec := range specs {
		res, err := interval.Find(tr, spec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error searching interval %s: %v\n", spec, err)
			os.Exit(1)
		}
		results[i] = res
	}

	if *jsonOut {
		run := report.BuildRun(filename, tr, specs, results)
		if err := report.WriteJSON(os.Stdout, run); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(1)
		}
	} else {
		loc := report.Location(tr.Start().Lat, tr.Start().Lon)
		report.PrintSummary(os.Stdout, filename, tr, loc)
		for i, spec := range specs {
			report.PrintResult(os.Stdout, spec, results[i], loc)
		}
	}

	if *geojsonFile != "" {
		f, err := os.Create(*geojsonFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating GeoJSON file: %v\n", err)
			os.Exit(1)
		}
		if err := report.WriteGeoJSON(f, tr, results); err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "Error writing GeoJSON: %v\n", err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing GeoJSON file: %v\n", err)
			os.Exit(1)
		}
		if !*jsonOut {
			fmt.Printf("💾 Wrote winning intervals to %s\n", *geojsonFile)
		}
	}
}
