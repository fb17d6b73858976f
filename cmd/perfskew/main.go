// Command perfskew detects the perforations in scanned film frame
// images and measures the skew angle introduced during digitization.
//
// For each frame it locates the upper and lower perf at the left edge,
// traces their boundaries, and computes the angle between the upper
// perf's top-right corner and the lower perf's bottom-right corner.
// A perfectly aligned frame reads 0 degrees.
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"runtime"

	"github.com/rs/zerolog"

	"perfskew/internal/annotate"
	"perfskew/internal/batch"
	"perfskew/internal/frame"
)

func main() {
	threads := flag.Int("threads", 1, "number of worker threads (0 = all CPUs)")
	minAngle := flag.Float64("min", 0, "minimum absolute angle to report (0 = report all)")
	outDir := flag.String("outdir", "", "output directory for annotated diagnostic images")
	tolerance := flag.Float64("color-tolerance", 0.10, "per-channel color tolerance for baselight matching")
	perfLinePct := flag.Float64("perf-line-pct", 0.10, "fraction from top and bottom for the perf probe rows")
	label := flag.String("label", "", "regular expression extracting the report label from each file path")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: perfskew [options] image...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := frame.Config{
		PerfLinePct:    *perfLinePct,
		ColorTolerance: *tolerance,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	var labelRE *regexp.Regexp
	if *label != "" {
		re, err := regexp.Compile(*label)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid label pattern")
		}
		labelRE = re
	}

	var renderer frame.Renderer
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("cannot create output directory")
		}
		renderer = annotate.New(*outDir)
	}

	workers := *threads
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	proc := frame.NewProcessor(cfg, renderer)
	results := batch.Run(files, workers, proc.Process)
	log.Info().Int("count", len(results)).Msg("processed files")

	kept := batch.Filter(results, batch.FilterOptions{MinAngle: *minAngle}, log)
	batch.SortByMagnitude(kept)

	summary := batch.Summarize(kept)
	log.Info().
		Int("count", summary.Count).
		Float64("mean_abs", summary.MeanAbs).
		Float64("stddev_abs", summary.StdDevAbs).
		Float64("max_abs", summary.MaxAbs).
		Msg("angle distribution")

	fmt.Println("Results:")
	fmt.Println("=========")
	for _, r := range kept {
		fmt.Printf("%s: %.3f\n", reportLabel(r.File, labelRE), r.Angle)
	}
}

// reportLabel derives the identifier printed for a file: the first
// match of the label pattern when one is configured (e.g. a barcode
// embedded in the file name), otherwise the full path.
func reportLabel(file string, re *regexp.Regexp) string {
	if re != nil {
		if m := re.FindString(file); m != "" {
			return m
		}
	}
	return file
}
