package batch

import (
	"math"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"perfskew/internal/frame"
)

// ProcessFunc analyzes one frame file. frame.Processor.Process
// satisfies this; tests substitute stubs.
type ProcessFunc func(file string) frame.Result

// Run applies process to every file and returns one result per file.
//
// With workers <= 1 the files are processed strictly sequentially in
// input order. Otherwise they are distributed across a fixed-size
// worker pool; each file is an independent unit of work with no shared
// mutable state, so results are collected in arbitrary completion
// order. Callers that need a stable order sort afterwards (see
// SortByMagnitude).
func Run(files []string, workers int, process ProcessFunc) []frame.Result {
	if workers <= 1 {
		results := make([]frame.Result, 0, len(files))
		for _, f := range files {
			results = append(results, process(f))
		}
		return results
	}

	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan string)
	out := make(chan frame.Result, len(files))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				out <- process(f)
			}
		}()
	}

	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()
	close(out)

	results := make([]frame.Result, 0, len(files))
	for r := range out {
		results = append(results, r)
	}
	return results
}

// FilterOptions controls the reporting filters applied after a run.
type FilterOptions struct {
	// MinAngle drops results whose absolute angle is below this value.
	// Zero or negative disables the filter.
	MinAngle float64
}

// Filter applies the reporting filters in order: failed results are
// dropped (logging their messages), then zero-angle results, then
// results below the minimum angle. A running count is logged after
// each stage.
func Filter(results []frame.Result, opts FilterOptions, log zerolog.Logger) []frame.Result {
	kept := make([]frame.Result, 0, len(results))
	for _, r := range results {
		if !r.Success {
			log.Warn().Str("file", r.File).Str("message", r.Message).Msg("frame failed")
			continue
		}
		kept = append(kept, r)
	}
	log.Info().Int("count", len(kept)).Msg("files left after filtering errors")

	straight := kept[:0]
	for _, r := range kept {
		if r.Angle != 0 {
			straight = append(straight, r)
		}
	}
	kept = straight
	log.Info().Int("count", len(kept)).Msg("files left after filtering straight images")

	if opts.MinAngle > 0 {
		above := kept[:0]
		for _, r := range kept {
			if math.Abs(r.Angle) >= opts.MinAngle {
				above = append(above, r)
			}
		}
		kept = above
		log.Info().Int("count", len(kept)).Float64("min", opts.MinAngle).Msg("files left after filtering small angles")
	}

	return kept
}

// SortByMagnitude orders results by descending absolute angle, the
// order used for final reporting (most skewed frames first).
func SortByMagnitude(results []frame.Result) {
	sort.Slice(results, func(i, j int) bool {
		return math.Abs(results[i].Angle) > math.Abs(results[j].Angle)
	})
}

// Summary describes the distribution of reported skew magnitudes.
type Summary struct {
	Count     int     `json:"count"`
	MeanAbs   float64 `json:"mean_abs"`
	StdDevAbs float64 `json:"stddev_abs"`
	MaxAbs    float64 `json:"max_abs"`
}

// Summarize computes distribution statistics over the absolute angles
// of the given (already filtered) results.
func Summarize(results []frame.Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}
	mags := make([]float64, len(results))
	maxAbs := 0.0
	for i, r := range results {
		mags[i] = math.Abs(r.Angle)
		if mags[i] > maxAbs {
			maxAbs = mags[i]
		}
	}
	s := Summary{
		Count:   len(results),
		MeanAbs: stat.Mean(mags, nil),
		MaxAbs:  maxAbs,
	}
	if len(mags) > 1 {
		s.StdDevAbs = stat.StdDev(mags, nil)
	}
	return s
}
