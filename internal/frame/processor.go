package frame

import (
	"fmt"
	"image"

	"perfskew/internal/imaging"
	"perfskew/internal/perf"
)

// Config holds the per-frame analysis parameters. The zero value is
// not usable; use Defaults as a starting point.
type Config struct {
	// PerfLinePct is the fraction of the image height from the top and
	// bottom used as the probe rows when looking for the perfs.
	// Must be in (0, 0.5).
	PerfLinePct float64

	// ColorTolerance is the per-channel fraction used when matching
	// colors against the baselight samples. Must be in [0, 1].
	ColorTolerance float64
}

// Defaults returns the tuning that works for typical film scans.
func Defaults() Config {
	return Config{PerfLinePct: 0.10, ColorTolerance: 0.10}
}

// Validate reports whether the configuration is usable. It is checked
// once before any frame is processed; a bad configuration is the only
// fault that aborts a batch.
func (c Config) Validate() error {
	if c.PerfLinePct <= 0 || c.PerfLinePct >= 0.5 {
		return fmt.Errorf("perf line percentage %g outside (0, 0.5)", c.PerfLinePct)
	}
	if c.ColorTolerance < 0 || c.ColorTolerance > 1 {
		return fmt.Errorf("color tolerance %g outside [0, 1]", c.ColorTolerance)
	}
	return nil
}

// Result is the immutable per-file outcome of frame analysis.
type Result struct {
	File          string  `json:"file"`
	Success       bool    `json:"success"`
	Angle         float64 `json:"angle,omitempty"`
	AnnotatedFile string  `json:"annotated_file,omitempty"`
	Message       string  `json:"message,omitempty"`
}

// Renderer writes an annotated copy of an analyzed frame and returns
// the output path. It is a purely diagnostic capability: rendering
// never changes the numeric result. A nil Renderer disables
// annotation.
type Renderer interface {
	Render(img image.Image, upper, lower *perf.EdgeMap, corners perf.CornerPair, angle float64, file string) (string, error)
}

// Processor analyzes single frames. It carries only read-only
// configuration and is safe for concurrent use by the batch workers.
type Processor struct {
	cfg      Config
	renderer Renderer
}

// NewProcessor builds a Processor. renderer may be nil, in which case
// no annotated output is produced.
func NewProcessor(cfg Config, renderer Renderer) *Processor {
	return &Processor{cfg: cfg, renderer: renderer}
}

// Process analyzes one frame file and returns its result.
//
// The steps are linear, with no retries:
//
//  1. Load the image and compute the two probe rows at PerfLinePct and
//     1-PerfLinePct of the height.
//  2. Sample the baselight color at column 0 of each probe row; if the
//     two samples disagree beyond tolerance the frame is rejected
//     (the probes are probably not both on perfs).
//  3. Trace both perf regions, extract the corner pair, compute the
//     angle.
//  4. If a renderer is configured, write an annotated copy.
//
// Every fault — unreadable file, fill leak, degenerate edge, even a
// panic — is contained here and surfaced as a failure Result; Process
// never lets a single bad frame abort the batch.
func (p *Processor) Process(file string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = failure(file, fmt.Sprintf("panic: %v", r))
		}
	}()

	img, err := imaging.Load(file)
	if err != nil {
		return failure(file, err.Error())
	}

	_, height := imaging.Dimensions(img)
	upperLine := int(float64(height) * p.cfg.PerfLinePct)
	lowerLine := int(float64(height) * (1 - p.cfg.PerfLinePct))

	upperBase, err := imaging.SampleColor(img, 0, upperLine)
	if err != nil {
		return failure(file, err.Error())
	}
	lowerBase, err := imaging.SampleColor(img, 0, lowerLine)
	if err != nil {
		return failure(file, err.Error())
	}

	// If the two baselight colors differ we are probably not looking
	// at two perfs; skip the frame rather than trace garbage.
	if !imaging.SameColor(upperBase, lowerBase, p.cfg.ColorTolerance) {
		return failure(file, fmt.Sprintf("the baselight colors aren't the same: %s, %s", upperBase, lowerBase))
	}

	upperEdges, err := perf.TraceRegion(img, upperBase, 0, upperLine, p.cfg.ColorTolerance)
	if err != nil {
		return failure(file, fmt.Sprintf("upper perf: %v", err))
	}
	lowerEdges, err := perf.TraceRegion(img, lowerBase, 0, lowerLine, p.cfg.ColorTolerance)
	if err != nil {
		return failure(file, fmt.Sprintf("lower perf: %v", err))
	}

	corners, err := perf.ExtractCorners(upperEdges, lowerEdges)
	if err != nil {
		return failure(file, err.Error())
	}

	result = Result{
		File:    file,
		Success: true,
		Angle:   perf.Angle(corners),
	}

	if p.renderer != nil {
		out, err := p.renderer.Render(img, upperEdges, lowerEdges, corners, result.Angle, file)
		if err != nil {
			return failure(file, fmt.Sprintf("annotate: %v", err))
		}
		result.AnnotatedFile = out
	}

	return result
}

func failure(file, message string) Result {
	return Result{File: file, Message: message}
}
