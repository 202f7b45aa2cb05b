// Package batch drives conversion and colour extraction over a directory of icons.
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/icontint/internal/colour"
	"github.com/jmylchreest/icontint/internal/convert"
	"github.com/jmylchreest/icontint/internal/image"
)

// DefaultDir is the input directory used when none is given.
const DefaultDir = "./images/icons"

// Converter produces a PNG rendition of a source file.
type Converter interface {
	ToPNG(src string, kind image.Kind) (string, error)
}

// Runner processes every file in one directory, one file at a time.
type Runner struct {
	Converter Converter
	Loader    image.Loader
	Extractor colour.Extractor

	// Colours is the cluster count k. Zero means colour.DefaultColourCount.
	Colours int
	Format  colour.Format

	// Preview appends ANSI swatches after each palette line.
	Preview bool

	Logger hclog.Logger
	Out    io.Writer
}

// NewRunner returns a Runner wired with the default converter, loader and
// k-means extractor, printing to out.
func NewRunner(out io.Writer, logger hclog.Logger) *Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{
		Converter: convert.New(logger.Named("convert")),
		Loader:    image.NewFileLoader(),
		Extractor: colour.NewKMeansExtractor(),
		Colours:   colour.DefaultColourCount,
		Format:    colour.FormatRGB,
		Logger:    logger,
		Out:       out,
	}
}

// Run lists dir once and processes each file in name order. Per-file
// failures are reported and skipped; only a failure to list dir is returned.
func (r *Runner) Run(dir string) (Summary, error) {
	var summary Summary

	files, err := image.ScanDirectory(dir)
	if err != nil {
		return summary, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	r.logger().Debug("scanned input directory", "dir", dir, "files", len(files))

	for _, f := range files {
		r.processFile(f, &summary)
	}

	return summary, nil
}

func (r *Runner) processFile(f image.File, summary *Summary) {
	summary.Total++
	log := r.logger().With("file", f.Name, "kind", f.Kind.String())
	log.Debug("processing file")

	switch f.Kind {
	case image.KindSVG, image.KindJPEG:
		dst, err := r.Converter.ToPNG(f.Path, f.Kind)
		if err != nil {
			summary.Failed++
			log.Error("conversion failed", "op", convertOp(err), "error", err)
			r.printf("Failed to convert %s to PNG: %s\n", f.Kind, f.Name)
			return
		}
		summary.Converted++
		r.printf("%s converted to PNG successfully: %s%s\n", f.Kind, filepath.Base(dst), sizeSuffix(dst))
		r.extract(dst, summary, log)

	case image.KindPNG:
		r.extract(f.Path, summary, log)

	default:
		summary.Unsupported++
		r.printf("Unsupported file format for %s\n", f.Name)
	}
}

func (r *Runner) extract(path string, summary *Summary, log hclog.Logger) {
	palette, err := colour.ExtractFile(r.loader(), r.extractor(), path, r.colours())
	if err != nil {
		log.Error("colour extraction failed", "path", path, "error", err)
		r.printf("Error: unable to load image from %s\n", path)
		return
	}

	summary.Extracted++
	line := palette.Line(r.Format)
	if r.Preview {
		line += "  " + palette.Swatches(9)
	}
	r.printf("Dominant colours of %s: %s\n", filepath.Base(path), line)
	log.Debug("extracted palette", "colours", palette.Len())
}

func (r *Runner) printf(format string, args ...any) {
	if r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, format, args...)
}

func (r *Runner) logger() hclog.Logger {
	if r.Logger == nil {
		return hclog.NewNullLogger()
	}
	return r.Logger
}

func (r *Runner) loader() image.Loader {
	if r.Loader == nil {
		return image.NewFileLoader()
	}
	return r.Loader
}

func (r *Runner) extractor() colour.Extractor {
	if r.Extractor == nil {
		return colour.NewKMeansExtractor()
	}
	return r.Extractor
}

func (r *Runner) colours() int {
	if r.Colours <= 0 {
		return colour.DefaultColourCount
	}
	return r.Colours
}

func convertOp(err error) string {
	var convErr *convert.Error
	if errors.As(err, &convErr) {
		return string(convErr.Op)
	}
	return "unknown"
}

// sizeSuffix returns " (<size>)" for an existing file, or "" if it cannot be stat'd.
func sizeSuffix(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return " (" + humanize.Bytes(uint64(info.Size())) + ")" // #nosec G115 - file sizes are non-negative
}
