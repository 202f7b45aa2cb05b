// Package convert turns SVG and JPEG icons into PNG files written next to the source.
package convert

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	icon "github.com/jmylchreest/icontint/internal/image"
)

// DefaultSVGSize is the edge length used when an SVG declares no size.
const DefaultSVGSize = 512

// Converter writes PNG renditions of icon files.
type Converter struct {
	// DefaultSize is used for SVG documents without a viewBox or width/height.
	// Zero means DefaultSVGSize.
	DefaultSize int

	Logger hclog.Logger
}

// New returns a Converter with default settings. A nil logger discards output.
func New(logger hclog.Logger) *Converter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Converter{DefaultSize: DefaultSVGSize, Logger: logger}
}

// PNGPath returns the sibling .png path for src: same directory and base name.
func PNGPath(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".png"
}

// ToPNG converts src according to kind and returns the path of the PNG it wrote.
// Any existing file at that path is overwritten. The source is never modified.
func (c *Converter) ToPNG(src string, kind icon.Kind) (string, error) {
	dst := PNGPath(src)

	var err error
	switch kind {
	case icon.KindSVG:
		err = c.SVGToPNG(src, dst)
	case icon.KindJPEG:
		err = c.RasterToPNG(src, dst)
	default:
		return "", fmt.Errorf("%s: %w", src, ErrUnsupported)
	}
	if err != nil {
		return "", err
	}

	return dst, nil
}

// SVGToPNG rasterises the SVG at src at its intrinsic size and writes it to dst.
func (c *Converter) SVGToPNG(src, dst string) error {
	data, err := readSource(src)
	if err != nil {
		return err
	}

	svg, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return &Error{Op: OpDecode, Path: src, Err: err}
	}
	if len(svg.SVGPaths) == 0 && svg.ViewBox.W == 0 && svg.ViewBox.H == 0 {
		return &Error{Op: OpDecode, Path: src, Err: ErrNoSVGContent}
	}

	w, h := int(svg.ViewBox.W), int(svg.ViewBox.H)
	if w <= 0 || h <= 0 {
		size := c.DefaultSize
		if size <= 0 {
			size = DefaultSVGSize
		}
		w, h = size, size
		// Map user units 1:1 onto the default canvas.
		svg.ViewBox.W, svg.ViewBox.H = float64(w), float64(h)
	}
	c.Logger.Debug("rasterising svg", "path", src, "width", w, "height", h)

	rgba, err := rasterize(svg, w, h)
	if err != nil {
		return &Error{Op: OpRasterize, Path: src, Err: err}
	}

	return writePNG(dst, rgba)
}

// rasterize draws svg onto a w x h canvas. Panics raised inside the
// rasteriser on degenerate paths are reported as errors.
func rasterize(svg *oksvg.SvgIcon, w, h int) (img *image.RGBA, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("rasteriser panic: %v", r)
		}
	}()

	svg.SetTarget(0, 0, float64(w), float64(h))
	img = image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	svg.Draw(raster, 1.0)

	return img, nil
}

// RasterToPNG decodes the raster image at src and re-encodes it losslessly as PNG at dst.
func (c *Converter) RasterToPNG(src, dst string) error {
	data, err := readSource(src)
	if err != nil {
		return err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return &Error{Op: OpDecode, Path: src, Err: err}
	}
	c.Logger.Debug("decoded raster image", "path", src, "format", format, "bounds", img.Bounds().String())

	return writePNG(dst, img)
}

func readSource(src string) ([]byte, error) {
	data, err := os.ReadFile(src) // #nosec G304 - paths come from the scanned input directory
	if err != nil {
		return nil, &Error{Op: OpRead, Path: src, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &Error{Op: OpRead, Path: src, Err: ErrEmptySource}
	}
	return data, nil
}

// writePNG encodes into memory first so a failed encode leaves any existing dst untouched.
func writePNG(dst string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return &Error{Op: OpEncode, Path: dst, Err: err}
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil { // #nosec G306 - output icons are meant to be world-readable
		return &Error{Op: OpWrite, Path: dst, Err: err}
	}
	return nil
}
