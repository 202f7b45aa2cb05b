// Package image provides utilities for enumerating, classifying and loading icon images.
package image

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// Kind is the conversion path chosen for a file from its extension.
type Kind int

const (
	// KindUnsupported is any extension with no conversion path.
	KindUnsupported Kind = iota
	// KindSVG is a vector image that must be rasterised.
	KindSVG
	// KindJPEG is a .jpg or .jpeg raster image that must be re-encoded.
	KindJPEG
	// KindPNG is used as-is.
	KindPNG
)

// String returns the human-readable label used in status lines.
func (k Kind) String() string {
	switch k {
	case KindSVG:
		return "SVG"
	case KindJPEG:
		return "JPEG/JPG"
	case KindPNG:
		return "PNG"
	default:
		return "unsupported"
	}
}

// Classify returns the Kind for path based on its extension, ignoring case.
func Classify(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return KindSVG
	case ".jpg", ".jpeg":
		return KindJPEG
	case ".png":
		return KindPNG
	default:
		return KindUnsupported
	}
}

// File is a single directory entry queued for processing.
type File struct {
	Path string
	Name string
	Kind Kind
}

// ScanDirectory lists the files directly inside dirPath, classified by extension.
// It does not recurse into subdirectories, but follows symlinks. Entries that
// cannot be stat'd, such as dangling symlinks, are still returned so the caller
// sees them fail. Entries are returned in lexical order of their names.
func ScanDirectory(dirPath string) ([]File, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		// Stat the target so symlinks to directories are skipped too.
		info, err := os.Stat(fullPath)
		if (err == nil && info.IsDir()) || (err != nil && entry.IsDir()) {
			continue
		}

		files = append(files, File{
			Path: fullPath,
			Name: entry.Name(),
			Kind: Classify(entry.Name()),
		})
	}

	return files, nil
}

// Loader handles loading images.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - paths come from the scanned input directory
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// Normalize copies img into a non-premultiplied RGBA buffer so that every
// pixel is addressable as R, G, B, A bytes in display order, whatever
// colour model the decoder produced (YCbCr, paletted, grey, 16-bit...).
// The returned image's bounds start at the origin.
func Normalize(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Dimensions returns the width and height of an image without fully decoding it.
func Dimensions(path string) (width, height int, err error) {
	file, err := os.Open(path) // #nosec G304 - paths come from the scanned input directory
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image config: %w", err)
	}

	return config.Width, config.Height, nil
}
