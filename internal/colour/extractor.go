package colour

import (
	"errors"
	"fmt"
	"image"

	icon "github.com/jmylchreest/icontint/internal/image"
)

// DefaultColourCount is the number of dominant colours reported per image.
const DefaultColourCount = 3

// MaxColourCount bounds the cluster count accepted by the extractors.
const MaxColourCount = 256

// ErrLoad marks an extraction that failed because the image could not be loaded.
var ErrLoad = errors.New("unable to load image")

// Extractor defines the interface for color extraction algorithms.
type Extractor interface {
	// Extract extracts a color palette from an image.
	// The count parameter specifies the number of colors to extract.
	Extract(img image.Image, count int) (*Palette, error)
}

// Algorithm represents the color extraction algorithm type.
type Algorithm string

const (
	// AlgorithmKMeans reports the k cluster centres of the image's pixels.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmDominant reports the most prevalent colours, weighted by frequency.
	AlgorithmDominant Algorithm = "dominant"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmKMeans,
		AlgorithmDominant,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates a new Extractor based on the specified algorithm.
func NewExtractor(alg Algorithm) (Extractor, error) {
	switch alg {
	case AlgorithmKMeans:
		return NewKMeansExtractor(), nil
	case AlgorithmDominant:
		return NewDominantExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// ExtractorConfig holds configuration for color extraction.
type ExtractorConfig struct {
	Algorithm  Algorithm
	ColorCount int
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:  AlgorithmKMeans,
		ColorCount: DefaultColourCount,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	return validateCount(c.ColorCount)
}

func validateCount(count int) error {
	if count < 1 {
		return fmt.Errorf("color count must be at least 1, got %d", count)
	}
	if count > MaxColourCount {
		return fmt.Errorf("color count too large: %d (maximum: %d)", count, MaxColourCount)
	}
	return nil
}

// ExtractFile loads the image at path and extracts count colours from it.
// Load failures are wrapped with ErrLoad; the palette is nil in that case.
func ExtractFile(loader icon.Loader, extractor Extractor, path string, count int) (*Palette, error) {
	img, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w from %s: %w", ErrLoad, path, err)
	}
	return extractor.Extract(img, count)
}
