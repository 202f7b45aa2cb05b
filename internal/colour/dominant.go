package colour

import (
	"fmt"
	"image"
	"image/color"

	"github.com/cenkalti/dominantcolor"
)

// DominantExtractor reports the most prevalent colours of an image, ordered
// by how much of the image they cover.
type DominantExtractor struct{}

// NewDominantExtractor creates a new DominantExtractor.
func NewDominantExtractor() *DominantExtractor {
	return &DominantExtractor{}
}

// Extract returns up to count colours. Images with fewer distinct colour
// groups than count yield a shorter palette.
func (e *DominantExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}

	found := dominantcolor.FindWeight(img, count)
	if len(found) == 0 {
		return nil, fmt.Errorf("no opaque pixels found in image")
	}

	colors := make([]color.Color, len(found))
	weights := make([]float64, len(found))
	for i, c := range found {
		colors[i] = color.NRGBA{R: c.RGBA.R, G: c.RGBA.G, B: c.RGBA.B, A: 255}
		weights[i] = c.Weight
	}

	return NewPaletteWithWeights(colors, weights), nil
}
