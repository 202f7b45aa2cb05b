package colour

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	icon "github.com/jmylchreest/icontint/internal/image"
)

// KMeansExtractor implements color extraction using k-means clustering.
// Every pixel takes part; there is no subsampling and no fixed seed, so
// images with several equally good partitions may yield different palettes
// across runs.
type KMeansExtractor struct {
	partitioner kmeans.Kmeans
}

// NewKMeansExtractor creates a new KMeansExtractor with the clustering
// library's default initialisation and iteration policy.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		partitioner: kmeans.New(),
	}
}

// Extract returns exactly count cluster centres, truncated to integer RGB,
// in the order the clustering reports them. Weights are relative cluster sizes.
func (e *KMeansExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}

	dataset := pixelObservations(img)
	if len(dataset) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}
	dataset = padObservations(dataset, count)

	cc, err := e.partitioner.Partition(dataset, count)
	if err != nil {
		return nil, fmt.Errorf("k-means clustering failed: %w", err)
	}

	// Partition skips the final recenter when no point moved, which leaves
	// the random [0,1) seed in place for k=1.
	cc.Recenter()

	assigned := 0
	for _, c := range cc {
		assigned += len(c.Observations)
	}

	colors := make([]color.Color, len(cc))
	weights := make([]float64, len(cc))
	for i, c := range cc {
		colors[i] = centreToColor(c.Center)
		if assigned > 0 {
			weights[i] = float64(len(c.Observations)) / float64(assigned)
		}
	}

	return NewPaletteWithWeights(colors, weights), nil
}

// pixelObservations flattens img row-major into RGB points in [0,255].
// Alpha is ignored.
func pixelObservations(img image.Image) clusters.Observations {
	pix := icon.Normalize(img)
	b := pix.Bounds()

	dataset := make(clusters.Observations, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := pix.Pix[pix.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			p := row[x*4 : x*4+3]
			dataset = append(dataset, clusters.Coordinates{
				float64(p[0]),
				float64(p[1]),
				float64(p[2]),
			})
		}
	}
	return dataset
}

// padObservations repeats the dataset until it holds at least k points.
// Uniform repetition leaves every cluster mean unchanged.
func padObservations(dataset clusters.Observations, k int) clusters.Observations {
	if len(dataset) >= k {
		return dataset
	}
	padded := make(clusters.Observations, 0, k)
	for len(padded) < k {
		padded = append(padded, dataset...)
	}
	return padded
}

// centreToColor truncates a cluster centre to an opaque 8-bit colour.
func centreToColor(c clusters.Coordinates) color.NRGBA {
	return color.NRGBA{
		R: truncateChannel(c, 0),
		G: truncateChannel(c, 1),
		B: truncateChannel(c, 2),
		A: 255,
	}
}

func truncateChannel(c clusters.Coordinates, i int) uint8 {
	if i >= len(c) {
		return 0
	}
	v := c[i]
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
