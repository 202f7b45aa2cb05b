// Package colour provides dominant colour extraction and palette formatting.
package colour

import (
	"fmt"
	"image/color"
	"strings"
)

// Palette is an ordered set of representative colours for one image.
type Palette struct {
	Colors []color.Color

	// Weights holds the share of pixels each colour represents, aligned with
	// Colors. It is nil when the extractor does not report weights.
	Weights []float64
}

// NewPaletteWithWeights creates a Palette whose colours carry pixel shares.
func NewPaletteWithWeights(colors []color.Color, weights []float64) *Palette {
	return &Palette{
		Colors:  colors,
		Weights: weights,
	}
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Weight returns the pixel share of the colour at index, or 0 when unknown.
func (p *Palette) Weight(index int) float64 {
	if index < 0 || index >= len(p.Weights) {
		return 0
	}
	return p.Weights[index]
}

// RGB represents a color in RGB format.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Triple returns the colour as an integer triple, e.g. "(255, 0, 0)".
func (rgb RGB) Triple() string {
	return fmt.Sprintf("(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a color.Color to RGB, dropping alpha.
// Non-premultiplied colours keep their stored channel values.
func ToRGB(c color.Color) RGB {
	if n, ok := c.(color.NRGBA); ok {
		return RGB{R: n.R, G: n.G, B: n.B}
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ToRGBSlice converts the palette colors to RGB structs.
func (p *Palette) ToRGBSlice() []RGB {
	rgbColors := make([]RGB, len(p.Colors))
	for i, c := range p.Colors {
		rgbColors[i] = ToRGB(c)
	}
	return rgbColors
}

// ToHex converts the palette colors to hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = ToRGB(c).Hex()
	}
	return hexColors
}

// Format controls how a palette is rendered on one line.
type Format string

const (
	// FormatRGB renders integer triples: [(255, 0, 0) (0, 0, 255)].
	FormatRGB Format = "rgb"
	// FormatHex renders hex codes: [#ff0000 #0000ff].
	FormatHex Format = "hex"
)

// ValidFormats returns the accepted Format values.
func ValidFormats() []Format {
	return []Format{FormatRGB, FormatHex}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range ValidFormats() {
		if Format(strings.ToLower(s)) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format: %s (supported: %v)", s, ValidFormats())
}

// Line renders the palette as a single bracketed list in the given format.
func (p *Palette) Line(format Format) string {
	if format == FormatHex {
		return "[" + strings.Join(p.ToHex(), " ") + "]"
	}
	parts := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		parts[i] = ToRGB(c).Triple()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colors:\n", len(p.Colors))
	for i, c := range p.Colors {
		rgb := ToRGB(c)
		fmt.Fprintf(&sb, "  %2d: %s (%s)", i+1, rgb.Hex(), rgb.String())
		if i < len(p.Weights) {
			fmt.Fprintf(&sb, " %5.1f%%", p.Weights[i]*100)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
