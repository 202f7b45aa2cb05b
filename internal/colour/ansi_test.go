package colour

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

func TestColourPreview(t *testing.T) {
	got := ColourPreview(RGB{R: 1, G: 2, B: 3}, 4)
	want := "\033[48;2;1;2;3m    \033[0m"
	if got != want {
		t.Errorf("ColourPreview() = %q, want %q", got, want)
	}

	if got := ColourPreview(RGB{}, 0); strings.Count(got, " ") != defaultWidth {
		t.Errorf("ColourPreview() with width 0 should use default width, got %q", got)
	}
}

func TestIsLight(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want bool
	}{
		{"white", RGB{R: 255, G: 255, B: 255}, true},
		{"black", RGB{}, false},
		{"yellow", RGB{R: 255, G: 255}, true},
		{"navy", RGB{B: 128}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLight(tt.rgb); got != tt.want {
				t.Errorf("IsLight(%v) = %v, want %v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestColourPreviewWithText(t *testing.T) {
	light := ColourPreviewWithText(RGB{R: 255, G: 255, B: 255}, "ab", 6)
	if !strings.Contains(light, "\033[38;2;0;0;0m") {
		t.Errorf("light background should use black text: %q", light)
	}
	if !strings.Contains(light, "  ab  ") {
		t.Errorf("text should be centred: %q", light)
	}

	dark := ColourPreviewWithText(RGB{}, "abcdefgh", 4)
	if !strings.Contains(dark, "\033[38;2;255;255;255m") || !strings.Contains(dark, "abcd\033[0m") {
		t.Errorf("dark preview = %q", dark)
	}
}

func TestPaletteSwatches(t *testing.T) {
	palette := NewPaletteWithWeights([]color.Color{color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 255}}, nil)
	got := palette.Swatches(9)
	if !strings.Contains(got, "#ff0000") || !strings.Contains(got, "#0000ff") {
		t.Errorf("Swatches() = %q", got)
	}
}

func TestSupportsANSIColours(t *testing.T) {
	if SupportsANSIColours(&bytes.Buffer{}) {
		t.Error("a buffer is never a terminal")
	}
}

func TestFormatColourWithPreview(t *testing.T) {
	got := FormatColourWithPreview(RGB{R: 255, G: 128}, 2)
	want := "\033[48;2;255;128;0m  \033[0m #ff8000"
	if got != want {
		t.Errorf("FormatColourWithPreview() = %q, want %q", got, want)
	}
}

func TestPaletteDetail(t *testing.T) {
	palette := NewPaletteWithWeights(
		[]color.Color{color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 255}},
		[]float64{0.75, 0.25},
	)

	plain := palette.Detail(false)
	if plain != palette.String() {
		t.Errorf("Detail(false) = %q, want String()", plain)
	}
	if strings.Contains(plain, "\033[") {
		t.Errorf("Detail(false) contains escape codes: %q", plain)
	}

	rich := palette.Detail(true)
	for _, want := range []string{
		"Palette with 2 colors:",
		FormatColourWithPreview(RGB{R: 255}, 4) + "  75.0%",
		FormatColourWithPreview(RGB{B: 255}, 4) + "  25.0%",
	} {
		if !strings.Contains(rich, want) {
			t.Errorf("Detail(true) missing %q:\n%q", want, rich)
		}
	}
}
