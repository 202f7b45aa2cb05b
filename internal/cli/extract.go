package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/icontint/internal/colour"
	"github.com/jmylchreest/icontint/internal/image"
)

func newExtractCmd() *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract the dominant colours of a single image",
		Long: `Extract the dominant colours of one raster image without converting it.

Supported image formats: PNG, JPEG, GIF

Examples:
  # Three dominant colours (default)
  icontint extract images/icons/logo.png

  # Eight colours as hex codes with their pixel share
  icontint extract -v -c 8 -f hex photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], opts)
		},
	}
	opts.register(cmd.Flags())

	return cmd
}

func runExtract(cmd *cobra.Command, path string, opts *paletteOptions) error {
	extractor, format, err := opts.resolve()
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	if w, h, err := image.Dimensions(path); err == nil {
		logger.Debug("loading image", "path", path, "width", w, "height", h)
	}

	palette, err := colour.ExtractFile(image.NewFileLoader(), extractor, path, opts.colours)
	if err != nil {
		return err
	}
	logger.Debug("extracted palette", "colours", palette.Len(), "algorithm", opts.algorithm)

	out := cmd.OutOrStdout()
	line := palette.Line(format)
	if opts.preview && colour.SupportsANSIColours(out) {
		line += "  " + palette.Swatches(9)
	}
	fmt.Fprintf(out, "Dominant colours of %s: %s\n", filepath.Base(path), line)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		errOut := cmd.ErrOrStderr()
		fmt.Fprint(errOut, palette.Detail(colour.SupportsANSIColours(errOut)))
	}

	return nil
}
