package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/icontint/internal/convert"
	"github.com/jmylchreest/icontint/internal/image"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file>...",
		Short: "Convert SVG and JPEG/JPG files to PNG without extracting colours",
		Long: `Convert each SVG or JPEG/JPG file to a PNG with the same base name in the
same directory. Existing PNG files are overwritten; sources are left untouched.

Examples:
  icontint convert images/icons/logo.svg images/icons/photo.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: runConvert,
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	converter := convert.New(logger.Named("convert"))
	out := cmd.OutOrStdout()

	failed := 0
	for _, src := range args {
		kind := image.Classify(src)
		if kind == image.KindPNG || kind == image.KindUnsupported {
			fmt.Fprintf(out, "Unsupported file format for %s\n", filepath.Base(src))
			failed++
			continue
		}

		dst, err := converter.ToPNG(src, kind)
		if err != nil {
			logger.Error("conversion failed", "file", src, "error", err)
			fmt.Fprintf(out, "Failed to convert %s to PNG: %s\n", kind, filepath.Base(src))
			failed++
			continue
		}
		fmt.Fprintf(out, "%s converted to PNG successfully: %s\n", kind, dst)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be converted", failed, len(args))
	}
	return nil
}
