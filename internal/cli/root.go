// Package cli provides the command-line interface for icontint.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/icontint/internal/batch"
	"github.com/jmylchreest/icontint/internal/colour"
	"github.com/jmylchreest/icontint/internal/version"
)

// DirEnv overrides the default input directory when no argument is given.
const DirEnv = "ICONTINT_DIR"

// paletteOptions are the flags shared by every command that prints palettes.
type paletteOptions struct {
	colours   int
	algorithm string
	format    string
	preview   bool
}

func (o *paletteOptions) register(fs *pflag.FlagSet) {
	defaults := colour.DefaultExtractorConfig()
	fs.IntVarP(&o.colours, "colours", "c", defaults.ColorCount, "number of dominant colours to extract (1-256)")
	fs.StringVarP(&o.algorithm, "algorithm", "a", string(defaults.Algorithm),
		"extraction algorithm (kmeans, dominant); dominant may return fewer colours than requested")
	fs.StringVarP(&o.format, "format", "f", string(colour.FormatRGB), "palette format (rgb, hex)")
	fs.BoolVar(&o.preview, "preview", false, "show colour swatches when writing to a terminal")
}

// resolve validates the flags and builds the extractor they select.
func (o *paletteOptions) resolve() (colour.Extractor, colour.Format, error) {
	config := colour.ExtractorConfig{
		Algorithm:  colour.Algorithm(o.algorithm),
		ColorCount: o.colours,
	}
	if err := config.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}

	format, err := colour.ParseFormat(o.format)
	if err != nil {
		return nil, "", err
	}

	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create extractor: %w", err)
	}

	return extractor, format, nil
}

// NewRootCmd builds the icontint command tree. Each call returns an
// independent tree so tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	opts := &paletteOptions{}

	rootCmd := &cobra.Command{
		Use:   "icontint [directory]",
		Short: "Convert icons to PNG and report their dominant colours",
		Long: `icontint walks a directory of icons, converts every SVG and JPEG/JPG file
to a PNG written next to it, and reports the dominant colours of each PNG
found by k-means clustering over its pixels.

The directory defaults to ` + batch.DefaultDir + ` (or $` + DirEnv + `). It is not
searched recursively. Existing PNG files with the same name as a converted
icon are overwritten.

Examples:
  # Process ./images/icons with 3 colours per icon
  icontint

  # Process another directory and print hex codes
  icontint --format hex ./assets/icons

  # Five colours per icon, with swatches in the terminal
  icontint -c 5 --preview`,
		Args:         cobra.MaximumNArgs(1),
		Version:      version.Short(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, opts)
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	opts.register(rootCmd.Flags())

	rootCmd.SetVersionTemplate(version.Get().String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newConvertCmd())

	return rootCmd
}

// inputDir picks the directory argument, then $ICONTINT_DIR, then the default.
func inputDir(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	return batch.DefaultDir
}

func runBatch(cmd *cobra.Command, args []string, opts *paletteOptions) error {
	extractor, format, err := opts.resolve()
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	out := cmd.OutOrStdout()

	status := out
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		status = io.Discard
	}

	runner := batch.NewRunner(status, logger)
	runner.Extractor = extractor
	runner.Colours = opts.colours
	runner.Format = format
	runner.Preview = opts.preview && colour.SupportsANSIColours(out)

	dir := inputDir(args)
	logger.Debug("starting batch", "dir", dir, "colours", opts.colours, "algorithm", opts.algorithm)

	summary, err := runner.Run(dir)
	if err != nil {
		return err
	}

	logger.Debug("batch complete", summary.Detail()...)
	return summary.Report(out)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		},
	}
}
