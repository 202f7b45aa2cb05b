// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/icontint/internal/cli"
)

// setupIcons creates a directory with one solid red PNG, a zero-byte JPEG,
// a square SVG and a text file.
func setupIcons(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, "red.png"))
	if err != nil {
		t.Fatalf("Failed to create red.png: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode red.png: %v", err)
	}
	f.Close()

	files := map[string]string{
		"broken.jpg": "",
		"icon.svg":   `<svg xmlns="http://www.w3.org/2000/svg" width="8" height="8"><rect width="8" height="8" fill="#123456"/></svg>`,
		"readme.txt": "hello",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRootCommandBatch(t *testing.T) {
	dir := setupIcons(t)

	out, errOut, err := execute(t, dir)
	if err != nil {
		t.Fatalf("Execute() error = %v (stderr: %s)", err, errOut)
	}

	if !strings.HasSuffix(out, "Total: 4\nExtracted: 2\n") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	if !strings.Contains(out, "Unsupported file format for readme.txt") {
		t.Errorf("missing unsupported notice:\n%s", out)
	}
	if !strings.Contains(errOut, "conversion failed") {
		t.Errorf("expected conversion failure on stderr, got:\n%s", errOut)
	}
}

func TestRootCommandDirFromEnv(t *testing.T) {
	dir := setupIcons(t)
	t.Setenv(cli.DirEnv, dir)

	out, _, err := execute(t)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Total: 4") {
		t.Errorf("environment directory not used:\n%s", out)
	}
}

func TestRootCommandQuiet(t *testing.T) {
	dir := setupIcons(t)

	out, errOut, err := execute(t, "--quiet", dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "Total: 4\nExtracted: 2\n" {
		t.Errorf("quiet output = %q", out)
	}
	if !strings.Contains(errOut, "conversion failed") {
		t.Errorf("errors must still be logged in quiet mode: %q", errOut)
	}
}

func TestRootCommandInvalidFlags(t *testing.T) {
	dir := setupIcons(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero colours", []string{"-c", "0", dir}, "color count must be at least 1"},
		{"bad algorithm", []string{"-a", "mediancut", dir}, "invalid algorithm"},
		{"bad format", []string{"-f", "json", dir}, "unsupported format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Execute() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestRootCommandMissingDirectory(t *testing.T) {
	_, _, err := execute(t, filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestExtractCommand(t *testing.T) {
	dir := setupIcons(t)

	out, _, err := execute(t, "extract", "-c", "2", "-f", "hex", filepath.Join(dir, "red.png"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "Dominant colours of red.png: [#ff0000 #ff0000]\n" {
		t.Errorf("extract output = %q", out)
	}

	if _, _, err := execute(t, "extract", filepath.Join(dir, "readme.txt")); err == nil {
		t.Error("extract of a text file should fail")
	}
}

func TestExtractCommandVerboseDetail(t *testing.T) {
	dir := setupIcons(t)

	_, errOut, err := execute(t, "extract", "-v", "-c", "1", filepath.Join(dir, "red.png"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(errOut, "Palette with 1 colors:") || !strings.Contains(errOut, "#ff0000") {
		t.Errorf("verbose detail missing:\n%s", errOut)
	}
	if strings.Contains(errOut, "\033[48;2;") {
		t.Errorf("swatches written to a non-terminal:\n%q", errOut)
	}
}

func TestRootCommandFlagDefaults(t *testing.T) {
	out, _, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		`(default "kmeans")`,
		"(default 3)",
		"dominant may return fewer colours than requested",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestConvertCommand(t *testing.T) {
	dir := setupIcons(t)

	out, _, err := execute(t, "convert", filepath.Join(dir, "icon.svg"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "SVG converted to PNG successfully") {
		t.Errorf("convert output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "icon.png")); err != nil {
		t.Errorf("icon.png not written: %v", err)
	}

	_, _, err = execute(t, "convert", filepath.Join(dir, "broken.jpg"), filepath.Join(dir, "readme.txt"))
	if err == nil || !strings.Contains(err.Error(), "2 of 2 files") {
		t.Errorf("convert error = %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "icontint version dev") {
		t.Errorf("version output = %q", out)
	}
}
