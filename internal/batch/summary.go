package batch

import (
	"fmt"
	"io"
)

// Summary counts the outcome of one Run.
type Summary struct {
	// Total is incremented once for every file visited, whatever its outcome.
	Total int
	// Extracted counts files that produced a palette.
	Extracted int

	Converted   int
	Failed      int
	Unsupported int
}

// Report writes the two closing summary lines.
func (s Summary) Report(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Total: %d\nExtracted: %d\n", s.Total, s.Extracted)
	return err
}

// Detail returns key/value pairs for structured logging.
func (s Summary) Detail() []any {
	return []any{
		"total", s.Total,
		"extracted", s.Extracted,
		"converted", s.Converted,
		"failed", s.Failed,
		"unsupported", s.Unsupported,
	}
}
