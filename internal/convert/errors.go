package convert

import (
	"errors"
	"fmt"
)

// Op names the conversion step that failed.
type Op string

const (
	OpRead      Op = "read"
	OpDecode    Op = "decode"
	OpRasterize Op = "rasterize"
	OpEncode    Op = "encode"
	OpWrite     Op = "write"
)

var (
	// ErrUnsupported is returned for kinds with no conversion path.
	ErrUnsupported = errors.New("unsupported source format")

	// ErrEmptySource is returned when the source file has no content.
	ErrEmptySource = errors.New("source file is empty")

	// ErrNoSVGContent is returned when a document parses but declares neither a size nor any shape.
	ErrNoSVGContent = errors.New("no svg content found")
)

// Error records a failed conversion step and the file it was operating on.
type Error struct {
	Op   Op
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
