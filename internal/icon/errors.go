package icon

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when the target side length is not positive.
var ErrInvalidSize = errors.New("icon: target size must be positive")

// LoadError reports a source image that is missing, unreadable or not a
// decodable image.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DegenerateSizeError reports a source whose scaled content would have a
// zero-pixel dimension at the requested target size.
type DegenerateSizeError struct {
	Width, Height int // source dimensions
	Size          int
}

func (e *DegenerateSizeError) Error() string {
	return fmt.Sprintf("image %dx%d has no visible content at size %d", e.Width, e.Height, e.Size)
}
