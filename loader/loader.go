// Package loader defines the format adapter contract shared by every
// supported file format, and the registry that dispatches on format tag or
// file extension.
//
// A Loader converts between a caller-owned stream and an in-memory value.
// Loaders never open, close, or flush the streams they are handed, and hold
// no state between calls; options like indentation are plain fields set
// before use.
package loader

import (
	"errors"
	"io"
)

type Loader interface {
	// Name reports the format tag, e.g. "txt" or "json". Tags are unique
	// across registered loaders.
	Name() string

	// Extensions lists the file extensions (without dot, lower case) this
	// loader claims for path-based dispatch.
	Extensions() []string

	// Read consumes r to EOF and returns the decoded value. Stream errors
	// are returned to the caller untranslated.
	Read(r io.Reader) (any, error)

	// Write encodes data to w. Data whose shape the format cannot express
	// fails with an error wrapping ErrUnsupportedData.
	Write(w io.Writer, data any) error
}

// Configurable is implemented by loaders whose defaults can be overridden
// from the user's config file. Configure is called once during app startup,
// after the config is loaded.
type Configurable interface {
	Configure()
}

var (
	ErrUnknownFormat   = errors.New("unknown format")
	ErrUnsupportedData = errors.New("unsupported data shape")
)
