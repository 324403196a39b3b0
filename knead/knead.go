// Package knead is the conversion pipeline: load a file through its format
// loader, optionally reshape the data, and write it back out through
// another. It is what the CLI drives, usable as a library on its own.
package knead

import (
	"fmt"
	"io"
	"os"

	"github.com/siebrand/dataknead/loader"
)

type Knead struct {
	data any
}

type Option func(*options)

type options struct {
	format string
	loader loader.Loader
}

// WithFormat forces a format tag instead of dispatching on the file
// extension.
func WithFormat(tag string) Option {
	return func(o *options) { o.format = tag }
}

// WithLoader supplies a loader instance directly, e.g. one with adjusted
// options.
func WithLoader(l loader.Loader) Option {
	return func(o *options) { o.loader = l }
}

func resolve(path string, opts []Option) (loader.Loader, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.loader != nil {
		return o.loader, nil
	}
	if o.format != "" {
		return loader.ByName(o.format)
	}
	return loader.ForPath(path)
}

// New reads the file at path through the loader its extension (or an
// option) selects.
func New(path string, opts ...Option) (*Knead, error) {
	l, err := resolve(path, opts)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := l.Read(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %q as %s: %w", path, l.Name(), err)
	}
	return &Knead{data: data}, nil
}

// Read is New for an already-open stream, e.g. stdin. The format must be
// named since there is no path to dispatch on, and the stream stays open.
func Read(r io.Reader, format string) (*Knead, error) {
	l, err := loader.ByName(format)
	if err != nil {
		return nil, err
	}
	data, err := l.Read(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s input: %w", l.Name(), err)
	}
	return &Knead{data: data}, nil
}

// FromData wraps an in-memory value without any I/O.
func FromData(data any) *Knead {
	return &Knead{data: data}
}

func (k *Knead) Data() any {
	return k.data
}

// Map applies fn to each element of the held sequence, or to the value
// itself when it is not a sequence.
func (k *Knead) Map(fn func(any) any) *Knead {
	if els, ok := elements(k.data); ok {
		out := make([]any, len(els))
		for i, e := range els {
			out[i] = fn(e)
		}
		return &Knead{data: out}
	}
	return &Knead{data: fn(k.data)}
}

// Filter keeps the elements of the held sequence for which fn is true. A
// non-sequence value is kept or replaced by nil as a whole.
func (k *Knead) Filter(fn func(any) bool) *Knead {
	if els, ok := elements(k.data); ok {
		var out []any
		for _, e := range els {
			if fn(e) {
				out = append(out, e)
			}
		}
		return &Knead{data: out}
	}
	if fn(k.data) {
		return k
	}
	return &Knead{data: nil}
}

// elements normalizes the slice shapes loaders produce to []any.
func elements(data any) ([]any, bool) {
	switch d := data.(type) {
	case []any:
		return d, true
	case []string:
		out := make([]any, len(d))
		for i, e := range d {
			out[i] = e
		}
		return out, true
	case []map[string]string:
		out := make([]any, len(d))
		for i, e := range d {
			out[i] = e
		}
		return out, true
	case [][]string:
		out := make([]any, len(d))
		for i, e := range d {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}

// Write encodes the held data to w through the given loader. The stream
// stays open, like the loaders themselves leave it.
func (k *Knead) Write(w io.Writer, l loader.Loader) error {
	return l.Write(w, k.data)
}

// WriteFile writes the held data to the file at path through the loader its
// extension (or an option) selects.
func (k *Knead) WriteFile(path string, opts ...Option) error {
	l, err := resolve(path, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := l.Write(f, k.data); err != nil {
		_ = f.Close()
		return fmt.Errorf("error writing %q as %s: %w", path, l.Name(), err)
	}
	return f.Close()
}
