package loader

import (
	"compress/gzip"
	"io"
)

// Gzip wraps another loader with transparent gzip compression. It is never
// registered directly; ForPath composes it from a trailing ".gz" on the
// path, so "records.json.gz" is the json loader behind a gzip stream.
type Gzip struct {
	Inner Loader
}

func (l *Gzip) Name() string { return l.Inner.Name() + ".gz" }

func (*Gzip) Extensions() []string { return nil }

func (l *Gzip) Read(r io.Reader) (any, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	data, err := l.Inner.Read(zr)
	if err != nil {
		return nil, err
	}
	// surfaces a truncated or corrupt trailer
	if err := zr.Close(); err != nil {
		return nil, err
	}
	return data, nil
}

func (l *Gzip) Write(w io.Writer, data any) error {
	zw := gzip.NewWriter(w)
	if err := l.Inner.Write(zw, data); err != nil {
		_ = zw.Close()
		return err
	}
	// Close flushes the gzip stream; the underlying writer stays open
	return zw.Close()
}
