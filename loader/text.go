package loader

import (
	"fmt"
	"io"

	"github.com/siebrand/dataknead/lines"
)

// Text is the line-oriented plain text adapter. Reading yields the stream's
// lines as []string with terminators stripped; writing emits each element
// with a single trailing "\n".
//
// An element containing an embedded newline is written verbatim and will
// read back as multiple lines. That asymmetry is inherent to the format and
// deliberately not papered over.
type Text struct{}

func (Text) Name() string { return "txt" }

func (Text) Extensions() []string { return []string{"txt"} }

func (Text) Read(r io.Reader) (any, error) {
	ls, err := lines.ReadAll(r)
	return ls, err
}

func (Text) Write(w io.Writer, data any) error {
	ls, err := stringSlice(data)
	if err != nil {
		return err
	}
	return lines.WriteAll(w, ls)
}

// stringSlice accepts the shapes a line sequence shows up as: []string
// directly, or []any of strings after a trip through another format.
func stringSlice(data any) ([]string, error) {
	switch d := data.(type) {
	case nil:
		return nil, nil
	case []string:
		return d, nil
	case []any:
		ls := make([]string, len(d))
		for i, e := range d {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: txt needs strings, element %d is %T", ErrUnsupportedData, i, e)
			}
			ls[i] = s
		}
		return ls, nil
	default:
		return nil, fmt.Errorf("%w: txt needs a sequence of strings, got %T", ErrUnsupportedData, data)
	}
}
