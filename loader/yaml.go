package loader

import (
	"errors"
	"io"

	"github.com/goccy/go-yaml"
)

// YAML adapts YAML documents. Only the first document of a multi-document
// stream is read.
type YAML struct {
	Indent int
}

func NewYAML() *YAML {
	return &YAML{Indent: 2}
}

func (*YAML) Name() string { return "yaml" }

func (*YAML) Extensions() []string { return []string{"yaml", "yml"} }

func (*YAML) Read(r io.Reader) (any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		// an empty document decodes as EOF
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

func (l *YAML) Write(w io.Writer, data any) error {
	indent := l.Indent
	if indent <= 0 {
		indent = 2
	}
	e := yaml.NewEncoder(w, yaml.Indent(indent))
	if err := e.Encode(data); err != nil {
		return err
	}
	return e.Close()
}

// SetIndent adjusts output indentation, e.g. from the --indent flag.
func (l *YAML) SetIndent(n int) { l.Indent = n }
