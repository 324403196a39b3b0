package loader

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/siebrand/dataknead/config"
	"github.com/siebrand/dataknead/internal"
)

var jsonIndent = config.IntKey("json.indent", 4)

func init() {
	config.AddKey[int](jsonIndent)
}

// JSON adapts JSON documents. A document is decoded as a single value;
// trailing garbage after it is an error. Output is indented with
// Indent spaces, or emitted compact when Indent is 0.
type JSON struct {
	Indent int
}

func NewJSON() *JSON {
	return &JSON{Indent: jsonIndent.New()}
}

// Configure implements Configurable.
func (l *JSON) Configure() {
	l.Indent = config.Get[int](jsonIndent)
}

// SetIndent adjusts output indentation, e.g. from the --indent flag.
func (l *JSON) SetIndent(n int) { l.Indent = n }

func (*JSON) Name() string { return "json" }

func (*JSON) Extensions() []string { return []string{"json"} }

func (*JSON) Read(r io.Reader) (any, error) {
	return internal.DecodeJSON[any](r)
}

func (l *JSON) Write(w io.Writer, data any) error {
	e := json.NewEncoder(w)
	if l.Indent > 0 {
		e.SetIndent("", strings.Repeat(" ", l.Indent))
	}
	return e.Encode(data)
}
