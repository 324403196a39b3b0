package loader

import (
	"io"
	"os"
	"testing"

	"github.com/siebrand/dataknead/internal"
)

func TestMain(m *testing.M) {
	RegisterDefaults()
	Register(fake{})
	internal.LockCustomizations()
	os.Exit(m.Run())
}

// fake claims a distinctive extension for registry dispatch tests
type fake struct{}

func (fake) Name() string                   { return "fake" }
func (fake) Extensions() []string           { return []string{"fak"} }
func (fake) Read(_ io.Reader) (any, error)  { return "fake", nil }
func (fake) Write(_ io.Writer, _ any) error { return nil }
