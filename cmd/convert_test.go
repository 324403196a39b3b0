package cmd

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siebrand/dataknead/config"
	"github.com/siebrand/dataknead/internal"
	"github.com/siebrand/dataknead/loader"
)

func TestMain(m *testing.M) {
	// isolate the config file from the developer's real one
	home, err := os.MkdirTemp("", "knead-cmd-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("HOME", home)

	loader.RegisterDefaults()
	internal.LockCustomizations()
	if err := config.Initialize(); err != nil {
		panic(err)
	}
	loader.Initialize()

	code := m.Run()
	os.RemoveAll(home)
	os.Exit(code)
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	root := Root()
	root.SetArgs(args)
	return root.Execute()
}

func TestConvertTxtToJSON(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(in, []byte("x\ny\n"), 0o644))

	require.NoError(t, run(t, in, out, "--indent", "0"))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[\"x\",\"y\"]\n", string(raw))
}

func TestConvertCSVToJSONWithQuery(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "people.csv")
	out := filepath.Join(dir, "name.json")
	require.NoError(t, os.WriteFile(in, []byte("name,age\nalice,30\nbob,41\n"), 0o644))

	require.NoError(t, run(t, in, out, "-q", "1.name", "--indent", "0"))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "\"bob\"\n", string(raw))
}

func TestConvertFormatOverride(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "lines.dat")
	out := filepath.Join(dir, "out.yaml")
	require.NoError(t, os.WriteFile(in, []byte("a\nb\n"), 0o644))

	// unknown input extension without an override
	assert.ErrorIs(t, run(t, in, out), loader.ErrUnknownFormat)

	require.NoError(t, run(t, "--from", "txt", in, out))
	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b\n", string(raw))
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("x\n"), 0o644))

	// stdout needs --to
	assert.ErrorContains(t, run(t, in, "-"), "--to is required")
	// stdin needs --from
	assert.ErrorContains(t, run(t, "-", filepath.Join(dir, "o.json")), "--from is required")
	// txt has no indentation
	assert.ErrorContains(t, run(t, in, filepath.Join(dir, "o.txt"), "--indent", "2"), "does not indent")
	// flag validation
	assert.ErrorContains(t, run(t, in, filepath.Join(dir, "o.json"), "--indent", "99"), "invalid flags")
}

// --indent reaches the format inside a .gz wrapper; compression stays
// transparent to formatting options
func TestConvertIndentThroughGzip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.json.gz")
	require.NoError(t, os.WriteFile(in, []byte("x\ny\n"), 0o644))

	require.NoError(t, run(t, in, out, "--indent", "0"))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "[\"x\",\"y\"]\n", string(raw))

	// wrapping txt in gzip does not make it indentable
	err = run(t, in, filepath.Join(dir, "o.txt.gz"), "--indent", "2")
	assert.ErrorContains(t, err, "does not indent")
}

func TestFormatsCommand(t *testing.T) {
	require.NoError(t, run(t, "formats"))
}

func TestFormatExtensions(t *testing.T) {
	assert.Equal(t, "yaml, yaml.gz, yml, yml.gz", formatExtensions(loader.NewYAML()))
	assert.Equal(t, "txt, txt.gz", formatExtensions(loader.Text{}))
}
