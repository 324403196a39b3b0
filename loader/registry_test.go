package loader

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	l, err := ByName("txt")
	require.NoError(t, err)
	assert.Equal(t, "txt", l.Name())

	// tags are matched case insensitively
	l, err = ByName("JSON")
	require.NoError(t, err)
	assert.Equal(t, "json", l.Name())

	_, err = ByName("nope")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestForPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "txt", path: "notes.txt", want: "txt"},
		{name: "upper case extension", path: "NOTES.TXT", want: "txt"},
		{name: "yml alias", path: "cfg.yml", want: "yaml"},
		{name: "tsv", path: "data.tsv", want: "tsv"},
		{name: "gzip wrapped", path: "records.json.gz", want: "json.gz"},
		{name: "custom loader", path: "x.fak", want: "fake"},
		{name: "no extension", path: "README", wantErr: true},
		{name: "unknown extension", path: "a.xyz", wantErr: true},
		{name: "bare gz", path: "a.gz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ForPath(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Name())
		})
	}
}

func TestEnabledSorted(t *testing.T) {
	var names []string
	for _, l := range Enabled() {
		names = append(names, l.Name())
	}
	assert.Equal(t, []string{"csv", "fake", "json", "tsv", "txt", "yaml"}, names)
}

func TestGzipRoundTrip(t *testing.T) {
	l := &Gzip{Inner: Text{}}
	var buf bytes.Buffer
	require.NoError(t, l.Write(&buf, []string{"a", "b"}))
	// output is a gzip stream, not the plain lines
	assert.NotEqual(t, "a\nb\n", buf.String())
	got, err := l.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestGzipReadGarbage(t *testing.T) {
	l := &Gzip{Inner: Text{}}
	_, err := l.Read(bytes.NewReader([]byte("not gzip")))
	assert.Error(t, err)
}
