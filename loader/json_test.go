package loader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siebrand/dataknead/internal"
)

func TestJSONRead(t *testing.T) {
	l := NewJSON()

	got, err := l.Read(strings.NewReader(`{"a": [1, "two"]}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": []any{float64(1), "two"}}, got)

	_, err = l.Read(strings.NewReader(`{"a": 1} trailing`))
	assert.ErrorIs(t, err, internal.ErrTrailingGarbage)

	_, err = l.Read(strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestJSONWrite(t *testing.T) {
	tests := []struct {
		name   string
		indent int
		data   any
		want   string
	}{
		{"compact", 0, []any{"a", "b"}, "[\"a\",\"b\"]\n"},
		{"indented", 2, map[string]any{"a": 1}, "{\n  \"a\": 1\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &JSON{Indent: tt.indent}
			var buf bytes.Buffer
			require.NoError(t, l.Write(&buf, tt.data))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	l := NewYAML()
	var buf bytes.Buffer
	require.NoError(t, l.Write(&buf, map[string]any{"name": "knead", "count": 2}))
	got, err := l.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "knead", "count": uint64(2)}, got)
}

func TestYAMLReadEmpty(t *testing.T) {
	got, err := NewYAML().Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}
