package internal

import (
	"encoding/json"
	"errors"
	"io"
)

var ErrTrailingGarbage = errors.New("trailing garbage after JSON value")

// DecodeJSON decodes a single JSON value from r and verifies nothing but EOF
// follows it. Concatenated values or junk after the document are an error
// rather than being silently dropped.
func DecodeJSON[T any](r io.Reader) (T, error) {
	var result T
	d := json.NewDecoder(r)
	if err := d.Decode(&result); err != nil {
		return result, err
	}
	if _, err := d.Token(); !errors.Is(err, io.EOF) {
		return result, ErrTrailingGarbage
	}
	return result, nil
}
