// Package lines reads and writes newline-delimited text.
//
// Reading recognizes "\n", "\r\n", and bare "\r" as line terminators and
// strips them. Writing always terminates every line, including the last,
// with a single "\n". Streams are caller owned: nothing here opens, closes,
// or flushes them.
package lines

import (
	"bufio"
	"bytes"
	"io"
)

// maxLine bounds a single scanned line. Data files are line-oriented
// records, not blobs, but the bufio default of 64KiB is too small for e.g.
// minified JSON shipped one document per line.
const maxLine = 64 * 1024 * 1024

// Split is a bufio.SplitFunc with universal newline handling: each of "\n",
// "\r\n", and a lone "\r" ends a line, and the terminator is not part of
// the token. A final unterminated fragment is its own line.
func Split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// bare \r, unless a \n follows making it a \r\n pair
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// \r at the end of the buffer: need one more byte to tell \r from \r\n
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ReadAll consumes r to EOF and returns its lines in order, terminators
// stripped. Empty input yields nil. Read errors from r are returned as-is.
func ReadAll(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLine)
	sc.Split(Split)
	var out []string
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteAll writes each element of ls followed by exactly one "\n", in
// order. Elements are written verbatim, so an element containing its own
// newline produces more output lines than input elements.
func WriteAll(w io.Writer, ls []string) error {
	for _, l := range ls {
		if _, err := io.WriteString(w, l); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
