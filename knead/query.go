package knead

import (
	"fmt"
	"strconv"
	"strings"
)

// Query descends into the held data along a dot-separated path: string
// segments index maps, numeric segments index sequences. "items.0.name"
// takes the name of the first item. A missing key or an out of range index
// is an error naming the failing segment.
func (k *Knead) Query(path string) (*Knead, error) {
	if path == "" {
		return k, nil
	}
	cur := k.data
	for seg := range strings.SplitSeq(path, ".") {
		next, err := descend(cur, seg)
		if err != nil {
			return nil, fmt.Errorf("query %q: %w", path, err)
		}
		cur = next
	}
	return &Knead{data: cur}, nil
}

func descend(data any, seg string) (any, error) {
	switch d := data.(type) {
	case map[string]any:
		v, ok := d[seg]
		if !ok {
			return nil, fmt.Errorf("no key %q", seg)
		}
		return v, nil
	case map[string]string:
		v, ok := d[seg]
		if !ok {
			return nil, fmt.Errorf("no key %q", seg)
		}
		return v, nil
	default:
		els, ok := elements(data)
		if !ok {
			return nil, fmt.Errorf("cannot descend into %T at %q", data, seg)
		}
		i, err := strconv.Atoi(seg)
		if err != nil {
			return nil, fmt.Errorf("%q is not an index", seg)
		}
		if i < 0 || i >= len(els) {
			return nil, fmt.Errorf("index %d out of range (%d elements)", i, len(els))
		}
		return els[i], nil
	}
}
