package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/siebrand/dataknead/config"
)

var (
	csvDelimiter = config.StringKey("csv.delimiter", ",")
	csvHeader    = config.BoolKey("csv.header", true)
)

func init() {
	config.AddKey[string](csvDelimiter)
	config.AddKey[bool](csvHeader)
}

// CSV adapts delimiter-separated tabular data. With Header on (the
// default), reading maps each data row onto the header row and yields
// records; writing emits a header built from the sorted union of record
// keys. With Header off, rows pass through as plain string slices.
//
// The header is not data: a header-only file reads as an empty record set,
// and since the written header is rebuilt from record keys, writing that
// back produces an empty file.
//
// The same type serves tab-separated files; NewTSV fixes the delimiter to a
// tab under the "tsv" tag.
type CSV struct {
	name string
	exts []string

	Comma  rune
	Header bool
}

func NewCSV() *CSV {
	return &CSV{name: "csv", exts: []string{"csv"}, Comma: ',', Header: true}
}

func NewTSV() *CSV {
	return &CSV{name: "tsv", exts: []string{"tsv"}, Comma: '\t', Header: true}
}

// Configure implements Configurable. The delimiter key only applies to the
// csv instance; tsv keeps its tab.
func (l *CSV) Configure() {
	l.Header = config.Get[bool](csvHeader)
	if l.name == "csv" {
		if d := config.Get[string](csvDelimiter); d != "" {
			l.Comma = []rune(d)[0]
		}
	}
}

func (l *CSV) Name() string { return l.name }

func (l *CSV) Extensions() []string { return l.exts }

func (l *CSV) Read(r io.Reader) (any, error) {
	cr := csv.NewReader(r)
	cr.Comma = l.Comma
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !l.Header {
		return records, nil
	}
	head := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(head))
		for i, h := range head {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l *CSV) Write(w io.Writer, data any) error {
	header, rows, err := csvRows(data)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = l.Comma
	if header != nil && l.Header {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	// flushes the csv writer's own buffer to w, not w itself
	cw.Flush()
	return cw.Error()
}

// csvRows normalizes the shapes tabular data shows up as. Record-shaped
// input (maps) produces a header; row-shaped input does not.
func csvRows(data any) (header []string, rows [][]string, err error) {
	switch d := data.(type) {
	case nil:
		return nil, nil, nil
	case [][]string:
		return nil, d, nil
	case []string:
		rows = make([][]string, len(d))
		for i, s := range d {
			rows[i] = []string{s}
		}
		return nil, rows, nil
	case []map[string]string:
		recs := make([]map[string]any, len(d))
		for i, m := range d {
			rec := make(map[string]any, len(m))
			for k, v := range m {
				rec[k] = v
			}
			recs[i] = rec
		}
		return recordRows(recs)
	case []map[string]any:
		return recordRows(d)
	case []any:
		recs := make([]map[string]any, 0, len(d))
		for _, e := range d {
			m, ok := e.(map[string]any)
			if !ok {
				recs = nil
				break
			}
			recs = append(recs, m)
		}
		if recs != nil {
			return recordRows(recs)
		}
		rows = make([][]string, len(d))
		for i, e := range d {
			switch v := e.(type) {
			case []string:
				rows[i] = v
			case []any:
				row := make([]string, len(v))
				for j, f := range v {
					row[j] = fieldString(f)
				}
				rows[i] = row
			case map[string]any, map[string]string:
				return nil, nil, fmt.Errorf("%w: csv cannot mix records and rows", ErrUnsupportedData)
			default:
				rows[i] = []string{fieldString(e)}
			}
		}
		return nil, rows, nil
	default:
		return nil, nil, fmt.Errorf("%w: csv needs a sequence of rows or records, got %T", ErrUnsupportedData, data)
	}
}

func recordRows(recs []map[string]any) (header []string, rows [][]string, err error) {
	if len(recs) == 0 {
		return nil, nil, nil
	}
	keys := map[string]struct{}{}
	for _, rec := range recs {
		for k := range rec {
			keys[k] = struct{}{}
		}
	}
	header = slices.Sorted(maps.Keys(keys))
	rows = make([][]string, len(recs))
	for i, rec := range recs {
		row := make([]string, len(header))
		for j, k := range header {
			if v, ok := rec[k]; ok {
				row[j] = fieldString(v)
			}
		}
		rows[i] = row
	}
	return header, rows, nil
}

func fieldString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
