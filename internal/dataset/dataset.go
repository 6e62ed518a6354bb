// Package dataset loads and prepares labeled row collections from
// line-delimited JSON dumps of tabular document data.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"
)

// HeaderType is the label value marking a row as a header row.
const HeaderType = "HEADERS"

// Row is one labeled data point: the ordered cell values of a table row and
// whether the row is a header row.
type Row struct {
	Values []string
	Label  bool
}

// MalformedLineError reports a dataset line that failed JSON decoding or is
// missing required fields. Data shape is assumed uniform, so a single bad
// line fails the whole load.
type MalformedLineError struct {
	Line int
	Err  error
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed dataset line %d: %v", e.Line, e.Err)
}

func (e *MalformedLineError) Unwrap() error { return e.Err }

// cell and record mirror the wire shape: each dataset line is a JSON array
// of records, each record carrying a list of cells and a type string.
type cell struct {
	Value string `json:"value"`
}

type record struct {
	Values *[]cell `json:"values"`
	Type   *string `json:"type"`
}

// scannerBufSize handles very long dataset lines.
const scannerBufSize = 4 * 1024 * 1024

// Load reads a line-delimited JSON file where each line is a JSON array of
// row records. It fails fast on the first malformed line.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var rows []Row
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), scannerBufSize)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		var recs []record
		if err := json.Unmarshal(raw, &recs); err != nil {
			return nil, &MalformedLineError{Line: line, Err: err}
		}
		for i, rec := range recs {
			if rec.Values == nil {
				return nil, &MalformedLineError{Line: line, Err: fmt.Errorf("record %d: missing values field", i)}
			}
			if rec.Type == nil {
				return nil, &MalformedLineError{Line: line, Err: fmt.Errorf("record %d: missing type field", i)}
			}
			vals := make([]string, len(*rec.Values))
			for j, c := range *rec.Values {
				vals[j] = c.Value
			}
			rows = append(rows, Row{Values: vals, Label: *rec.Type == HeaderType})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan dataset: %w", err)
	}
	return rows, nil
}

// Sample draws a uniform sample of up to n rows without replacement. A
// non-negative seed makes the draw reproducible; a negative seed uses a
// time-based source.
func Sample(rows []Row, n int, seed int64) []Row {
	if n <= 0 || n >= len(rows) {
		out := make([]Row, len(rows))
		copy(out, rows)
		return out
	}
	src := rand.NewSource(seed)
	if seed < 0 {
		src = rand.NewSource(time.Now().UnixNano())
	}
	rng := rand.New(src)
	perm := rng.Perm(len(rows))
	out := make([]Row, n)
	for i := 0; i < n; i++ {
		out[i] = rows[perm[i]]
	}
	return out
}

// Partition splits rows into header rows and the rest.
func Partition(rows []Row) (headers, others []Row) {
	for _, r := range rows {
		if r.Label {
			headers = append(headers, r)
		} else {
			others = append(others, r)
		}
	}
	return headers, others
}
