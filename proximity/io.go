package proximity

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultDelimiter separates fields in the delimited text formats.
const DefaultDelimiter = ','

// Option configures the CSV loaders and writer.
type Option func(*options)

type options struct {
	delimiter rune
}

// WithDelimiter sets the field delimiter (default comma). The delimiter must
// be a printable non-newline rune; nonsensical values panic (programmer
// error, mirroring the option conventions elsewhere in this module).
func WithDelimiter(d rune) Option {
	if d == '\n' || d == '\r' || d == 0 {
		panic("proximity: WithDelimiter: delimiter must be a printable non-newline rune")
	}

	return func(o *options) { o.delimiter = d }
}

func gatherOptions(opts ...Option) options {
	o := options{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// headerKeywords are tokens that mark a first line as a header row.
// Matching is case-insensitive on whole fields.
var headerKeywords = map[string]struct{}{
	"source": {}, "target": {}, "from": {}, "to": {},
	"node": {}, "weight": {}, "id": {}, "label": {},
}

// isHeaderRow sniffs whether fields look like column names rather than data:
// a known keyword anywhere, or a non-numeric token in any field past the
// first (the first field is excluded so a label column alone does not count).
func isHeaderRow(fields []string) bool {
	for _, f := range fields {
		if _, kw := headerKeywords[strings.ToLower(strings.TrimSpace(f))]; kw {
			return true
		}
	}
	for _, f := range fields[1:] {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			return true
		}
	}

	return false
}

// readRecords drains a delimited stream, dropping blank lines.
func readRecords(r io.Reader, delim rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1 // squareness is checked downstream
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading delimited input: %v: %w", err, ErrMalformedInput)
	}
	rows := records[:0]
	for _, rec := range records {
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		rows = append(rows, rec)
	}

	return rows, nil
}

// LoadMatrixCSV reads a dense proximity matrix from delimited text: one row
// per node, n rows by n columns. An optional header row is sniffed and
// skipped, as is an optional leading label column (pandas-style index).
// Unparseable cells are treated as NaN, i.e. dropped and counted, not fatal.
//
// Returns ErrEmptyInput for inputs with no data rows and ErrNonSquareMatrix
// when the remaining rows do not form an n x n matrix.
func LoadMatrixCSV(r io.Reader, opts ...Option) (*EdgeSet, error) {
	o := gatherOptions(opts...)
	rows, err := readRecords(r, o.delimiter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	if isHeaderRow(rows[0]) {
		rows = rows[1:]
		if len(rows) == 0 {
			return nil, ErrEmptyInput
		}
	}

	// A label column is present when no data row starts with a number.
	labelCol := true
	for _, row := range rows {
		if _, err = strconv.ParseFloat(strings.TrimSpace(row[0]), 64); err == nil {
			labelCol = false

			break
		}
	}

	m := make([][]float64, len(rows))
	for i, row := range rows {
		if labelCol {
			row = row[1:]
		}
		m[i] = make([]float64, len(row))
		for j, f := range row {
			w, perr := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if perr != nil {
				w = math.NaN() // dropped and counted by FromMatrix
			}
			m[i][j] = w
		}
	}

	return FromMatrix(m)
}

// LoadEdgeListCSV reads `source,target,weight` lines. The header row is
// sniffed and skipped; malformed lines (too few fields, unparseable values)
// are skipped and counted in Malformed. Self-loops and duplicates are
// handled by FromEdges. The node count is inferred as maxIndex+1.
func LoadEdgeListCSV(r io.Reader, opts ...Option) (*EdgeSet, error) {
	o := gatherOptions(opts...)
	rows, err := readRecords(r, o.delimiter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	if isHeaderRow(rows[0]) {
		rows = rows[1:]
	}

	var (
		edges     []Edge
		malformed int
	)
	for _, row := range rows {
		if len(row) < 3 {
			malformed++

			continue
		}
		u, uerr := strconv.Atoi(strings.TrimSpace(row[0]))
		v, verr := strconv.Atoi(strings.TrimSpace(row[1]))
		w, werr := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if uerr != nil || verr != nil || werr != nil {
			malformed++

			continue
		}
		edges = append(edges, Edge{U: u, V: v, Weight: w})
	}

	es, err := FromEdges(edges, AutoSize)
	if err != nil {
		return nil, err
	}
	es.Malformed = malformed

	return es, nil
}

// WriteEdgeListCSV writes edges as `source,target,weight` lines with a
// header row, the format the loaders accept back.
func WriteEdgeListCSV(w io.Writer, edges []Edge, opts ...Option) error {
	o := gatherOptions(opts...)
	cw := csv.NewWriter(w)
	cw.Comma = o.delimiter

	if err := cw.Write([]string{"source", "target", "weight"}); err != nil {
		return fmt.Errorf("proximity: writing edge list: %w", err)
	}
	for _, e := range edges {
		rec := []string{
			strconv.Itoa(e.U),
			strconv.Itoa(e.V),
			strconv.FormatFloat(e.Weight, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("proximity: writing edge list: %w", err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("proximity: writing edge list: %w", err)
	}

	return nil
}

// WriteMatrixCSV writes a dense symmetric matrix (one row per node) with the
// given delimiter; the inverse collaborator of LoadMatrixCSV.
func WriteMatrixCSV(w io.Writer, m [][]float64, opts ...Option) error {
	o := gatherOptions(opts...)
	cw := csv.NewWriter(w)
	cw.Comma = o.delimiter

	rec := make([]string, 0)
	for _, row := range m {
		rec = rec[:0]
		for _, x := range row {
			rec = append(rec, strconv.FormatFloat(x, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("proximity: writing matrix: %w", err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("proximity: writing matrix: %w", err)
	}

	return nil
}
