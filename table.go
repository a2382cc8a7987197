package melt

import (
	"fmt"
	"strconv"
)

// Table is an ordered sequence of uniform-width rows. Columns holds the
// declared column identifiers in order: header names when Headed, otherwise
// stringified positional indices ("0", "1", ...). Every row has exactly
// len(Columns) cells, in column order.
type Table struct {
	Columns []string
	Rows    [][]string
	Headed  bool
}

// Parse tokenizes delimited text into a Table. When headers is true the
// first record supplies the column identifiers; otherwise identifiers are
// positional. Tokenization failures and ragged rows return an error
// wrapping [ErrFormat].
func Parse(text string, f Format, headers bool) (Table, error) {
	c, ok := codecs[f]
	if !ok {
		return Table{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	records, err := c.parse(text)
	if err != nil {
		return Table{}, err
	}
	if len(records) == 0 {
		return Table{Headed: headers}, nil
	}
	var t Table
	if headers {
		t.Headed = true
		t.Columns = records[0]
		t.Rows = records[1:]
	} else {
		t.Columns = positionalColumns(len(records[0]))
		t.Rows = records
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return Table{}, fmt.Errorf("%w: row %d has %d fields, want %d", ErrFormat, i+1, len(row), len(t.Columns))
		}
	}
	return t, nil
}

func positionalColumns(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = strconv.Itoa(i)
	}
	return cols
}
