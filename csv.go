package melt

import (
	"encoding/csv"
	"fmt"
	"strings"
)

func parseCSV(text string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return records, nil
}

func encodeCSV(rows [][]string) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	for _, row := range rows {
		// Write to a strings.Builder cannot fail.
		_ = w.Write(row)
	}
	w.Flush()
	return sb.String()
}
