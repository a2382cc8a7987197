package melt

import "strings"

// The tab-delimited format uses no field quoting. A literal tab inside a
// value is written as a backslash followed by a tab; that is the only escape
// sequence. A literal backslash is never escaped, so a value ending in a
// backslash immediately before a field boundary re-parses as a literal tab.
// That ambiguity is inherent to the format and is preserved as-is.

func parseTSV(text string) ([][]string, error) {
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	records := make([][]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		records = append(records, splitTabs(line))
	}
	return records, nil
}

func splitTabs(line string) []string {
	var fields []string
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\\' && i+1 < len(line) && line[i+1] == '\t':
			b.WriteByte('\t')
			i++
		case line[i] == '\t':
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteByte(line[i])
		}
	}
	return append(fields, b.String())
}

func encodeTSV(rows [][]string) string {
	var sb strings.Builder
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strings.ReplaceAll(v, "\t", "\\\t"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
