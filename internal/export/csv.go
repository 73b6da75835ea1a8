package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// writeTable renders a header plus one data row. encoding/csv quotes any field
// holding a comma, a double quote or a line break and doubles inner quotes.
func writeTable(header, row []string) ([]byte, error) {
	if len(header) != len(row) {
		return nil, fmt.Errorf("csv row has %d fields, header has %d", len(row), len(header))
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	if err := w.Write(row); err != nil {
		return nil, fmt.Errorf("csv row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

type column struct {
	name  string
	value string
}

func splitColumns(cols []column) (header, row []string) {
	header = make([]string, len(cols))
	row = make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.name
		row[i] = c.value
	}
	return header, row
}
