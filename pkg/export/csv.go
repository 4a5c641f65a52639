package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

// Filename builds the conventional download name for a tab export,
// e.g. "jobs-export-2026-09-01.csv".
func Filename(tab string, now time.Time) string {
	return fmt.Sprintf("%s-export-%s.csv", tab, now.Format("2006-01-02"))
}

// Encode serializes a header row plus data rows as CSV.
func Encode(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
