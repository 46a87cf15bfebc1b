package utils

import (
	"bytes"
	"encoding/csv"
)

// ExportCSV dựng file CSV tải về từ danh sách đã lọc.
// Prepend BOM để Excel mở tiếng Việt không vỡ font.
func ExportCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
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
