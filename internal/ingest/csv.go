package ingest

import (
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"finsight/internal/domain"
)

// csvConfidence matches the extraction confidence reported for cleanly
// parsed CSV content.
const csvConfidence = 0.95

// ParseCSV decodes CSV content into row records keyed by the header row.
// Non-UTF-8 content falls back to a Latin-1 interpretation.
func ParseCSV(data []byte) (*Result, error) {
	text := decodeText(data)

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest.ParseCSV: %w", err)
	}

	// Skip leading blank lines before the header.
	start := 0
	for start < len(rows) && rowEmpty(rows[start]) {
		start++
	}
	if start >= len(rows) {
		return nil, domain.ErrEmptyDocument
	}

	headers := cleanHeaders(rows[start])
	records := buildRecords(headers, rows[start+1:], csvConfidence)
	if len(records) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	return &Result{
		Headers:    headers,
		Records:    records,
		Confidence: csvConfidence,
		Notes:      []string{"parsed as CSV format"},
	}, nil
}

// decodeText returns the content as a string, mapping bytes one-to-one to
// runes when the input is not valid UTF-8.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
