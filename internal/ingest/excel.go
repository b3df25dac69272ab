package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"finsight/internal/domain"
)

const excelConfidence = 0.9

// headerMarkers identify the header row of a bank statement whose sheet
// leads with account-holder details instead of column names.
var headerMarkers = map[string]bool{
	"date":             true,
	"transaction date": true,
	"value date":       true,
}

// ParseXLSX decodes the first sheet of an XLSX workbook into row records.
// Bank statements exported with an account-details preamble are detected
// and re-headered from the row that carries the date column.
func ParseXLSX(data []byte) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ingest.ParseXLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ingest.ParseXLSX rows: %w", err)
	}

	start := 0
	for start < len(rows) && rowEmpty(rows[start]) {
		start++
	}
	if start >= len(rows) {
		return nil, domain.ErrEmptyDocument
	}

	notes := []string{fmt.Sprintf("processed Excel sheet %q", sheets[0])}

	// Account-details preamble: scan for the real header row.
	headerIdx := start
	if hasAccountPreamble(rows[start]) {
		for i := start; i < len(rows); i++ {
			if isHeaderRow(rows[i]) {
				headerIdx = i
				break
			}
		}
		if headerIdx > start {
			notes = append(notes, "detected bank statement format with account details header")
		}
	}

	headers := cleanHeaders(rows[headerIdx])
	records := buildRecords(headers, rows[headerIdx+1:], excelConfidence)
	if len(records) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	return &Result{
		Headers:    headers,
		Records:    records,
		Confidence: excelConfidence,
		Notes:      notes,
	}, nil
}

func hasAccountPreamble(row []string) bool {
	return len(row) > 0 && strings.Contains(strings.ToLower(row[0]), "account holder")
}

func isHeaderRow(row []string) bool {
	for _, cell := range row {
		if headerMarkers[strings.ToLower(strings.TrimSpace(cell))] {
			return true
		}
	}
	return false
}
