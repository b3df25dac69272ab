// Package ingest turns uploaded register and statement files into row
// records with their original column names preserved, and classifies the
// document type from its content.
package ingest

import (
	"fmt"
	"strings"

	"finsight/internal/domain"
)

// Result holds the tabular data extracted from a single document.
type Result struct {
	Headers    []string
	Records    []domain.ExtractedRecord
	Confidence float64
	Notes      []string
}

// Parse decodes file content according to its detected type.
func Parse(data []byte, fileType domain.FileType) (*Result, error) {
	switch fileType {
	case domain.FileTypeCSV:
		return ParseCSV(data)
	case domain.FileTypeXLSX:
		return ParseXLSX(data)
	default:
		return nil, domain.ErrUnsupportedFileType
	}
}

// ExtractionPayload converts a Result into the persisted document payload.
func (r *Result) ExtractionPayload() *domain.ExtractionResult {
	return &domain.ExtractionResult{
		Headers:      r.Headers,
		Records:      r.Records,
		TotalRecords: len(r.Records),
		Confidence:   r.Confidence,
		Notes:        r.Notes,
	}
}

// buildRecords converts header and cell rows into indexed row maps.
// Missing trailing cells are dropped; surplus cells get positional names.
func buildRecords(headers []string, rows [][]string, confidence float64) []domain.ExtractedRecord {
	records := make([]domain.ExtractedRecord, 0, len(rows))
	for i, row := range rows {
		if rowEmpty(row) {
			continue
		}
		data := make(map[string]any, len(row))
		for j, cell := range row {
			key := ""
			if j < len(headers) {
				key = headers[j]
			}
			if key == "" {
				key = fmt.Sprintf("column_%d", j)
			}
			data[key] = strings.TrimSpace(cell)
		}
		records = append(records, domain.ExtractedRecord{
			RowIndex:   i,
			Data:       data,
			Confidence: confidence,
		})
	}
	return records
}

// cleanHeaders trims header cells and names blank ones positionally.
func cleanHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("column_%d", i)
		}
		headers[i] = h
	}
	return headers
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
