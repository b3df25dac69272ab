package ingest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuri/excelize/v2"

	"finsight/internal/domain"
)

// buildXLSX renders rows into an in-memory workbook.
func buildXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestParseXLSX(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"Vendor Name", "Bill No", "Total Amount"},
		{"Acme", "B-1", 1000},
		{"Globex", "B-2", 2500},
	})

	res, err := ParseXLSX(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Vendor Name", "Bill No", "Total Amount"}, res.Headers)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "Acme", res.Records[0].Data["Vendor Name"])
	assert.Equal(t, 0.9, res.Confidence)
}

func TestParseXLSX_BankStatementPreamble(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"Account Holder: J Doe"},
		{"Account Number: 1234"},
		{"Date", "Particulars", "Debit", "Credit", "Balance"},
		{"2025-01-15", "NEFT PAYMENT", 5000, "", 95000},
	})

	res, err := ParseXLSX(data)
	require.NoError(t, err)

	assert.Equal(t, "Date", res.Headers[0])
	require.Len(t, res.Records, 1)
	assert.Equal(t, "NEFT PAYMENT", res.Records[0].Data["Particulars"])
	assert.Contains(t, res.Notes, "detected bank statement format with account details header")
}

func TestParseXLSX_EmptySheet(t *testing.T) {
	data := buildXLSX(t, nil)
	_, err := ParseXLSX(data)
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
}

func TestParseXLSX_NotAWorkbook(t *testing.T) {
	_, err := ParseXLSX([]byte("this is not xlsx"))
	assert.Error(t, err)
}

func TestParse_UnsupportedType(t *testing.T) {
	_, err := Parse([]byte("x"), domain.FileType("pdf"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}
