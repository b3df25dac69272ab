package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tenant represents an isolated organizational tenant.
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a tenant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// JournalEntry is a single book entry in the tenant's general journal.
// Exactly one of DebitAmount/CreditAmount is expected to be non-zero,
// but the reports tolerate entries carrying both.
type JournalEntry struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	TenantID     uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	AccountName  string          `db:"account_name" json:"account_name"`
	AccountCode  string          `db:"account_code" json:"account_code"`
	Description  string          `db:"description" json:"description"`
	DebitAmount  decimal.Decimal `db:"debit_amount" json:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount" json:"credit_amount"`
	EntryDate    time.Time       `db:"entry_date" json:"entry_date"`
	CreatedBy    uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// Document is an uploaded source document (register or statement) together
// with its classification and extracted tabular data.
type Document struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	TenantID        uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	FileName        string          `db:"file_name" json:"file_name"`
	OriginalName    string          `db:"original_name" json:"original_name"`
	ContentType     string          `db:"content_type" json:"content_type"`
	FileSize        int64           `db:"file_size" json:"file_size"`
	S3Bucket        string          `db:"s3_bucket" json:"-"`
	S3Key           string          `db:"s3_key" json:"-"`
	DocumentType    DocumentType    `db:"document_type" json:"document_type"`
	Status          DocumentStatus  `db:"status" json:"status"`
	Confidence      float64         `db:"confidence" json:"confidence"`
	ExtractedData   json.RawMessage `db:"extracted_data" json:"extracted_data"`
	ExtractionNotes string          `db:"extraction_notes" json:"extraction_notes"`
	UploadedBy      uuid.UUID       `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// ExtractedRecord is one row extracted from a document, keyed by the
// document's own (unpredictable) column names.
type ExtractedRecord struct {
	RowIndex   int            `json:"row_index"`
	Data       map[string]any `json:"data"`
	Confidence float64        `json:"confidence"`
}

// ExtractionResult is the payload stored in Document.ExtractedData.
type ExtractionResult struct {
	Headers      []string          `json:"headers"`
	Records      []ExtractedRecord `json:"records"`
	TotalRecords int               `json:"total_records"`
	Confidence   float64           `json:"confidence"`
	Notes        []string          `json:"notes,omitempty"`
}

// DecodeExtraction unmarshals the document's extracted data payload.
// Returns an empty result when the document has no extraction yet.
func (d *Document) DecodeExtraction() (*ExtractionResult, error) {
	if len(d.ExtractedData) == 0 {
		return &ExtractionResult{}, nil
	}
	var res ExtractionResult
	if err := json.Unmarshal(d.ExtractedData, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Stats holds dashboard aggregate counts for a tenant.
type Stats struct {
	DocumentsProcessed int `db:"documents_processed" json:"documents_processed"`
	ValidationErrors   int `db:"validation_errors" json:"validation_errors"`
	JournalEntries     int `db:"journal_entries" json:"journal_entries"`
	ComplianceScore    int `json:"compliance_score"`
}
