package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"finsight/internal/config"
	"finsight/internal/domain"
	"finsight/internal/ingest"
	"finsight/internal/port"
)

// DocumentUploadInput is the DTO for document upload requests.
type DocumentUploadInput struct {
	TenantID   uuid.UUID
	UploadedBy uuid.UUID
	File       multipart.File
	Header     *multipart.FileHeader
}

// DocumentService defines the document management contract.
type DocumentService interface {
	Upload(ctx context.Context, input DocumentUploadInput) (*domain.Document, error)
	GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Document, int, error)
	GetExtractedData(ctx context.Context, tenantID, docID uuid.UUID) (*domain.ExtractionResult, error)
	ListExtractedRows(ctx context.Context, tenantID uuid.UUID, docType domain.DocumentType, filters *domain.ReportFilters) ([]domain.ExtractedRecord, error)
	GetDownloadURL(ctx context.Context, tenantID, docID uuid.UUID) (string, error)
	Delete(ctx context.Context, tenantID, docID uuid.UUID) error
}

type documentService struct {
	docRepo port.DocumentRepository
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.DocumentRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) DocumentService {
	return &documentService{
		docRepo: docRepo,
		storage: storage,
		cfg:     cfg,
	}
}

func (s *documentService) Upload(ctx context.Context, input DocumentUploadInput) (*domain.Document, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		// Fall back to the declared content type; files exported from
		// accounting tools sometimes arrive without a usable extension.
		ct, _, _ := strings.Cut(input.Header.Header.Get("Content-Type"), ";")
		fileType, ok = domain.AllowedContentTypes[strings.TrimSpace(ct)]
		if !ok {
			return nil, domain.ErrUnsupportedFileType
		}
		ext = string(fileType)
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	docID := uuid.New()
	s3Key := fmt.Sprintf("tenants/%s/documents/%s/%s", input.TenantID, docID, input.Header.Filename)

	doc := &domain.Document{
		ID:           docID,
		TenantID:     input.TenantID,
		FileName:     docID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		ContentType:  input.Header.Header.Get("Content-Type"),
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		DocumentType: domain.DocTypeOther,
		Status:       domain.DocStatusPending,
		UploadedBy:   input.UploadedBy,
	}

	log.Printf("documentService.Upload: uploading %s (%d bytes) for tenant %s",
		input.Header.Filename, input.Header.Size, input.TenantID)

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("creating document record: %w", err)
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        bytes.NewReader(data),
		ContentType: doc.ContentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("documentService.Upload: S3 upload failed for document %s: %v", doc.ID, err)
		doc.Status = domain.DocStatusFailed
		doc.ExtractionNotes = "upload to storage failed"
		_ = s.docRepo.UpdateExtraction(ctx, doc)
		return nil, domain.ErrUploadFailed
	}

	result, err := ingest.Parse(data, fileType)
	if err != nil {
		log.Printf("documentService.Upload: extraction failed for document %s: %v", doc.ID, err)
		doc.Status = domain.DocStatusFailed
		doc.ExtractionNotes = err.Error()
		if updateErr := s.docRepo.UpdateExtraction(ctx, doc); updateErr != nil {
			return nil, fmt.Errorf("recording extraction failure: %w", updateErr)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	class := ingest.Classify(classificationSample(result), input.Header.Filename)

	payload, err := json.Marshal(result.ExtractionPayload())
	if err != nil {
		return nil, fmt.Errorf("encoding extraction payload: %w", err)
	}

	doc.DocumentType = class.DocumentType
	doc.Status = domain.DocStatusCompleted
	doc.Confidence = class.Confidence
	doc.ExtractedData = payload
	doc.ExtractionNotes = strings.Join(result.Notes, "; ")

	if err := s.docRepo.UpdateExtraction(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving extraction: %w", err)
	}
	return doc, nil
}

func (s *documentService) GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.Document, error) {
	return s.docRepo.GetByID(ctx, tenantID, docID)
}

func (s *documentService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Document, int, error) {
	return s.docRepo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *documentService) GetExtractedData(ctx context.Context, tenantID, docID uuid.UUID) (*domain.ExtractionResult, error) {
	doc, err := s.docRepo.GetByID(ctx, tenantID, docID)
	if err != nil {
		return nil, err
	}
	res, err := doc.DecodeExtraction()
	if err != nil {
		return nil, fmt.Errorf("decoding extraction for document %s: %w", docID, err)
	}
	return res, nil
}

func (s *documentService) ListExtractedRows(ctx context.Context, tenantID uuid.UUID, docType domain.DocumentType, filters *domain.ReportFilters) ([]domain.ExtractedRecord, error) {
	docs, err := s.docRepo.ListByType(ctx, tenantID, docType, filters)
	if err != nil {
		return nil, err
	}

	var records []domain.ExtractedRecord
	for i := range docs {
		res, err := docs[i].DecodeExtraction()
		if err != nil {
			return nil, fmt.Errorf("decoding extraction for document %s: %w", docs[i].ID, err)
		}
		records = append(records, res.Records...)
	}
	return records, nil
}

func (s *documentService) GetDownloadURL(ctx context.Context, tenantID, docID uuid.UUID) (string, error) {
	doc, err := s.docRepo.GetByID(ctx, tenantID, docID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, doc.S3Bucket, doc.S3Key, s.cfg.PresignExpiry)
}

func (s *documentService) Delete(ctx context.Context, tenantID, docID uuid.UUID) error {
	doc, err := s.docRepo.GetByID(ctx, tenantID, docID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, doc.S3Bucket, doc.S3Key); err != nil {
		log.Printf("documentService.Delete: failed to delete from S3: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}

	return s.docRepo.Delete(ctx, tenantID, docID)
}

// classificationSample flattens the headers and the first few rows into one
// lowercase-friendly text blob for keyword scoring.
func classificationSample(result *ingest.Result) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(result.Headers, " "))
	for i, rec := range result.Records {
		if i >= 5 {
			break
		}
		for _, v := range rec.Data {
			if s, ok := v.(string); ok {
				sb.WriteString(" ")
				sb.WriteString(s)
			}
		}
	}
	return sb.String()
}
