package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"finsight/internal/domain"
	"finsight/internal/service"
)

// DocumentHandler handles document endpoints.
type DocumentHandler struct {
	docService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(docService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

// Upload handles POST /api/v1/documents/upload
func (h *DocumentHandler) Upload(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file form field is required")
		return
	}
	defer file.Close()

	doc, err := h.docService.Upload(c.Request.Context(), service.DocumentUploadInput{
		TenantID:   tenantID,
		UploadedBy: userID,
		File:       file,
		Header:     header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// List handles GET /api/v1/documents
func (h *DocumentHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	docs, total, err := h.docService.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/documents/:id
func (h *DocumentHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, ok := parseIDParam(c, "document")
	if !ok {
		return
	}

	doc, err := h.docService.GetByID(c.Request.Context(), tenantID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// GetExtractedData handles GET /api/v1/documents/:id/extracted-data
func (h *DocumentHandler) GetExtractedData(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, ok := parseIDParam(c, "document")
	if !ok {
		return
	}

	result, err := h.docService.GetExtractedData(c.Request.Context(), tenantID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// ListExtractedRows handles GET /api/v1/documents/extracted-data
func (h *DocumentHandler) ListExtractedRows(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docType := domain.DocumentType(c.Query("type"))
	switch docType {
	case domain.DocTypePurchaseRegister, domain.DocTypeSalesRegister, domain.DocTypeBankStatement, domain.DocTypeOther:
	default:
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"type must be one of purchase_register, sales_register, bank_statement, other")
		return
	}

	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	records, err := h.docService.ListExtractedRows(c.Request.Context(), tenantID, docType, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// GetDownloadURL handles GET /api/v1/documents/:id/download
func (h *DocumentHandler) GetDownloadURL(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, ok := parseIDParam(c, "document")
	if !ok {
		return
	}

	url, err := h.docService.GetDownloadURL(c.Request.Context(), tenantID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// Delete handles DELETE /api/v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, ok := parseIDParam(c, "document")
	if !ok {
		return
	}

	if err := h.docService.Delete(c.Request.Context(), tenantID, docID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// parsePagination extracts offset/limit query params with defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, limit = 0, 20
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	return offset, limit
}
