package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finsight/internal/service"
)

// JournalHandler serves the book-entry intake endpoints feeding the trial
// balance and bank reconciliation.
type JournalHandler struct {
	journalService service.JournalService
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// Create handles POST /api/v1/journal-entries
func (h *JournalHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	var input service.CreateJournalEntryInput
	if !bindJSON(c, &input) {
		return
	}

	entry, err := h.journalService.Create(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, entry)
}

// CreateBatch handles POST /api/v1/journal-entries/batch
func (h *JournalHandler) CreateBatch(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	var inputs []service.CreateJournalEntryInput
	if !bindJSON(c, &inputs) {
		return
	}
	if len(inputs) == 0 {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "at least one entry is required")
		return
	}

	entries, err := h.journalService.CreateBatch(c.Request.Context(), tenantID, userID, inputs)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, entries)
}

// List handles GET /api/v1/journal-entries
func (h *JournalHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	entries, err := h.journalService.List(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entries)
}

// Delete handles DELETE /api/v1/journal-entries/:id
func (h *JournalHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "entry")
	if !ok {
		return
	}

	if err := h.journalService.Delete(c.Request.Context(), tenantID, entryID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
