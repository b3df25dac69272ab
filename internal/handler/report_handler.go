package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"finsight/internal/config"
	"finsight/internal/domain"
	"finsight/internal/service"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService service.ReportService
	defaultPeriod string
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, cfg config.ReportConfig) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		defaultPeriod: cfg.DefaultPeriod,
	}
}

// parseReportFilters reads the optional from/to date range off the query
// string. Dates are YYYY-MM-DD only; report semantics are calendar-day.
func parseReportFilters(c *gin.Context) (*domain.ReportFilters, error) {
	filters := &domain.ReportFilters{}
	for param, dst := range map[string]**time.Time{
		"from": &filters.From,
		"to":   &filters.To,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %q date: must be YYYY-MM-DD", param)
		}
		*dst = &t
	}
	return filters, nil
}

// parseReportFilters wraps the free parser; when the request carries no
// range at all, the configured default period supplies the start date.
func (h *ReportHandler) parseReportFilters(c *gin.Context) (*domain.ReportFilters, error) {
	filters, err := parseReportFilters(c)
	if err != nil {
		return nil, err
	}
	if filters.From == nil && filters.To == nil {
		if start, ok := defaultPeriodStart(h.defaultPeriod, time.Now()); ok {
			filters.From = &start
		}
	}
	return filters, nil
}

// defaultPeriodStart returns the inclusive start date for a named period
// ending today. The "year" period is the Indian financial year starting in
// April. Unknown or empty periods leave reports unbounded.
func defaultPeriodStart(period string, now time.Time) (time.Time, bool) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), true
	case "quarter":
		q := time.Month((int(now.Month())-1)/3*3 + 1)
		return time.Date(now.Year(), q, 1, 0, 0, 0, 0, time.UTC), true
	case "year":
		y := now.Year()
		if now.Month() < time.April {
			y--
		}
		return time.Date(y, time.April, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// TrialBalance handles GET /api/v1/reports/trial-balance
// @Summary      Trial balance report
// @Description  Per-ledger debit/credit totals from journal entries
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} APIResponse{data=domain.TrialBalanceReport}
// @Failure      400 {object} APIResponse
func (h *ReportHandler) TrialBalance(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, err := h.parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.reportService.TrialBalance(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// GSTR2A handles GET /api/v1/reports/gstr2a
// @Summary      GSTR-2A report
// @Description  Inward supplies aggregated from purchase registers
// @Tags         reports
// @Produce      json
// @Success      200 {object} APIResponse{data=domain.GSTR2AReport}
func (h *ReportHandler) GSTR2A(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, err := h.parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.reportService.GSTR2A(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// GSTR3B handles GET /api/v1/reports/gstr3b
// @Summary      GSTR-3B report
// @Description  Outward/inward tax summary with net payable per head
// @Tags         reports
// @Produce      json
// @Success      200 {object} APIResponse{data=domain.GSTR3BReport}
func (h *ReportHandler) GSTR3B(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, err := h.parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.reportService.GSTR3B(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// BankReconciliation handles GET /api/v1/reports/bank-reconciliation
// @Summary      Bank reconciliation report
// @Description  Matches bank statement lines against journal entries
// @Tags         reports
// @Produce      json
// @Success      200 {object} APIResponse{data=domain.BankReconciliationReport}
func (h *ReportHandler) BankReconciliation(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, err := h.parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.reportService.BankReconciliation(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// ExportTrialBalance handles GET /api/v1/reports/trial-balance/export
func (h *ReportHandler) ExportTrialBalance(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	filters, err := h.parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	csvBytes, filename, err := h.reportService.ExportTrialBalanceCSV(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csvBytes)
}

// EmailReport handles POST /api/v1/reports/email
func (h *ReportHandler) EmailReport(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.EmailReportInput
	if !bindJSON(c, &input) {
		return
	}

	if err := h.reportService.EmailReport(c.Request.Context(), tenantID, input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"sent": true})
}
