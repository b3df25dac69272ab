package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"finsight/internal/config"
	"finsight/internal/domain"
	"finsight/internal/handler"
	"finsight/internal/middleware"
	"finsight/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setAuthContext injects the values AuthMiddleware sets for an authenticated
// request.
func setAuthContext(c *gin.Context, tenantID, userID uuid.UUID, role string) {
	c.Set(middleware.ContextKeyTenantID, tenantID)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, role)
}

func newReportHandler() (*handler.ReportHandler, *mocks.MockReportService) {
	mockSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockSvc, config.ReportConfig{})
	return h, mockSvc
}

func TestReportHandler_TrialBalance_Success(t *testing.T) {
	h, mockSvc := newReportHandler()

	tenantID := uuid.New()
	userID := uuid.New()

	expected := &domain.TrialBalanceReport{
		Rows: []domain.LedgerRow{
			{LedgerName: "Cash", Debit: 1000, Credit: 0},
			{LedgerName: "Sales", Debit: 0, Credit: 1000},
		},
		TotalDebit:  1000,
		TotalCredit: 1000,
		IsBalanced:  true,
	}

	mockSvc.On("TrialBalance", mock.Anything, tenantID, mock.AnythingOfType("*domain.ReportFilters")).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/trial-balance", http.NoBody)
	setAuthContext(c, tenantID, userID, "admin")

	h.TrialBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_TrialBalance_WithDateFilter(t *testing.T) {
	h, mockSvc := newReportHandler()

	tenantID := uuid.New()
	userID := uuid.New()

	mockSvc.On("TrialBalance", mock.Anything, tenantID, mock.MatchedBy(func(f *domain.ReportFilters) bool {
		return f.From != nil && f.From.Format("2006-01-02") == "2024-04-01" && f.To == nil
	})).Return(&domain.TrialBalanceReport{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/trial-balance?from=2024-04-01", http.NoBody)
	setAuthContext(c, tenantID, userID, "member")

	h.TrialBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_TrialBalance_DefaultPeriodAppliesWhenNoRange(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockSvc, config.ReportConfig{DefaultPeriod: "month"})

	tenantID := uuid.New()
	userID := uuid.New()

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	mockSvc.On("TrialBalance", mock.Anything, tenantID, mock.MatchedBy(func(f *domain.ReportFilters) bool {
		return f.From != nil && f.From.Equal(monthStart) && f.To == nil
	})).Return(&domain.TrialBalanceReport{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/trial-balance", http.NoBody)
	setAuthContext(c, tenantID, userID, "member")

	h.TrialBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_TrialBalance_ExplicitRangeOverridesDefaultPeriod(t *testing.T) {
	mockSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(mockSvc, config.ReportConfig{DefaultPeriod: "month"})

	tenantID := uuid.New()
	userID := uuid.New()

	mockSvc.On("TrialBalance", mock.Anything, tenantID, mock.MatchedBy(func(f *domain.ReportFilters) bool {
		return f.From == nil && f.To != nil && f.To.Format("2006-01-02") == "2024-06-30"
	})).Return(&domain.TrialBalanceReport{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/trial-balance?to=2024-06-30", http.NoBody)
	setAuthContext(c, tenantID, userID, "member")

	h.TrialBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_GSTR2A_Success(t *testing.T) {
	h, mockSvc := newReportHandler()

	tenantID := uuid.New()
	userID := uuid.New()

	expected := &domain.GSTR2AReport{
		Entries: []domain.GSTR2AEntry{
			{SupplierName: "Acme Traders", InvoiceNumber: "INV-1", TaxableValue: 20000},
		},
		TotalTaxableValue: 20000,
	}

	mockSvc.On("GSTR2A", mock.Anything, tenantID, mock.AnythingOfType("*domain.ReportFilters")).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/gstr2a", http.NoBody)
	setAuthContext(c, tenantID, userID, "admin")

	h.GSTR2A(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_InvalidDateFilter(t *testing.T) {
	h, _ := newReportHandler()

	tenantID := uuid.New()
	userID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/trial-balance?from=not-a-date", http.NoBody)
	setAuthContext(c, tenantID, userID, "admin")

	h.TrialBalance(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestReportHandler_NoAuth(t *testing.T) {
	h, _ := newReportHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/trial-balance", http.NoBody)
	// No auth context set

	h.TrialBalance(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReportHandler_TrialBalance_ServiceError(t *testing.T) {
	h, mockSvc := newReportHandler()

	tenantID := uuid.New()
	userID := uuid.New()

	mockSvc.On("TrialBalance", mock.Anything, tenantID, mock.AnythingOfType("*domain.ReportFilters")).
		Return(nil, errors.New("db error"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/trial-balance", http.NoBody)
	setAuthContext(c, tenantID, userID, "admin")

	h.TrialBalance(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_ExportTrialBalance_SetsAttachmentHeaders(t *testing.T) {
	h, mockSvc := newReportHandler()

	tenantID := uuid.New()
	userID := uuid.New()

	csvBytes := []byte("\xEF\xBB\xBFLedger Name,Debit,Credit\nTotal,0.00,0.00\n")
	mockSvc.On("ExportTrialBalanceCSV", mock.Anything, tenantID, mock.AnythingOfType("*domain.ReportFilters")).
		Return(csvBytes, "trial_balance_2024-04-01.csv", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/trial-balance/export", http.NoBody)
	setAuthContext(c, tenantID, userID, "admin")

	h.ExportTrialBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="trial_balance_2024-04-01.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, csvBytes, w.Body.Bytes())
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_EmailReport_Success(t *testing.T) {
	h, mockSvc := newReportHandler()

	tenantID := uuid.New()
	userID := uuid.New()

	mockSvc.On("EmailReport", mock.Anything, tenantID, mock.AnythingOfType("service.EmailReportInput")).Return(nil)

	body := bytes.NewBufferString(`{"to_address":"cfo@example.com","to_name":"CFO","report_type":"trial_balance"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/reports/email", body)
	c.Request.Header.Set("Content-Type", "application/json")
	setAuthContext(c, tenantID, userID, "admin")

	h.EmailReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_EmailReport_MissingRecipient(t *testing.T) {
	h, mockSvc := newReportHandler()

	tenantID := uuid.New()
	userID := uuid.New()

	body := bytes.NewBufferString(`{"report_type":"trial_balance"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/reports/email", body)
	c.Request.Header.Set("Content-Type", "application/json")
	setAuthContext(c, tenantID, userID, "admin")

	h.EmailReport(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "EmailReport", mock.Anything, mock.Anything, mock.Anything)
}
