package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"finsight/internal/domain"
	"finsight/internal/middleware"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    *PagMeta  `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data any, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

type errMapping struct {
	status int
	code   string
	msg    string
}

// domainErrMappings pairs each domain sentinel with its HTTP rendering.
// Order matters only for wrapped chains carrying multiple sentinels, which
// does not occur here.
var domainErrMappings = []struct {
	err     error
	mapping errMapping
}{
	{domain.ErrDocumentNotFound, errMapping{http.StatusNotFound, "DOCUMENT_NOT_FOUND", "document not found"}},
	{domain.ErrNotFound, errMapping{http.StatusNotFound, "NOT_FOUND", "resource not found"}},
	{domain.ErrInvalidCredentials, errMapping{http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"}},
	{domain.ErrUnauthorized, errMapping{http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"}},
	{domain.ErrTenantInactive, errMapping{http.StatusForbidden, "TENANT_INACTIVE", "tenant is inactive"}},
	{domain.ErrUserInactive, errMapping{http.StatusForbidden, "USER_INACTIVE", "user is inactive"}},
	{domain.ErrForbidden, errMapping{http.StatusForbidden, "FORBIDDEN", "forbidden"}},
	{domain.ErrUnsupportedFileType, errMapping{http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: csv, xlsx"}},
	{domain.ErrInvalidReportType, errMapping{http.StatusBadRequest, "INVALID_REPORT_TYPE", "invalid report type; allowed: trial_balance, gstr2a, gstr3b, bank_reconciliation"}},
	{domain.ErrInvalidRole, errMapping{http.StatusBadRequest, "INVALID_ROLE", "invalid user role; allowed: admin, member, viewer"}},
	{domain.ErrFileTooLarge, errMapping{http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"}},
	{domain.ErrDuplicateEmail, errMapping{http.StatusConflict, "DUPLICATE_EMAIL", "email already exists for this tenant"}},
	{domain.ErrDuplicateTenantSlug, errMapping{http.StatusConflict, "DUPLICATE_SLUG", "tenant slug already exists"}},
	{domain.ErrExtractionFailed, errMapping{http.StatusUnprocessableEntity, "EXTRACTION_FAILED", "document extraction failed"}},
	{domain.ErrEmptyDocument, errMapping{http.StatusUnprocessableEntity, "EMPTY_DOCUMENT", "document contains no data rows"}},
	{domain.ErrUploadFailed, errMapping{http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"}},
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	for _, m := range domainErrMappings {
		if errors.Is(err, m.err) {
			return m.mapping.status, m.mapping.code, m.mapping.msg
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
}

// extractAuthContext reads the tenant, user, and role AuthMiddleware put on
// the context. On missing context it writes the 401 itself and returns
// ok=false so callers can just return.
func extractAuthContext(c *gin.Context) (tenantID, userID uuid.UUID, role domain.UserRole, ok bool) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return uuid.Nil, uuid.Nil, "", false
	}
	userID, err = middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return uuid.Nil, uuid.Nil, "", false
	}
	return tenantID, userID, domain.UserRole(middleware.GetRole(c)), true
}

// bindJSON binds the request body into dst, writing the 400 itself on
// failure so handlers can just return.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return false
	}
	return true
}

// parseIDParam parses the :id route parameter as a UUID, writing the 400
// itself on failure. label names the resource in the error message.
func parseIDParam(c *gin.Context, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid "+label+" id")
		return uuid.Nil, false
	}
	return id, true
}

// HandleError maps a domain error and sends the appropriate error response.
// Internal errors are logged with the request ID; client errors are not.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[%s] internal error: %v", c.GetString("request_id"), err)
	}
	RespondError(c, status, code, msg)
}
