package handler

import (
	"github.com/gin-gonic/gin"

	"finsight/internal/service"
)

// TenantHandler serves the admin tenant management endpoints.
type TenantHandler struct {
	tenantService service.TenantService
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(tenantService service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// Create handles POST /api/v1/admin/tenants
func (h *TenantHandler) Create(c *gin.Context) {
	var input service.CreateTenantInput
	if !bindJSON(c, &input) {
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, tenant)
}

// List handles GET /api/v1/admin/tenants
func (h *TenantHandler) List(c *gin.Context) {
	tenants, err := h.tenantService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tenants)
}

// GetByID handles GET /api/v1/admin/tenants/:id
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "tenant")
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tenant)
}

// Update handles PUT /api/v1/admin/tenants/:id
func (h *TenantHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "tenant")
	if !ok {
		return
	}
	var input service.UpdateTenantInput
	if !bindJSON(c, &input) {
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tenant)
}

// Delete handles DELETE /api/v1/admin/tenants/:id
func (h *TenantHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "tenant")
	if !ok {
		return
	}

	if err := h.tenantService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
