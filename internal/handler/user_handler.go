package handler

import (
	"github.com/gin-gonic/gin"

	"finsight/internal/domain"
	"finsight/internal/service"
)

// UserHandler serves the tenant-scoped user management endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	var input service.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, user)
}

// List handles GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	users, err := h.userService.List(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, users)
}

// GetByID handles GET /api/v1/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), tenantID, userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, user)
}

// Update handles PUT /api/v1/users/:id. Non-admins may only update their
// own profile and cannot touch role or active status.
func (h *UserHandler) Update(c *gin.Context) {
	tenantID, authUserID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user")
	if !ok {
		return
	}
	var input service.UpdateUserInput
	if !bindJSON(c, &input) {
		return
	}

	if role != domain.RoleAdmin {
		if userID != authUserID || input.Role != nil || input.IsActive != nil {
			HandleError(c, domain.ErrForbidden)
			return
		}
	}

	user, err := h.userService.Update(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, user)
}

// Delete handles DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), tenantID, userID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
