package router

import (
	"github.com/gin-gonic/gin"

	"finsight/internal/domain"
	"finsight/internal/handler"
	"finsight/internal/middleware"
	"finsight/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	docH *handler.DocumentHandler,
	journalH *handler.JournalHandler,
	reportH *handler.ReportHandler,
	statsH *handler.StatsHandler,
	tenantH *handler.TenantHandler,
	userH *handler.UserHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Document routes
	docs := protected.Group("/documents")
	docs.POST("/upload", docH.Upload)
	docs.GET("", docH.List)
	docs.GET("/extracted-data", docH.ListExtractedRows)
	docs.GET("/:id", docH.GetByID)
	docs.GET("/:id/extracted-data", docH.GetExtractedData)
	docs.GET("/:id/download", docH.GetDownloadURL)
	docs.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleMember), docH.Delete)

	// Journal entry routes
	journal := protected.Group("/journal-entries")
	journal.POST("", middleware.RequireRole(domain.RoleAdmin, domain.RoleMember), journalH.Create)
	journal.POST("/batch", middleware.RequireRole(domain.RoleAdmin, domain.RoleMember), journalH.CreateBatch)
	journal.GET("", journalH.List)
	journal.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), journalH.Delete)

	// Report routes
	reports := protected.Group("/reports")
	reports.GET("/trial-balance", reportH.TrialBalance)
	reports.GET("/trial-balance/export", reportH.ExportTrialBalance)
	reports.GET("/gstr2a", reportH.GSTR2A)
	reports.GET("/gstr3b", reportH.GSTR3B)
	reports.GET("/bank-reconciliation", reportH.BankReconciliation)
	reports.POST("/email", reportH.EmailReport)

	// Dashboard stats
	protected.GET("/stats", statsH.GetStats)

	// User management (tenant-scoped)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), userH.List)
	users.GET("/:id", userH.GetByID)
	users.PUT("/:id", userH.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), userH.Delete)

	// Admin routes - tenant management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/tenants", tenantH.Create)
	admin.GET("/tenants", tenantH.List)
	admin.GET("/tenants/:id", tenantH.GetByID)
	admin.PUT("/tenants/:id", tenantH.Update)
	admin.DELETE("/tenants/:id", tenantH.Delete)

	return r
}
