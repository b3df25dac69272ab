package main

import (
	"fmt"
	"log"

	"finsight/internal/config"
	"finsight/internal/email/noop"
	"finsight/internal/email/ses"
	"finsight/internal/handler"
	"finsight/internal/port"
	"finsight/internal/repository/postgres"
	"finsight/internal/router"
	"finsight/internal/service"
	s3storage "finsight/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	journalRepo := postgres.NewJournalEntryRepo(db)
	docRepo := postgres.NewDocumentRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	docSvc := service.NewDocumentService(docRepo, s3Client, &cfg.S3)
	journalSvc := service.NewJournalService(journalRepo)
	reportSvc := service.NewReportService(journalRepo, docRepo, emailSender)
	statsSvc := service.NewStatsService(statsRepo)
	tenantSvc := service.NewTenantService(tenantRepo)
	userSvc := service.NewUserService(userRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	docH := handler.NewDocumentHandler(docSvc)
	journalH := handler.NewJournalHandler(journalSvc)
	reportH := handler.NewReportHandler(reportSvc, cfg.Report)
	statsH := handler.NewStatsHandler(statsSvc)
	tenantH := handler.NewTenantHandler(tenantSvc)
	userH := handler.NewUserHandler(userSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins,
		authH, docH, journalH, reportH, statsH, tenantH, userH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
