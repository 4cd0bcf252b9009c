package main

import (
	"fmt"
	"log"

	"gstbill/internal/config"
	"gstbill/internal/email/noop"
	"gstbill/internal/email/ses"
	"gstbill/internal/handler"
	"gstbill/internal/port"
	"gstbill/internal/repository/postgres"
	"gstbill/internal/router"
	"gstbill/internal/service"
	s3storage "gstbill/internal/storage/s3"
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
	companyRepo := postgres.NewCompanyRepo(db)
	userRepo := postgres.NewUserRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	productRepo := postgres.NewProductRepo(db)
	bankDetailRepo := postgres.NewBankDetailRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email delivery
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, companyRepo, cfg.JWT)
	companySvc := service.NewCompanyService(companyRepo)
	clientSvc := service.NewClientService(clientRepo)
	productSvc := service.NewProductService(productRepo)
	bankDetailSvc := service.NewBankDetailService(bankDetailRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, companyRepo, emailSender)
	storageSvc := service.NewStorageService(s3Client, cfg.S3)

	// Setup router
	r := router.New(cfg, authSvc, router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc, cfg.JWT),
		Company:    handler.NewCompanyHandler(companySvc),
		Client:     handler.NewClientHandler(clientSvc),
		Product:    handler.NewProductHandler(productSvc),
		BankDetail: handler.NewBankDetailHandler(bankDetailSvc),
		Invoice:    handler.NewInvoiceHandler(invoiceSvc),
		Storage:    handler.NewStorageHandler(storageSvc),
		Health:     handler.NewHealthHandler(db),
	})

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
