package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biller-backend/internal/auth"
	"biller-backend/internal/cloudsync"
	"biller-backend/internal/config"
	"biller-backend/internal/database"
	"biller-backend/internal/db"
	"biller-backend/internal/handlers"
	apphttp "biller-backend/internal/http"
	"biller-backend/internal/middleware"
	"biller-backend/internal/models"
	"biller-backend/internal/repositories"
	"biller-backend/internal/services"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(ctx); err != nil {
		cancel()
		log.Fatalf("Migration failed: %v", err)
	}
	cancel()

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	materialRepo := repositories.NewMaterialRepository(pool)
	challanRepo := repositories.NewChallanRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)

	// Auth
	jwtManager := auth.NewJWTManager(cfg)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	// Cloud sync (optional)
	uploader := cloudsync.New(cfg)

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	supplierService := services.NewSupplierService(supplierRepo, invoiceRepo, paymentRepo)
	materialService := services.NewMaterialService(materialRepo)
	challanService := services.NewChallanService(challanRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, challanRepo)
	paymentService := services.NewPaymentService(paymentRepo, uploader, cfg.Files.UploadDir)
	documentService := services.NewDocumentService(invoiceRepo, supplierRepo, uploader, services.DocumentParty{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		TaxID:   cfg.Company.GSTNo,
		Phone:   cfg.Company.Phone,
	})

	ensureAdminUser(userService, cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	supplierHandler := handlers.NewSupplierHandler(supplierService, challanService, invoiceService, paymentService)
	materialHandler := handlers.NewMaterialHandler(materialService)
	challanHandler := handlers.NewChallanHandler(challanService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	documentHandler := handlers.NewDocumentHandler(documentService, invoiceService)
	healthHandler := handlers.NewHealthHandler(pool)

	router := apphttp.NewRouter(
		authHandler,
		userHandler,
		supplierHandler,
		materialHandler,
		challanHandler,
		invoiceHandler,
		paymentHandler,
		documentHandler,
		healthHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

// ensureAdminUser creates the bootstrap admin account on first start so the
// API is usable out of the box. Skipped when the account already exists or
// no admin credentials are configured.
func ensureAdminUser(userService *services.UserService, cfg *config.Config) {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := userService.CreateUser(ctx, &models.CreateUserRequest{
		Name:     "Administrator",
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Role:     "admin",
	})
	var dup *models.DuplicateNameError
	if errors.As(err, &dup) {
		return
	}
	if err != nil {
		log.Printf("[Bootstrap] Could not create admin user: %v", err)
		return
	}
	log.Printf("[Bootstrap] Created admin user %s", cfg.Admin.Email)
}
