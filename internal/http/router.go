package http

import (
	"biller-backend/internal/handlers"
	"biller-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	supplierHandler *handlers.SupplierHandler,
	materialHandler *handlers.MaterialHandler,
	challanHandler *handlers.ChallanHandler,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
	documentHandler *handlers.DocumentHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/healthz", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/readyz", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.RequireRole("admin"))
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("", userHandler.CreateUser).Methods("POST")

	// Suppliers
	suppliersAPI := r.PathPrefix("/api/suppliers").Subrouter()
	suppliersAPI.Use(authMiddleware.Authenticate)
	suppliersAPI.HandleFunc("", supplierHandler.ListSuppliers).Methods("GET")
	suppliersAPI.HandleFunc("", supplierHandler.CreateSupplier).Methods("POST")
	suppliersAPI.HandleFunc("/{id}", supplierHandler.GetSupplier).Methods("GET")
	suppliersAPI.HandleFunc("/{id}/balance", supplierHandler.GetBalance).Methods("GET")
	suppliersAPI.HandleFunc("/{id}/ledger", supplierHandler.GetLedger).Methods("GET")
	suppliersAPI.HandleFunc("/{id}/payments", paymentHandler.ListBySupplier).Methods("GET")
	suppliersAPI.HandleFunc("/{id}/invoices", supplierHandler.ListInvoices).Methods("GET")
	suppliersAPI.HandleFunc("/{id}/challans", supplierHandler.ListChallans).Methods("GET")

	// Materials
	materialsAPI := r.PathPrefix("/api/materials").Subrouter()
	materialsAPI.Use(authMiddleware.Authenticate)
	materialsAPI.HandleFunc("", materialHandler.ListMaterials).Methods("GET")
	materialsAPI.HandleFunc("", materialHandler.CreateMaterial).Methods("POST")

	// Challans
	challansAPI := r.PathPrefix("/api/challans").Subrouter()
	challansAPI.Use(authMiddleware.Authenticate)
	challansAPI.HandleFunc("", challanHandler.ListAll).Methods("GET")
	challansAPI.HandleFunc("", challanHandler.CreateChallans).Methods("POST")
	challansAPI.HandleFunc("/pending", challanHandler.ListPending).Methods("GET")
	challansAPI.HandleFunc("/{id}/quantity", challanHandler.UpdateQuantity).Methods("PATCH")

	// Invoices and their documents
	invoicesAPI := r.PathPrefix("/api/invoices").Subrouter()
	invoicesAPI.Use(authMiddleware.Authenticate)
	invoicesAPI.HandleFunc("", invoiceHandler.ListActive).Methods("GET")
	invoicesAPI.HandleFunc("", invoiceHandler.GenerateInvoice).Methods("POST")
	invoicesAPI.HandleFunc("/master", invoiceHandler.ListMaster).Methods("GET")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.GetInvoice).Methods("GET")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.DeleteInvoice).Methods("DELETE")
	invoicesAPI.HandleFunc("/{id}/restore", invoiceHandler.RestoreInvoice).Methods("POST")
	invoicesAPI.HandleFunc("/{id}/document", documentHandler.GetInvoiceDocument).Methods("GET")
	invoicesAPI.HandleFunc("/{id}/challan-document", documentHandler.GetChallanDocument).Methods("GET")

	// Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.CreatePayment).Methods("POST")

	// Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/sales-register", documentHandler.GetSalesRegister).Methods("GET")

	return r
}
