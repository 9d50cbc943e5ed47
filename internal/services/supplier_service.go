package services

import (
	"context"

	"biller-backend/internal/models"
	"biller-backend/internal/repositories"
)

type SupplierService struct {
	Repo        *repositories.SupplierRepository
	InvoiceRepo *repositories.InvoiceRepository
	PaymentRepo *repositories.PaymentRepository
}

func NewSupplierService(repo *repositories.SupplierRepository, invoiceRepo *repositories.InvoiceRepository, paymentRepo *repositories.PaymentRepository) *SupplierService {
	return &SupplierService{Repo: repo, InvoiceRepo: invoiceRepo, PaymentRepo: paymentRepo}
}

func (s *SupplierService) CreateSupplier(ctx context.Context, req *models.CreateSupplierRequest) (*models.Supplier, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	supplier := &models.Supplier{
		Name:    req.Name,
		Address: req.Address,
		GSTNo:   req.GSTNo,
		Phone:   req.Phone,
	}
	if err := s.Repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) GetSupplier(ctx context.Context, id int64) (*models.Supplier, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]*models.Supplier, error) {
	return s.Repo.List(ctx)
}

// GetBalance reports billed (active invoices only), paid (all payments) and
// the outstanding difference for one supplier. Deleted invoices drop out of
// billed immediately; payments are never excluded.
func (s *SupplierService) GetBalance(ctx context.Context, supplierID int64) (*models.SupplierBalance, error) {
	supplier, err := s.Repo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	billed, err := s.InvoiceRepo.SupplierBilled(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	paid, err := s.PaymentRepo.SumBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	return &models.SupplierBalance{
		SupplierID: supplier.ID,
		Supplier:   supplier.Name,
		Billed:     billed,
		Paid:       paid,
		Balance:    billed - paid,
	}, nil
}
