package services

import (
	"context"
	"time"

	"biller-backend/internal/billing"
	"biller-backend/internal/metrics"
	"biller-backend/internal/models"
	"biller-backend/internal/repositories"
)

type InvoiceService struct {
	Repo        *repositories.InvoiceRepository
	ChallanRepo *repositories.ChallanRepository
}

func NewInvoiceService(repo *repositories.InvoiceRepository, challanRepo *repositories.ChallanRepository) *InvoiceService {
	return &InvoiceService{Repo: repo, ChallanRepo: challanRepo}
}

// GenerateInvoice bills the requested challans as one invoice. Quantity
// overrides are persisted onto the challans first, so a crash between the
// two steps leaves edited quantities saved but nothing billed. All challans
// must be pending and belong to the same supplier.
func (s *InvoiceService) GenerateInvoice(ctx context.Context, req *models.GenerateInvoiceRequest) (*models.InvoiceWithDetails, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, err := parseBusinessDate(req.Date)
	if err != nil {
		return nil, err
	}
	var orderDate *time.Time
	if req.OrderDate != "" {
		d, err := parseBusinessDate(req.OrderDate)
		if err != nil {
			return nil, err
		}
		orderDate = &d
	}

	for _, input := range req.Items {
		if input.Quantity != nil {
			err := s.ChallanRepo.UpdateQuantity(ctx, input.ChallanID, *input.Quantity)
			if err != nil {
				return nil, err
			}
		}
	}

	var supplierID int64
	items := make([]models.InvoiceItem, 0, len(req.Items))
	for _, input := range req.Items {
		challan, err := s.ChallanRepo.GetDetail(ctx, input.ChallanID)
		if err != nil {
			return nil, err
		}
		if challan.Status != models.ChallanPending {
			return nil, &models.ConflictError{
				Reason:     "challan is already billed",
				ChallanIDs: []int64{challan.ID},
			}
		}
		if supplierID == 0 {
			supplierID = challan.SupplierID
		} else if challan.SupplierID != supplierID {
			return nil, &models.ValidationError{Field: "items", Reason: "all challans must belong to one supplier"}
		}

		amounts := billing.Compute(challan.Quantity, input.Rate)
		challanDate := challan.Date
		items = append(items, models.InvoiceItem{
			ChallanID:   challan.ID,
			ChallanNo:   challan.ChallanNo,
			ChallanDate: &challanDate,
			Material:    challan.Material,
			Quantity:    challan.Quantity,
			Rate:        input.Rate,
			BaseAmount:  amounts.Base,
			CGSTAmount:  amounts.CGST,
			SGSTAmount:  amounts.SGST,
			TotalAmount: amounts.Total,
		})
	}

	var totals billing.Amounts
	for _, it := range items {
		totals.Base += it.BaseAmount
		totals.CGST += it.CGSTAmount
		totals.SGST += it.SGSTAmount
		totals.Total += it.TotalAmount
	}

	invoice := &models.Invoice{
		InvoiceNo:   req.InvoiceNo,
		Date:        date,
		SupplierID:  supplierID,
		OrderNo:     req.OrderNo,
		OrderDate:   orderDate,
		Rate:        req.Items[0].Rate,
		BaseAmount:  totals.Base,
		CGSTAmount:  totals.CGST,
		SGSTAmount:  totals.SGST,
		TotalAmount: totals.Total,
	}

	if err := s.Repo.Generate(ctx, invoice, items); err != nil {
		return nil, err
	}
	metrics.InvoicesGenerated.Inc()

	return &models.InvoiceWithDetails{
		Invoice:      *invoice,
		ChallanCount: len(items),
		Items:        items,
	}, nil
}

func (s *InvoiceService) SoftDeleteInvoice(ctx context.Context, id int64) error {
	if err := s.Repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	metrics.InvoicesDeleted.Inc()
	return nil
}

func (s *InvoiceService) RestoreInvoice(ctx context.Context, id int64) error {
	if err := s.Repo.Restore(ctx, id); err != nil {
		return err
	}
	metrics.InvoicesRestored.Inc()
	return nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id int64) (*models.InvoiceWithDetails, error) {
	return s.Repo.Get(ctx, id)
}

func (s *InvoiceService) ListActive(ctx context.Context) ([]*models.InvoiceWithDetails, error) {
	return s.Repo.ListActive(ctx)
}

func (s *InvoiceService) ListMaster(ctx context.Context) ([]*models.InvoiceWithDetails, error) {
	return s.Repo.ListMaster(ctx)
}

func (s *InvoiceService) ListBySupplier(ctx context.Context, supplierID int64) ([]*models.InvoiceWithDetails, error) {
	return s.Repo.ListBySupplier(ctx, supplierID)
}
