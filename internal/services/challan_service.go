package services

import (
	"context"
	"time"

	"biller-backend/internal/models"
	"biller-backend/internal/repositories"
	"biller-backend/internal/timeutil"
)

type ChallanService struct {
	Repo *repositories.ChallanRepository
}

func NewChallanService(repo *repositories.ChallanRepository) *ChallanService {
	return &ChallanService{Repo: repo}
}

// CreateChallans records one receipt, turning each material line into its
// own challan row. An empty date means today (business date in IST).
func (s *ChallanService) CreateChallans(ctx context.Context, req *models.CreateChallanRequest) ([]*models.Challan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, err := parseBusinessDate(req.Date)
	if err != nil {
		return nil, err
	}

	challans := make([]*models.Challan, 0, len(req.Items))
	for _, item := range req.Items {
		challans = append(challans, &models.Challan{
			ChallanNo:  req.ChallanNo,
			Date:       date,
			SupplierID: req.SupplierID,
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity,
			OrderNo:    req.OrderNo,
		})
	}

	if err := s.Repo.CreateBatch(ctx, challans); err != nil {
		return nil, err
	}
	return challans, nil
}

func (s *ChallanService) ListPending(ctx context.Context, supplierID int64) ([]*models.ChallanWithDetails, error) {
	return s.Repo.ListPending(ctx, supplierID)
}

func (s *ChallanService) ListAll(ctx context.Context) ([]*models.ChallanWithDetails, error) {
	return s.Repo.ListAll(ctx)
}

func (s *ChallanService) ListBySupplier(ctx context.Context, supplierID int64) ([]*models.ChallanWithDetails, error) {
	return s.Repo.ListBySupplier(ctx, supplierID)
}

func (s *ChallanService) UpdateQuantity(ctx context.Context, id int64, req *models.UpdateChallanQuantityRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.Repo.UpdateQuantity(ctx, id, req.Quantity)
}

func parseBusinessDate(value string) (time.Time, error) {
	if value == "" {
		now := timeutil.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timeutil.IST), nil
	}
	t, err := timeutil.ParseDate(value)
	if err != nil {
		return time.Time{}, &models.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	return t, nil
}
