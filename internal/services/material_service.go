package services

import (
	"context"

	"biller-backend/internal/models"
	"biller-backend/internal/repositories"
)

type MaterialService struct {
	Repo *repositories.MaterialRepository
}

func NewMaterialService(repo *repositories.MaterialRepository) *MaterialService {
	return &MaterialService{Repo: repo}
}

func (s *MaterialService) CreateMaterial(ctx context.Context, req *models.CreateMaterialRequest) (*models.Material, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	material := &models.Material{
		Name: req.Name,
		Unit: req.Unit,
	}
	if err := s.Repo.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) ListMaterials(ctx context.Context) ([]*models.Material, error) {
	return s.Repo.List(ctx)
}
