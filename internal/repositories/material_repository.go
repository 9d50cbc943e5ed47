package repositories

import (
	"context"
	"errors"

	"biller-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MaterialRepository struct {
	DB *pgxpool.Pool
}

func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	if material.Unit == "" {
		material.Unit = models.DefaultUnit
	}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO materials(name, unit)
		 VALUES($1, $2)
		 RETURNING id, created_at`,
		material.Name, material.Unit,
	).Scan(&material.ID, &material.CreatedAt)

	if isUniqueViolation(err) {
		return &models.DuplicateNameError{Entity: "material", Name: material.Name}
	}
	return err
}

func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	var m models.Material
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, unit, created_at FROM materials WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Unit, &m.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaterialRepository) List(ctx context.Context) ([]*models.Material, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, unit, created_at FROM materials ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []*models.Material
	for rows.Next() {
		var m models.Material
		err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		materials = append(materials, &m)
	}
	return materials, rows.Err()
}
