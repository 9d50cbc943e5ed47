package repositories

import (
	"context"
	"errors"

	"biller-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SupplierRepository struct {
	DB *pgxpool.Pool
}

func NewSupplierRepository(db *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{DB: db}
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO suppliers(name, address, gst_no, phone)
		 VALUES($1, $2, $3, $4)
		 RETURNING id, created_at`,
		supplier.Name, supplier.Address, supplier.GSTNo, supplier.Phone,
	).Scan(&supplier.ID, &supplier.CreatedAt)

	if isUniqueViolation(err) {
		return &models.DuplicateNameError{Entity: "supplier", Name: supplier.Name}
	}
	return err
}

func (r *SupplierRepository) GetByID(ctx context.Context, id int64) (*models.Supplier, error) {
	var s models.Supplier
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, address, gst_no, phone, created_at
		 FROM suppliers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Address, &s.GSTNo, &s.Phone, &s.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepository) GetByName(ctx context.Context, name string) (*models.Supplier, error) {
	var s models.Supplier
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, address, gst_no, phone, created_at
		 FROM suppliers WHERE name = $1`, name,
	).Scan(&s.ID, &s.Name, &s.Address, &s.GSTNo, &s.Phone, &s.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns all suppliers ordered by name for stable dropdowns.
func (r *SupplierRepository) List(ctx context.Context) ([]*models.Supplier, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, address, gst_no, phone, created_at
		 FROM suppliers ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		var s models.Supplier
		err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.GSTNo, &s.Phone, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}
