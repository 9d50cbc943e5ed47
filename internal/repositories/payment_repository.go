package repositories

import (
	"context"

	"biller-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO payments(date, supplier_id, amount, mode, image_path, notes)
		 VALUES($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		payment.Date, payment.SupplierID, payment.Amount, payment.Mode,
		payment.ImagePath, payment.Notes,
	).Scan(&payment.ID, &payment.CreatedAt)

	if isForeignKeyViolation(err) {
		return &models.ForeignKeyError{Reference: "supplier"}
	}
	return err
}

func (r *PaymentRepository) ListBySupplier(ctx context.Context, supplierID int64) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, date, supplier_id, amount, mode, image_path, notes, created_at
		 FROM payments WHERE supplier_id = $1 ORDER BY date DESC, id DESC`, supplierID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(&p.ID, &p.Date, &p.SupplierID, &p.Amount, &p.Mode,
			&p.ImagePath, &p.Notes, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

// SumBySupplier totals every payment ever recorded for a supplier.
func (r *PaymentRepository) SumBySupplier(ctx context.Context, supplierID int64) (float64, error) {
	var paid float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE supplier_id = $1`, supplierID,
	).Scan(&paid)
	return paid, err
}
