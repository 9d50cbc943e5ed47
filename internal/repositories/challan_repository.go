package repositories

import (
	"context"
	"errors"

	"biller-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ChallanRepository struct {
	DB *pgxpool.Pool
}

func NewChallanRepository(db *pgxpool.Pool) *ChallanRepository {
	return &ChallanRepository{DB: db}
}

const challanDetailColumns = `c.id, c.challan_no, c.date, c.supplier_id, c.material_id,
	        c.quantity, c.order_no, c.status, c.invoice_id, c.created_at,
	        COALESCE(s.name, '') AS supplier, COALESCE(s.gst_no, '') AS gst_no,
	        COALESCE(m.name, '') AS material, COALESCE(m.unit, '') AS unit`

func scanChallanDetail(rows pgx.Rows) (*models.ChallanWithDetails, error) {
	var c models.ChallanWithDetails
	err := rows.Scan(&c.ID, &c.ChallanNo, &c.Date, &c.SupplierID, &c.MaterialID,
		&c.Quantity, &c.OrderNo, &c.Status, &c.InvoiceID, &c.CreatedAt,
		&c.Supplier, &c.GSTNo, &c.Material, &c.Unit)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateBatch inserts all item rows of one receipt in a single transaction,
// so a multi-material challan is recorded completely or not at all.
func (r *ChallanRepository) CreateBatch(ctx context.Context, challans []*models.Challan) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, c := range challans {
		err = tx.QueryRow(ctx,
			`INSERT INTO challans(challan_no, date, supplier_id, material_id, quantity, order_no, status)
			 VALUES($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id, created_at`,
			c.ChallanNo, c.Date, c.SupplierID, c.MaterialID, c.Quantity, c.OrderNo, models.ChallanPending,
		).Scan(&c.ID, &c.CreatedAt)
		if isForeignKeyViolation(err) {
			return &models.ForeignKeyError{Reference: "supplier or material"}
		}
		if err != nil {
			return err
		}
		c.Status = models.ChallanPending
	}

	return tx.Commit(ctx)
}

func (r *ChallanRepository) GetByID(ctx context.Context, id int64) (*models.Challan, error) {
	var c models.Challan
	err := r.DB.QueryRow(ctx,
		`SELECT id, challan_no, date, supplier_id, material_id, quantity, order_no, status, invoice_id, created_at
		 FROM challans WHERE id = $1`, id,
	).Scan(&c.ID, &c.ChallanNo, &c.Date, &c.SupplierID, &c.MaterialID,
		&c.Quantity, &c.OrderNo, &c.Status, &c.InvoiceID, &c.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetDetail returns one challan joined with its supplier and material.
func (r *ChallanRepository) GetDetail(ctx context.Context, id int64) (*models.ChallanWithDetails, error) {
	var c models.ChallanWithDetails
	err := r.DB.QueryRow(ctx,
		`SELECT `+challanDetailColumns+`
		 FROM challans c
		 LEFT JOIN suppliers s ON c.supplier_id = s.id
		 LEFT JOIN materials m ON c.material_id = m.id
		 WHERE c.id = $1`, id,
	).Scan(&c.ID, &c.ChallanNo, &c.Date, &c.SupplierID, &c.MaterialID,
		&c.Quantity, &c.OrderNo, &c.Status, &c.InvoiceID, &c.CreatedAt,
		&c.Supplier, &c.GSTNo, &c.Material, &c.Unit)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListPending returns unbilled challans, oldest first so billing naturally
// clears the backlog in receipt order. supplierID of 0 means all suppliers.
func (r *ChallanRepository) ListPending(ctx context.Context, supplierID int64) ([]*models.ChallanWithDetails, error) {
	query := `SELECT ` + challanDetailColumns + `
		 FROM challans c
		 LEFT JOIN suppliers s ON c.supplier_id = s.id
		 LEFT JOIN materials m ON c.material_id = m.id
		 WHERE c.status = $1`
	args := []any{models.ChallanPending}
	if supplierID > 0 {
		query += ` AND c.supplier_id = $2`
		args = append(args, supplierID)
	}
	query += ` ORDER BY c.date, c.id`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challans []*models.ChallanWithDetails
	for rows.Next() {
		c, err := scanChallanDetail(rows)
		if err != nil {
			return nil, err
		}
		challans = append(challans, c)
	}
	return challans, rows.Err()
}

// ListAll returns the full challan history, billed and pending alike.
func (r *ChallanRepository) ListAll(ctx context.Context) ([]*models.ChallanWithDetails, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+challanDetailColumns+`
		 FROM challans c
		 LEFT JOIN suppliers s ON c.supplier_id = s.id
		 LEFT JOIN materials m ON c.material_id = m.id
		 ORDER BY c.date DESC, c.id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challans []*models.ChallanWithDetails
	for rows.Next() {
		c, err := scanChallanDetail(rows)
		if err != nil {
			return nil, err
		}
		challans = append(challans, c)
	}
	return challans, rows.Err()
}

func (r *ChallanRepository) ListBySupplier(ctx context.Context, supplierID int64) ([]*models.ChallanWithDetails, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+challanDetailColumns+`
		 FROM challans c
		 LEFT JOIN suppliers s ON c.supplier_id = s.id
		 LEFT JOIN materials m ON c.material_id = m.id
		 WHERE c.supplier_id = $1
		 ORDER BY c.date DESC, c.id DESC`, supplierID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challans []*models.ChallanWithDetails
	for rows.Next() {
		c, err := scanChallanDetail(rows)
		if err != nil {
			return nil, err
		}
		challans = append(challans, c)
	}
	return challans, rows.Err()
}

// ListByInvoice returns the challans currently linked to an invoice.
func (r *ChallanRepository) ListByInvoice(ctx context.Context, invoiceID int64) ([]*models.ChallanWithDetails, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+challanDetailColumns+`
		 FROM challans c
		 LEFT JOIN suppliers s ON c.supplier_id = s.id
		 LEFT JOIN materials m ON c.material_id = m.id
		 WHERE c.invoice_id = $1
		 ORDER BY c.date, c.id`, invoiceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challans []*models.ChallanWithDetails
	for rows.Next() {
		c, err := scanChallanDetail(rows)
		if err != nil {
			return nil, err
		}
		challans = append(challans, c)
	}
	return challans, rows.Err()
}

// UpdateQuantity changes the quantity of a pending challan. Billed challans
// are immutable; unbill the invoice first.
func (r *ChallanRepository) UpdateQuantity(ctx context.Context, id int64, quantity float64) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE challans SET quantity = $1 WHERE id = $2 AND status = $3`,
		quantity, id, models.ChallanPending,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Zero rows means either no such challan or it is already billed.
	var status string
	err = r.DB.QueryRow(ctx, `SELECT status FROM challans WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	if err != nil {
		return err
	}
	return &models.ConflictError{Reason: "challan is already billed"}
}
