package repositories

import (
	"context"
	"errors"

	"biller-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

// Generate creates the invoice header and items and marks the covered
// challans Billed, all in one transaction. The challan IDs are captured in
// the header snapshot at this moment and never rewritten afterwards. If any
// challan was billed concurrently the whole operation rolls back with a
// ConflictError.
func (r *InvoiceRepository) Generate(ctx context.Context, invoice *models.Invoice, items []models.InvoiceItem) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	challanIDs := make([]int64, len(items))
	for i, it := range items {
		challanIDs[i] = it.ChallanID
	}
	invoice.ChallanIDsSnapshot = challanIDs

	err = tx.QueryRow(ctx,
		`INSERT INTO invoices(invoice_no, date, supplier_id, order_no, order_date, rate,
		                      base_amount, cgst_amount, sgst_amount, total_amount, challan_ids_snapshot)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at`,
		invoice.InvoiceNo, invoice.Date, invoice.SupplierID, invoice.OrderNo, invoice.OrderDate,
		invoice.Rate, invoice.BaseAmount, invoice.CGSTAmount, invoice.SGSTAmount,
		invoice.TotalAmount, challanIDs,
	).Scan(&invoice.ID, &invoice.CreatedAt)

	if isUniqueViolation(err) {
		return &models.DuplicateInvoiceNoError{InvoiceNo: invoice.InvoiceNo}
	}
	if isForeignKeyViolation(err) {
		return &models.ForeignKeyError{Reference: "supplier"}
	}
	if err != nil {
		return err
	}

	for i := range items {
		item := &items[i]
		item.InvoiceID = invoice.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO invoice_items(invoice_id, challan_id, challan_no, challan_date, material,
			                           quantity, rate, base_amount, cgst_amount, sgst_amount, total_amount)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 RETURNING id`,
			item.InvoiceID, item.ChallanID, item.ChallanNo, item.ChallanDate, item.Material,
			item.Quantity, item.Rate, item.BaseAmount, item.CGSTAmount, item.SGSTAmount, item.TotalAmount,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx,
		`UPDATE challans SET status = $1, invoice_id = $2
		 WHERE id = ANY($3) AND status = $4`,
		models.ChallanBilled, invoice.ID, challanIDs, models.ChallanPending,
	)
	if err != nil {
		return err
	}
	if int(tag.RowsAffected()) != len(challanIDs) {
		return &models.ConflictError{Reason: "one or more challans are no longer pending"}
	}

	return tx.Commit(ctx)
}

// SoftDelete unbills an invoice: its challans go back to Pending and the
// header is flagged deleted but kept, snapshot intact, so the invoice can be
// restored later.
func (r *InvoiceRepository) SoftDelete(ctx context.Context, id int64) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE invoices SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE`, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var deleted bool
		err := tx.QueryRow(ctx, `SELECT is_deleted FROM invoices WHERE id = $1`, id).Scan(&deleted)
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		if err != nil {
			return err
		}
		return &models.ConflictError{Reason: "invoice is already deleted"}
	}

	_, err = tx.Exec(ctx,
		`UPDATE challans SET status = $1, invoice_id = NULL WHERE invoice_id = $2`,
		models.ChallanPending, id,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Restore re-bills a soft-deleted invoice from its snapshot. It fails with a
// ConflictError naming the blocking challans when any snapshot challan has
// since been billed on a different invoice.
func (r *InvoiceRepository) Restore(ctx context.Context, id int64) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var snapshot []int64
	var deleted bool
	err = tx.QueryRow(ctx,
		`SELECT challan_ids_snapshot, is_deleted FROM invoices WHERE id = $1`, id,
	).Scan(&snapshot, &deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	if err != nil {
		return err
	}
	if !deleted {
		return &models.ConflictError{Reason: "invoice is not deleted"}
	}
	if len(snapshot) == 0 {
		return &models.NoSnapshotError{InvoiceID: id}
	}

	rows, err := tx.Query(ctx,
		`SELECT id FROM challans
		 WHERE id = ANY($1) AND status = $2 AND (invoice_id IS NULL OR invoice_id <> $3)`,
		snapshot, models.ChallanBilled, id,
	)
	if err != nil {
		return err
	}
	var blocking []int64
	for rows.Next() {
		var cid int64
		if err := rows.Scan(&cid); err != nil {
			rows.Close()
			return err
		}
		blocking = append(blocking, cid)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	if len(blocking) > 0 {
		return &models.ConflictError{
			Reason:     "challans were billed on another invoice",
			ChallanIDs: blocking,
		}
	}

	tag, err := tx.Exec(ctx,
		`UPDATE challans SET status = $1, invoice_id = $2 WHERE id = ANY($3)`,
		models.ChallanBilled, id, snapshot,
	)
	if err != nil {
		return err
	}
	if int(tag.RowsAffected()) != len(snapshot) {
		return &models.ConflictError{Reason: "snapshot challans no longer exist"}
	}

	_, err = tx.Exec(ctx, `UPDATE invoices SET is_deleted = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *InvoiceRepository) Get(ctx context.Context, id int64) (*models.InvoiceWithDetails, error) {
	var inv models.InvoiceWithDetails
	err := r.DB.QueryRow(ctx,
		`SELECT i.id, i.invoice_no, i.date, i.supplier_id, i.order_no, i.order_date, i.rate,
		        i.base_amount, i.cgst_amount, i.sgst_amount, i.total_amount,
		        i.challan_ids_snapshot, i.is_deleted, i.created_at,
		        COALESCE(s.name, '') AS supplier_name
		 FROM invoices i
		 LEFT JOIN suppliers s ON i.supplier_id = s.id
		 WHERE i.id = $1`, id,
	).Scan(&inv.ID, &inv.InvoiceNo, &inv.Date, &inv.SupplierID, &inv.OrderNo, &inv.OrderDate,
		&inv.Rate, &inv.BaseAmount, &inv.CGSTAmount, &inv.SGSTAmount, &inv.TotalAmount,
		&inv.ChallanIDsSnapshot, &inv.IsDeleted, &inv.CreatedAt, &inv.SupplierName)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	inv.ChallanCount = len(items)
	return &inv, nil
}

func (r *InvoiceRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*models.InvoiceWithDetails, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `SELECT id FROM invoices WHERE invoice_no = $1`, invoiceNo).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *InvoiceRepository) listItems(ctx context.Context, invoiceID int64) ([]models.InvoiceItem, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, invoice_id, challan_id, challan_no, challan_date, material,
		        quantity, rate, base_amount, cgst_amount, sgst_amount, total_amount
		 FROM invoice_items WHERE invoice_id = $1 ORDER BY id`, invoiceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InvoiceItem
	for rows.Next() {
		var it models.InvoiceItem
		err := rows.Scan(&it.ID, &it.InvoiceID, &it.ChallanID, &it.ChallanNo, &it.ChallanDate,
			&it.Material, &it.Quantity, &it.Rate, &it.BaseAmount, &it.CGSTAmount,
			&it.SGSTAmount, &it.TotalAmount)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *InvoiceRepository) list(ctx context.Context, where string, args ...any) ([]*models.InvoiceWithDetails, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT i.id, i.invoice_no, i.date, i.supplier_id, i.order_no, i.order_date, i.rate,
		        i.base_amount, i.cgst_amount, i.sgst_amount, i.total_amount,
		        i.challan_ids_snapshot, i.is_deleted, i.created_at,
		        COALESCE(s.name, '') AS supplier_name,
		        (SELECT COUNT(*) FROM invoice_items ii WHERE ii.invoice_id = i.id) AS challan_count
		 FROM invoices i
		 LEFT JOIN suppliers s ON i.supplier_id = s.id
		 `+where+`
		 ORDER BY i.date DESC, i.id DESC`, args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.InvoiceWithDetails
	for rows.Next() {
		var inv models.InvoiceWithDetails
		err := rows.Scan(&inv.ID, &inv.InvoiceNo, &inv.Date, &inv.SupplierID, &inv.OrderNo,
			&inv.OrderDate, &inv.Rate, &inv.BaseAmount, &inv.CGSTAmount, &inv.SGSTAmount,
			&inv.TotalAmount, &inv.ChallanIDsSnapshot, &inv.IsDeleted, &inv.CreatedAt,
			&inv.SupplierName, &inv.ChallanCount)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, &inv)
	}
	return invoices, rows.Err()
}

// ListActive returns invoices that are currently in force.
func (r *InvoiceRepository) ListActive(ctx context.Context) ([]*models.InvoiceWithDetails, error) {
	return r.list(ctx, `WHERE i.is_deleted = FALSE`)
}

// ListMaster returns the complete history, deleted invoices included, for
// the sales register.
func (r *InvoiceRepository) ListMaster(ctx context.Context) ([]*models.InvoiceWithDetails, error) {
	return r.list(ctx, ``)
}

func (r *InvoiceRepository) ListBySupplier(ctx context.Context, supplierID int64) ([]*models.InvoiceWithDetails, error) {
	return r.list(ctx, `WHERE i.supplier_id = $1 AND i.is_deleted = FALSE`, supplierID)
}

// SupplierBilled sums the totals of a supplier's active invoices.
func (r *InvoiceRepository) SupplierBilled(ctx context.Context, supplierID int64) (float64, error) {
	var billed float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM invoices
		 WHERE supplier_id = $1 AND is_deleted = FALSE`, supplierID,
	).Scan(&billed)
	return billed, err
}
