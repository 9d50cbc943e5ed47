package models

import (
	"strings"
	"time"
)

// Invoice is the persisted invoice header. Rate is the nominal header rate
// (first line item's rate, kept for rows that predate invoice_items);
// authoritative per-item rates live in InvoiceItem. ChallanIDsSnapshot is
// the immutable set of challan IDs captured at generation time, used only
// to restore a soft-deleted invoice.
type Invoice struct {
	ID                 int64      `json:"id"`
	InvoiceNo          string     `json:"invoice_no"`
	Date               time.Time  `json:"date"`
	SupplierID         int64      `json:"supplier_id"`
	OrderNo            string     `json:"order_no"`
	OrderDate          *time.Time `json:"order_date"`
	Rate               float64    `json:"rate"`
	BaseAmount         float64    `json:"base_amount"`
	CGSTAmount         float64    `json:"cgst_amount"`
	SGSTAmount         float64    `json:"sgst_amount"`
	TotalAmount        float64    `json:"total_amount"`
	ChallanIDsSnapshot []int64    `json:"challan_ids_snapshot"`
	IsDeleted          bool       `json:"is_deleted"`
	CreatedAt          time.Time  `json:"created_at"`
}

// InvoiceItem is one billed challan line, denormalized with the challan and
// material details it had at billing time so regeneration is exact.
type InvoiceItem struct {
	ID          int64      `json:"id"`
	InvoiceID   int64      `json:"invoice_id"`
	ChallanID   int64      `json:"challan_id"`
	ChallanNo   string     `json:"challan_no"`
	ChallanDate *time.Time `json:"challan_date"`
	Material    string     `json:"material"`
	Quantity    float64    `json:"quantity"`
	Rate        float64    `json:"rate"`
	BaseAmount  float64    `json:"base_amount"`
	CGSTAmount  float64    `json:"cgst_amount"`
	SGSTAmount  float64    `json:"sgst_amount"`
	TotalAmount float64    `json:"total_amount"`
}

// InvoiceWithDetails adds the display projection used by history lists.
type InvoiceWithDetails struct {
	Invoice
	SupplierName string        `json:"supplier_name"`
	ChallanCount int           `json:"challan_count"`
	Items        []InvoiceItem `json:"items,omitempty"`
}

// GenerateInvoiceRequest bills a set of pending challans. Quantity, when
// set, is persisted onto the challan before billing (the last edited value
// is what gets billed).
type GenerateInvoiceRequest struct {
	InvoiceNo string             `json:"invoice_no"`
	Date      string             `json:"date"`
	OrderNo   string             `json:"order_no"`
	OrderDate string             `json:"order_date"`
	Items     []InvoiceItemInput `json:"items"`
}

type InvoiceItemInput struct {
	ChallanID int64    `json:"challan_id"`
	Rate      float64  `json:"rate"`
	Quantity  *float64 `json:"quantity"`
}

func (r *GenerateInvoiceRequest) Validate() error {
	if strings.TrimSpace(r.InvoiceNo) == "" {
		return &ValidationError{Field: "invoice_no", Reason: "must not be empty"}
	}
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "at least one challan required"}
	}
	seen := make(map[int64]bool, len(r.Items))
	for _, it := range r.Items {
		if it.ChallanID <= 0 {
			return &ValidationError{Field: "challan_id", Reason: "must reference a challan"}
		}
		if seen[it.ChallanID] {
			return &ValidationError{Field: "challan_id", Reason: "duplicate challan in request"}
		}
		seen[it.ChallanID] = true
		if it.Rate < 0 {
			return &ValidationError{Field: "rate", Reason: "must not be negative"}
		}
		if it.Quantity != nil && *it.Quantity <= 0 {
			return &ValidationError{Field: "quantity", Reason: "must be greater than zero"}
		}
	}
	return nil
}
