package models

import (
	"strings"
	"time"
)

// Challan status values. A challan cycles Pending -> Billed when an invoice
// covers it and back to Pending when that invoice is soft-deleted.
const (
	ChallanPending = "Pending"
	ChallanBilled  = "Billed"
)

type Challan struct {
	ID         int64     `json:"id"`
	ChallanNo  string    `json:"challan_no"`
	Date       time.Time `json:"date"`
	SupplierID int64     `json:"supplier_id"`
	MaterialID int64     `json:"material_id"`
	Quantity   float64   `json:"quantity"`
	OrderNo    string    `json:"order_no"`
	Status     string    `json:"status"`
	InvoiceID  *int64    `json:"invoice_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChallanWithDetails joins in the supplier and material names for display.
type ChallanWithDetails struct {
	Challan
	Supplier string `json:"supplier"`
	GSTNo    string `json:"gst_no"`
	Material string `json:"material"`
	Unit     string `json:"unit"`
}

// CreateChallanRequest records one inward receipt, possibly covering several
// materials. Each item becomes its own challan row sharing challan_no, so a
// multi-item delivery stays one document but bills line by line.
type CreateChallanRequest struct {
	ChallanNo  string             `json:"challan_no"`
	Date       string             `json:"date"`
	SupplierID int64              `json:"supplier_id"`
	OrderNo    string             `json:"order_no"`
	Items      []ChallanItemInput `json:"items"`
}

type ChallanItemInput struct {
	MaterialID int64   `json:"material_id"`
	Quantity   float64 `json:"quantity"`
}

func (r *CreateChallanRequest) Validate() error {
	if strings.TrimSpace(r.ChallanNo) == "" {
		return &ValidationError{Field: "challan_no", Reason: "must not be empty"}
	}
	if r.SupplierID <= 0 {
		return &ValidationError{Field: "supplier_id", Reason: "must reference a supplier"}
	}
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "at least one item required"}
	}
	for _, it := range r.Items {
		if it.MaterialID <= 0 {
			return &ValidationError{Field: "material_id", Reason: "must reference a material"}
		}
		if it.Quantity <= 0 {
			return &ValidationError{Field: "quantity", Reason: "must be greater than zero"}
		}
	}
	return nil
}

type UpdateChallanQuantityRequest struct {
	Quantity float64 `json:"quantity"`
}

func (r *UpdateChallanQuantityRequest) Validate() error {
	if r.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be greater than zero"}
	}
	return nil
}
