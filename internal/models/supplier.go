package models

import (
	"strings"
	"time"
)

type Supplier struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	GSTNo     string    `json:"gst_no"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	GSTNo   string `json:"gst_no"`
	Phone   string `json:"phone"`
}

func (r *CreateSupplierRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return nil
}

// SupplierBalance is the billed/paid/balance projection for one supplier.
// Billed counts active invoices only; paid counts every recorded payment.
type SupplierBalance struct {
	SupplierID int64   `json:"supplier_id"`
	Supplier   string  `json:"supplier"`
	Billed     float64 `json:"billed"`
	Paid       float64 `json:"paid"`
	Balance    float64 `json:"balance"`
}
