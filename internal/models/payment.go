package models

import "time"

// Payment modes. Online covers UPI/NEFT/IMPS transfers; the reference number
// goes in Notes.
const (
	PaymentModeCheque = "Cheque"
	PaymentModeOnline = "Online"
	PaymentModeCash   = "Cash"
)

// Payment is an append-only record of money paid to a supplier. Payments are
// never deleted; corrections are recorded as new entries.
type Payment struct {
	ID         int64     `json:"id"`
	Date       time.Time `json:"date"`
	SupplierID int64     `json:"supplier_id"`
	Amount     float64   `json:"amount"`
	Mode       string    `json:"mode"`
	ImagePath  string    `json:"image_path"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreatePaymentRequest struct {
	Date       string  `json:"date"`
	SupplierID int64   `json:"supplier_id"`
	Amount     float64 `json:"amount"`
	Mode       string  `json:"mode"`
	Notes      string  `json:"notes"`
}

func (r *CreatePaymentRequest) Validate() error {
	if r.SupplierID <= 0 {
		return &ValidationError{Field: "supplier_id", Reason: "must reference a supplier"}
	}
	if r.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	switch r.Mode {
	case PaymentModeCheque, PaymentModeOnline, PaymentModeCash:
	default:
		return &ValidationError{Field: "mode", Reason: "must be Cheque, Online or Cash"}
	}
	return nil
}
