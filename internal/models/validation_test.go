package models

import "testing"

func TestCreateChallanRequestValidate(t *testing.T) {
	valid := func() CreateChallanRequest {
		return CreateChallanRequest{
			ChallanNo:  "CH-101",
			SupplierID: 1,
			Items:      []ChallanItemInput{{MaterialID: 2, Quantity: 50}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*CreateChallanRequest)
		wantErr bool
	}{
		{"valid", func(r *CreateChallanRequest) {}, false},
		{"empty challan no", func(r *CreateChallanRequest) { r.ChallanNo = "  " }, true},
		{"no supplier", func(r *CreateChallanRequest) { r.SupplierID = 0 }, true},
		{"no items", func(r *CreateChallanRequest) { r.Items = nil }, true},
		{"zero quantity", func(r *CreateChallanRequest) { r.Items[0].Quantity = 0 }, true},
		{"negative quantity", func(r *CreateChallanRequest) { r.Items[0].Quantity = -5 }, true},
		{"no material", func(r *CreateChallanRequest) { r.Items[0].MaterialID = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateInvoiceRequestValidate(t *testing.T) {
	qty := 25.0
	valid := func() GenerateInvoiceRequest {
		return GenerateInvoiceRequest{
			InvoiceNo: "INV-001",
			Items: []InvoiceItemInput{
				{ChallanID: 1, Rate: 50},
				{ChallanID: 2, Rate: 40, Quantity: &qty},
			},
		}
	}

	zero := 0.0
	tests := []struct {
		name    string
		mutate  func(*GenerateInvoiceRequest)
		wantErr bool
	}{
		{"valid", func(r *GenerateInvoiceRequest) {}, false},
		{"empty invoice no", func(r *GenerateInvoiceRequest) { r.InvoiceNo = "" }, true},
		{"no items", func(r *GenerateInvoiceRequest) { r.Items = nil }, true},
		{"duplicate challan", func(r *GenerateInvoiceRequest) { r.Items[1].ChallanID = 1 }, true},
		{"negative rate", func(r *GenerateInvoiceRequest) { r.Items[0].Rate = -1 }, true},
		{"zero rate allowed", func(r *GenerateInvoiceRequest) { r.Items[0].Rate = 0 }, false},
		{"zero quantity override", func(r *GenerateInvoiceRequest) { r.Items[1].Quantity = &zero }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreatePaymentRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreatePaymentRequest
		wantErr bool
	}{
		{"cheque", CreatePaymentRequest{SupplierID: 1, Amount: 500, Mode: PaymentModeCheque}, false},
		{"online", CreatePaymentRequest{SupplierID: 1, Amount: 500, Mode: PaymentModeOnline}, false},
		{"cash", CreatePaymentRequest{SupplierID: 1, Amount: 500, Mode: PaymentModeCash}, false},
		{"unknown mode", CreatePaymentRequest{SupplierID: 1, Amount: 500, Mode: "Barter"}, true},
		{"zero amount", CreatePaymentRequest{SupplierID: 1, Amount: 0, Mode: PaymentModeCash}, true},
		{"negative amount", CreatePaymentRequest{SupplierID: 1, Amount: -10, Mode: PaymentModeCash}, true},
		{"no supplier", CreatePaymentRequest{Amount: 500, Mode: PaymentModeCash}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConflictErrorMessage(t *testing.T) {
	err := &ConflictError{Reason: "challans were billed on another invoice", ChallanIDs: []int64{4, 9}}
	want := "challans were billed on another invoice (challans: 4, 9)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := &ConflictError{Reason: "invoice is already deleted"}
	if bare.Error() != "invoice is already deleted" {
		t.Errorf("Error() = %q", bare.Error())
	}
}
