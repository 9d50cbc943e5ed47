package services

import (
	"bytes"
	"testing"
	"time"

	"biller-backend/internal/billing"
	"biller-backend/internal/models"
)

func testBundle() *DocumentBundle {
	date := time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)
	challanDate := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	items := []models.InvoiceItem{
		{ChallanNo: "CH-101", ChallanDate: &challanDate, Material: "Grey Fabric", Quantity: 100, Rate: 50, BaseAmount: 5000, CGSTAmount: 125, SGSTAmount: 125, TotalAmount: 5250},
		{ChallanNo: "CH-101", ChallanDate: &challanDate, Material: "Lining Cloth", Quantity: 20, Rate: 30, BaseAmount: 600, CGSTAmount: 15, SGSTAmount: 15, TotalAmount: 630},
		{ChallanNo: "CH-102", ChallanDate: &challanDate, Material: "Grey Fabric", Quantity: 40, Rate: 50, BaseAmount: 2000, CGSTAmount: 50, SGSTAmount: 50, TotalAmount: 2100},
	}
	totals := billing.Amounts{Base: 7600, CGST: 190, SGST: 190, Total: 7980}
	return &DocumentBundle{
		Kind:          "invoice",
		DocumentNo:    "INV-042",
		Date:          date,
		Seller:        DocumentParty{Name: "Test Mills", Address: "12 Mill Road, Surat", TaxID: "24AAAAA0000A1Z5"},
		Party:         DocumentParty{Name: "Sharma Textiles", Address: "4 Market Lane", TaxID: "24BBBBB0000B1Z5"},
		OrderNo:       "PO-7",
		ChallanNos:    []string{"CH-101", "CH-102"},
		Items:         items,
		Totals:        totals,
		AmountInWords: billing.AmountInWords(totals.Total),
	}
}

func TestRenderInvoicePDF(t *testing.T) {
	s := &DocumentService{}
	data, err := s.RenderInvoicePDF(testBundle())
	if err != nil {
		t.Fatalf("RenderInvoicePDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestRenderChallanPDF(t *testing.T) {
	s := &DocumentService{}
	b := testBundle()
	b.Kind = "challan"
	data, err := s.RenderChallanPDF(b)
	if err != nil {
		t.Fatalf("RenderChallanPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestRenderInvoiceXLSX(t *testing.T) {
	s := &DocumentService{}
	data, err := s.RenderInvoiceXLSX(testBundle())
	if err != nil {
		t.Fatalf("RenderInvoiceXLSX: %v", err)
	}
	// XLSX files are zip archives
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("output is not an xlsx archive")
	}
}

func TestRenderChallanXLSX(t *testing.T) {
	s := &DocumentService{}
	b := testBundle()
	b.Kind = "challan"
	data, err := s.RenderChallanXLSX(b)
	if err != nil {
		t.Fatalf("RenderChallanXLSX: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("output is not an xlsx archive")
	}
}

func TestRenderSalesRegisterXLSX(t *testing.T) {
	s := &DocumentService{}
	invoices := []*models.InvoiceWithDetails{
		{
			Invoice: models.Invoice{
				InvoiceNo: "INV-001", Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
				BaseAmount: 5000, CGSTAmount: 125, SGSTAmount: 125, TotalAmount: 5250,
			},
			SupplierName: "Sharma Textiles",
			ChallanCount: 2,
		},
		{
			Invoice: models.Invoice{
				InvoiceNo: "INV-002", Date: time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
				BaseAmount: 1000, CGSTAmount: 25, SGSTAmount: 25, TotalAmount: 1050,
				IsDeleted: true,
			},
			SupplierName: "Verma Fabrics",
			ChallanCount: 1,
		},
	}
	data, err := s.RenderSalesRegisterXLSX(invoices)
	if err != nil {
		t.Fatalf("RenderSalesRegisterXLSX: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("output is not an xlsx archive")
	}
}

func TestDocumentFilename(t *testing.T) {
	tests := []struct {
		kind, no, party, ext string
		want                 string
	}{
		{"Invoice", "INV-042", "Sharma Textiles", "pdf", "Invoice_INV-042_Sharma_Textiles.pdf"},
		{"Challan", "INV/042", "Verma Fabrics", "xlsx", "Challan_INV-042_Verma_Fabrics.xlsx"},
	}
	for _, tt := range tests {
		if got := DocumentFilename(tt.kind, tt.no, tt.party, tt.ext); got != tt.want {
			t.Errorf("DocumentFilename(%q, %q, %q, %q) = %q, want %q",
				tt.kind, tt.no, tt.party, tt.ext, got, tt.want)
		}
	}
}

func TestDistinctChallanNos(t *testing.T) {
	items := []models.InvoiceItem{
		{ChallanNo: "CH-2"}, {ChallanNo: "CH-1"}, {ChallanNo: "CH-2"},
	}
	got := distinctChallanNos(items)
	if len(got) != 2 || got[0] != "CH-2" || got[1] != "CH-1" {
		t.Errorf("distinctChallanNos = %v", got)
	}
}
