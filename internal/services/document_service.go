package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"biller-backend/internal/billing"
	"biller-backend/internal/cloudsync"
	"biller-backend/internal/metrics"
	"biller-backend/internal/models"
	"biller-backend/internal/repositories"
	"biller-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/xuri/excelize/v2"
)

// Cloud folders for generated documents.
const (
	InvoiceFolder = "Invoices"
	ChallanFolder = "Challans"
	ReportFolder  = "Reports"
)

// DocumentParty is one side of a document (seller or supplier).
type DocumentParty struct {
	Name    string
	Address string
	TaxID   string
	Phone   string
}

// DocumentBundle carries everything a renderer needs, fully resolved. The
// renderers take only a bundle so they stay testable without a database.
type DocumentBundle struct {
	Kind          string
	DocumentNo    string
	Date          time.Time
	Seller        DocumentParty
	Party         DocumentParty
	OrderNo       string
	OrderDate     *time.Time
	ChallanNos    []string
	Items         []models.InvoiceItem
	Totals        billing.Amounts
	AmountInWords string
}

type DocumentService struct {
	InvoiceRepo  *repositories.InvoiceRepository
	SupplierRepo *repositories.SupplierRepository
	Uploader     *cloudsync.Uploader
	Seller       DocumentParty
}

func NewDocumentService(invoiceRepo *repositories.InvoiceRepository, supplierRepo *repositories.SupplierRepository, uploader *cloudsync.Uploader, seller DocumentParty) *DocumentService {
	return &DocumentService{
		InvoiceRepo:  invoiceRepo,
		SupplierRepo: supplierRepo,
		Uploader:     uploader,
		Seller:       seller,
	}
}

// BuildInvoiceBundle loads an invoice with its items and resolves both
// parties. Works for deleted invoices too, so old documents can be reprinted.
func (s *DocumentService) BuildInvoiceBundle(ctx context.Context, invoiceID int64) (*DocumentBundle, error) {
	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	supplier, err := s.SupplierRepo.GetByID(ctx, inv.SupplierID)
	if err != nil {
		return nil, err
	}

	totals := billing.Amounts{
		Base:  inv.BaseAmount,
		CGST:  inv.CGSTAmount,
		SGST:  inv.SGSTAmount,
		Total: inv.TotalAmount,
	}

	return &DocumentBundle{
		Kind:       "invoice",
		DocumentNo: inv.InvoiceNo,
		Date:       inv.Date,
		Seller:     s.Seller,
		Party: DocumentParty{
			Name:    supplier.Name,
			Address: supplier.Address,
			TaxID:   supplier.GSTNo,
			Phone:   supplier.Phone,
		},
		OrderNo:       inv.OrderNo,
		OrderDate:     inv.OrderDate,
		ChallanNos:    distinctChallanNos(inv.Items),
		Items:         inv.Items,
		Totals:        totals,
		AmountInWords: billing.AmountInWords(totals.Total),
	}, nil
}

// BuildChallanBundle produces the delivery challan companion of an invoice:
// same lines, quantities only, no tax block.
func (s *DocumentService) BuildChallanBundle(ctx context.Context, invoiceID int64) (*DocumentBundle, error) {
	bundle, err := s.BuildInvoiceBundle(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	bundle.Kind = "challan"
	return bundle, nil
}

func distinctChallanNos(items []models.InvoiceItem) []string {
	var nos []string
	seen := make(map[string]bool)
	for _, it := range items {
		if !seen[it.ChallanNo] {
			seen[it.ChallanNo] = true
			nos = append(nos, it.ChallanNo)
		}
	}
	return nos
}

// DocumentFilename builds the conventional name, e.g.
// Invoice_INV-042_Sharma_Textiles.pdf.
func DocumentFilename(kind, documentNo, partyName, ext string) string {
	party := strings.ReplaceAll(strings.TrimSpace(partyName), " ", "_")
	no := strings.ReplaceAll(documentNo, "/", "-")
	return fmt.Sprintf("%s_%s_%s.%s", kind, no, party, ext)
}

// SyncDocument mirrors a rendered document to the cloud bucket in the
// background. Failures only log; the caller already has the bytes.
func (s *DocumentService) SyncDocument(folder, filename string, data []byte) {
	if !s.Uploader.Enabled() {
		return
	}
	go func() {
		if err := s.Uploader.Upload(context.Background(), folder, filename, bytes.NewReader(data)); err != nil {
			log.Printf("[Document] Cloud sync failed: %v", err)
		}
	}()
}

// RenderInvoicePDF lays out a GST tax invoice on A4.
func (s *DocumentService) RenderInvoicePDF(b *DocumentBundle) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(190, 8, b.Seller.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if b.Seller.Address != "" {
		pdf.CellFormat(190, 5, b.Seller.Address, "", 1, "C", false, 0, "")
	}
	if b.Seller.TaxID != "" {
		pdf.CellFormat(190, 5, fmt.Sprintf("GSTIN: %s", b.Seller.TaxID), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	// Invoice meta and party
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Invoice No: %s", b.DocumentNo), "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", b.Date.Format("02-01-2006")), "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	orderDate := ""
	if b.OrderDate != nil {
		orderDate = b.OrderDate.Format("02-01-2006")
	}
	pdf.CellFormat(95, 6, fmt.Sprintf("Order No: %s", b.OrderNo), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Order Date: %s", orderDate), "1", 1, "L", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Challan No(s): %s", strings.Join(b.ChallanNos, ", ")), "1", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 7, "Billed To", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, b.Party.Name, "LR", 1, "L", false, 0, "")
	pdf.CellFormat(190, 6, b.Party.Address, "LR", 1, "L", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("GSTIN: %s", b.Party.TaxID), "LRB", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Line items
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Challan No", "1", 0, "C", true, 0, "")
	pdf.CellFormat(70, 7, "Material", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for i, it := range b.Items {
		material := it.Material
		if len(material) > 32 {
			material = material[:29] + "..."
		}
		pdf.CellFormat(10, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, it.ChallanNo, "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 6, material, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", it.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", it.BaseAmount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	// Tax summary
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(160, 6, "Taxable Value", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", b.Totals.Base), "1", 1, "R", false, 0, "")
	pdf.CellFormat(160, 6, "CGST @ 2.5%", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", b.Totals.CGST), "1", 1, "R", false, 0, "")
	pdf.CellFormat(160, 6, "SGST @ 2.5%", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", b.Totals.SGST), "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(160, 8, "Grand Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", b.Totals.Total), "1", 1, "R", true, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(190, 6, fmt.Sprintf("Amount in words: %s", b.AmountInWords), "1", "L", false)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("For %s", b.Seller.Name), "", 1, "C", false, 0, "")
	pdf.Ln(12)
	pdf.CellFormat(95, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Authorised Signatory", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	metrics.DocumentsRendered.WithLabelValues(b.Kind, "pdf").Inc()
	return buf.Bytes(), nil
}

// RenderChallanPDF lays out the delivery challan: the same lines without
// rates or tax.
func (s *DocumentService) RenderChallanPDF(b *DocumentBundle) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "DELIVERY CHALLAN", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(190, 8, b.Seller.Name, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Ref Invoice: %s", b.DocumentNo), "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", b.Date.Format("02-01-2006")), "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Party: %s", b.Party.Name), "1", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Rows grouped by challan number, in document order
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(35, 7, "Challan No", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(90, 7, "Material", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Qty", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	var totalQty float64
	for _, no := range b.ChallanNos {
		for _, it := range b.Items {
			if it.ChallanNo != no {
				continue
			}
			date := ""
			if it.ChallanDate != nil {
				date = it.ChallanDate.Format("02-01-2006")
			}
			pdf.CellFormat(35, 6, it.ChallanNo, "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 6, date, "1", 0, "C", false, 0, "")
			pdf.CellFormat(90, 6, it.Material, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", it.Quantity), "1", 1, "R", false, 0, "")
			totalQty += it.Quantity
		}
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(160, 7, "Total Quantity", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", totalQty), "1", 1, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, "Receiver's Signature", "", 0, "C", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("For %s", b.Seller.Name), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	metrics.DocumentsRendered.WithLabelValues(b.Kind, "pdf").Inc()
	return buf.Bytes(), nil
}

// RenderInvoiceXLSX writes the invoice as a spreadsheet for accountants who
// want to re-total in Excel.
func (s *DocumentService) RenderInvoiceXLSX(b *DocumentBundle) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	rows := [][]any{
		{"TAX INVOICE"},
		{b.Seller.Name},
		{b.Seller.Address},
		{"GSTIN", b.Seller.TaxID},
		{},
		{"Invoice No", b.DocumentNo, "Date", b.Date.Format("02-01-2006")},
		{"Order No", b.OrderNo, "Challan No(s)", strings.Join(b.ChallanNos, ", ")},
		{"Billed To", b.Party.Name},
		{"Address", b.Party.Address},
		{"Party GSTIN", b.Party.TaxID},
		{},
		{"#", "Challan No", "Material", "Qty", "Rate", "Amount"},
	}
	for i, it := range b.Items {
		rows = append(rows, []any{
			i + 1, it.ChallanNo, it.Material,
			round2(it.Quantity), round2(it.Rate), round2(it.BaseAmount),
		})
	}
	rows = append(rows,
		[]any{},
		[]any{"", "", "", "", "Taxable Value", round2(b.Totals.Base)},
		[]any{"", "", "", "", "CGST @ 2.5%", round2(b.Totals.CGST)},
		[]any{"", "", "", "", "SGST @ 2.5%", round2(b.Totals.SGST)},
		[]any{"", "", "", "", "Grand Total", round2(b.Totals.Total)},
		[]any{"Amount in words", b.AmountInWords},
	)

	if err := writeRows(f, sheet, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	metrics.DocumentsRendered.WithLabelValues(b.Kind, "xlsx").Inc()
	return buf.Bytes(), nil
}

// RenderChallanXLSX writes the delivery challan sheet.
func (s *DocumentService) RenderChallanXLSX(b *DocumentBundle) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	rows := [][]any{
		{"DELIVERY CHALLAN"},
		{b.Seller.Name},
		{"Ref Invoice", b.DocumentNo, "Date", b.Date.Format("02-01-2006")},
		{"Party", b.Party.Name},
		{},
		{"Challan No", "Date", "Material", "Qty"},
	}
	var totalQty float64
	for _, no := range b.ChallanNos {
		for _, it := range b.Items {
			if it.ChallanNo != no {
				continue
			}
			date := ""
			if it.ChallanDate != nil {
				date = it.ChallanDate.Format("02-01-2006")
			}
			rows = append(rows, []any{it.ChallanNo, date, it.Material, round2(it.Quantity)})
			totalQty += it.Quantity
		}
	}
	rows = append(rows, []any{}, []any{"", "", "Total Quantity", round2(totalQty)})

	if err := writeRows(f, sheet, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	metrics.DocumentsRendered.WithLabelValues(b.Kind, "xlsx").Inc()
	return buf.Bytes(), nil
}

// RenderSalesRegisterXLSX exports the complete invoice history, deleted rows
// flagged, as one sheet. Regenerating it is idempotent.
func (s *DocumentService) RenderSalesRegisterXLSX(invoices []*models.InvoiceWithDetails) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	rows := [][]any{
		{"Sales Register", "", "", "Generated", timeutil.Now().Format(timeutil.DisplayLayout)},
		{},
		{"Invoice No", "Date", "Supplier", "Challans", "Taxable Value", "CGST", "SGST", "Total", "Status"},
	}
	for _, inv := range invoices {
		status := "Active"
		if inv.IsDeleted {
			status = "Deleted"
		}
		rows = append(rows, []any{
			inv.InvoiceNo,
			inv.Date.Format("02-01-2006"),
			inv.SupplierName,
			inv.ChallanCount,
			round2(inv.BaseAmount),
			round2(inv.CGSTAmount),
			round2(inv.SGSTAmount),
			round2(inv.TotalAmount),
			status,
		})
	}

	if err := writeRows(f, sheet, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	metrics.DocumentsRendered.WithLabelValues("sales_register", "xlsx").Inc()
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// round2 rounds for display cells only; stored amounts keep full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
