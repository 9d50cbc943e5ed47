package handlers

import (
	"fmt"
	"net/http"

	"biller-backend/internal/services"
	"biller-backend/pkg/utils"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type DocumentHandler struct {
	Service        *services.DocumentService
	InvoiceService *services.InvoiceService
}

func NewDocumentHandler(s *services.DocumentService, invoiceService *services.InvoiceService) *DocumentHandler {
	return &DocumentHandler{Service: s, InvoiceService: invoiceService}
}

// GetInvoiceDocument renders an invoice as ?format=pdf (default) or xlsx.
// The rendered file is also mirrored to the cloud bucket in the background.
func (h *DocumentHandler) GetInvoiceDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "invalid invoice id")
		return
	}

	bundle, err := h.Service.BuildInvoiceBundle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	switch format(r) {
	case "pdf":
		data, err := h.Service.RenderInvoicePDF(bundle)
		if err != nil {
			writeError(w, err)
			return
		}
		filename := services.DocumentFilename("Invoice", bundle.DocumentNo, bundle.Party.Name, "pdf")
		h.Service.SyncDocument(services.InvoiceFolder, filename, data)
		serveFile(w, filename, pdfContentType, data)
	case "xlsx":
		data, err := h.Service.RenderInvoiceXLSX(bundle)
		if err != nil {
			writeError(w, err)
			return
		}
		filename := services.DocumentFilename("Invoice", bundle.DocumentNo, bundle.Party.Name, "xlsx")
		h.Service.SyncDocument(services.InvoiceFolder, filename, data)
		serveFile(w, filename, xlsxContentType, data)
	default:
		utils.Error(w, http.StatusBadRequest, "format must be pdf or xlsx")
	}
}

// GetChallanDocument renders the delivery challan companion of an invoice.
func (h *DocumentHandler) GetChallanDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "invalid invoice id")
		return
	}

	bundle, err := h.Service.BuildChallanBundle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	switch format(r) {
	case "pdf":
		data, err := h.Service.RenderChallanPDF(bundle)
		if err != nil {
			writeError(w, err)
			return
		}
		filename := services.DocumentFilename("Challan", bundle.DocumentNo, bundle.Party.Name, "pdf")
		h.Service.SyncDocument(services.ChallanFolder, filename, data)
		serveFile(w, filename, pdfContentType, data)
	case "xlsx":
		data, err := h.Service.RenderChallanXLSX(bundle)
		if err != nil {
			writeError(w, err)
			return
		}
		filename := services.DocumentFilename("Challan", bundle.DocumentNo, bundle.Party.Name, "xlsx")
		h.Service.SyncDocument(services.ChallanFolder, filename, data)
		serveFile(w, filename, xlsxContentType, data)
	default:
		utils.Error(w, http.StatusBadRequest, "format must be pdf or xlsx")
	}
}

// GetSalesRegister exports the full invoice history as one spreadsheet.
func (h *DocumentHandler) GetSalesRegister(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.InvoiceService.ListMaster(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := h.Service.RenderSalesRegisterXLSX(invoices)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := "Master_Sales_Register.xlsx"
	h.Service.SyncDocument(services.ReportFolder, filename, data)
	serveFile(w, filename, xlsxContentType, data)
}

func format(r *http.Request) string {
	f := r.URL.Query().Get("format")
	if f == "" {
		return "pdf"
	}
	return f
}

func serveFile(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
}
