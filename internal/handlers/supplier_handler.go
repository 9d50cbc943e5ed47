package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"biller-backend/internal/models"
	"biller-backend/internal/services"
	"biller-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type SupplierHandler struct {
	Service        *services.SupplierService
	ChallanService *services.ChallanService
	InvoiceService *services.InvoiceService
	PaymentService *services.PaymentService
}

func NewSupplierHandler(s *services.SupplierService, challans *services.ChallanService, invoices *services.InvoiceService, payments *services.PaymentService) *SupplierHandler {
	return &SupplierHandler{
		Service:        s,
		ChallanService: challans,
		InvoiceService: invoices,
		PaymentService: payments,
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

func (h *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	supplier, err := h.Service.CreateSupplier(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, supplier)
}

func (h *SupplierHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "invalid supplier id")
		return
	}

	supplier, err := h.Service.GetSupplier(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, supplier)
}

func (h *SupplierHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.Service.ListSuppliers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, suppliers)
}

// GetBalance reports the billed/paid/outstanding summary for one supplier.
func (h *SupplierHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "invalid supplier id")
		return
	}

	balance, err := h.Service.GetBalance(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, balance)
}

// ListInvoices returns the supplier's active invoices.
func (h *SupplierHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "invalid supplier id")
		return
	}

	invoices, err := h.InvoiceService.ListBySupplier(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, invoices)
}

// ListChallans returns the supplier's full challan history.
func (h *SupplierHandler) ListChallans(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "invalid supplier id")
		return
	}

	challans, err := h.ChallanService.ListBySupplier(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, challans)
}

// GetLedger returns everything about one supplier in a single response:
// profile, balance, invoices, challans and payments.
func (h *SupplierHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "invalid supplier id")
		return
	}
	ctx := r.Context()

	balance, err := h.Service.GetBalance(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	invoices, err := h.InvoiceService.ListBySupplier(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	challans, err := h.ChallanService.ListBySupplier(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	payments, err := h.PaymentService.ListBySupplier(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"balance":  balance,
		"invoices": invoices,
		"challans": challans,
		"payments": payments,
	})
}
