package handlers

import (
	"io"
	"net/http"
	"strconv"

	"biller-backend/internal/models"
	"biller-backend/internal/services"
	"biller-backend/pkg/utils"
)

// 10 MB cap on the multipart form; evidence photos are phone pictures.
const maxPaymentFormSize = 10 << 20

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(s *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// CreatePayment accepts multipart form data so the proof image can ride
// along with the payment fields in one request.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPaymentFormSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	supplierID, _ := strconv.ParseInt(r.FormValue("supplier_id"), 10, 64)
	amount, _ := strconv.ParseFloat(r.FormValue("amount"), 64)

	req := &models.CreatePaymentRequest{
		Date:       r.FormValue("date"),
		SupplierID: supplierID,
		Amount:     amount,
		Mode:       r.FormValue("mode"),
		Notes:      r.FormValue("notes"),
	}

	var imageName string
	var image io.Reader
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		imageName = header.Filename
		image = file
	}

	payment, err := h.Service.RecordPayment(r.Context(), req, imageName, image)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) ListBySupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "invalid supplier id")
		return
	}

	payments, err := h.Service.ListBySupplier(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}
