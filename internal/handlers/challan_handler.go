package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"biller-backend/internal/models"
	"biller-backend/internal/services"
	"biller-backend/pkg/utils"
)

type ChallanHandler struct {
	Service *services.ChallanService
}

func NewChallanHandler(s *services.ChallanService) *ChallanHandler {
	return &ChallanHandler{Service: s}
}

func (h *ChallanHandler) CreateChallans(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChallanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	challans, err := h.Service.CreateChallans(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, challans)
}

// ListPending supports ?supplier_id= filtering for the billing screen.
func (h *ChallanHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	var supplierID int64
	if s := r.URL.Query().Get("supplier_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			utils.Error(w, http.StatusBadRequest, "invalid supplier_id")
			return
		}
		supplierID = id
	}

	challans, err := h.Service.ListPending(r.Context(), supplierID)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, challans)
}

func (h *ChallanHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	challans, err := h.Service.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, challans)
}

func (h *ChallanHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "invalid challan id")
		return
	}

	var req models.UpdateChallanQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.UpdateQuantity(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
