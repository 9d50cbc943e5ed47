package handlers

import (
	"encoding/json"
	"net/http"

	"biller-backend/internal/models"
	"biller-backend/internal/services"
	"biller-backend/pkg/utils"
)

type MaterialHandler struct {
	Service *services.MaterialService
}

func NewMaterialHandler(s *services.MaterialService) *MaterialHandler {
	return &MaterialHandler{Service: s}
}

func (h *MaterialHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	material, err := h.Service.CreateMaterial(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, material)
}

func (h *MaterialHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := h.Service.ListMaterials(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, materials)
}
