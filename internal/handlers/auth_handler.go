package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"biller-backend/internal/models"
	"biller-backend/internal/services"
	"biller-backend/pkg/utils"
)

type AuthHandler struct {
	Service *services.UserService
}

func NewAuthHandler(s *services.UserService) *AuthHandler {
	return &AuthHandler{Service: s}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.Service.Authenticate(r.Context(), &req)
	if errors.Is(err, services.ErrInvalidCredentials) {
		utils.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}
