package handlers

import (
	"errors"
	"net/http"

	"biller-backend/internal/models"
	"biller-backend/pkg/utils"
)

// writeError maps the domain error taxonomy onto HTTP status codes. Anything
// unrecognized is a 500 with a generic message so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	var (
		dupName    *models.DuplicateNameError
		dupInvoice *models.DuplicateInvoiceNoError
		fk         *models.ForeignKeyError
		noSnap     *models.NoSnapshotError
		conflict   *models.ConflictError
		validation *models.ValidationError
	)

	switch {
	case errors.Is(err, models.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "record not found")
	case errors.As(err, &dupName):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.As(err, &dupInvoice):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.As(err, &conflict):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.As(err, &noSnap):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.As(err, &fk):
		utils.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &validation):
		utils.Error(w, http.StatusBadRequest, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
