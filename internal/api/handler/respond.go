package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikolayk812/pharmacy/internal/domain"
)

type errorResponse struct {
	Message string `json:"message"`
}

// stockErrorResponse always carries both quantities: available may
// legitimately be zero when the product is sold out.
type stockErrorResponse struct {
	Message   string `json:"message"`
	Requested int32  `json:"requested"`
	Available int32  `json:"available"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeError maps service failures to client statuses. Business-rule
// violations surface their reason, anything else is a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var stockErr domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		writeJSON(w, http.StatusUnprocessableEntity, stockErrorResponse{
			Message:   stockErr.Error(),
			Requested: stockErr.Requested,
			Available: stockErr.Available,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		writeMessage(w, http.StatusConflict, domain.ErrEmailTaken.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	default:
		writeMessage(w, http.StatusInternalServerError, "internal error, please retry")
	}
}
