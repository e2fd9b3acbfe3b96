// Package httperr maps ledger errors onto HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/pkg/utils"
)

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrAlreadyProcessed),
		errors.Is(err, domain.ErrAlreadyUsed),
		errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidTransaction),
		errors.Is(err, domain.ErrIneligiblePromotion),
		errors.Is(err, domain.ErrExpired):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Respond writes err with its status. Internal errors are not echoed to the client.
func Respond(w http.ResponseWriter, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		utils.RespondWithError(w, status, "Internal server error")
		return
	}
	utils.RespondWithError(w, status, err.Error())
}
