package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/pkg/utils"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: cashier required", domain.ErrForbidden), http.StatusForbidden},
		{domain.NotFound("transaction", 9), http.StatusNotFound},
		{&domain.InsufficientFundsError{Available: 300, Requested: 400}, http.StatusPaymentRequired},
		{domain.ErrAlreadyProcessed, http.StatusConflict},
		{domain.ErrAlreadyUsed, http.StatusConflict},
		{domain.ErrConflict, http.StatusConflict},
		{domain.Invalid("amount must be positive"), http.StatusBadRequest},
		{domain.ErrIneligiblePromotion, http.StatusBadRequest},
		{domain.ErrExpired, http.StatusBadRequest},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"client error is echoed", domain.NotFound("user", 4), http.StatusNotFound, "not found: user 4"},
		{"internal error is hidden", errors.New("pq: password leaked"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Respond(rr, tt.err)

			assert.Equal(t, tt.code, rr.Code)
			var resp utils.Response
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}
