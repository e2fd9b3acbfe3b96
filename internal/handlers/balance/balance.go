package balance

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/dto"
	"github.com/GlebRadaev/pointsledger/internal/handlers/httperr"
	"github.com/GlebRadaev/pointsledger/pkg/auth"
	"github.com/GlebRadaev/pointsledger/pkg/utils"
)

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=balance

type Service interface {
	GetBalanceFor(ctx context.Context, actor domain.Actor, userID int) (*domain.Balance, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get user balance
//	@Description	Credited points, points reserved by pending redemptions and what is left to spend.
//	@Description	Regular users may only read their own balance; use "me" as the user id.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		string					true	"User id or me"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		400		{object}	utils.Response			"Invalid user id"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Not allowed to read this balance"
//	@Failure		404		{object}	utils.Response			"User not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/users/{userID}/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	userID := actor.UserID
	if param := chi.URLParam(r, "userID"); param != "" && param != "me" {
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
			return
		}
		userID = id
	}

	balance, err := h.balanceService.GetBalanceFor(r.Context(), actor, userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:            balance.UserID,
		Credited:          balance.Credited,
		PendingRedemption: balance.PendingRedemption,
		Available:         balance.Available,
	})
}
