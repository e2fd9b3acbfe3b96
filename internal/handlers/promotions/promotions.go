package promotions

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/dto"
	"github.com/GlebRadaev/pointsledger/internal/handlers/httperr"
	"github.com/GlebRadaev/pointsledger/pkg/auth"
	"github.com/GlebRadaev/pointsledger/pkg/utils"
)

//go:generate mockgen -source=promotions.go -destination=mock_promotions.go -package=promotions

type Service interface {
	CreatePromotion(ctx context.Context, actor domain.Actor, p *domain.Promotion) (*domain.Promotion, error)
	GetPromotion(ctx context.Context, id int) (*domain.Promotion, error)
}

type PromotionHandler struct {
	promotionService Service
}

func New(promotionService Service) *PromotionHandler {
	return &PromotionHandler{
		promotionService: promotionService,
	}
}

// CreatePromotion godoc
//
//	@Summary		Create a promotion
//	@Description	Automatic promotions apply to every qualifying purchase, one-time promotions once per user.
//	@Tags			Promotions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PromotionRequestDTO		true	"Promotion"
//	@Success		201		{object}	dto.PromotionResponseDTO	"Created promotion"
//	@Failure		400		{object}	utils.Response				"Invalid promotion"
//	@Failure		403		{object}	utils.Response				"Manager role required"
//	@Router			/api/promotions [post]
func (h *PromotionHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.PromotionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.promotionService.CreatePromotion(r.Context(), actor, req.Promotion())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPromotionResponse(p))
}

// GetPromotion godoc
//
//	@Summary	Get a promotion
//	@Tags		Promotions
//	@Security	BearerAuth
//	@Produce	json
//	@Param		promotionID	path		int							true	"Promotion id"
//	@Success	200			{object}	dto.PromotionResponseDTO	"Promotion"
//	@Failure	404			{object}	utils.Response				"Promotion not found"
//	@Router		/api/promotions/{promotionID} [get]
func (h *PromotionHandler) GetPromotion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "promotionID"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid promotion id")
		return
	}

	p, err := h.promotionService.GetPromotion(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPromotionResponse(p))
}
