package transactions

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/dto"
	"github.com/GlebRadaev/pointsledger/internal/handlers/httperr"
	"github.com/GlebRadaev/pointsledger/pkg/auth"
	"github.com/GlebRadaev/pointsledger/pkg/utils"
)

//go:generate mockgen -source=transactions.go -destination=mock_transactions.go -package=transactions

type Service interface {
	RecordPurchase(ctx context.Context, actor domain.Actor, userID int, spent decimal.Decimal, promotionIDs []int, remark string) (*domain.Transaction, error)
	RecordAdjustment(ctx context.Context, actor domain.Actor, userID int, amount int, relatedID int, remark string) (*domain.Transaction, error)
	CreateRedemption(ctx context.Context, actor domain.Actor, amount int, remark string) (*domain.Transaction, error)
	ProcessRedemption(ctx context.Context, actor domain.Actor, transactionID int) (*domain.Transaction, error)
	CreateTransfer(ctx context.Context, actor domain.Actor, recipientID int, amount int, remark string) (*domain.Transaction, *domain.Transaction, error)
	AwardEventPoints(ctx context.Context, actor domain.Actor, eventID int, targetUserID *int, pointsPerGuest int, remark string) ([]domain.Transaction, error)
	SetSuspicious(ctx context.Context, actor domain.Actor, transactionID int, value bool) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, actor domain.Actor, id int) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, actor domain.Actor, userID int) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// RecordPurchase godoc
//
//	@Summary		Record a purchase
//	@Description	Credit a customer for a purchase. One point per 25 cents plus any eligible promotions.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO		true	"Purchase"
//	@Success		201		{object}	dto.TransactionResponseDTO	"Created purchase"
//	@Failure		400		{object}	utils.Response				"Invalid purchase or promotion"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Cashier role required"
//	@Failure		404		{object}	utils.Response				"User or promotion not found"
//	@Failure		409		{object}	utils.Response				"Promotion already used"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/purchases [post]
func (h *TransactionHandler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	var req dto.PurchaseRequestDTO
	if !decode(w, r, &req) {
		return
	}

	tx, err := h.transactionService.RecordPurchase(r.Context(), actor, req.UserID, req.Spent, req.PromotionIDs, req.Remark)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionResponse(tx))
}

// RecordAdjustment godoc
//
//	@Summary		Record an adjustment
//	@Description	Correct a user's balance with reference to one of their earlier transactions.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdjustmentRequestDTO	true	"Adjustment"
//	@Success		201		{object}	dto.TransactionResponseDTO	"Created adjustment"
//	@Failure		400		{object}	utils.Response				"Invalid adjustment"
//	@Failure		402		{object}	utils.Response				"Balance too low for a negative adjustment"
//	@Failure		403		{object}	utils.Response				"Manager role required"
//	@Failure		404		{object}	utils.Response				"User or related transaction not found"
//	@Router			/api/adjustments [post]
func (h *TransactionHandler) RecordAdjustment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	var req dto.AdjustmentRequestDTO
	if !decode(w, r, &req) {
		return
	}

	tx, err := h.transactionService.RecordAdjustment(r.Context(), actor, req.UserID, req.Amount, req.RelatedID, req.Remark)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionResponse(tx))
}

// CreateRedemption godoc
//
//	@Summary		Request a redemption
//	@Description	Reserve points for redemption. They stay on the balance until a cashier processes the request.
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedemptionRequestDTO	true	"Redemption"
//	@Success		201		{object}	dto.TransactionResponseDTO	"Pending redemption"
//	@Failure		400		{object}	utils.Response				"Invalid amount"
//	@Failure		402		{object}	utils.Response				"Insufficient available points"
//	@Router			/api/redemptions [post]
func (h *TransactionHandler) CreateRedemption(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	var req dto.RedemptionRequestDTO
	if !decode(w, r, &req) {
		return
	}

	tx, err := h.transactionService.CreateRedemption(r.Context(), actor, req.Amount, req.Remark)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionResponse(tx))
}

// ProcessRedemption godoc
//
//	@Summary		Process a redemption
//	@Description	Mark a pending redemption as processed and debit the owner's points.
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			transactionID	path		int							true	"Redemption id"
//	@Success		200				{object}	dto.TransactionResponseDTO	"Processed redemption"
//	@Failure		400				{object}	utils.Response				"Not a redemption"
//	@Failure		403				{object}	utils.Response				"Cashier role required"
//	@Failure		404				{object}	utils.Response				"Redemption not found"
//	@Failure		409				{object}	utils.Response				"Already processed"
//	@Router			/api/redemptions/{transactionID}/process [post]
func (h *TransactionHandler) ProcessRedemption(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "transactionID")
	if !ok {
		return
	}

	tx, err := h.transactionService.ProcessRedemption(r.Context(), actor, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}

// CreateTransfer godoc
//
//	@Summary		Transfer points
//	@Description	Move points from the caller to another user. Both legs commit together.
//	@Tags			Transfers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer"
//	@Success		201		{object}	dto.TransferResponseDTO	"Debit and credit legs"
//	@Failure		400		{object}	utils.Response			"Invalid transfer"
//	@Failure		402		{object}	utils.Response			"Insufficient available points"
//	@Failure		403		{object}	utils.Response			"Sender is not verified"
//	@Failure		404		{object}	utils.Response			"Recipient not found"
//	@Router			/api/transfers [post]
func (h *TransactionHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	var req dto.TransferRequestDTO
	if !decode(w, r, &req) {
		return
	}

	debit, credit, err := h.transactionService.CreateTransfer(r.Context(), actor, req.RecipientID, req.Amount, req.Remark)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.TransferResponseDTO{
		Debit:  dto.NewTransactionResponse(debit),
		Credit: dto.NewTransactionResponse(credit),
	})
}

// AwardEventPoints godoc
//
//	@Summary		Award event points
//	@Description	Pay points from the event budget to one guest, or to every checked-in guest when user_id is omitted.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			eventID	path		int							true	"Event id"
//	@Param			request	body		dto.EventAwardRequestDTO	true	"Award"
//	@Success		201		{array}		dto.TransactionResponseDTO	"Created awards"
//	@Failure		400		{object}	utils.Response				"Invalid award"
//	@Failure		402		{object}	utils.Response				"Event budget exhausted"
//	@Failure		403		{object}	utils.Response				"Manager or organizer required"
//	@Failure		404		{object}	utils.Response				"Event not found"
//	@Router			/api/events/{eventID}/awards [post]
func (h *TransactionHandler) AwardEventPoints(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req dto.EventAwardRequestDTO
	if !decode(w, r, &req) {
		return
	}

	txs, err := h.transactionService.AwardEventPoints(r.Context(), actor, eventID, req.UserID, req.Amount, req.Remark)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionsResponse(txs))
}

// SetSuspicious godoc
//
//	@Summary		Hold or clear a transaction
//	@Description	Flag a purchase or adjustment as suspicious, removing its points until cleared.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			transactionID	path		int							true	"Transaction id"
//	@Param			request			body		dto.SuspiciousRequestDTO	true	"Flag"
//	@Success		200				{object}	dto.TransactionResponseDTO	"Updated transaction"
//	@Failure		400				{object}	utils.Response				"Transaction kind cannot be held"
//	@Failure		402				{object}	utils.Response				"Points already reserved"
//	@Failure		403				{object}	utils.Response				"Manager role required"
//	@Failure		404				{object}	utils.Response				"Transaction not found"
//	@Router			/api/transactions/{transactionID}/suspicious [put]
func (h *TransactionHandler) SetSuspicious(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "transactionID")
	if !ok {
		return
	}
	var req dto.SuspiciousRequestDTO
	if !decode(w, r, &req) {
		return
	}

	tx, err := h.transactionService.SetSuspicious(r.Context(), actor, id, req.Suspicious)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}

// GetTransaction godoc
//
//	@Summary		Get a transaction
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			transactionID	path		int							true	"Transaction id"
//	@Success		200				{object}	dto.TransactionResponseDTO	"Transaction"
//	@Failure		403				{object}	utils.Response				"Not allowed to read this transaction"
//	@Failure		404				{object}	utils.Response				"Transaction not found"
//	@Router			/api/transactions/{transactionID} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "transactionID")
	if !ok {
		return
	}

	tx, err := h.transactionService.GetTransaction(r.Context(), actor, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}

// ListTransactions godoc
//
//	@Summary		List a user's transactions
//	@Description	Newest first. Use "me" as the user id for the caller's own ledger.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		string						true	"User id or me"
//	@Success		200		{array}		dto.TransactionResponseDTO	"Transactions"
//	@Success		204		"No transactions"
//	@Failure		403		{object}	utils.Response				"Not allowed to read this ledger"
//	@Router			/api/users/{userID}/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	userID := actor.UserID
	if chi.URLParam(r, "userID") != "me" {
		if userID, ok = pathID(w, r, "userID"); !ok {
			return
		}
	}

	txs, err := h.transactionService.ListTransactions(r.Context(), actor, userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(txs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionsResponse(txs))
}

func actorFrom(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return actor, ok
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}
