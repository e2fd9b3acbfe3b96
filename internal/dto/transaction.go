package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pointsledger/internal/domain"
)

type PurchaseRequestDTO struct {
	UserID       int             `json:"user_id" example:"1"`
	Spent        decimal.Decimal `json:"spent" swaggertype:"string" example:"19.99"`
	PromotionIDs []int           `json:"promotion_ids,omitempty"`
	Remark       string          `json:"remark,omitempty" example:"coffee"`
}

type AdjustmentRequestDTO struct {
	UserID    int    `json:"user_id" example:"1"`
	Amount    int    `json:"amount" example:"-40"`
	RelatedID int    `json:"related_id" example:"17"`
	Remark    string `json:"remark,omitempty" example:"refund"`
}

type RedemptionRequestDTO struct {
	Amount int    `json:"amount" example:"300"`
	Remark string `json:"remark,omitempty"`
}

type TransferRequestDTO struct {
	RecipientID int    `json:"recipient_id" example:"2"`
	Amount      int    `json:"amount" example:"50"`
	Remark      string `json:"remark,omitempty"`
}

type EventAwardRequestDTO struct {
	UserID *int   `json:"user_id,omitempty" example:"2"`
	Amount int    `json:"amount" example:"40"`
	Remark string `json:"remark,omitempty"`
}

type SuspiciousRequestDTO struct {
	Suspicious bool `json:"suspicious" example:"true"`
}

type TransactionResponseDTO struct {
	ID           int                    `json:"id" example:"17"`
	Kind         domain.TransactionKind `json:"kind" swaggertype:"string" example:"purchase"`
	UserID       int                    `json:"user_id" example:"1"`
	Amount       int                    `json:"amount" example:"80"`
	CreatedBy    int                    `json:"created_by" example:"10"`
	Remark       string                 `json:"remark,omitempty"`
	Suspicious   bool                   `json:"suspicious"`
	CreatedAt    time.Time              `json:"created_at" example:"2024-09-01T12:00:00Z"`
	BatchID      string                 `json:"batch_id,omitempty"`
	Spent        string                 `json:"spent,omitempty" example:"19.99"`
	Earned       int                    `json:"earned,omitempty"`
	RelatedID    *int                   `json:"related_id,omitempty"`
	Redeemed     int                    `json:"redeemed,omitempty"`
	ProcessedBy  *int                   `json:"processed_by,omitempty"`
	State        string                 `json:"state,omitempty" example:"pending"`
	PromotionIDs []int                  `json:"promotion_ids,omitempty"`
}

type TransferResponseDTO struct {
	Debit  TransactionResponseDTO `json:"debit"`
	Credit TransactionResponseDTO `json:"credit"`
}

func NewTransactionResponse(tx *domain.Transaction) TransactionResponseDTO {
	resp := TransactionResponseDTO{
		ID:           tx.ID,
		Kind:         tx.Kind,
		UserID:       tx.UserID,
		Amount:       tx.Amount,
		CreatedBy:    tx.CreatedBy,
		Remark:       tx.Remark,
		Suspicious:   tx.Suspicious,
		CreatedAt:    tx.CreatedAt,
		Earned:       tx.Earned,
		RelatedID:    tx.RelatedID,
		Redeemed:     tx.Redeemed,
		ProcessedBy:  tx.ProcessedBy,
		PromotionIDs: tx.PromotionIDs,
	}
	if tx.BatchID.Valid {
		resp.BatchID = tx.BatchID.UUID.String()
	}
	if tx.Spent.Valid {
		resp.Spent = tx.Spent.Decimal.StringFixed(2)
	}
	if tx.Kind == domain.KindRedemption {
		resp.State = string(tx.RedemptionState())
	}
	return resp
}

func NewTransactionsResponse(txs []domain.Transaction) []TransactionResponseDTO {
	resp := make([]TransactionResponseDTO, len(txs))
	for i := range txs {
		resp[i] = NewTransactionResponse(&txs[i])
	}
	return resp
}
