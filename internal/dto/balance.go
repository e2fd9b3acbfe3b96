package dto

type BalanceResponseDTO struct {
	UserID            int `json:"user_id" example:"1"`
	Credited          int `json:"credited" example:"1000"`
	PendingRedemption int `json:"pending_redemption" example:"700"`
	Available         int `json:"available" example:"300"`
}
