package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxPoints bounds any single ledger amount and every stored point figure.
const MaxPoints = math.MaxInt32

type User struct {
	ID         int       `db:"id"`
	Name       string    `db:"name"`
	Role       Role      `db:"role"`
	Verified   bool      `db:"verified"`
	Suspicious bool      `db:"suspicious"`
	Points     int       `db:"points"`
	CreatedAt  time.Time `db:"created_at"`
}

// Actor is the verified identity of the caller, supplied by the authentication layer.
type Actor struct {
	UserID int
	Role   Role
}

type TransactionKind string

const (
	KindPurchase   TransactionKind = "purchase"
	KindAdjustment TransactionKind = "adjustment"
	KindRedemption TransactionKind = "redemption"
	KindTransfer   TransactionKind = "transfer"
	KindEvent      TransactionKind = "event"
)

func (k TransactionKind) Valid() bool {
	switch k {
	case KindPurchase, KindAdjustment, KindRedemption, KindTransfer, KindEvent:
		return true
	}
	return false
}

// Holdable reports whether transactions of this kind carry a suspicious flag.
func (k TransactionKind) Holdable() bool {
	return k == KindPurchase || k == KindAdjustment
}

type RedemptionState string

const (
	RedemptionPending   RedemptionState = "pending"
	RedemptionProcessed RedemptionState = "processed"
)

type Transaction struct {
	ID           int                 `db:"id"`
	Kind         TransactionKind     `db:"kind"`
	UserID       int                 `db:"user_id"`
	Amount       int                 `db:"amount"`
	CreatedBy    int                 `db:"created_by"`
	Remark       string              `db:"remark"`
	Suspicious   bool                `db:"suspicious"`
	CreatedAt    time.Time           `db:"created_at"`
	BatchID      uuid.NullUUID       `db:"batch_id"`
	Spent        decimal.NullDecimal `db:"spent"`
	Earned       int                 `db:"earned"`
	RelatedID    *int                `db:"related_id"`
	Redeemed     int                 `db:"redeemed"`
	ProcessedBy  *int                `db:"processed_by"`
	PromotionIDs []int               `db:"promotion_ids"`
}

// Credited reports whether the transaction counts toward the owner's balance right now.
func (t *Transaction) Credited() bool {
	switch t.Kind {
	case KindPurchase, KindAdjustment:
		return !t.Suspicious
	case KindRedemption:
		return t.ProcessedBy != nil
	}
	return true
}

func (t *Transaction) RedemptionState() RedemptionState {
	if t.ProcessedBy == nil {
		return RedemptionPending
	}
	return RedemptionProcessed
}

type PromotionKind string

const (
	PromotionAutomatic PromotionKind = "automatic"
	PromotionOneTime   PromotionKind = "one_time"
)

type Promotion struct {
	ID          int                 `db:"id"`
	Name        string              `db:"name"`
	Kind        PromotionKind       `db:"kind"`
	StartTime   time.Time           `db:"start_time"`
	EndTime     time.Time           `db:"end_time"`
	MinSpending decimal.NullDecimal `db:"min_spending"`
	Rate        decimal.NullDecimal `db:"rate"`
	Points      int                 `db:"points"`
}

// ActiveAt reports whether t falls inside the promotion window [start, end].
func (p *Promotion) ActiveAt(t time.Time) bool {
	return !t.Before(p.StartTime) && !t.After(p.EndTime)
}

type PromotionUsage struct {
	UserID        int       `db:"user_id"`
	PromotionID   int       `db:"promotion_id"`
	TransactionID int       `db:"transaction_id"`
	UsedAt        time.Time `db:"used_at"`
}

type Event struct {
	ID            int    `db:"id"`
	Name          string `db:"name"`
	PointsRemain  int    `db:"points_remain"`
	PointsAwarded int    `db:"points_awarded"`
}

type EventGuest struct {
	EventID   int  `db:"event_id"`
	UserID    int  `db:"user_id"`
	CheckedIn bool `db:"checked_in"`
}

type Balance struct {
	UserID            int `db:"user_id"`
	Credited          int `db:"credited"`
	PendingRedemption int `db:"pending_redemption"`
	Available         int `db:"available"`
}
