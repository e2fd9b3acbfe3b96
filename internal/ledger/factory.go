package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/pointsledger/internal/domain"
)

// Factory builds well-formed transaction records. It checks structure and sign
// conventions only; balances and permissions are the engine's concern.
type Factory struct {
	now   func() time.Time
	newID func() uuid.UUID
}

func NewFactory(now func() time.Time) *Factory {
	if now == nil {
		now = time.Now
	}
	return &Factory{now: now, newID: uuid.New}
}

type PurchaseParams struct {
	UserID       int
	CreatedBy    int
	Spent        decimal.Decimal
	Earned       int
	PromotionIDs []int
	Suspicious   bool
	Remark       string
}

func (f *Factory) Purchase(p PurchaseParams) (*domain.Transaction, error) {
	if err := requireParties(p.UserID, p.CreatedBy); err != nil {
		return nil, err
	}
	if p.Spent.IsNegative() {
		return nil, domain.Invalid("purchase spent must not be negative")
	}
	if p.Earned < 0 {
		return nil, domain.Invalid("purchase cannot debit points")
	}
	if err := requireInRange(p.Earned); err != nil {
		return nil, err
	}
	return &domain.Transaction{
		Kind:         domain.KindPurchase,
		UserID:       p.UserID,
		Amount:       p.Earned,
		Earned:       p.Earned,
		Spent:        decimal.NewNullDecimal(p.Spent),
		CreatedBy:    p.CreatedBy,
		Remark:       p.Remark,
		Suspicious:   p.Suspicious,
		PromotionIDs: p.PromotionIDs,
		CreatedAt:    f.now(),
	}, nil
}

func (f *Factory) Adjustment(userID, createdBy, amount, relatedID int, remark string) (*domain.Transaction, error) {
	if err := requireParties(userID, createdBy); err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, domain.Invalid("adjustment amount must be non-zero")
	}
	if err := requireInRange(amount); err != nil {
		return nil, err
	}
	if relatedID <= 0 {
		return nil, domain.Invalid("adjustment requires a related transaction")
	}
	return &domain.Transaction{
		Kind:      domain.KindAdjustment,
		UserID:    userID,
		Amount:    amount,
		RelatedID: &relatedID,
		CreatedBy: createdBy,
		Remark:    remark,
		CreatedAt: f.now(),
	}, nil
}

// Redemption builds an unprocessed redemption. Its negative amount is not
// credited until ProcessedBy is set.
func (f *Factory) Redemption(userID, redeemed int, remark string) (*domain.Transaction, error) {
	if err := requireParties(userID, userID); err != nil {
		return nil, err
	}
	if redeemed <= 0 {
		return nil, domain.Invalid("redemption amount must be positive")
	}
	if err := requireInRange(redeemed); err != nil {
		return nil, err
	}
	return &domain.Transaction{
		Kind:      domain.KindRedemption,
		UserID:    userID,
		Amount:    -redeemed,
		Redeemed:  redeemed,
		CreatedBy: userID,
		Remark:    remark,
		CreatedAt: f.now(),
	}, nil
}

// Transfer builds the sender debit and recipient credit of one transfer.
// Both rows share a batch id and must be persisted together.
func (f *Factory) Transfer(senderID, recipientID, amount int, remark string) (debit, credit *domain.Transaction, err error) {
	if err := requireParties(senderID, senderID); err != nil {
		return nil, nil, err
	}
	if recipientID <= 0 {
		return nil, nil, domain.Invalid("transfer requires a recipient")
	}
	if senderID == recipientID {
		return nil, nil, domain.Invalid("cannot transfer to self")
	}
	if amount <= 0 {
		return nil, nil, domain.Invalid("transfer amount must be positive")
	}
	if err := requireInRange(amount); err != nil {
		return nil, nil, err
	}
	batch := uuid.NullUUID{UUID: f.newID(), Valid: true}
	createdAt := f.now()
	debit = &domain.Transaction{
		Kind:      domain.KindTransfer,
		UserID:    senderID,
		Amount:    -amount,
		RelatedID: &recipientID,
		CreatedBy: senderID,
		Remark:    remark,
		BatchID:   batch,
		CreatedAt: createdAt,
	}
	credit = &domain.Transaction{
		Kind:      domain.KindTransfer,
		UserID:    recipientID,
		Amount:    amount,
		RelatedID: &senderID,
		CreatedBy: senderID,
		Remark:    remark,
		BatchID:   batch,
		CreatedAt: createdAt,
	}
	return debit, credit, nil
}

// EventAward builds one credit per guest, all sharing a batch id.
func (f *Factory) EventAward(eventID, createdBy int, guestIDs []int, pointsPerGuest int, remark string) ([]domain.Transaction, error) {
	if eventID <= 0 {
		return nil, domain.Invalid("event award requires an event")
	}
	if createdBy <= 0 {
		return nil, domain.Invalid("transaction requires a creator")
	}
	if pointsPerGuest <= 0 {
		return nil, domain.Invalid("event award must be positive")
	}
	if len(guestIDs) == 0 {
		return nil, domain.Invalid("event award requires at least one guest")
	}
	if pointsPerGuest > domain.MaxPoints/len(guestIDs) {
		return nil, domain.Invalid("event award of %d points to %d guests is out of range", pointsPerGuest, len(guestIDs))
	}
	batch := uuid.NullUUID{UUID: f.newID(), Valid: true}
	createdAt := f.now()
	txs := make([]domain.Transaction, 0, len(guestIDs))
	seen := make(map[int]struct{}, len(guestIDs))
	for _, guestID := range guestIDs {
		if guestID <= 0 {
			return nil, domain.Invalid("event award requires a guest")
		}
		if _, dup := seen[guestID]; dup {
			return nil, domain.Invalid("guest %d awarded twice in one batch", guestID)
		}
		seen[guestID] = struct{}{}
		related := eventID
		txs = append(txs, domain.Transaction{
			Kind:      domain.KindEvent,
			UserID:    guestID,
			Amount:    pointsPerGuest,
			RelatedID: &related,
			CreatedBy: createdBy,
			Remark:    remark,
			BatchID:   batch,
			CreatedAt: createdAt,
		})
	}
	return txs, nil
}

func requireInRange(amount int) error {
	if amount > domain.MaxPoints || amount < -domain.MaxPoints {
		return domain.Invalid("amount %d is out of range", amount)
	}
	return nil
}

func requireParties(userID, createdBy int) error {
	if userID <= 0 {
		return domain.Invalid("transaction requires an owner")
	}
	if createdBy <= 0 {
		return domain.Invalid("transaction requires a creator")
	}
	return nil
}
