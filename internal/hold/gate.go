package hold

import "github.com/GlebRadaev/pointsledger/internal/domain"

// Hold decides the suspicious flag stamped on a new transaction. Only purchases
// created by a flagged account are held; adjustments are never held on creation.
func Hold(creator *domain.User, kind domain.TransactionKind) bool {
	if creator == nil || kind != domain.KindPurchase {
		return false
	}
	return creator.Suspicious
}

// Delta is the change to the owner's credited balance when the suspicious flag of
// tx moves to value. It is zero when the flag already holds value or when tx
// carries no points, so callers decide a no-op from the flag, not from Delta.
func Delta(tx *domain.Transaction, value bool) int {
	if tx.Suspicious == value {
		return 0
	}
	if value {
		return -tx.Amount
	}
	return tx.Amount
}
