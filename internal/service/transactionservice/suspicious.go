package transactionservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pointsledger/internal/authz"
	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/hold"
)

// SetSuspicious holds or clears a purchase or adjustment. Holding removes its
// amount from the owner's credited balance, clearing restores it. Setting the
// flag to its current value changes nothing.
func (s *Service) SetSuspicious(ctx context.Context, actor domain.Actor, transactionID int, value bool) (*domain.Transaction, error) {
	if err := authz.Authorize(actor, authz.SetSuspicious); err != nil {
		return nil, err
	}

	var updated *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tx, err := s.txs.FindByIDForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.NotFound("transaction", transactionID)
		}
		if !tx.Kind.Holdable() {
			return domain.Invalid("%s transactions cannot be held", tx.Kind)
		}
		if tx.Suspicious == value {
			updated = tx
			return nil
		}
		// a zero-point purchase still flips its flag, it just moves no balance
		delta := hold.Delta(tx, value)
		if delta != 0 {
			if _, err := s.lockUser(ctx, tx.UserID); err != nil {
				return err
			}
		}
		if delta < 0 {
			if err := s.ensureAvailable(ctx, tx.UserID, -delta); err != nil {
				return err
			}
		}
		if err := s.txs.SetSuspicious(ctx, tx.ID, value); err != nil {
			return err
		}
		if delta != 0 {
			if err := s.credit(ctx, tx.UserID, delta); err != nil {
				return err
			}
		}
		tx.Suspicious = value
		updated = tx
		return nil
	})
	if err != nil {
		logFailure("set_suspicious", actor, err)
		return nil, err
	}

	zap.L().Info("suspicious flag set",
		zap.Int("transaction_id", transactionID),
		zap.Bool("suspicious", value),
		zap.Int("actor_id", actor.UserID),
	)
	return updated, nil
}
