package transactionservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pointsledger/internal/authz"
	"github.com/GlebRadaev/pointsledger/internal/domain"
)

// CreateRedemption reserves amount of the actor's own points. The reservation
// lowers the available balance immediately; the credited balance only drops
// once a cashier processes it.
func (s *Service) CreateRedemption(ctx context.Context, actor domain.Actor, amount int, remark string) (*domain.Transaction, error) {
	if err := authz.Authorize(actor, authz.CreateRedemption); err != nil {
		return nil, err
	}
	tx, err := s.factory.Redemption(actor.UserID, amount, remark)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lockUser(ctx, actor.UserID); err != nil {
			return err
		}
		if err := s.ensureAvailable(ctx, actor.UserID, amount); err != nil {
			return err
		}
		return s.txs.Create(ctx, tx)
	})
	if err != nil {
		logFailure("create_redemption", actor, err)
		return nil, err
	}

	zap.L().Info("redemption requested",
		zap.Int("transaction_id", tx.ID),
		zap.Int("user_id", actor.UserID),
		zap.Int("amount", amount),
	)
	return tx, nil
}

// ProcessRedemption completes a pending redemption and realizes its debit.
func (s *Service) ProcessRedemption(ctx context.Context, actor domain.Actor, transactionID int) (*domain.Transaction, error) {
	if err := authz.Authorize(actor, authz.ProcessRedemption); err != nil {
		return nil, err
	}

	var processed *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tx, err := s.txs.FindByIDForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.NotFound("transaction", transactionID)
		}
		if tx.Kind != domain.KindRedemption {
			return domain.Invalid("transaction %d is a %s, not a redemption", transactionID, tx.Kind)
		}
		if tx.RedemptionState() == domain.RedemptionProcessed {
			return domain.ErrAlreadyProcessed
		}
		if _, err := s.lockUser(ctx, tx.UserID); err != nil {
			return err
		}
		if err := s.txs.MarkProcessed(ctx, tx.ID, actor.UserID); err != nil {
			return err
		}
		if err := s.credit(ctx, tx.UserID, tx.Amount); err != nil {
			return err
		}
		processedBy := actor.UserID
		tx.ProcessedBy = &processedBy
		processed = tx
		return nil
	})
	if err != nil {
		logFailure("process_redemption", actor, err)
		return nil, err
	}

	zap.L().Info("redemption processed",
		zap.Int("transaction_id", processed.ID),
		zap.Int("user_id", processed.UserID),
		zap.Int("processed_by", actor.UserID),
	)
	return processed, nil
}
