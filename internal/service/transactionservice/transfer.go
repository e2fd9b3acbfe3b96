package transactionservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pointsledger/internal/authz"
	"github.com/GlebRadaev/pointsledger/internal/domain"
)

// CreateTransfer moves amount from the actor to recipientID. The debit and
// credit rows share a batch id and commit together or not at all.
func (s *Service) CreateTransfer(
	ctx context.Context,
	actor domain.Actor,
	recipientID int,
	amount int,
	remark string,
) (*domain.Transaction, *domain.Transaction, error) {
	if err := authz.Authorize(actor, authz.CreateTransfer); err != nil {
		return nil, nil, err
	}
	debit, credit, err := s.factory.Transfer(actor.UserID, recipientID, amount, remark)
	if err != nil {
		return nil, nil, err
	}

	pair := []domain.Transaction{*debit, *credit}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		users, err := s.lockUsers(ctx, actor.UserID, recipientID)
		if err != nil {
			return err
		}
		if !users[actor.UserID].Verified {
			return fmt.Errorf("%w: sender %d is not verified", domain.ErrForbidden, actor.UserID)
		}
		if err := s.ensureAvailable(ctx, actor.UserID, amount); err != nil {
			return err
		}
		if err := s.txs.CreateBatch(ctx, pair); err != nil {
			return err
		}
		if err := s.credit(ctx, actor.UserID, -amount); err != nil {
			return err
		}
		return s.credit(ctx, recipientID, amount)
	})
	if err != nil {
		logFailure("create_transfer", actor, err)
		return nil, nil, err
	}

	zap.L().Info("transfer completed",
		zap.Int("sender_id", actor.UserID),
		zap.Int("recipient_id", recipientID),
		zap.Int("amount", amount),
		zap.String("batch_id", debit.BatchID.UUID.String()),
	)
	return &pair[0], &pair[1], nil
}
