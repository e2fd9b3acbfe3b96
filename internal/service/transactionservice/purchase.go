package transactionservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pointsledger/internal/authz"
	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/hold"
	"github.com/GlebRadaev/pointsledger/internal/ledger"
	"github.com/GlebRadaev/pointsledger/internal/promotion"
)

// RecordPurchase credits userID for a purchase rung up by a cashier. Requested
// promotions are validated and one-time promotions are consumed in the same commit.
// A purchase entered by a suspicious cashier is held and credits nothing until cleared.
func (s *Service) RecordPurchase(
	ctx context.Context,
	actor domain.Actor,
	userID int,
	spent decimal.Decimal,
	promotionIDs []int,
	remark string,
) (*domain.Transaction, error) {
	if err := authz.Authorize(actor, authz.RecordPurchase); err != nil {
		return nil, err
	}
	if _, err := promotion.Cents(spent); err != nil {
		return nil, err
	}

	var created *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.lockUser(ctx, userID)
		if err != nil {
			return err
		}
		if !user.Verified {
			return domain.Invalid("user %d is not verified", userID)
		}
		creator, err := s.creator(ctx, actor, user)
		if err != nil {
			return err
		}

		var (
			found []domain.Promotion
			used  map[int]bool
		)
		if len(promotionIDs) > 0 {
			if found, err = s.promotions.FindByIDs(ctx, promotionIDs); err != nil {
				return err
			}
			if used, err = s.promotions.UsedByUser(ctx, userID, promotionIDs); err != nil {
				return err
			}
		}
		result, err := s.evaluator.Evaluate(spent, promotionIDs, found, used)
		if err != nil {
			return err
		}

		tx, err := s.factory.Purchase(ledger.PurchaseParams{
			UserID:       userID,
			CreatedBy:    actor.UserID,
			Spent:        spent,
			Earned:       result.Earned(),
			PromotionIDs: result.Applied,
			Suspicious:   hold.Hold(creator, domain.KindPurchase),
			Remark:       remark,
		})
		if err != nil {
			return err
		}
		if err := s.txs.Create(ctx, tx); err != nil {
			return err
		}
		for _, promotionID := range result.OneTime {
			err := s.promotions.RecordUsage(ctx, domain.PromotionUsage{
				UserID:        userID,
				PromotionID:   promotionID,
				TransactionID: tx.ID,
				UsedAt:        tx.CreatedAt,
			})
			if err != nil {
				return err
			}
		}
		if !tx.Suspicious {
			if err := s.credit(ctx, userID, tx.Amount); err != nil {
				return err
			}
		}
		created = tx
		return nil
	})
	if err != nil {
		logFailure("record_purchase", actor, err)
		return nil, err
	}

	zap.L().Info("purchase recorded",
		zap.Int("transaction_id", created.ID),
		zap.Int("user_id", userID),
		zap.Int("earned", created.Earned),
		zap.Bool("suspicious", created.Suspicious),
	)
	return created, nil
}

// RecordAdjustment corrects userID's balance with reference to one of their
// earlier transactions. Adjustments are never held on creation.
func (s *Service) RecordAdjustment(
	ctx context.Context,
	actor domain.Actor,
	userID int,
	amount int,
	relatedID int,
	remark string,
) (*domain.Transaction, error) {
	if err := authz.Authorize(actor, authz.RecordAdjustment); err != nil {
		return nil, err
	}
	tx, err := s.factory.Adjustment(userID, actor.UserID, amount, relatedID, remark)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		related, err := s.txs.FindByID(ctx, relatedID)
		if err != nil {
			return err
		}
		if related == nil {
			return domain.NotFound("transaction", relatedID)
		}
		if related.UserID != userID {
			return domain.Invalid("transaction %d does not belong to user %d", relatedID, userID)
		}
		if _, err := s.lockUser(ctx, userID); err != nil {
			return err
		}
		if amount < 0 {
			if err := s.ensureAvailable(ctx, userID, -amount); err != nil {
				return err
			}
		}
		if err := s.txs.Create(ctx, tx); err != nil {
			return err
		}
		return s.credit(ctx, userID, amount)
	})
	if err != nil {
		logFailure("record_adjustment", actor, err)
		return nil, err
	}

	zap.L().Info("adjustment recorded",
		zap.Int("transaction_id", tx.ID),
		zap.Int("user_id", userID),
		zap.Int("amount", amount),
	)
	return tx, nil
}

// creator resolves the user record behind actor, reusing target when the
// cashier rings up their own purchase.
func (s *Service) creator(ctx context.Context, actor domain.Actor, target *domain.User) (*domain.User, error) {
	if actor.UserID == target.ID {
		return target, nil
	}
	creator, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, unknownActor(actor.UserID)
	}
	return creator, nil
}
