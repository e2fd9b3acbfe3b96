package balanceservice

import (
	"context"

	"github.com/GlebRadaev/pointsledger/internal/authz"
	"github.com/GlebRadaev/pointsledger/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GetPendingRedemption(ctx context.Context, userID int) (int, error)
	GetLedgerCheck(ctx context.Context, userID int) (counter, ledger int, err error)
}

// Service projects balances. Credited comes from the users.points counter
// that the engine maintains; pending is the sum of unprocessed redemptions.
type Service struct {
	balanceRepo BalanceRepo
}

func New(balanceRepo BalanceRepo) *Service {
	return &Service{
		balanceRepo: balanceRepo,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return nil, domain.NotFound("user", userID)
	}
	return balance, nil
}

// GetBalanceFor returns userID's balance if the actor may read that user's ledger.
func (s *Service) GetBalanceFor(ctx context.Context, actor domain.Actor, userID int) (*domain.Balance, error) {
	if err := authz.Authorize(actor, authz.ReadLedger, authz.OwnedBy(userID)); err != nil {
		return nil, err
	}
	return s.GetBalance(ctx, userID)
}

// AvailableBalance is credited minus pending redemptions. Called inside the
// engine's transaction after the user row is locked.
func (s *Service) AvailableBalance(ctx context.Context, userID int) (int, error) {
	balance, err := s.GetBalance(ctx, userID)
	if err != nil {
		return 0, err
	}
	return balance.Available, nil
}

func (s *Service) PendingRedemptionTotal(ctx context.Context, userID int) (int, error) {
	total, err := s.balanceRepo.GetPendingRedemption(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get pending redemptions", zap.Int("user_id", userID), zap.Error(err))
		return 0, err
	}
	return total, nil
}

// CompareLedger returns the stored credited counter and the credited figure
// replayed from the ledger rows, both read from the same snapshot.
func (s *Service) CompareLedger(ctx context.Context, userID int) (counter, ledger int, err error) {
	counter, ledger, err = s.balanceRepo.GetLedgerCheck(ctx, userID)
	if err != nil {
		zap.L().Error("failed to compare ledger", zap.Int("user_id", userID), zap.Error(err))
		return 0, 0, err
	}
	return counter, ledger, nil
}
