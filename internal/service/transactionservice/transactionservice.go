package transactionservice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/GlebRadaev/pointsledger/internal/authz"
	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/ledger"
	"github.com/GlebRadaev/pointsledger/internal/pg"
	"github.com/GlebRadaev/pointsledger/internal/promotion"
	"go.uber.org/zap"
)

//go:generate mockgen -source=transactionservice.go -destination=mock_transactionservice.go -package=transactionservice

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	AddPoints(ctx context.Context, userID int, delta int) (int, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	CreateBatch(ctx context.Context, txs []domain.Transaction) error
	FindByID(ctx context.Context, id int) (*domain.Transaction, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	MarkProcessed(ctx context.Context, id int, processedBy int) error
	SetSuspicious(ctx context.Context, id int, value bool) error
}

type PromotionRepo interface {
	FindByIDs(ctx context.Context, ids []int) ([]domain.Promotion, error)
	UsedByUser(ctx context.Context, userID int, ids []int) (map[int]bool, error)
	RecordUsage(ctx context.Context, usage domain.PromotionUsage) error
}

type EventRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Event, error)
	IsOrganizer(ctx context.Context, eventID, userID int) (bool, error)
	FindGuest(ctx context.Context, eventID, userID int) (*domain.EventGuest, error)
	CheckedInGuests(ctx context.Context, eventID int) ([]int, error)
	SpendPoints(ctx context.Context, eventID, total int) (*domain.Event, error)
}

type BalanceProjector interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	AvailableBalance(ctx context.Context, userID int) (int, error)
}

// Service is the transaction engine. Every operation that moves points runs in
// one database transaction: the ledger rows, the users.points counter and any
// promotion usage or event budget change commit together. Rows are locked
// before they are checked, a transaction or event row ahead of any user row and
// user rows in ascending id order, so a competing unit that loses the race sees
// the winner's effect and fails with the domain error instead of a conflict.
type Service struct {
	txManager  pg.TXManager
	users      UserRepo
	txs        TransactionRepo
	promotions PromotionRepo
	events     EventRepo
	balances   BalanceProjector
	evaluator  *promotion.Evaluator
	factory    *ledger.Factory
}

func New(
	txManager pg.TXManager,
	users UserRepo,
	txs TransactionRepo,
	promotions PromotionRepo,
	events EventRepo,
	balances BalanceProjector,
) *Service {
	return &Service{
		txManager:  txManager,
		users:      users,
		txs:        txs,
		promotions: promotions,
		events:     events,
		balances:   balances,
		evaluator:  promotion.NewEvaluator(time.Now),
		factory:    ledger.NewFactory(time.Now),
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	return s.balances.GetBalance(ctx, userID)
}

func (s *Service) GetTransaction(ctx context.Context, actor domain.Actor, id int) (*domain.Transaction, error) {
	tx, err := s.txs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.NotFound("transaction", id)
	}
	if err := authz.Authorize(actor, authz.ReadLedger, authz.OwnedBy(tx.UserID)); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *Service) ListTransactions(ctx context.Context, actor domain.Actor, userID int) ([]domain.Transaction, error) {
	if err := authz.Authorize(actor, authz.ReadLedger, authz.OwnedBy(userID)); err != nil {
		return nil, err
	}
	txs, err := s.txs.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// lockUser loads and locks one user row. A missing user is ErrNotFound.
func (s *Service) lockUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.users.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("user", id)
	}
	return user, nil
}

// lockUsers locks every distinct id in ascending order so that concurrent
// multi-user operations cannot deadlock each other.
func (s *Service) lockUsers(ctx context.Context, ids ...int) (map[int]*domain.User, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	users := make(map[int]*domain.User, len(sorted))
	for _, id := range sorted {
		user, err := s.lockUser(ctx, id)
		if err != nil {
			return nil, err
		}
		users[id] = user
	}
	return users, nil
}

// ensureAvailable rejects a debit that would leave the user's available balance negative.
func (s *Service) ensureAvailable(ctx context.Context, userID, debit int) error {
	available, err := s.balances.AvailableBalance(ctx, userID)
	if err != nil {
		return err
	}
	if debit > available {
		return &domain.InsufficientFundsError{Available: available, Requested: debit}
	}
	return nil
}

func unknownActor(id int) error {
	return fmt.Errorf("%w: unknown actor %d", domain.ErrForbidden, id)
}

func (s *Service) credit(ctx context.Context, userID, delta int) error {
	if delta == 0 {
		return nil
	}
	_, err := s.users.AddPoints(ctx, userID, delta)
	return err
}

func logFailure(op string, actor domain.Actor, err error) {
	fields := []zap.Field{zap.String("op", op), zap.Int("actor_id", actor.UserID), zap.Error(err)}
	switch {
	case domain.IsClientError(err):
		zap.L().Info("operation rejected", fields...)
		return
	case errors.Is(err, domain.ErrConflict):
		zap.L().Warn("operation conflicted", fields...)
		return
	}
	zap.L().Error("operation failed", fields...)
}
