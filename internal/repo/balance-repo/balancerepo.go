package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/pg"
	"go.uber.org/zap"
)

const pendingRedemptions = `
	SELECT COALESCE(SUM(redeemed), 0)
	FROM transactions
	WHERE user_id = $1 AND kind = 'redemption' AND processed_by IS NULL
`

// counterAndLedger reads the stored counter and replays every row that
// currently counts toward the balance. One statement sees one snapshot, so a
// commit landing between the two figures cannot show up as drift.
const counterAndLedger = `
	SELECT u.points,
		COALESCE((
			SELECT SUM(t.amount)
			FROM transactions t
			WHERE t.user_id = u.id
				AND (
					t.kind IN ('transfer', 'event')
					OR (t.kind IN ('purchase', 'adjustment') AND NOT t.suspicious)
					OR (t.kind = 'redemption' AND t.processed_by IS NOT NULL)
				)
		), 0)
	FROM users u
	WHERE u.id = $1
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetUserBalance reads the cached credited counter together with the pending
// redemption total. It returns nil when the user does not exist.
func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
		SELECT u.id, u.points,
			COALESCE((
				SELECT SUM(t.redeemed)
				FROM transactions t
				WHERE t.user_id = u.id AND t.kind = 'redemption' AND t.processed_by IS NULL
			), 0)
		FROM users u
		WHERE u.id = $1
	`
	var balance domain.Balance
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance.UserID, &balance.Credited, &balance.PendingRedemption)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	balance.Available = balance.Credited - balance.PendingRedemption
	return &balance, nil
}

func (r *Repository) GetPendingRedemption(ctx context.Context, userID int) (int, error) {
	return r.sum(ctx, pendingRedemptions, userID)
}

// GetLedgerCheck returns the users.points counter next to the ledger replay.
func (r *Repository) GetLedgerCheck(ctx context.Context, userID int) (counter, ledger int, err error) {
	err = r.db.QueryRow(ctx, counterAndLedger, userID).Scan(&counter, &ledger)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, domain.NotFound("user", userID)
		}
		zap.L().Error("failed to check user ledger", zap.Int("user_id", userID), zap.Error(err))
		return 0, 0, err
	}
	return counter, ledger, nil
}

func (r *Repository) sum(ctx context.Context, query string, userID int) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		zap.L().Error("failed to sum user ledger", zap.Int("user_id", userID), zap.Error(err))
		return 0, err
	}
	return total, nil
}
