package transactionrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const selectTransaction = `
	SELECT t.id, t.kind, t.user_id, t.amount, t.created_by, t.remark, t.suspicious, t.created_at,
		t.batch_id, t.spent, t.earned, t.related_id, t.redeemed, t.processed_by,
		COALESCE((SELECT array_agg(tp.promotion_id ORDER BY tp.promotion_id)
			FROM transaction_promotions tp WHERE tp.transaction_id = t.id), '{}') AS promotion_ids
	FROM transactions t
`

const insertTransaction = `
	INSERT INTO transactions (kind, user_id, amount, created_by, remark, suspicious, created_at,
		batch_id, spent, earned, related_id, redeemed, processed_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING id
`

const insertTransactionPromotion = `
	INSERT INTO transaction_promotions (transaction_id, promotion_id)
	VALUES ($1, $2)
`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create inserts tx with its promotion links and sets tx.ID.
func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.insert(ctx, tx)
	})
}

// CreateBatch inserts all rows in one commit, setting each ID in place.
func (r *Repository) CreateBatch(ctx context.Context, txs []domain.Transaction) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for i := range txs {
			if err := r.insert(ctx, &txs[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) insert(ctx context.Context, tx *domain.Transaction) error {
	err := r.db.QueryRow(ctx, insertTransaction,
		tx.Kind, tx.UserID, tx.Amount, tx.CreatedBy, tx.Remark, tx.Suspicious, tx.CreatedAt,
		tx.BatchID, tx.Spent, tx.Earned, tx.RelatedID, tx.Redeemed, tx.ProcessedBy,
	).Scan(&tx.ID)
	if err != nil {
		zap.L().Error("can't insert transaction", zap.String("kind", string(tx.Kind)), zap.Int("user_id", tx.UserID), zap.Error(err))
		return err
	}
	for _, promotionID := range tx.PromotionIDs {
		if _, err := r.db.Exec(ctx, insertTransactionPromotion, tx.ID, promotionID); err != nil {
			zap.L().Error("can't link promotion", zap.Int("transaction_id", tx.ID), zap.Int("promotion_id", promotionID), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Transaction, error) {
	return r.findOne(ctx, selectTransaction+" WHERE t.id = $1", id)
}

// FindByIDForUpdate locks the transaction row until the surrounding transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Transaction, error) {
	return r.findOne(ctx, selectTransaction+" WHERE t.id = $1 FOR UPDATE OF t", id)
}

func (r *Repository) findOne(ctx context.Context, query string, id int) (*domain.Transaction, error) {
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Int("transaction_id", id), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// FindByUserID returns the user's transactions, newest first.
func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, selectTransaction+" WHERE t.user_id = $1 ORDER BY t.created_at DESC, t.id DESC", userID)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction", zap.Error(err))
			return nil, err
		}
		txs = append(txs, *tx)
	}
	return txs, rows.Err()
}

// MarkProcessed completes a pending redemption. A redemption that is
// already processed yields domain.ErrAlreadyProcessed.
func (r *Repository) MarkProcessed(ctx context.Context, id int, processedBy int) error {
	query := `
		UPDATE transactions
		SET processed_by = $1
		WHERE id = $2 AND kind = 'redemption' AND processed_by IS NULL
	`
	tag, err := r.db.Exec(ctx, query, processedBy, id)
	if err != nil {
		zap.L().Error("can't mark redemption processed", zap.Int("transaction_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyProcessed
	}
	return nil
}

func (r *Repository) SetSuspicious(ctx context.Context, id int, value bool) error {
	query := `
		UPDATE transactions
		SET suspicious = $1
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, value, id)
	if err != nil {
		zap.L().Error("can't update suspicious flag", zap.Int("transaction_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("transaction", id)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := row.Scan(
		&tx.ID, &tx.Kind, &tx.UserID, &tx.Amount, &tx.CreatedBy, &tx.Remark, &tx.Suspicious, &tx.CreatedAt,
		&tx.BatchID, &tx.Spent, &tx.Earned, &tx.RelatedID, &tx.Redeemed, &tx.ProcessedBy, &tx.PromotionIDs,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
