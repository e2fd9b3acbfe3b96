package promotionrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/pg"
	"github.com/GlebRadaev/pointsledger/internal/promotion"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const usageConstraint = "promotion_usages_user_promotion_key"

const selectPromotion = `
	SELECT id, name, kind, start_time, end_time, min_spending, rate, points
	FROM promotions
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	query := `
		INSERT INTO promotions (name, kind, start_time, end_time, min_spending, rate, points)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	created := *p
	err := r.db.QueryRow(ctx, query,
		p.Name, p.Kind, p.StartTime, p.EndTime, p.MinSpending, p.Rate, p.Points,
	).Scan(&created.ID)
	if err != nil {
		zap.L().Error("can't create promotion", zap.String("name", p.Name), zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Promotion, error) {
	p, err := scanPromotion(r.db.QueryRow(ctx, selectPromotion+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find promotion", zap.Int("promotion_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// FindByIDs returns the promotions that exist among ids, in no particular order.
func (r *Repository) FindByIDs(ctx context.Context, ids []int) ([]domain.Promotion, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, selectPromotion+" WHERE id = ANY($1)", ids)
	if err != nil {
		zap.L().Error("can't find promotions", zap.Ints("promotion_ids", ids), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var promotions []domain.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			zap.L().Error("can't scan promotion", zap.Error(err))
			return nil, err
		}
		promotions = append(promotions, *p)
	}
	return promotions, rows.Err()
}

// UsedByUser reports which of ids the user has already consumed.
func (r *Repository) UsedByUser(ctx context.Context, userID int, ids []int) (map[int]bool, error) {
	used := make(map[int]bool)
	if len(ids) == 0 {
		return used, nil
	}
	query := `
		SELECT promotion_id
		FROM promotion_usages
		WHERE user_id = $1 AND promotion_id = ANY($2)
	`
	rows, err := r.db.Query(ctx, query, userID, ids)
	if err != nil {
		zap.L().Error("can't load promotion usages", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan promotion usage", zap.Error(err))
			return nil, err
		}
		used[id] = true
	}
	return used, rows.Err()
}

// RecordUsage consumes a one-time promotion. A second use by the same user,
// including a racing one, yields domain.ErrAlreadyUsed.
func (r *Repository) RecordUsage(ctx context.Context, usage domain.PromotionUsage) error {
	query := `
		INSERT INTO promotion_usages (user_id, promotion_id, transaction_id, used_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, usage.UserID, usage.PromotionID, usage.TransactionID, usage.UsedAt)
	if err != nil {
		if pg.IsUniqueViolation(err, usageConstraint) {
			return &promotion.Error{Err: domain.ErrAlreadyUsed, PromotionID: usage.PromotionID}
		}
		zap.L().Error("can't record promotion usage", zap.Int("user_id", usage.UserID), zap.Int("promotion_id", usage.PromotionID), zap.Error(err))
		return err
	}
	return nil
}

func scanPromotion(row pgx.Row) (*domain.Promotion, error) {
	var p domain.Promotion
	err := row.Scan(&p.ID, &p.Name, &p.Kind, &p.StartTime, &p.EndTime, &p.MinSpending, &p.Rate, &p.Points)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
