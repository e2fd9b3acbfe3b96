package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const selectUser = `
	SELECT id, name, role, verified, suspicious, points, created_at
	FROM users
	WHERE id = $1
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.find(ctx, selectUser, id)
}

// FindByIDForUpdate locks the user row until the surrounding transaction ends.
func (repo *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	return repo.find(ctx, selectUser+" FOR UPDATE", id)
}

func (repo *Repository) find(ctx context.Context, query string, id int) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Role, &user.Verified, &user.Suspicious, &user.Points, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Int("user_id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// AddPoints moves the cached balance counter by delta and returns the new value.
func (repo *Repository) AddPoints(ctx context.Context, userID int, delta int) (int, error) {
	query := `
		UPDATE users
		SET points = points + $1
		WHERE id = $2
		RETURNING points
	`
	var points int
	err := repo.db.QueryRow(ctx, query, delta, userID).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.NotFound("user", userID)
		}
		zap.L().Error("can't update user points", zap.Int("user_id", userID), zap.Int("delta", delta), zap.Error(err))
		return 0, err
	}
	return points, nil
}

// ListIDs pages through user ids in ascending order.
func (repo *Repository) ListIDs(ctx context.Context, afterID int, limit uint32) ([]int, error) {
	query := `
		SELECT id
		FROM users
		WHERE id > $1
		ORDER BY id ASC
		LIMIT $2
	`
	rows, err := repo.db.Query(ctx, query, afterID, int(limit))
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan user id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
