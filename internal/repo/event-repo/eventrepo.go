package eventrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindByIDForUpdate locks the event row, and with it the point budget.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Event, error) {
	query := `
		SELECT id, name, points_remain, points_awarded
		FROM events
		WHERE id = $1
		FOR UPDATE
	`
	var event domain.Event
	err := r.db.QueryRow(ctx, query, id).Scan(&event.ID, &event.Name, &event.PointsRemain, &event.PointsAwarded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find event", zap.Int("event_id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *Repository) IsOrganizer(ctx context.Context, eventID, userID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM event_organizers WHERE event_id = $1 AND user_id = $2
		)
	`
	var ok bool
	if err := r.db.QueryRow(ctx, query, eventID, userID).Scan(&ok); err != nil {
		zap.L().Error("can't check event organizer", zap.Int("event_id", eventID), zap.Int("user_id", userID), zap.Error(err))
		return false, err
	}
	return ok, nil
}

func (r *Repository) FindGuest(ctx context.Context, eventID, userID int) (*domain.EventGuest, error) {
	query := `
		SELECT event_id, user_id, checked_in
		FROM event_guests
		WHERE event_id = $1 AND user_id = $2
	`
	var guest domain.EventGuest
	err := r.db.QueryRow(ctx, query, eventID, userID).Scan(&guest.EventID, &guest.UserID, &guest.CheckedIn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find event guest", zap.Int("event_id", eventID), zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

// CheckedInGuests lists the ids of guests who attended, ascending.
func (r *Repository) CheckedInGuests(ctx context.Context, eventID int) ([]int, error) {
	query := `
		SELECT user_id
		FROM event_guests
		WHERE event_id = $1 AND checked_in
		ORDER BY user_id ASC
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		zap.L().Error("can't list event guests", zap.Int("event_id", eventID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan event guest", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SpendPoints moves total from the event budget to its awarded counter.
// It refuses to drive the budget below zero.
func (r *Repository) SpendPoints(ctx context.Context, eventID, total int) (*domain.Event, error) {
	query := `
		UPDATE events
		SET points_remain = points_remain - $1,
			points_awarded = points_awarded + $1
		WHERE id = $2 AND points_remain >= $1
		RETURNING id, name, points_remain, points_awarded
	`
	var event domain.Event
	err := r.db.QueryRow(ctx, query, total, eventID).Scan(&event.ID, &event.Name, &event.PointsRemain, &event.PointsAwarded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.InsufficientFundsError{Requested: total}
		}
		zap.L().Error("can't spend event points", zap.Int("event_id", eventID), zap.Int("total", total), zap.Error(err))
		return nil, err
	}
	return &event, nil
}
