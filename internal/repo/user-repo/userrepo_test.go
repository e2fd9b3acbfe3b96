package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var userColumns = []string{"id", "name", "role", "verified", "suspicious", "points", "created_at"}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name      string
		id        int
		forUpdate bool
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User found",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "alice", domain.RoleCashier, true, false, 250, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, role, verified, suspicious, points, created_at FROM users WHERE id = $1")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:        1,
				Name:      "alice",
				Role:      domain.RoleCashier,
				Verified:  true,
				Points:    250,
				CreatedAt: createdAt,
			},
		},
		{
			name:      "User locked for update",
			id:        2,
			forUpdate: true,
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(2, "bob", domain.RoleRegular, false, true, 0, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1 FOR UPDATE")).
					WithArgs(2).
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:         2,
				Name:       "bob",
				Role:       domain.RoleRegular,
				Suspicious: true,
				CreatedAt:  createdAt,
			},
		},
		{
			name: "User not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			var (
				result *domain.User
				err    error
			)
			if tt.forUpdate {
				result, err = repo.FindByIDForUpdate(context.Background(), tt.id)
			} else {
				result, err = repo.FindByID(context.Background(), tt.id)
			}
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddPoints(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("UPDATE users SET points = points + $1 WHERE id = $2 RETURNING points")

	tests := []struct {
		name          string
		userID        int
		delta         int
		mockSetup     func()
		expected      int
		expectedError error
	}{
		{
			name:   "Credit points",
			userID: 1,
			delta:  80,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(80, 1).
					WillReturnRows(pgxmock.NewRows([]string{"points"}).AddRow(330))
			},
			expected: 330,
		},
		{
			name:   "Missing user",
			userID: 5,
			delta:  -10,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(-10, 5).WillReturnError(pgx.ErrNoRows)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:   "Database error",
			userID: 1,
			delta:  10,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(10, 1).WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			points, err := repo.AddPoints(context.Background(), tt.userID, tt.delta)
			if tt.expectedError != nil {
				if errors.Is(tt.expectedError, domain.ErrNotFound) {
					assert.ErrorIs(t, err, domain.ErrNotFound)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, points)
		})
	}
}

func TestRepository_ListIDs(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT id FROM users WHERE id > $1 ORDER BY id ASC LIMIT $2")

	mock.ExpectQuery(query).WithArgs(10, 3).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11).AddRow(12).AddRow(15))
	ids, err := repo.ListIDs(context.Background(), 10, 3)
	assert.NoError(t, err)
	assert.Equal(t, []int{11, 12, 15}, ids)

	mock.ExpectQuery(query).WithArgs(0, 3).WillReturnError(errors.New("database error"))
	ids, err = repo.ListIDs(context.Background(), 0, 3)
	assert.Error(t, err)
	assert.Nil(t, ids)
}
