package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/dto"
	"github.com/GlebRadaev/pointsledger/pkg/auth"
	"github.com/GlebRadaev/pointsledger/pkg/utils"
)

var (
	alice   = domain.Actor{UserID: 1, Role: domain.RoleRegular}
	cashier = domain.Actor{UserID: 10, Role: domain.RoleCashier}
	manager = domain.Actor{UserID: 20, Role: domain.RoleManager}
)

func NewMock(t *testing.T) (*TransactionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

// newRequest builds a request carrying actor and chi url params given as name/value pairs.
func newRequest(method, target, body string, actor *domain.Actor, params ...string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		rctx.URLParams.Add(params[i], params[i+1])
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if actor != nil {
		ctx = auth.WithActor(ctx, *actor)
	}
	return req.WithContext(ctx)
}

func assertError(t *testing.T, rr *httptest.ResponseRecorder, message string) {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, message, resp.Message)
}

func TestRecordPurchaseHandler(t *testing.T) {
	handler, service := NewMock(t)
	spent := decimal.RequireFromString("19.99")

	tests := []struct {
		name          string
		body          string
		actor         *domain.Actor
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Purchase recorded",
			body:  `{"user_id":1,"spent":"19.99","promotion_ids":[3],"remark":"coffee"}`,
			actor: &cashier,
			prepareMock: func() {
				service.EXPECT().
					RecordPurchase(gomock.Any(), cashier, 1, spent, []int{3}, "coffee").
					Return(&domain.Transaction{ID: 7, Kind: domain.KindPurchase, UserID: 1, Amount: 80, CreatedBy: 10}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:  "Regular user is forbidden",
			body:  `{"user_id":1,"spent":"5.00"}`,
			actor: &alice,
			prepareMock: func() {
				service.EXPECT().RecordPurchase(gomock.Any(), alice, 1, gomock.Any(), gomock.Nil(), "").
					Return(nil, domain.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "forbidden",
		},
		{
			name:  "Promotion already used",
			body:  `{"user_id":1,"spent":"5.00","promotion_ids":[3]}`,
			actor: &cashier,
			prepareMock: func() {
				service.EXPECT().RecordPurchase(gomock.Any(), cashier, 1, gomock.Any(), []int{3}, "").
					Return(nil, domain.ErrAlreadyUsed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "promotion already used",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			actor:         &cashier,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Not authenticated",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.RecordPurchase(rr, newRequest(http.MethodPost, "/api/purchases", tt.body, tt.actor))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assertError(t, rr, tt.expectedError)
				return
			}
			var resp dto.TransactionResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, 80, resp.Amount)
			assert.Equal(t, domain.KindPurchase, resp.Kind)
		})
	}
}

func TestRecordAdjustmentHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().RecordAdjustment(gomock.Any(), manager, 1, -40, 7, "refund").
		Return(&domain.Transaction{ID: 8, Kind: domain.KindAdjustment, UserID: 1, Amount: -40}, nil)
	rr := httptest.NewRecorder()
	handler.RecordAdjustment(rr, newRequest(http.MethodPost, "/api/adjustments",
		`{"user_id":1,"amount":-40,"related_id":7,"remark":"refund"}`, &manager))
	assert.Equal(t, http.StatusCreated, rr.Code)

	service.EXPECT().RecordAdjustment(gomock.Any(), manager, 1, -400, 7, "").
		Return(nil, &domain.InsufficientFundsError{Available: 100, Requested: 400})
	rr = httptest.NewRecorder()
	handler.RecordAdjustment(rr, newRequest(http.MethodPost, "/api/adjustments",
		`{"user_id":1,"amount":-400,"related_id":7}`, &manager))
	assert.Equal(t, http.StatusPaymentRequired, rr.Code)
	assertError(t, rr, "insufficient funds: available 100, requested 400")
}

func TestRedemptionHandlers(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("create", func(t *testing.T) {
		service.EXPECT().CreateRedemption(gomock.Any(), alice, 300, "mug").
			Return(&domain.Transaction{ID: 9, Kind: domain.KindRedemption, UserID: 1, Amount: -300, Redeemed: 300}, nil)

		rr := httptest.NewRecorder()
		handler.CreateRedemption(rr, newRequest(http.MethodPost, "/api/redemptions", `{"amount":300,"remark":"mug"}`, &alice))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp dto.TransactionResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "pending", resp.State)
	})

	t.Run("create over available", func(t *testing.T) {
		service.EXPECT().CreateRedemption(gomock.Any(), alice, 400, "").
			Return(nil, &domain.InsufficientFundsError{Available: 300, Requested: 400})

		rr := httptest.NewRecorder()
		handler.CreateRedemption(rr, newRequest(http.MethodPost, "/api/redemptions", `{"amount":400}`, &alice))
		assert.Equal(t, http.StatusPaymentRequired, rr.Code)
	})

	t.Run("process", func(t *testing.T) {
		processedBy := cashier.UserID
		service.EXPECT().ProcessRedemption(gomock.Any(), cashier, 9).
			Return(&domain.Transaction{ID: 9, Kind: domain.KindRedemption, Redeemed: 300, ProcessedBy: &processedBy}, nil)

		rr := httptest.NewRecorder()
		handler.ProcessRedemption(rr, newRequest(http.MethodPost, "/api/redemptions/9/process", "", &cashier, "transactionID", "9"))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.TransactionResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "processed", resp.State)
	})

	t.Run("process twice", func(t *testing.T) {
		service.EXPECT().ProcessRedemption(gomock.Any(), cashier, 9).Return(nil, domain.ErrAlreadyProcessed)

		rr := httptest.NewRecorder()
		handler.ProcessRedemption(rr, newRequest(http.MethodPost, "/api/redemptions/9/process", "", &cashier, "transactionID", "9"))
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("process bad id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ProcessRedemption(rr, newRequest(http.MethodPost, "/api/redemptions/x/process", "", &cashier, "transactionID", "x"))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assertError(t, rr, "Invalid transactionID")
	})
}

func TestCreateTransferHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().CreateTransfer(gomock.Any(), alice, 2, 50, "lunch").Return(
		&domain.Transaction{ID: 11, Kind: domain.KindTransfer, UserID: 1, Amount: -50},
		&domain.Transaction{ID: 12, Kind: domain.KindTransfer, UserID: 2, Amount: 50},
		nil,
	)
	rr := httptest.NewRecorder()
	handler.CreateTransfer(rr, newRequest(http.MethodPost, "/api/transfers", `{"recipient_id":2,"amount":50,"remark":"lunch"}`, &alice))

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp dto.TransferResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, -50, resp.Debit.Amount)
	assert.Equal(t, 50, resp.Credit.Amount)

	service.EXPECT().CreateTransfer(gomock.Any(), alice, 1, 50, "").Return(nil, nil, domain.Invalid("cannot transfer to yourself"))
	rr = httptest.NewRecorder()
	handler.CreateTransfer(rr, newRequest(http.MethodPost, "/api/transfers", `{"recipient_id":1,"amount":50}`, &alice))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAwardEventPointsHandler(t *testing.T) {
	handler, service := NewMock(t)
	target := 2

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "All checked-in guests",
			body: `{"amount":40}`,
			prepareMock: func() {
				service.EXPECT().AwardEventPoints(gomock.Any(), manager, 5, gomock.Nil(), 40, "").Return([]domain.Transaction{
					{ID: 1, Kind: domain.KindEvent, UserID: 1, Amount: 40},
					{ID: 2, Kind: domain.KindEvent, UserID: 2, Amount: 40},
				}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedLen:  2,
		},
		{
			name: "Single guest",
			body: `{"user_id":2,"amount":40}`,
			prepareMock: func() {
				service.EXPECT().AwardEventPoints(gomock.Any(), manager, 5, &target, 40, "").
					Return([]domain.Transaction{{ID: 3, Kind: domain.KindEvent, UserID: 2, Amount: 40}}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedLen:  1,
		},
		{
			name: "Budget exhausted",
			body: `{"amount":40}`,
			prepareMock: func() {
				service.EXPECT().AwardEventPoints(gomock.Any(), manager, 5, gomock.Nil(), 40, "").
					Return(nil, &domain.InsufficientFundsError{Available: 20, Requested: 80})
			},
			expectedCode: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.AwardEventPoints(rr, newRequest(http.MethodPost, "/api/events/5/awards", tt.body, &manager, "eventID", "5"))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedLen > 0 {
				var resp []dto.TransactionResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestSetSuspiciousHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().SetSuspicious(gomock.Any(), manager, 7, true).
		Return(&domain.Transaction{ID: 7, Kind: domain.KindPurchase, Suspicious: true}, nil)
	rr := httptest.NewRecorder()
	handler.SetSuspicious(rr, newRequest(http.MethodPut, "/api/transactions/7/suspicious", `{"suspicious":true}`, &manager, "transactionID", "7"))
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().SetSuspicious(gomock.Any(), manager, 8, true).Return(nil, domain.NotFound("transaction", 8))
	rr = httptest.NewRecorder()
	handler.SetSuspicious(rr, newRequest(http.MethodPut, "/api/transactions/8/suspicious", `{"suspicious":true}`, &manager, "transactionID", "8"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assertError(t, rr, "not found: transaction 8")
}

func TestReadHandlers(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("get transaction", func(t *testing.T) {
		service.EXPECT().GetTransaction(gomock.Any(), alice, 7).Return(&domain.Transaction{ID: 7, UserID: 1, Kind: domain.KindPurchase}, nil)

		rr := httptest.NewRecorder()
		handler.GetTransaction(rr, newRequest(http.MethodGet, "/api/transactions/7", "", &alice, "transactionID", "7"))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("list own ledger", func(t *testing.T) {
		service.EXPECT().ListTransactions(gomock.Any(), alice, 1).Return([]domain.Transaction{{ID: 7}, {ID: 6}}, nil)

		rr := httptest.NewRecorder()
		handler.ListTransactions(rr, newRequest(http.MethodGet, "/api/users/me/transactions", "", &alice, "userID", "me"))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.TransactionResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 7, resp[0].ID)
	})

	t.Run("empty ledger", func(t *testing.T) {
		service.EXPECT().ListTransactions(gomock.Any(), manager, 3).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.ListTransactions(rr, newRequest(http.MethodGet, "/api/users/3/transactions", "", &manager, "userID", "3"))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		service.EXPECT().ListTransactions(gomock.Any(), manager, 3).Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		handler.ListTransactions(rr, newRequest(http.MethodGet, "/api/users/3/transactions", "", &manager, "userID", "3"))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
