package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pointsledger/internal/domain"
	"github.com/GlebRadaev/pointsledger/internal/handlers/balance"
	"github.com/GlebRadaev/pointsledger/internal/handlers/promotions"
	"github.com/GlebRadaev/pointsledger/internal/handlers/transactions"
	"github.com/GlebRadaev/pointsledger/internal/service"
	"github.com/GlebRadaev/pointsledger/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		TransactionService: transactions.NewMockService(ctrl),
		BalanceService:     balance.NewMockService(ctrl),
		PromotionService:   promotions.NewMockService(ctrl),
	}

	h := New(services, auth.NewJWTService("secret").Middleware, []string{"*"})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.TransactionHandler)
	assert.NotNil(t, h.BalanceHandler)
	assert.NotNil(t, h.PromotionHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransactionHandler := NewMockTransactionHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockPromotionHandler := NewMockPromotionHandler(ctrl)

	mockTransactionHandler.EXPECT().RecordPurchase(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().RecordAdjustment(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().CreateRedemption(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().ProcessRedemption(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().AwardEventPoints(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().SetSuspicious(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().GetTransaction(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromotionHandler.EXPECT().CreatePromotion(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromotionHandler.EXPECT().GetPromotion(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("secret")
	h := &Handlers{
		TransactionHandler: mockTransactionHandler,
		BalanceHandler:     mockBalanceHandler,
		PromotionHandler:   mockPromotionHandler,
		Authenticate:       jwtService.Middleware,
		AllowedOrigins:     []string{"*"},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	token, err := jwtService.GenerateJWT(domain.Actor{UserID: 1, Role: domain.RoleManager}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	routes := []struct {
		method string
		url    string
	}{
		{"POST", "/api/purchases"},
		{"POST", "/api/adjustments"},
		{"POST", "/api/redemptions"},
		{"POST", "/api/redemptions/4/process"},
		{"POST", "/api/transfers"},
		{"POST", "/api/events/2/awards"},
		{"GET", "/api/transactions/4"},
		{"PUT", "/api/transactions/4/suspicious"},
		{"GET", "/api/users/me/balance"},
		{"GET", "/api/users/1/transactions"},
		{"POST", "/api/promotions"},
		{"GET", "/api/promotions/3"},
	}

	for _, tt := range routes {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			req = httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/transactions/4", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
