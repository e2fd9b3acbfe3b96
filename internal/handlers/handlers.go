package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/pointsledger/docs"
	balancehandlers "github.com/GlebRadaev/pointsledger/internal/handlers/balance"
	promotionhandlers "github.com/GlebRadaev/pointsledger/internal/handlers/promotions"
	transactionhandlers "github.com/GlebRadaev/pointsledger/internal/handlers/transactions"
	"github.com/GlebRadaev/pointsledger/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type TransactionHandler interface {
	RecordPurchase(w http.ResponseWriter, r *http.Request)
	RecordAdjustment(w http.ResponseWriter, r *http.Request)
	CreateRedemption(w http.ResponseWriter, r *http.Request)
	ProcessRedemption(w http.ResponseWriter, r *http.Request)
	CreateTransfer(w http.ResponseWriter, r *http.Request)
	AwardEventPoints(w http.ResponseWriter, r *http.Request)
	SetSuspicious(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type PromotionHandler interface {
	CreatePromotion(w http.ResponseWriter, r *http.Request)
	GetPromotion(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	TransactionHandler TransactionHandler
	BalanceHandler     BalanceHandler
	PromotionHandler   PromotionHandler

	// Authenticate must put the caller's domain.Actor into the request context.
	Authenticate   func(http.Handler) http.Handler
	AllowedOrigins []string
}

func New(s *service.Services, authenticate func(http.Handler) http.Handler, allowedOrigins []string) *Handlers {
	return &Handlers{
		TransactionHandler: transactionhandlers.New(s.TransactionService),
		BalanceHandler:     balancehandlers.New(s.BalanceService),
		PromotionHandler:   promotionhandlers.New(s.PromotionService),
		Authenticate:       authenticate,
		AllowedOrigins:     allowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: h.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(h.Authenticate)

		r.Post("/purchases", h.TransactionHandler.RecordPurchase)
		r.Post("/adjustments", h.TransactionHandler.RecordAdjustment)
		r.Route("/redemptions", func(r chi.Router) {
			r.Post("/", h.TransactionHandler.CreateRedemption)
			r.Post("/{transactionID}/process", h.TransactionHandler.ProcessRedemption)
		})
		r.Post("/transfers", h.TransactionHandler.CreateTransfer)
		r.Post("/events/{eventID}/awards", h.TransactionHandler.AwardEventPoints)
		r.Route("/transactions/{transactionID}", func(r chi.Router) {
			r.Get("/", h.TransactionHandler.GetTransaction)
			r.Put("/suspicious", h.TransactionHandler.SetSuspicious)
		})
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Get("/transactions", h.TransactionHandler.ListTransactions)
		})
		r.Route("/promotions", func(r chi.Router) {
			r.Post("/", h.PromotionHandler.CreatePromotion)
			r.Get("/{promotionID}", h.PromotionHandler.GetPromotion)
		})
	})

	return r
}
