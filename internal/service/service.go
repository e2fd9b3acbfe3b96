package service

import (
	"github.com/GlebRadaev/pointsledger/internal/handlers/balance"
	"github.com/GlebRadaev/pointsledger/internal/handlers/promotions"
	"github.com/GlebRadaev/pointsledger/internal/handlers/transactions"
	"github.com/GlebRadaev/pointsledger/internal/pg"
	"github.com/GlebRadaev/pointsledger/internal/repo"
	"github.com/GlebRadaev/pointsledger/internal/service/balanceservice"
	"github.com/GlebRadaev/pointsledger/internal/service/promotionservice"
	"github.com/GlebRadaev/pointsledger/internal/service/transactionservice"
)

type Services struct {
	TransactionService transactions.Service
	BalanceService     balance.Service
	PromotionService   promotions.Service

	// Projector is the balance service seen by the reconciler.
	Projector *balanceservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	balanceService := balanceservice.New(repo.BalanceRepo)
	transactionService := transactionservice.New(
		txManager,
		repo.UserRepo,
		repo.TransactionRepo,
		repo.UsageRepo,
		repo.EventRepo,
		balanceService,
	)

	return &Services{
		TransactionService: transactionService,
		BalanceService:     balanceService,
		PromotionService:   promotionservice.New(repo.PromotionRepo),
		Projector:          balanceService,
	}
}
