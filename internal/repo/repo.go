package repo

import (
	"github.com/GlebRadaev/pointsledger/internal/pg"
	"github.com/GlebRadaev/pointsledger/internal/reconcile"
	balancerepo "github.com/GlebRadaev/pointsledger/internal/repo/balance-repo"
	eventrepo "github.com/GlebRadaev/pointsledger/internal/repo/event-repo"
	promotionrepo "github.com/GlebRadaev/pointsledger/internal/repo/promotion-repo"
	transactionrepo "github.com/GlebRadaev/pointsledger/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/pointsledger/internal/repo/user-repo"
	"github.com/GlebRadaev/pointsledger/internal/service/balanceservice"
	"github.com/GlebRadaev/pointsledger/internal/service/promotionservice"
	"github.com/GlebRadaev/pointsledger/internal/service/transactionservice"
)

type Repositories struct {
	UserRepo        transactionservice.UserRepo
	TransactionRepo transactionservice.TransactionRepo
	UsageRepo       transactionservice.PromotionRepo
	EventRepo       transactionservice.EventRepo
	PromotionRepo   promotionservice.Repo
	BalanceRepo     balanceservice.BalanceRepo
	UserIndex       reconcile.UserRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	promotionRepo := promotionrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		TransactionRepo: transactionrepo.New(conn, txManager),
		UsageRepo:       promotionRepo,
		EventRepo:       eventrepo.New(conn),
		PromotionRepo:   promotionRepo,
		BalanceRepo:     balancerepo.New(conn),
		UserIndex:       userRepo,
	}
}
