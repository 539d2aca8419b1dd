package repo

import (
	"github.com/GlebRadaev/earnledger/internal/pg"
	requestrepo "github.com/GlebRadaev/earnledger/internal/repo/request-repo"
	userrepo "github.com/GlebRadaev/earnledger/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/earnledger/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	RequestRepo    *requestrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	requestRepo := requestrepo.New(conn, txManager)
	withdrawalRepo := withdrawalrepo.New(conn)

	return &Repositories{
		UserRepo:       userRepo,
		RequestRepo:    requestRepo,
		WithdrawalRepo: withdrawalRepo,
	}
}
