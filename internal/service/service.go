package service

import (
	"github.com/GlebRadaev/earnledger/internal/handlers/admin"
	"github.com/GlebRadaev/earnledger/internal/handlers/auth"
	"github.com/GlebRadaev/earnledger/internal/handlers/requests"
	"github.com/GlebRadaev/earnledger/internal/handlers/tasks"

	pkgauth "github.com/GlebRadaev/earnledger/pkg/auth"

	"github.com/GlebRadaev/earnledger/internal/config"
	"github.com/GlebRadaev/earnledger/internal/pg"
	"github.com/GlebRadaev/earnledger/internal/repo"
	adminservice "github.com/GlebRadaev/earnledger/internal/service/adminservice"
	authservice "github.com/GlebRadaev/earnledger/internal/service/authservice"
	ledgerservice "github.com/GlebRadaev/earnledger/internal/service/ledgerservice"
	referralservice "github.com/GlebRadaev/earnledger/internal/service/referralservice"
	requestservice "github.com/GlebRadaev/earnledger/internal/service/requestservice"
	taskservice "github.com/GlebRadaev/earnledger/internal/service/taskservice"
)

type Services struct {
	AuthService    auth.Service
	TaskService    tasks.Service
	RequestService requests.Service
	AdminService   admin.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	ledgerService := ledgerservice.New(repo.UserRepo)
	referralService := referralservice.New(repo.UserRepo, ledgerService, txManager, cfg.InviteBonus)
	taskService := taskservice.New(repo.UserRepo, ledgerService, txManager, cfg.Payouts)
	requestService := requestservice.New(repo.UserRepo, repo.RequestRepo, repo.WithdrawalRepo, txManager, cfg.MinWithdrawal)
	adminService := adminservice.New(repo.UserRepo, repo.RequestRepo, repo.WithdrawalRepo, ledgerService, referralService, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		TaskService:    taskService,
		RequestService: requestService,
		AdminService:   adminService,
	}
}
