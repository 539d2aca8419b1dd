package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/earnledger/docs"
	adminhandlers "github.com/GlebRadaev/earnledger/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/earnledger/internal/handlers/auth"
	requesthandlers "github.com/GlebRadaev/earnledger/internal/handlers/requests"
	taskhandlers "github.com/GlebRadaev/earnledger/internal/handlers/tasks"
	"github.com/GlebRadaev/earnledger/internal/service"
	"github.com/GlebRadaev/earnledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	PerformDailyTask(w http.ResponseWriter, r *http.Request)
}

type RequestHandler interface {
	RequestDeposit(w http.ResponseWriter, r *http.Request)
	RequestWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ApproveDeposit(w http.ResponseWriter, r *http.Request)
	RejectDeposit(w http.ResponseWriter, r *http.Request)
	ApproveWithdrawal(w http.ResponseWriter, r *http.Request)
	RejectWithdrawal(w http.ResponseWriter, r *http.Request)
	ListPendingDeposits(w http.ResponseWriter, r *http.Request)
	ListPendingWithdrawals(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	AssignLevel(w http.ResponseWriter, r *http.Request)
	RecordInvestment(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	TaskHandler    TaskHandler
	RequestHandler RequestHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		TaskHandler:    taskhandlers.New(s.TaskService),
		RequestHandler: requesthandlers.New(s.RequestService),
		AdminHandler:   adminhandlers.New(s.AdminService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.AuthHandler.GetProfile)
				r.Put("/", h.AuthHandler.UpdateProfile)
			})
			r.Post("/change-password", h.AuthHandler.ChangePassword)
			r.Post("/daily-task", h.TaskHandler.PerformDailyTask)
			r.Post("/deposits", h.RequestHandler.RequestDeposit)
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.RequestHandler.RequestWithdrawal)
				r.Get("/", h.RequestHandler.GetWithdrawals)
			})
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Route("/deposits", func(r chi.Router) {
			r.Get("/pending", h.AdminHandler.ListPendingDeposits)
			r.Post("/{id}/approve", h.AdminHandler.ApproveDeposit)
			r.Post("/{id}/reject", h.AdminHandler.RejectDeposit)
		})
		r.Route("/withdrawals", func(r chi.Router) {
			r.Get("/", h.AdminHandler.ListWithdrawals)
			r.Get("/pending", h.AdminHandler.ListPendingWithdrawals)
			r.Post("/{id}/approve", h.AdminHandler.ApproveWithdrawal)
			r.Post("/{id}/reject", h.AdminHandler.RejectWithdrawal)
		})
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.AdminHandler.ListUsers)
			r.Post("/{id}/level", h.AdminHandler.AssignLevel)
			r.Post("/{id}/record-investment", h.AdminHandler.RecordInvestment)
		})
	})

	return r
}
