package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/GlebRadaev/earnledger/docs"
	adminhandlers "github.com/GlebRadaev/earnledger/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/earnledger/internal/handlers/auth"
	requesthandlers "github.com/GlebRadaev/earnledger/internal/handlers/requests"
	taskhandlers "github.com/GlebRadaev/earnledger/internal/handlers/tasks"
	"github.com/GlebRadaev/earnledger/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		TaskService:    taskhandlers.NewMockService(ctrl),
		RequestService: requesthandlers.NewMockService(ctrl),
		AdminService:   adminhandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockTaskHandler := NewMockTaskHandler(ctrl)
	mockRequestHandler := NewMockRequestHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().GetProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).AnyTimes()
	mockTaskHandler.EXPECT().PerformDailyTask(gomock.Any(), gomock.Any()).AnyTimes()
	mockRequestHandler.EXPECT().RequestDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockRequestHandler.EXPECT().RequestWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()
	mockRequestHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ListPendingDeposits(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ListUsers(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		TaskHandler:    mockTaskHandler,
		RequestHandler: mockRequestHandler,
		AdminHandler:   mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user/profile", http.StatusUnauthorized},
		{"PUT", "/api/user/profile", http.StatusUnauthorized},
		{"POST", "/api/user/change-password", http.StatusUnauthorized},
		{"POST", "/api/user/daily-task", http.StatusUnauthorized},
		{"POST", "/api/user/deposits", http.StatusUnauthorized},
		{"POST", "/api/user/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/user/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/admin/deposits/pending", http.StatusUnauthorized},
		{"POST", "/api/admin/deposits/1/approve", http.StatusUnauthorized},
		{"GET", "/api/admin/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/admin/users", http.StatusUnauthorized},
		{"POST", "/api/admin/users/1/level", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
