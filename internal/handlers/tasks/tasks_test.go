package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/earnledger/internal/dto"
	taskservice "github.com/GlebRadaev/earnledger/internal/service/taskservice"
	pkgauth "github.com/GlebRadaev/earnledger/pkg/auth"
	"github.com/GlebRadaev/earnledger/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*TaskHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestPerformDailyTaskHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Payout credited",
			prepareMock: func() {
				service.EXPECT().PerformDailyTask(gomock.Any(), 1).Return(&taskservice.Result{
					Payout:  100,
					Balance: 1600.5,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Inactive account",
			prepareMock: func() {
				service.EXPECT().PerformDailyTask(gomock.Any(), 1).Return(nil, taskservice.ErrAccountInactive)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: taskservice.ErrAccountInactive.Error(),
		},
		{
			name: "Already claimed today",
			prepareMock: func() {
				service.EXPECT().PerformDailyTask(gomock.Any(), 1).Return(nil, taskservice.ErrAlreadyClaimedToday)
			},
			expectedCode:  http.StatusConflict,
			expectedError: taskservice.ErrAlreadyClaimedToday.Error(),
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().PerformDailyTask(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/daily-task", nil)
			ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 1)
			rr := httptest.NewRecorder()

			handler.PerformDailyTask(rr, req.WithContext(ctx))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.DailyTaskResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 100.0, resp.Payout)
				assert.Equal(t, 1600.5, resp.Balance)
			}
		})
	}
}
