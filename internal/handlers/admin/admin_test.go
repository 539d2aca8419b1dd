package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/internal/dto"
	adminservice "github.com/GlebRadaev/earnledger/internal/service/adminservice"
	"github.com/GlebRadaev/earnledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/earnledger/internal/service/referralservice"
	"github.com/GlebRadaev/earnledger/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func requestWithID(method, target, id string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestApproveDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Deposit approved",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().ApproveDeposit(gomock.Any(), 7).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Request not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().ApproveDeposit(gomock.Any(), 99).Return(adminservice.ErrRequestNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: adminservice.ErrRequestNotFound.Error(),
		},
		{
			name: "Already processed",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().ApproveDeposit(gomock.Any(), 7).Return(adminservice.ErrAlreadyProcessed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: adminservice.ErrAlreadyProcessed.Error(),
		},
		{
			name:          "Invalid request id",
			id:            "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.ApproveDeposit(rr, requestWithID("POST", "/api/admin/deposits/"+tt.id+"/approve", tt.id, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestApproveWithdrawalHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Withdrawal approved", func(t *testing.T) {
		service.EXPECT().ApproveWithdrawal(gomock.Any(), 7).Return(nil)

		rr := httptest.NewRecorder()
		handler.ApproveWithdrawal(rr, requestWithID("POST", "/api/admin/withdrawals/7/approve", "7", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Insufficient balance auto-rejects", func(t *testing.T) {
		service.EXPECT().ApproveWithdrawal(gomock.Any(), 7).Return(ledgerservice.ErrInsufficientBalance)

		rr := httptest.NewRecorder()
		handler.ApproveWithdrawal(rr, requestWithID("POST", "/api/admin/withdrawals/7/approve", "7", nil))

		assert.Equal(t, http.StatusPaymentRequired, rr.Code)

		var resp utils.Response
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Insufficient balance, request auto-rejected", resp.Message)
	})
}

func TestRejectHandlers(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Deposit rejected with reason", func(t *testing.T) {
		service.EXPECT().RejectDeposit(gomock.Any(), 7, "illegible receipt").Return(nil)

		body := []byte(`{"reason":"illegible receipt"}`)
		rr := httptest.NewRecorder()
		handler.RejectDeposit(rr, requestWithID("POST", "/api/admin/deposits/7/reject", "7", body))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Withdrawal rejected without body", func(t *testing.T) {
		service.EXPECT().RejectWithdrawal(gomock.Any(), 7, "").Return(nil)

		rr := httptest.NewRecorder()
		handler.RejectWithdrawal(rr, requestWithID("POST", "/api/admin/withdrawals/7/reject", "7", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestListPendingHandlers(t *testing.T) {
	handler, service := NewMock(t)

	evidence := "transfer-receipt-0457.jpg"
	service.EXPECT().ListPendingDeposits(gomock.Any()).Return([]domain.Request{
		{ID: 7, UserID: 1, Kind: domain.RequestKindDeposit, Amount: 5000, Evidence: &evidence, SubmittedAt: time.Now()},
	}, nil)

	rr := httptest.NewRecorder()
	handler.ListPendingDeposits(rr, httptest.NewRequest("GET", "/api/admin/deposits/pending", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.PendingRequestResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, 5000.0, resp[0].Amount)

	service.EXPECT().ListPendingWithdrawals(gomock.Any()).Return(nil, nil)

	rr = httptest.NewRecorder()
	handler.ListPendingWithdrawals(rr, httptest.NewRequest("GET", "/api/admin/withdrawals/pending", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListWithdrawalsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Full history", func(t *testing.T) {
		service.EXPECT().ListWithdrawals(gomock.Any(), nil).Return([]domain.Withdrawal{
			{ID: 3, UserID: 1, Amount: 1500},
		}, nil)

		rr := httptest.NewRecorder()
		handler.ListWithdrawals(rr, httptest.NewRequest("GET", "/api/admin/withdrawals", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Filtered by user", func(t *testing.T) {
		userID := 1
		service.EXPECT().ListWithdrawals(gomock.Any(), &userID).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.ListWithdrawals(rr, httptest.NewRequest("GET", "/api/admin/withdrawals?user_id=1", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid user_id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ListWithdrawals(rr, httptest.NewRequest("GET", "/api/admin/withdrawals?user_id=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAssignLevelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Level assigned",
			id:   "1",
			body: `{"level":2}`,
			prepareMock: func() {
				service.EXPECT().AssignLevel(gomock.Any(), 1, 2, nil).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Negative level",
			id:   "1",
			body: `{"level":-1}`,
			prepareMock: func() {
				service.EXPECT().AssignLevel(gomock.Any(), 1, -1, nil).Return(adminservice.ErrInvalidLevel)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown user",
			id:   "99",
			body: `{"level":2}`,
			prepareMock: func() {
				service.EXPECT().AssignLevel(gomock.Any(), 99, 2, nil).Return(adminservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid body",
			id:           "1",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.AssignLevel(rr, requestWithID("POST", "/api/admin/users/"+tt.id+"/level", tt.id, []byte(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListUsersHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListUsers(gomock.Any()).Return([]domain.User{
		{ID: 1, PhoneNumber: "923000111", Level: 2, IsActive: true},
		{ID: 2, PhoneNumber: "923000222"},
	}, nil)

	rr := httptest.NewRecorder()
	handler.ListUsers(rr, httptest.NewRequest("GET", "/api/admin/users", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.UserResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "923000111", resp[0].PhoneNumber)
}

func TestRecordInvestmentHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Bonus paid",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().RecordInvestment(gomock.Any(), 1).
					Return(&referralservice.Result{BonusPaid: true, InviterID: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().RecordInvestment(gomock.Any(), 99).
					Return(nil, adminservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: adminservice.ErrUserNotFound.Error(),
		},
		{
			name: "Bonus already granted",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().RecordInvestment(gomock.Any(), 1).
					Return(nil, referralservice.ErrBonusAlreadyGranted)
			},
			expectedCode:  http.StatusConflict,
			expectedError: referralservice.ErrBonusAlreadyGranted.Error(),
		},
		{
			name:          "Invalid user id",
			id:            "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid user id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.RecordInvestment(rr, requestWithID("POST", "/api/admin/users/"+tt.id+"/record-investment", tt.id, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.RecordInvestmentResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.True(t, resp.BonusPaid)
				assert.Equal(t, 2, resp.InviterID)
			}
		})
	}
}
