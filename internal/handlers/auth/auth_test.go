package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/internal/dto"
	authservice "github.com/GlebRadaev/earnledger/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/earnledger/pkg/auth"
	"github.com/GlebRadaev/earnledger/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body []byte, userID int) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"phone_number":"923000111","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "923000111", "password123", "").Return(&domain.User{
					ID:          1,
					PhoneNumber: "923000111",
					InviteCode:  "a1b2c3d4e5f60718",
				}, nil)
				service.EXPECT().GenerateToken(1, false).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Registration with invite code",
			body: `{"phone_number":"923000222","password":"password123","invited_by":"a1b2c3d4e5f60718"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "923000222", "password123", "a1b2c3d4e5f60718").Return(&domain.User{
					ID:          2,
					PhoneNumber: "923000222",
					InviteCode:  "ffeeddccbbaa0099",
				}, nil)
				service.EXPECT().GenerateToken(2, false).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Phone already registered",
			body: `{"phone_number":"923000111","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "923000111", "password123", "").Return(nil, authservice.ErrPhoneTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrPhoneTaken.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"phone_number":"923000111","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "923000111", "password123", "").Return(&domain.User{ID: 1}, nil)
				service.EXPECT().GenerateToken(1, false).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"phone_number":"923000111","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "923000111", "password123").Return(&domain.User{
					ID:      1,
					IsAdmin: true,
				}, nil)
				service.EXPECT().GenerateToken(1, true).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"phone_number":"923000111","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "923000111", "wrong").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, rr.Header().Get("Authorization"), "Bearer ")
			}

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	name := "Maria"
	service.EXPECT().GetProfile(gomock.Any(), 1).Return(&domain.User{
		ID:                 1,
		PhoneNumber:        "923000111",
		Name:               &name,
		Level:              2,
		IsActive:           true,
		InviteCode:         "a1b2c3d4e5f60718",
		AccumulatedBalance: 1500.5,
	}, nil)

	rr := httptest.NewRecorder()
	handler.GetProfile(rr, authedRequest("GET", "/api/user/profile", nil, 1))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.ProfileResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "923000111", resp.PhoneNumber)
	assert.Equal(t, 2, resp.Level)
	assert.Equal(t, 1500.5, resp.AccumulatedBalance)
}

func TestUpdateProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	name, bank, iban := "Maria", "BAI", "AO06004400006729503010102"
	service.EXPECT().UpdateProfile(gomock.Any(), 1, &name, &bank, &iban).Return(nil)

	body := []byte(`{"name":"Maria","bank_name":"BAI","iban":"AO06004400006729503010102"}`)
	rr := httptest.NewRecorder()
	handler.UpdateProfile(rr, authedRequest("PUT", "/api/user/profile", body, 1))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestChangePasswordHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Password changed",
			body: `{"old_password":"oldpass123","new_password":"newpass123"}`,
			prepareMock: func() {
				service.EXPECT().ChangePassword(gomock.Any(), 1, "oldpass123", "newpass123").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Wrong old password",
			body: `{"old_password":"wrong","new_password":"newpass123"}`,
			prepareMock: func() {
				service.EXPECT().ChangePassword(gomock.Any(), 1, "wrong", "newpass123").Return(authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.ChangePassword(rr, authedRequest("POST", "/api/user/change-password", []byte(tt.body), 1))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
