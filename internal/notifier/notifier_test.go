package notifier

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/GlebRadaev/earnledger/internal/config"
	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/pkg/clients"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func NewMock(t *testing.T) (*Service, *MockRequestRepo, *clients.MockHTTPClientI) {
	cfg := &config.Config{NotifyAddress: "http://localhost:8081"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestRepo := NewMockRequestRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, requestRepo, client)
	return service, requestRepo, client
}

func resetNotified() {
	notifiedRequests.Range(func(key, _ any) bool {
		notifiedRequests.Delete(key)
		return true
	})
}

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processPending(t *testing.T) {
	tests := []struct {
		name            string
		mockFindPending func(ctx context.Context, kind string) ([]domain.Request, error)
		mockAddTask     func(ctx context.Context, task Task) error
		taskCount       int
	}{
		{
			name: "announces each pending request once",
			mockFindPending: func(ctx context.Context, kind string) ([]domain.Request, error) {
				if kind == domain.RequestKindDeposit {
					return []domain.Request{{ID: 1, UserID: 1, Kind: kind, Amount: 5000}}, nil
				}
				return []domain.Request{{ID: 2, UserID: 2, Kind: kind, Amount: 1500}}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			taskCount: 2,
		},
		{
			name: "fetch failure skips the cycle",
			mockFindPending: func(ctx context.Context, kind string) ([]domain.Request, error) {
				return nil, fmt.Errorf("db error")
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			taskCount: 0,
		},
		{
			name: "worker pool rejection releases the latch",
			mockFindPending: func(ctx context.Context, kind string) ([]domain.Request, error) {
				if kind == domain.RequestKindDeposit {
					return []domain.Request{{ID: 3, UserID: 1, Kind: kind, Amount: 5000}}, nil
				}
				return nil, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			taskCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetNotified()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			requestRepo := NewMockRequestRepo(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			requestRepo.EXPECT().
				FindPendingByKind(gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockFindPending).
				AnyTimes()
			workerPool.EXPECT().
				AddTask(gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockAddTask).
				Times(tt.taskCount)

			service := &Service{
				requestRepo: requestRepo,
				workerPool:  workerPool,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			service.processPending(context.Background())
		})
	}
}

func TestService_processPendingDedup(t *testing.T) {
	resetNotified()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestRepo := NewMockRequestRepo(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	pending := []domain.Request{{ID: 7, UserID: 1, Kind: domain.RequestKindDeposit, Amount: 5000}}
	requestRepo.EXPECT().FindPendingByKind(gomock.Any(), domain.RequestKindDeposit).Return(pending, nil).Times(2)
	requestRepo.EXPECT().FindPendingByKind(gomock.Any(), domain.RequestKindWithdrawal).Return(nil, nil).Times(2)

	// still pending on the second poll, but already announced
	workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	service := &Service{requestRepo: requestRepo, workerPool: workerPool}
	service.processPending(context.Background())
	service.processPending(context.Background())
}

func TestService_notify(t *testing.T) {
	tests := []struct {
		name          string
		request       domain.Request
		prepareClient func(client *clients.MockHTTPClientI)
		cancelContext bool
		expectedError string
	}{
		{
			name:    "accepted on first attempt",
			request: domain.Request{ID: 1, UserID: 1, Kind: domain.RequestKindDeposit, Amount: 5000},
			prepareClient: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Do(gomock.Any()).Return(httpResponse(http.StatusAccepted, ""), nil)
			},
		},
		{
			name:    "rate limited then accepted",
			request: domain.Request{ID: 2, UserID: 1, Kind: domain.RequestKindWithdrawal, Amount: 1500},
			prepareClient: func(client *clients.MockHTTPClientI) {
				limited := httpResponse(http.StatusTooManyRequests, "")
				limited.Header.Set("Retry-After", "0")
				gomock.InOrder(
					client.EXPECT().Do(gomock.Any()).Return(limited, nil),
					client.EXPECT().Do(gomock.Any()).Return(httpResponse(http.StatusOK, ""), nil),
				)
			},
		},
		{
			name:    "server errors exhaust retries",
			request: domain.Request{ID: 3, UserID: 1, Kind: domain.RequestKindDeposit, Amount: 5000},
			prepareClient: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Do(gomock.Any()).Return(httpResponse(http.StatusInternalServerError, ""), nil).Times(maxRetries)
			},
			expectedError: "failed to notify about request 3 after 3 retries: status 500",
		},
		{
			name:          "context canceled",
			request:       domain.Request{ID: 4, UserID: 1, Kind: domain.RequestKindDeposit, Amount: 5000},
			prepareClient: func(client *clients.MockHTTPClientI) {},
			cancelContext: true,
			expectedError: context.Canceled.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := clients.NewMockHTTPClientI(ctrl)
			tt.prepareClient(client)

			service := &Service{url: "http://localhost:8081", client: client}

			ctx := context.Background()
			if tt.cancelContext {
				canceled, cancel := context.WithCancel(ctx)
				cancel()
				ctx = canceled
			}

			err := service.notify(ctx, tt.request)
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_forgetProcessed(t *testing.T) {
	resetNotified()
	notifiedRequests.Store(1, struct{}{})
	notifiedRequests.Store(2, struct{}{})

	service := &Service{}
	service.forgetProcessed([]domain.Request{{ID: 2}})

	_, stillThere := notifiedRequests.Load(2)
	assert.True(t, stillThere)
	_, gone := notifiedRequests.Load(1)
	assert.False(t, gone)
}
