package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/GlebRadaev/earnledger/internal/config"
	"github.com/GlebRadaev/earnledger/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/earnledger/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// notifiedRequests remembers which pending requests the review webhook has
// already been told about, so each one is announced once per lifetime in
// pending rather than once per poll.
var notifiedRequests sync.Map

type RequestRepo interface {
	FindPendingByKind(ctx context.Context, kind string) ([]domain.Request, error)
}

type Notification struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Kind        string    `json:"kind"`
	Amount      float64   `json:"amount"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type Service struct {
	url          string
	requestRepo  RequestRepo
	client       clients.HTTPClientI
	workerPool   WorkerPoolI
	pollInterval time.Duration
}

func New(cfg *config.Config, requestRepo RequestRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:          cfg.NotifyAddress,
		requestRepo:  requestRepo,
		client:       client,
		workerPool:   NewWorkerPool(10),
		pollInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Notifier service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping notifier")
			return
		case <-ticker.C:
			s.processPending(ctx)
		}
	}
}

func (s *Service) processPending(ctx context.Context) {
	pending := make([]domain.Request, 0)
	for _, kind := range []string{domain.RequestKindDeposit, domain.RequestKindWithdrawal} {
		requests, err := s.requestRepo.FindPendingByKind(ctx, kind)
		if err != nil {
			zap.L().Error("Failed to fetch pending requests", zap.String("kind", kind), zap.Error(err))
			return
		}
		pending = append(pending, requests...)
	}

	s.forgetProcessed(pending)

	var g errgroup.Group
	for _, req := range pending {
		req := req

		if _, loaded := notifiedRequests.LoadOrStore(req.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				if err := s.notify(ctx, req); err != nil {
					notifiedRequests.Delete(req.ID)
					return err
				}
				return nil
			})
			if err != nil {
				notifiedRequests.Delete(req.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error notifying pending requests", zap.Error(err))
	}
}

// forgetProcessed drops map entries for requests that have left pending,
// otherwise the map would grow for the lifetime of the process.
func (s *Service) forgetProcessed(pending []domain.Request) {
	current := make(map[int]struct{}, len(pending))
	for _, req := range pending {
		current[req.ID] = struct{}{}
	}
	notifiedRequests.Range(func(key, _ any) bool {
		if _, ok := current[key.(int)]; !ok {
			notifiedRequests.Delete(key)
		}
		return true
	})
}

func (s *Service) notify(ctx context.Context, request domain.Request) error {
	payload, err := json.Marshal(Notification{
		ID:          request.ID,
		UserID:      request.UserID,
		Kind:        request.Kind,
		Amount:      request.Amount,
		SubmittedAt: request.SubmittedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification for request %d: %w", request.ID, err)
	}

	url := s.url + "/api/notifications"
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.client.Do(req)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to notify about request %d after %d retries: %w", request.ID, maxRetries, err)
			}
			statusCode := resp.StatusCode
			respHeaders := resp.Header
			if err := resp.Body.Close(); err != nil {
				zap.L().Warn("Failed to close response body", zap.Error(err))
			}

			switch {
			case statusCode == http.StatusTooManyRequests:
				s.waitRateLimit(request, respHeaders, attempt)
			case statusCode >= 200 && statusCode < 300:
				zap.L().Info("Pending request announced", zap.Int("requestID", request.ID), zap.String("kind", request.Kind))
				return nil
			default:
				zap.L().Warn("Unexpected status code from webhook", zap.Int("status", statusCode), zap.Int("requestID", request.ID))
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to notify about request %d after %d retries: status %d", request.ID, maxRetries, statusCode)
			}
		}
	}
	return nil
}

func (s *Service) waitRateLimit(request domain.Request, respHeaders http.Header, attempt int) {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("requestID", request.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
}
