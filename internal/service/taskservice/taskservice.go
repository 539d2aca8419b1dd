package taskservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/earnledger/internal/config"
	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/internal/pg"
	"go.uber.org/zap"
)

type UserRepo interface {
	GetForUpdate(ctx context.Context, userID int) (*domain.User, error)
	AddTaskEarning(ctx context.Context, userID int, payout float64, day time.Time) error
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount float64) (float64, error)
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAccountInactive     = errors.New("account is not active")
	ErrAlreadyClaimedToday = errors.New("daily task already claimed today")
)

type Result struct {
	Payout  float64
	Balance float64
}

type Service struct {
	userRepo  UserRepo
	ledger    Ledger
	txManager pg.TXManager
	payouts   config.LevelPayouts
}

func New(userRepo UserRepo, ledger Ledger, txManager pg.TXManager, payouts config.LevelPayouts) *Service {
	return &Service{
		userRepo:  userRepo,
		ledger:    ledger,
		txManager: txManager,
		payouts:   payouts,
	}
}

// PerformDailyTask grants the level payout at most once per calendar day.
// The user row is locked for the whole check-credit-latch sequence, so a
// retried request observes ErrAlreadyClaimedToday instead of a second credit.
func (s *Service) PerformDailyTask(ctx context.Context, userID int) (*Result, error) {
	var result Result

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if !user.IsActive {
			return ErrAccountInactive
		}

		today := domain.DateOnly(time.Now())
		if domain.SameDay(user.LastTaskDate, today) {
			return ErrAlreadyClaimedToday
		}

		payout := s.payouts.Payout(user.Level)
		balance, err := s.ledger.Credit(ctx, userID, payout)
		if err != nil {
			return err
		}
		if err := s.userRepo.AddTaskEarning(ctx, userID, payout, today); err != nil {
			return err
		}

		result = Result{Payout: payout, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("daily task completed",
		zap.Int("userID", userID),
		zap.Float64("payout", result.Payout),
	)
	return &result, nil
}
