package ledgerservice

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// UserRepo applies balance deltas as single guarded statements, so the
// check and the mutation cannot be split by a concurrent writer.
type UserRepo interface {
	AddToBalance(ctx context.Context, userID int, amount float64) (*float64, error)
	DeductFromBalance(ctx context.Context, userID int, amount float64) (*float64, error)
}

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUserNotFound        = errors.New("user not found")
)

// Service is the only component that moves accumulated balance. It does not
// know why money moves; callers record intent on their own records.
type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

func (s *Service) Credit(ctx context.Context, userID int, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	balance, err := s.userRepo.AddToBalance(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to credit balance", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	if balance == nil {
		return 0, ErrUserNotFound
	}
	return *balance, nil
}

func (s *Service) Debit(ctx context.Context, userID int, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	balance, err := s.userRepo.DeductFromBalance(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to debit balance", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	if balance == nil {
		return 0, ErrInsufficientBalance
	}
	return *balance, nil
}
