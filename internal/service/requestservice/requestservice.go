package requestservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/internal/pg"
	"github.com/GlebRadaev/earnledger/internal/service/ledgerservice"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	GetForUpdate(ctx context.Context, userID int) (*domain.User, error)
	SetLastWithdrawalDate(ctx context.Context, userID int, day time.Time) error
}

type RequestRepo interface {
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
}

type WithdrawalRepo interface {
	GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
}

var (
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrBelowMinWithdrawal    = errors.New("amount is below the minimum withdrawal")
	ErrUserNotFound          = errors.New("user not found")
	ErrAccountInactive       = errors.New("account is not active")
	ErrAlreadyRequestedToday = errors.New("withdrawal already requested today")
)

type Service struct {
	userRepo       UserRepo
	requestRepo    RequestRepo
	withdrawalRepo WithdrawalRepo
	txManager      pg.TXManager
	minWithdrawal  float64
}

func New(userRepo UserRepo, requestRepo RequestRepo, withdrawalRepo WithdrawalRepo, txManager pg.TXManager, minWithdrawal float64) *Service {
	return &Service{
		userRepo:       userRepo,
		requestRepo:    requestRepo,
		withdrawalRepo: withdrawalRepo,
		txManager:      txManager,
		minWithdrawal:  minWithdrawal,
	}
}

// RequestDeposit records a pending deposit. The balance is untouched until
// an admin approves: unverified payment proof must not create spendable
// funds.
func (s *Service) RequestDeposit(ctx context.Context, userID int, amount float64, evidence string) (*domain.Request, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	req := &domain.Request{
		UserID:      userID,
		Kind:        domain.RequestKindDeposit,
		Amount:      amount,
		Status:      domain.RequestStatusPending,
		SubmittedAt: time.Now(),
	}
	if evidence != "" {
		req.Evidence = &evidence
	}

	req, err = s.requestRepo.Create(ctx, req)
	if err != nil {
		zap.L().Error("failed to create deposit request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// RequestWithdrawal records a pending withdrawal after the balance pre-check.
// The daily date lock is taken at request time so a user cannot queue several
// same-day requests while the first is still pending. The balance itself is
// only debited at approval.
func (s *Service) RequestWithdrawal(ctx context.Context, userID int, amount float64, bank domain.BankDetails) (*domain.Request, error) {
	if amount < s.minWithdrawal {
		return nil, ErrBelowMinWithdrawal
	}

	var req *domain.Request

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
		if user.AccumulatedBalance < amount {
			return ledgerservice.ErrInsufficientBalance
		}

		today := domain.DateOnly(time.Now())
		if domain.SameDay(user.LastWithdrawalDate, today) {
			return ErrAlreadyRequestedToday
		}

		req = &domain.Request{
			UserID:      userID,
			Kind:        domain.RequestKindWithdrawal,
			Amount:      amount,
			Status:      domain.RequestStatusPending,
			BankName:    &bank.BankName,
			IBAN:        &bank.IBAN,
			SubmittedAt: time.Now(),
		}
		if bank.CardNumber != "" {
			req.CardNumber = &bank.CardNumber
		}

		if req, err = s.requestRepo.Create(ctx, req); err != nil {
			return err
		}
		return s.userRepo.SetLastWithdrawalDate(ctx, userID, today)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("withdrawal requested",
		zap.Int("userID", userID),
		zap.Float64("amount", amount),
	)
	return req, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
