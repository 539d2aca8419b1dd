package adminservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/internal/pg"
	"github.com/GlebRadaev/earnledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/earnledger/internal/service/referralservice"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	GetForUpdate(ctx context.Context, userID int) (*domain.User, error)
	AddWithdrawn(ctx context.Context, userID int, amount float64) error
	AssignLevel(ctx context.Context, userID, level int, isActive bool, isAdmin *bool) error
	ListAll(ctx context.Context) ([]domain.User, error)
}

type RequestRepo interface {
	GetForUpdate(ctx context.Context, requestID int) (*domain.Request, error)
	MarkProcessed(ctx context.Context, requestID int, status string, rejectReason *string, processedAt time.Time) (bool, error)
	FindPendingByKind(ctx context.Context, kind string) ([]domain.Request, error)
}

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	GetAllWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID int, amount float64) (float64, error)
}

type Referral interface {
	RecordQualifyingEvent(ctx context.Context, userID int) (*referralservice.Result, error)
}

var (
	ErrRequestNotFound  = errors.New("request not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrAlreadyProcessed = errors.New("request already processed")
	ErrInvalidLevel     = errors.New("level must be non-negative")
)

const insufficientAtApproval = "insufficient balance at approval time"

// Service is the only component allowed to move requests out of pending.
type Service struct {
	userRepo       UserRepo
	requestRepo    RequestRepo
	withdrawalRepo WithdrawalRepo
	ledger         Ledger
	referral       Referral
	txManager      pg.TXManager
}

func New(userRepo UserRepo, requestRepo RequestRepo, withdrawalRepo WithdrawalRepo, ledger Ledger, referral Referral, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:       userRepo,
		requestRepo:    requestRepo,
		withdrawalRepo: withdrawalRepo,
		ledger:         ledger,
		referral:       referral,
		txManager:      txManager,
	}
}

func (s *Service) lockPending(ctx context.Context, requestID int, kind string) (*domain.Request, error) {
	req, err := s.requestRepo.GetForUpdate(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil || req.Kind != kind {
		return nil, ErrRequestNotFound
	}
	if req.Status != domain.RequestStatusPending {
		return nil, ErrAlreadyProcessed
	}
	return req, nil
}

// ApproveDeposit marks the request approved and fires the depositor's
// referral qualifying event in the same transaction. Approval does not
// credit the accumulated balance: that balance tracks earnings, not
// deposited principal.
func (s *Service) ApproveDeposit(ctx context.Context, requestID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.lockPending(ctx, requestID, domain.RequestKindDeposit)
		if err != nil {
			return err
		}

		if _, err := s.requestRepo.MarkProcessed(ctx, req.ID, domain.RequestStatusApproved, nil, time.Now()); err != nil {
			return err
		}

		// A second approved deposit is legal; the bonus just never fires twice.
		if _, err := s.referral.RecordQualifyingEvent(ctx, req.UserID); err != nil && !errors.Is(err, referralservice.ErrBonusAlreadyGranted) {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Info("deposit approved", zap.Int("requestID", requestID))
	return nil
}

func (s *Service) RejectDeposit(ctx context.Context, requestID int, reason string) error {
	return s.reject(ctx, requestID, domain.RequestKindDeposit, reason)
}

func (s *Service) RejectWithdrawal(ctx context.Context, requestID int, reason string) error {
	return s.reject(ctx, requestID, domain.RequestKindWithdrawal, reason)
}

func (s *Service) reject(ctx context.Context, requestID int, kind, reason string) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.lockPending(ctx, requestID, kind)
		if err != nil {
			return err
		}

		var rejectReason *string
		if reason != "" {
			rejectReason = &reason
		}
		_, err = s.requestRepo.MarkProcessed(ctx, req.ID, domain.RequestStatusRejected, rejectReason, time.Now())
		return err
	})
	if err != nil {
		return err
	}

	zap.L().Info("request rejected", zap.String("kind", kind), zap.Int("requestID", requestID))
	return nil
}

// ApproveWithdrawal re-validates the balance at approval time, then debits,
// bumps the withdrawn total, marks the request approved and appends one
// history entry, all in one transaction. When the balance no longer covers
// the amount, the request is auto-rejected (that rejection commits) and
// ErrInsufficientBalance is returned.
func (s *Service) ApproveWithdrawal(ctx context.Context, requestID int) error {
	insufficient := false

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.lockPending(ctx, requestID, domain.RequestKindWithdrawal)
		if err != nil {
			return err
		}

		user, err := s.userRepo.GetForUpdate(ctx, req.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		now := time.Now()
		if user.AccumulatedBalance < req.Amount {
			insufficient = true
			reason := insufficientAtApproval
			_, err := s.requestRepo.MarkProcessed(ctx, req.ID, domain.RequestStatusRejected, &reason, now)
			return err
		}

		if _, err := s.ledger.Debit(ctx, req.UserID, req.Amount); err != nil {
			return err
		}
		if err := s.userRepo.AddWithdrawn(ctx, req.UserID, req.Amount); err != nil {
			return err
		}
		if _, err := s.requestRepo.MarkProcessed(ctx, req.ID, domain.RequestStatusApproved, nil, now); err != nil {
			return err
		}

		withdrawal := &domain.Withdrawal{
			RequestID:   req.ID,
			UserID:      req.UserID,
			Amount:      req.Amount,
			ProcessedAt: now,
		}
		if req.BankName != nil {
			withdrawal.BankName = *req.BankName
		}
		if req.IBAN != nil {
			withdrawal.IBAN = *req.IBAN
		}
		_, err = s.withdrawalRepo.CreateWithdrawal(ctx, withdrawal)
		return err
	})
	if err != nil {
		return err
	}
	if insufficient {
		zap.L().Warn("withdrawal auto-rejected", zap.Int("requestID", requestID))
		return ledgerservice.ErrInsufficientBalance
	}

	zap.L().Info("withdrawal approved", zap.Int("requestID", requestID))
	return nil
}

// AssignLevel sets the payout tier; a positive level activates the account,
// level zero deactivates it. The admin flag changes only when explicitly
// provided.
func (s *Service) AssignLevel(ctx context.Context, userID, level int, isAdmin *bool) error {
	if level < 0 {
		return ErrInvalidLevel
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.userRepo.AssignLevel(ctx, userID, level, level > 0, isAdmin); err != nil {
		return err
	}

	zap.L().Info("level assigned", zap.Int("userID", userID), zap.Int("level", level))
	return nil
}

// RecordInvestment fires the referral qualifying event for a user outside
// the deposit approval flow, covering investments confirmed through other
// channels.
func (s *Service) RecordInvestment(ctx context.Context, userID int) (*referralservice.Result, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.referral.RecordQualifyingEvent(ctx, userID)
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) ListPendingDeposits(ctx context.Context) ([]domain.Request, error) {
	return s.requestRepo.FindPendingByKind(ctx, domain.RequestKindDeposit)
}

func (s *Service) ListPendingWithdrawals(ctx context.Context) ([]domain.Request, error) {
	return s.requestRepo.FindPendingByKind(ctx, domain.RequestKindWithdrawal)
}

// ListWithdrawals returns the processed history, optionally scoped to one user.
func (s *Service) ListWithdrawals(ctx context.Context, userID *int) ([]domain.Withdrawal, error) {
	if userID != nil {
		return s.withdrawalRepo.GetWithdrawalsByUserID(ctx, *userID)
	}
	return s.withdrawalRepo.GetAllWithdrawals(ctx)
}
