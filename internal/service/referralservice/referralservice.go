package referralservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/internal/pg"
	"go.uber.org/zap"
)

type UserRepo interface {
	GetForUpdate(ctx context.Context, userID int) (*domain.User, error)
	AddInviteEarning(ctx context.Context, userID int, bonus float64) error
	SetInviteBonusGranted(ctx context.Context, userID int) error
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount float64) (float64, error)
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrBonusAlreadyGranted = errors.New("invite bonus already granted")
)

type Result struct {
	BonusPaid bool
	InviterID int
}

type Service struct {
	userRepo  UserRepo
	ledger    Ledger
	txManager pg.TXManager
	bonus     float64
}

func New(userRepo UserRepo, ledger Ledger, txManager pg.TXManager, bonus float64) *Service {
	return &Service{
		userRepo:  userRepo,
		ledger:    ledger,
		txManager: txManager,
		bonus:     bonus,
	}
}

// RecordQualifyingEvent pays the one-time bonus to the inviter of the given
// user. The latch check, the credit and the latch set run under one lock on
// the referred user's row, so duplicate submissions pay at most once. A user
// without an inviter, or whose inviter no longer exists, completes as a
// no-op success; the latch stays down until a bonus is actually paid.
func (s *Service) RecordQualifyingEvent(ctx context.Context, userID int) (*Result, error) {
	var result Result

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.InviteBonusGranted {
			return ErrBonusAlreadyGranted
		}
		if user.InvitedBy == nil {
			return nil
		}

		inviter, err := s.userRepo.GetForUpdate(ctx, *user.InvitedBy)
		if err != nil {
			return err
		}
		if inviter == nil {
			zap.L().Info("inviter no longer exists, skipping bonus",
				zap.Int("userID", userID), zap.Int("inviterID", *user.InvitedBy))
			return nil
		}

		if _, err := s.ledger.Credit(ctx, inviter.ID, s.bonus); err != nil {
			return err
		}
		if err := s.userRepo.AddInviteEarning(ctx, inviter.ID, s.bonus); err != nil {
			return err
		}
		if err := s.userRepo.SetInviteBonusGranted(ctx, userID); err != nil {
			return err
		}

		result = Result{BonusPaid: true, InviterID: inviter.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.BonusPaid {
		zap.L().Info("invite bonus granted",
			zap.Int("userID", userID),
			zap.Int("inviterID", result.InviterID),
			zap.Float64("bonus", s.bonus),
		)
	}
	return &result, nil
}
