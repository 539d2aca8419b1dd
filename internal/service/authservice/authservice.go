package authservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	FindByPhone(ctx context.Context, phoneNumber string) (*domain.User, error)
	FindByInviteCode(ctx context.Context, inviteCode string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int, name, bank, iban *string) error
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
}

var (
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates an inactive level-0 user with a fresh invite code. An
// unknown inviter code is ignored rather than rejected, so stale invite
// links still allow signup.
func (s *Service) Register(ctx context.Context, phoneNumber, password, invitedByCode string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByPhone(ctx, phoneNumber)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("phone already registered", zap.String("phone", phoneNumber))
		return nil, ErrPhoneTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	inviteCode, err := newInviteCode()
	if err != nil {
		return nil, err
	}

	var invitedBy *int
	if invitedByCode != "" {
		inviter, err := s.userRepo.FindByInviteCode(ctx, invitedByCode)
		if err != nil {
			return nil, err
		}
		if inviter != nil {
			invitedBy = &inviter.ID
		}
	}

	user := &domain.User{
		PhoneNumber:  phoneNumber,
		PasswordHash: hashedPassword,
		InviteCode:   inviteCode,
		InvitedBy:    invitedBy,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("phone", phoneNumber))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, phoneNumber, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByPhone(ctx, phoneNumber)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("phone", phoneNumber))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("phone", phoneNumber))
	return user, nil
}

func (s *Service) GenerateToken(userID int, isAdmin bool) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, isAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, name, bank, iban *string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.UpdateProfile(ctx, userID, name, bank, iban)
}

func (s *Service) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, oldPassword); !ok {
		return ErrInvalidCredentials
	}

	hashedPassword, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, userID, hashedPassword)
}

func newInviteCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		zap.L().Error("can't generate invite code", zap.Error(err))
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
