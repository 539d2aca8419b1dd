package userrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/internal/pg"
	"go.uber.org/zap"
)

const userColumns = `id, phone_number, password_hash, name, bank, iban, level, is_active, is_admin,
	invite_code, invited_by, invite_bonus_granted, accumulated_balance, daily_task_earning,
	total_invite_earning, total_withdrawn, last_task_date, last_withdrawal_date, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.PhoneNumber, &user.PasswordHash, &user.Name, &user.Bank, &user.IBAN,
		&user.Level, &user.IsActive, &user.IsAdmin, &user.InviteCode, &user.InvitedBy,
		&user.InviteBonusGranted, &user.AccumulatedBalance, &user.DailyTaskEarning,
		&user.TotalInviteEarning, &user.TotalWithdrawn, &user.LastTaskDate,
		&user.LastWithdrawalDate, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.findOne(ctx, query, userID)
}

// GetForUpdate locks the user row for the remainder of the surrounding
// transaction. Callers must run it through pg.TXManager.
func (r *Repository) GetForUpdate(ctx context.Context, userID int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	return r.findOne(ctx, query, userID)
}

func (r *Repository) FindByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone_number = $1`
	return r.findOne(ctx, query, phoneNumber)
}

func (r *Repository) FindByInviteCode(ctx context.Context, inviteCode string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE invite_code = $1`
	return r.findOne(ctx, query, inviteCode)
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (phone_number, password_hash, invite_code, invited_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, user.PhoneNumber, user.PasswordHash, user.InviteCode, user.InvitedBy).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, userID int, name, bank, iban *string) error {
	query := `
		UPDATE users
		SET name = $1, bank = $2, iban = $3
		WHERE id = $4
	`
	if _, err := r.db.Exec(ctx, query, name, bank, iban, userID); err != nil {
		zap.L().Error("can't update profile", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, passwordHash, userID); err != nil {
		zap.L().Error("can't update password", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AssignLevel(ctx context.Context, userID, level int, isActive bool, isAdmin *bool) error {
	query := `
		UPDATE users
		SET level = $1, is_active = $2, is_admin = COALESCE($3, is_admin)
		WHERE id = $4
	`
	if _, err := r.db.Exec(ctx, query, level, isActive, isAdmin, userID); err != nil {
		zap.L().Error("can't assign level", zap.Error(err))
		return err
	}
	return nil
}

// AddToBalance applies a credit and returns the resulting balance, or nil
// when the user does not exist.
func (r *Repository) AddToBalance(ctx context.Context, userID int, amount float64) (*float64, error) {
	query := `
		UPDATE users
		SET accumulated_balance = accumulated_balance + $1
		WHERE id = $2
		RETURNING accumulated_balance
	`
	var balance float64
	err := r.db.QueryRow(ctx, query, amount, userID).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't credit user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// DeductFromBalance applies a debit guarded by the balance check in the same
// statement. A nil result means the balance was insufficient (or the user is
// gone) at the instant of application.
func (r *Repository) DeductFromBalance(ctx context.Context, userID int, amount float64) (*float64, error) {
	query := `
		UPDATE users
		SET accumulated_balance = accumulated_balance - $1
		WHERE id = $2 AND accumulated_balance >= $1
		RETURNING accumulated_balance
	`
	var balance float64
	err := r.db.QueryRow(ctx, query, amount, userID).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't debit user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) AddTaskEarning(ctx context.Context, userID int, payout float64, day time.Time) error {
	query := `
		UPDATE users
		SET daily_task_earning = daily_task_earning + $1, last_task_date = $2
		WHERE id = $3
	`
	if _, err := r.db.Exec(ctx, query, payout, day, userID); err != nil {
		zap.L().Error("can't record task earning", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddInviteEarning(ctx context.Context, userID int, bonus float64) error {
	query := `
		UPDATE users
		SET total_invite_earning = total_invite_earning + $1
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, bonus, userID); err != nil {
		zap.L().Error("can't record invite earning", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddWithdrawn(ctx context.Context, userID int, amount float64) error {
	query := `
		UPDATE users
		SET total_withdrawn = total_withdrawn + $1
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, amount, userID); err != nil {
		zap.L().Error("can't record withdrawn total", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetInviteBonusGranted(ctx context.Context, userID int) error {
	query := `UPDATE users SET invite_bonus_granted = TRUE WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("can't set invite bonus latch", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetLastWithdrawalDate(ctx context.Context, userID int, day time.Time) error {
	query := `UPDATE users SET last_withdrawal_date = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, day, userID); err != nil {
		zap.L().Error("can't set withdrawal date", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}
