package withdrawalrepo

import (
	"context"

	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateWithdrawal appends one history entry. Rows in this table are never
// updated or deleted.
func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (request_id, user_id, amount, bank_name, iban, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		withdrawal.RequestID, withdrawal.UserID, withdrawal.Amount,
		withdrawal.BankName, withdrawal.IBAN, withdrawal.ProcessedAt,
	).Scan(&withdrawal.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, request_id, user_id, amount, bank_name, iban, processed_at
        FROM withdrawals
        WHERE user_id = $1
        ORDER BY processed_at DESC
    `
	return r.fetch(ctx, query, userID)
}

func (r *Repository) GetAllWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, request_id, user_id, amount, bank_name, iban, processed_at
        FROM withdrawals
        ORDER BY processed_at DESC
    `
	return r.fetch(ctx, query)
}

func (r *Repository) fetch(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(&wd.ID, &wd.RequestID, &wd.UserID, &wd.Amount, &wd.BankName, &wd.IBAN, &wd.ProcessedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}
