package requestrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/internal/pg"
	"go.uber.org/zap"
)

const requestColumns = `id, user_id, kind, amount, status, evidence, bank_name, iban, card_number,
	reject_reason, submitted_at, processed_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanRequest(row pgx.Row) (*domain.Request, error) {
	var req domain.Request
	err := row.Scan(
		&req.ID, &req.UserID, &req.Kind, &req.Amount, &req.Status, &req.Evidence,
		&req.BankName, &req.IBAN, &req.CardNumber, &req.RejectReason,
		&req.SubmittedAt, &req.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	query := `
		INSERT INTO requests (user_id, kind, amount, status, evidence, bank_name, iban, card_number, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query,
			req.UserID, req.Kind, req.Amount, req.Status, req.Evidence,
			req.BankName, req.IBAN, req.CardNumber, req.SubmittedAt,
		).Scan(&req.ID)
	})
	if err != nil {
		zap.L().Error("can't save request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) FindByID(ctx context.Context, requestID int) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	req, err := scanRequest(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// GetForUpdate locks the request row for the remainder of the surrounding
// transaction, serializing concurrent approval attempts.
func (r *Repository) GetForUpdate(ctx context.Context, requestID int) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1 FOR UPDATE`
	req, err := scanRequest(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// MarkProcessed moves a pending request to a terminal status. The status
// guard in the statement makes the transition a compare-and-set: a request
// already processed is left untouched and false is returned.
func (r *Repository) MarkProcessed(ctx context.Context, requestID int, status string, rejectReason *string, processedAt time.Time) (bool, error) {
	query := `
		UPDATE requests
		SET status = $1, reject_reason = $2, processed_at = $3
		WHERE id = $4 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, status, rejectReason, processedAt, requestID)
	if err != nil {
		zap.L().Error("can't update request status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindPendingByKind(ctx context.Context, kind string) ([]domain.Request, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE status = 'pending' AND kind = $1
		ORDER BY submitted_at ASC
	`
	rows, err := r.db.Query(ctx, query, kind)
	if err != nil {
		zap.L().Error("can't fetch pending requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, nil
}
