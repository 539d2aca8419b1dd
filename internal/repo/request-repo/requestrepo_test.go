package requestrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/internal/pg"
)

var requestCols = []string{
	"id", "user_id", "kind", "amount", "status", "evidence", "bank_name", "iban", "card_number",
	"reject_reason", "submitted_at", "processed_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func sampleRequestRow(submittedAt time.Time) []any {
	evidence := "transfer-receipt-0457.jpg"
	return []any{
		7, 1, domain.RequestKindDeposit, 5000.0, domain.RequestStatusPending, &evidence,
		(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
		submittedAt, (*time.Time)(nil),
	}
}

func sampleRequest(submittedAt time.Time) *domain.Request {
	evidence := "transfer-receipt-0457.jpg"
	return &domain.Request{
		ID:          7,
		UserID:      1,
		Kind:        domain.RequestKindDeposit,
		Amount:      5000.0,
		Status:      domain.RequestStatusPending,
		Evidence:    &evidence,
		SubmittedAt: submittedAt,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	submittedAt := time.Now()
	evidence := "transfer-receipt-0457.jpg"
	query := `
		INSERT INTO requests (user_id, kind, amount, status, evidence, bank_name, iban, card_number, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	tests := []struct {
		name      string
		request   *domain.Request
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates request",
			request: &domain.Request{
				UserID:      1,
				Kind:        domain.RequestKindDeposit,
				Amount:      5000.0,
				Status:      domain.RequestStatusPending,
				Evidence:    &evidence,
				SubmittedAt: submittedAt,
			},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(query)).
						WithArgs(1, domain.RequestKindDeposit, 5000.0, domain.RequestStatusPending, &evidence,
							(*string)(nil), (*string)(nil), (*string)(nil), submittedAt).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Database error",
			request: &domain.Request{
				UserID:      1,
				Kind:        domain.RequestKindDeposit,
				Amount:      5000.0,
				Status:      domain.RequestStatusPending,
				Evidence:    &evidence,
				SubmittedAt: submittedAt,
			},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(query)).
						WithArgs(1, domain.RequestKindDeposit, 5000.0, domain.RequestStatusPending, &evidence,
							(*string)(nil), (*string)(nil), (*string)(nil), submittedAt).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.request)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, result.ID)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	submittedAt := time.Now()
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	tests := []struct {
		name      string
		requestID int
		mockSetup func()
		expectErr bool
		result    *domain.Request
	}{
		{
			name:      "Valid requestID returns request",
			requestID: 7,
			mockSetup: func() {
				rows := pgxmock.NewRows(requestCols).AddRow(sampleRequestRow(submittedAt)...)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    sampleRequest(submittedAt),
		},
		{
			name:      "Non-existing requestID returns nil",
			requestID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:      "Database error",
			requestID: 7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.requestID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	submittedAt := time.Now()
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1 FOR UPDATE`

	rows := pgxmock.NewRows(requestCols).AddRow(sampleRequestRow(submittedAt)...)
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(7).
		WillReturnRows(rows)

	result, err := repo.GetForUpdate(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, sampleRequest(submittedAt), result)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	result, err = repo.GetForUpdate(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestRepository_MarkProcessed(t *testing.T) {
	repo, mock, _ := NewMock(t)
	processedAt := time.Now()
	reason := "illegible receipt"
	query := `
		UPDATE requests
		SET status = $1, reject_reason = $2, processed_at = $3
		WHERE id = $4 AND status = 'pending'
	`

	tests := []struct {
		name         string
		status       string
		rejectReason *string
		mockSetup    func()
		expectErr    bool
		applied      bool
	}{
		{
			name:   "Approves a pending request",
			status: domain.RequestStatusApproved,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(domain.RequestStatusApproved, (*string)(nil), processedAt, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			applied:   true,
		},
		{
			name:         "Rejects a pending request with reason",
			status:       domain.RequestStatusRejected,
			rejectReason: &reason,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(domain.RequestStatusRejected, &reason, processedAt, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			applied:   true,
		},
		{
			name:   "Already processed request is left untouched",
			status: domain.RequestStatusApproved,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(domain.RequestStatusApproved, (*string)(nil), processedAt, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			applied:   false,
		},
		{
			name:   "Database error",
			status: domain.RequestStatusApproved,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(domain.RequestStatusApproved, (*string)(nil), processedAt, 7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			applied:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			applied, err := repo.MarkProcessed(context.Background(), 7, tt.status, tt.rejectReason, processedAt)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.applied, applied)
		})
	}
}

func TestRepository_FindPendingByKind(t *testing.T) {
	repo, mock, _ := NewMock(t)
	submittedAt := time.Now()
	query := `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE status = 'pending' AND kind = $1
		ORDER BY submitted_at ASC
	`

	tests := []struct {
		name      string
		kind      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns pending deposits",
			kind: domain.RequestKindDeposit,
			mockSetup: func() {
				rows := pgxmock.NewRows(requestCols).AddRow(sampleRequestRow(submittedAt)...)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(domain.RequestKindDeposit).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     1,
		},
		{
			name: "No pending requests",
			kind: domain.RequestKindWithdrawal,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(domain.RequestKindWithdrawal).
					WillReturnRows(pgxmock.NewRows(requestCols))
			},
			expectErr: false,
			count:     0,
		},
		{
			name: "Database error",
			kind: domain.RequestKindDeposit,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(domain.RequestKindDeposit).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPendingByKind(context.Background(), tt.kind)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}
