package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/earnledger/internal/domain"
)

var withdrawalCols = []string{"id", "request_id", "user_id", "amount", "bank_name", "iban", "processed_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateWithdrawal(t *testing.T) {
	repo, mock := NewMock(t)
	processedAt := time.Now()
	query := `
		INSERT INTO withdrawals (request_id, user_id, amount, bank_name, iban, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	tests := []struct {
		name       string
		withdrawal *domain.Withdrawal
		mockSetup  func()
		expectErr  bool
	}{
		{
			name: "Successfully creates withdrawal",
			withdrawal: &domain.Withdrawal{
				RequestID:   7,
				UserID:      1,
				Amount:      1500.0,
				BankName:    "BAI",
				IBAN:        "AO06004400006729503010102",
				ProcessedAt: processedAt,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(7, 1, 1500.0, "BAI", "AO06004400006729503010102", processedAt).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			withdrawal: &domain.Withdrawal{
				RequestID:   7,
				UserID:      1,
				Amount:      1500.0,
				BankName:    "BAI",
				IBAN:        "AO06004400006729503010102",
				ProcessedAt: processedAt,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(7, 1, 1500.0, "BAI", "AO06004400006729503010102", processedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateWithdrawal(context.Background(), tt.withdrawal)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, result.ID)
			}
		})
	}
}

func TestRepository_GetWithdrawalsByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	processedAt := time.Now()
	query := `
        SELECT id, request_id, user_id, amount, bank_name, iban, processed_at
        FROM withdrawals
        WHERE user_id = $1
        ORDER BY processed_at DESC
    `

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    []domain.Withdrawal
	}{
		{
			name:   "Returns user withdrawals",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(withdrawalCols).
					AddRow(3, 7, 1, 1500.0, "BAI", "AO06004400006729503010102", processedAt)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Withdrawal{
				{
					ID:          3,
					RequestID:   7,
					UserID:      1,
					Amount:      1500.0,
					BankName:    "BAI",
					IBAN:        "AO06004400006729503010102",
					ProcessedAt: processedAt,
				},
			},
		},
		{
			name:   "No withdrawals",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnRows(pgxmock.NewRows(withdrawalCols))
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetWithdrawalsByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetAllWithdrawals(t *testing.T) {
	repo, mock := NewMock(t)
	processedAt := time.Now()
	query := `
        SELECT id, request_id, user_id, amount, bank_name, iban, processed_at
        FROM withdrawals
        ORDER BY processed_at DESC
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns the full history",
			mockSetup: func() {
				rows := pgxmock.NewRows(withdrawalCols).
					AddRow(3, 7, 1, 1500.0, "BAI", "AO06004400006729503010102", processedAt).
					AddRow(2, 5, 2, 2000.0, "BFA", "AO06000600000100037131174", processedAt)
				mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)
			},
			expectErr: false,
			count:     2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetAllWithdrawals(context.Background())

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
