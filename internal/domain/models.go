package domain

import "time"

type User struct {
	ID                 int        `db:"id"`
	PhoneNumber        string     `db:"phone_number"`
	PasswordHash       string     `db:"password_hash"`
	Name               *string    `db:"name"`
	Bank               *string    `db:"bank"`
	IBAN               *string    `db:"iban"`
	Level              int        `db:"level"`
	IsActive           bool       `db:"is_active"`
	IsAdmin            bool       `db:"is_admin"`
	InviteCode         string     `db:"invite_code"`
	InvitedBy          *int       `db:"invited_by"`
	InviteBonusGranted bool       `db:"invite_bonus_granted"`
	AccumulatedBalance float64    `db:"accumulated_balance"`
	DailyTaskEarning   float64    `db:"daily_task_earning"`
	TotalInviteEarning float64    `db:"total_invite_earning"`
	TotalWithdrawn     float64    `db:"total_withdrawn"`
	LastTaskDate       *time.Time `db:"last_task_date"`
	LastWithdrawalDate *time.Time `db:"last_withdrawal_date"`
	CreatedAt          time.Time  `db:"created_at"`
}

const (
	RequestKindDeposit    = "deposit"
	RequestKindWithdrawal = "withdrawal"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// Request is a deposit or withdrawal awaiting an admin decision.
// Status is written only by the approval gateway and is terminal once
// it leaves pending.
type Request struct {
	ID           int        `db:"id"`
	UserID       int        `db:"user_id"`
	Kind         string     `db:"kind"`
	Amount       float64    `db:"amount"`
	Status       string     `db:"status"`
	Evidence     *string    `db:"evidence"`
	BankName     *string    `db:"bank_name"`
	IBAN         *string    `db:"iban"`
	CardNumber   *string    `db:"card_number"`
	RejectReason *string    `db:"reject_reason"`
	SubmittedAt  time.Time  `db:"submitted_at"`
	ProcessedAt  *time.Time `db:"processed_at"`
}

// Withdrawal is the append-only history entry written once per approved
// withdrawal.
type Withdrawal struct {
	ID          int       `db:"id"`
	RequestID   int       `db:"request_id"`
	UserID      int       `db:"user_id"`
	Amount      float64   `db:"amount"`
	BankName    string    `db:"bank_name"`
	IBAN        string    `db:"iban"`
	ProcessedAt time.Time `db:"processed_at"`
}

// BankDetails travels with a withdrawal request; CardNumber is optional.
type BankDetails struct {
	BankName   string
	IBAN       string
	CardNumber string
}
