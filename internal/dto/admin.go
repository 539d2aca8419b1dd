package dto

import "time"

type RejectRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"illegible receipt"`
}

type AssignLevelRequestDTO struct {
	Level   int   `json:"level" example:"2"`
	IsAdmin *bool `json:"is_admin,omitempty" example:"false"`
}

type PendingRequestResponseDTO struct {
	ID          int       `json:"id" example:"7"`
	UserID      int       `json:"user_id" example:"1"`
	Kind        string    `json:"kind" example:"withdrawal"`
	Amount      float64   `json:"amount" example:"1500"`
	Evidence    *string   `json:"evidence,omitempty" example:"transfer-receipt-0457.jpg"`
	BankName    *string   `json:"bank_name,omitempty" example:"BAI"`
	IBAN        *string   `json:"iban,omitempty" example:"AO06004400006729503010102"`
	SubmittedAt time.Time `json:"submitted_at" example:"2024-12-09T16:09:57+03:00"`
}

type RecordInvestmentResponseDTO struct {
	BonusPaid bool `json:"bonus_paid" example:"true"`
	InviterID int  `json:"inviter_id,omitempty" example:"2"`
}

type UserResponseDTO struct {
	ID                 int     `json:"id" example:"1"`
	PhoneNumber        string  `json:"phone_number" example:"923000111"`
	Name               *string `json:"name,omitempty" example:"Maria"`
	Level              int     `json:"level" example:"2"`
	IsActive           bool    `json:"is_active" example:"true"`
	IsAdmin            bool    `json:"is_admin" example:"false"`
	InvitedBy          *int    `json:"invited_by,omitempty" example:"2"`
	AccumulatedBalance float64 `json:"accumulated_balance" example:"1500.5"`
	TotalWithdrawn     float64 `json:"total_withdrawn" example:"3000"`
}
