package dto

import "time"

type DepositRequestDTO struct {
	Amount   float64 `json:"amount" example:"5000"`
	Evidence string  `json:"evidence" example:"transfer-receipt-0457.jpg"`
}

type WithdrawalRequestDTO struct {
	Amount     float64 `json:"amount" example:"1500"`
	BankName   string  `json:"bank_name" example:"BAI"`
	IBAN       string  `json:"iban" example:"AO06004400006729503010102"`
	CardNumber string  `json:"card_number,omitempty" example:"2377225624"`
}

type RequestResponseDTO struct {
	ID          int       `json:"id" example:"7"`
	Kind        string    `json:"kind" example:"deposit"`
	Amount      float64   `json:"amount" example:"5000"`
	Status      string    `json:"status" example:"pending"`
	SubmittedAt time.Time `json:"submitted_at" example:"2024-12-09T16:09:57+03:00"`
}

type GetWithdrawalsResponseDTO struct {
	ID          int       `json:"id" example:"3"`
	Amount      float64   `json:"amount" example:"1500"`
	BankName    string    `json:"bank_name" example:"BAI"`
	IBAN        string    `json:"iban" example:"AO06004400006729503010102"`
	ProcessedAt time.Time `json:"processed_at" example:"2024-12-09T16:09:57+03:00"`
}
