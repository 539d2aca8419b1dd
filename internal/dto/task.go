package dto

type DailyTaskResponseDTO struct {
	Payout  float64 `json:"payout" example:"100"`
	Balance float64 `json:"balance" example:"1600.5"`
}
