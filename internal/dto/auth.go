package dto

type RegisterRequestDTO struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=9,max=15"`
	Password    string `json:"password" validate:"required,min=8"`
	InvitedBy   string `json:"invited_by,omitempty" example:"a1b2c3d4e5f60718"`
}

type RegisterResponseDTO struct {
	Message    string `json:"message"`
	InviteCode string `json:"invite_code" example:"a1b2c3d4e5f60718"`
}

type LoginRequestDTO struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=9,max=15"`
	Password    string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type ProfileResponseDTO struct {
	ID                 int     `json:"id" example:"1"`
	PhoneNumber        string  `json:"phone_number" example:"923000111"`
	Name               *string `json:"name,omitempty" example:"Maria"`
	Level              int     `json:"level" example:"2"`
	IsActive           bool    `json:"is_active" example:"true"`
	InviteCode         string  `json:"invite_code" example:"a1b2c3d4e5f60718"`
	AccumulatedBalance float64 `json:"accumulated_balance" example:"1500.5"`
	DailyTaskEarning   float64 `json:"daily_task_earning" example:"600"`
	TotalInviteEarning float64 `json:"total_invite_earning" example:"2000"`
	TotalWithdrawn     float64 `json:"total_withdrawn" example:"3000"`
	BankName           *string `json:"bank_name,omitempty" example:"BAI"`
	IBAN               *string `json:"iban,omitempty" example:"AO06004400006729503010102"`
}

type UpdateProfileRequestDTO struct {
	Name     *string `json:"name,omitempty" example:"Maria"`
	BankName *string `json:"bank_name,omitempty" example:"BAI"`
	IBAN     *string `json:"iban,omitempty" example:"AO06004400006729503010102"`
}

type ChangePasswordRequestDTO struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
