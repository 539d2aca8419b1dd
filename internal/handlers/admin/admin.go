package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/internal/dto"
	adminservice "github.com/GlebRadaev/earnledger/internal/service/adminservice"
	"github.com/GlebRadaev/earnledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/earnledger/internal/service/referralservice"
	"github.com/GlebRadaev/earnledger/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	ApproveDeposit(ctx context.Context, requestID int) error
	RejectDeposit(ctx context.Context, requestID int, reason string) error
	ApproveWithdrawal(ctx context.Context, requestID int) error
	RejectWithdrawal(ctx context.Context, requestID int, reason string) error
	ListPendingDeposits(ctx context.Context) ([]domain.Request, error)
	ListPendingWithdrawals(ctx context.Context) ([]domain.Request, error)
	ListWithdrawals(ctx context.Context, userID *int) ([]domain.Withdrawal, error)
	AssignLevel(ctx context.Context, userID, level int, isAdmin *bool) error
	RecordInvestment(ctx context.Context, userID int) (*referralservice.Result, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func requestID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// ApproveDeposit godoc
//
//	@Summary		Approve a pending deposit
//	@Description	Mark the deposit approved and fire the depositor's referral qualifying event
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Request ID"
//	@Success		200	{object}	utils.Response	"Deposit approved"
//	@Failure		400	{object}	utils.Response	"Invalid request id"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request already processed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/deposits/{id}/approve [post]
func (h *AdminHandler) ApproveDeposit(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	if err := h.adminService.ApproveDeposit(r.Context(), id); err != nil {
		h.respondDecisionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Deposit approved"})
}

// RejectDeposit godoc
//
//	@Summary		Reject a pending deposit
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Request ID"
//	@Param			request	body		dto.RejectRequestDTO	false	"Rejection reason"
//	@Success		200		{object}	utils.Response			"Deposit rejected"
//	@Failure		400		{object}	utils.Response			"Invalid request id"
//	@Failure		404		{object}	utils.Response			"Request not found"
//	@Failure		409		{object}	utils.Response			"Request already processed"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/deposits/{id}/reject [post]
func (h *AdminHandler) RejectDeposit(w http.ResponseWriter, r *http.Request) {
	h.reject(w, r, h.adminService.RejectDeposit, "Deposit rejected")
}

// ApproveWithdrawal godoc
//
//	@Summary		Approve a pending withdrawal
//	@Description	Debit the balance and append the history entry; auto-rejects when the balance no longer covers the amount
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Request ID"
//	@Success		200	{object}	utils.Response	"Withdrawal approved"
//	@Failure		400	{object}	utils.Response	"Invalid request id"
//	@Failure		402	{object}	utils.Response	"Insufficient balance, request auto-rejected"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request already processed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/approve [post]
func (h *AdminHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	if err := h.adminService.ApproveWithdrawal(r.Context(), id); err != nil {
		if errors.Is(err, ledgerservice.ErrInsufficientBalance) {
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient balance, request auto-rejected")
			return
		}
		h.respondDecisionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Withdrawal approved"})
}

// RejectWithdrawal godoc
//
//	@Summary		Reject a pending withdrawal
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Request ID"
//	@Param			request	body		dto.RejectRequestDTO	false	"Rejection reason"
//	@Success		200		{object}	utils.Response			"Withdrawal rejected"
//	@Failure		400		{object}	utils.Response			"Invalid request id"
//	@Failure		404		{object}	utils.Response			"Request not found"
//	@Failure		409		{object}	utils.Response			"Request already processed"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/reject [post]
func (h *AdminHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.reject(w, r, h.adminService.RejectWithdrawal, "Withdrawal rejected")
}

func (h *AdminHandler) reject(w http.ResponseWriter, r *http.Request, fn func(context.Context, int, string) error, message string) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var req dto.RejectRequestDTO
	if r.Body != nil {
		// body is optional, a missing reason is fine
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if err := fn(r.Context(), id, req.Reason); err != nil {
		h.respondDecisionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

func (h *AdminHandler) respondDecisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, adminservice.ErrRequestNotFound), errors.Is(err, adminservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, adminservice.ErrAlreadyProcessed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListPendingDeposits godoc
//
//	@Summary		List pending deposits
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PendingRequestResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/deposits/pending [get]
func (h *AdminHandler) ListPendingDeposits(w http.ResponseWriter, r *http.Request) {
	h.listPending(w, r, h.adminService.ListPendingDeposits)
}

// ListPendingWithdrawals godoc
//
//	@Summary		List pending withdrawals
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PendingRequestResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/pending [get]
func (h *AdminHandler) ListPendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	h.listPending(w, r, h.adminService.ListPendingWithdrawals)
}

func (h *AdminHandler) listPending(w http.ResponseWriter, r *http.Request, fn func(context.Context) ([]domain.Request, error)) {
	pending, err := fn(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PendingRequestResponseDTO, len(pending))
	for i, req := range pending {
		response[i] = dto.PendingRequestResponseDTO{
			ID:          req.ID,
			UserID:      req.UserID,
			Kind:        req.Kind,
			Amount:      req.Amount,
			Evidence:    req.Evidence,
			BankName:    req.BankName,
			IBAN:        req.IBAN,
			SubmittedAt: req.SubmittedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListWithdrawals godoc
//
//	@Summary		List processed withdrawals
//	@Description	Full withdrawal history, optionally filtered by user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	query		int	false	"Filter by user ID"
//	@Success		200		{array}		dto.GetWithdrawalsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user_id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	var userID *int
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid user_id")
			return
		}
		userID = &id
	}

	withdrawals, err := h.adminService.ListWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.GetWithdrawalsResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = dto.GetWithdrawalsResponseDTO{
			ID:          wd.ID,
			Amount:      wd.Amount,
			BankName:    wd.BankName,
			IBAN:        wd.IBAN,
			ProcessedAt: wd.ProcessedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AssignLevel godoc
//
//	@Summary		Assign an earning level
//	@Description	Set the payout tier for a user; a positive level activates the account, zero deactivates it
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.AssignLevelRequestDTO	true	"Level to assign"
//	@Success		200		{object}	utils.Response	"Level assigned"
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		422		{object}	utils.Response	"Negative level"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/level [post]
func (h *AdminHandler) AssignLevel(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.AssignLevelRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.adminService.AssignLevel(r.Context(), id, req.Level, req.IsAdmin)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrInvalidLevel):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, adminservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Level assigned"})
}

// RecordInvestment godoc
//
//	@Summary		Record a confirmed investment
//	@Description	Fire the referral qualifying event for a user whose investment was confirmed outside the deposit flow
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	dto.RecordInvestmentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		409	{object}	utils.Response	"Invite bonus already granted"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/record-investment [post]
func (h *AdminHandler) RecordInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	result, err := h.adminService.RecordInvestment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, referralservice.ErrBonusAlreadyGranted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RecordInvestmentResponseDTO{
		BonusPaid: result.BonusPaid,
		InviterID: result.InviterID,
	})
}

// ListUsers godoc
//
//	@Summary		List registered users
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UserResponseDTO, len(users))
	for i, user := range users {
		response[i] = dto.UserResponseDTO{
			ID:                 user.ID,
			PhoneNumber:        user.PhoneNumber,
			Name:               user.Name,
			Level:              user.Level,
			IsActive:           user.IsActive,
			IsAdmin:            user.IsAdmin,
			InvitedBy:          user.InvitedBy,
			AccumulatedBalance: user.AccumulatedBalance,
			TotalWithdrawn:     user.TotalWithdrawn,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
