package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/earnledger/internal/domain"
	"github.com/GlebRadaev/earnledger/internal/dto"
	"github.com/GlebRadaev/earnledger/internal/service/ledgerservice"
	requestservice "github.com/GlebRadaev/earnledger/internal/service/requestservice"
	pkgauth "github.com/GlebRadaev/earnledger/pkg/auth"
	"github.com/GlebRadaev/earnledger/pkg/utils"
	"github.com/GlebRadaev/earnledger/pkg/validate"
)

type Service interface {
	RequestDeposit(ctx context.Context, userID int, amount float64, evidence string) (*domain.Request, error)
	RequestWithdrawal(ctx context.Context, userID int, amount float64, bank domain.BankDetails) (*domain.Request, error)
	GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error)
}

type RequestHandler struct {
	requestService Service
}

func New(requestService Service) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// RequestDeposit godoc
//
//	@Summary		Submit a deposit request
//	@Description	Record a deposit with its transfer evidence; the amount stays pending until an admin approves it
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit amount and evidence"
//	@Success		202		{object}	dto.RequestResponseDTO	"Request accepted for review"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		422		{object}	utils.Response			"Non-positive amount"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/deposits [post]
func (h *RequestHandler) RequestDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.requestService.RequestDeposit(r.Context(), userID, req.Amount, req.Evidence)
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.RequestResponseDTO{
		ID:          created.ID,
		Kind:        created.Kind,
		Amount:      created.Amount,
		Status:      created.Status,
		SubmittedAt: created.SubmittedAt,
	})
}

// RequestWithdrawal godoc
//
//	@Summary		Submit a withdrawal request
//	@Description	Ask to withdraw from the accumulated balance; one request per day, held pending until an admin decides
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal amount and bank details"
//	@Success		202		{object}	dto.RequestResponseDTO		"Request accepted for review"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		403		{object}	utils.Response				"Account not active"
//	@Failure		409		{object}	utils.Response				"Already requested today"
//	@Failure		422		{object}	utils.Response				"Below minimum or invalid card number"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/withdrawals [post]
func (h *RequestHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.CardNumber != "" && !validate.IsCardNumber(req.CardNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}

	created, err := h.requestService.RequestWithdrawal(r.Context(), userID, req.Amount, domain.BankDetails{
		BankName:   req.BankName,
		IBAN:       req.IBAN,
		CardNumber: req.CardNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrBelowMinWithdrawal):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, requestservice.ErrAccountInactive):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, requestservice.ErrAlreadyRequestedToday):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.RequestResponseDTO{
		ID:          created.ID,
		Kind:        created.Kind,
		Amount:      created.Amount,
		Status:      created.Status,
		SubmittedAt: created.SubmittedAt,
	})
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Get the processed withdrawals of the authenticated user, newest first
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetWithdrawalsResponseDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response					"Withdrawals not found"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *RequestHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	withdrawals, err := h.requestService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
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
