package tasks

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/earnledger/internal/dto"
	taskservice "github.com/GlebRadaev/earnledger/internal/service/taskservice"
	pkgauth "github.com/GlebRadaev/earnledger/pkg/auth"
	"github.com/GlebRadaev/earnledger/pkg/utils"
)

type Service interface {
	PerformDailyTask(ctx context.Context, userID int) (*taskservice.Result, error)
}

type TaskHandler struct {
	taskService Service
}

func New(taskService Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// PerformDailyTask godoc
//
//	@Summary		Claim the daily task payout
//	@Description	Credit the level-based daily payout to the authenticated user, once per calendar day
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DailyTaskResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Account not active"
//	@Failure		409	{object}	utils.Response	"Already claimed today"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/daily-task [post]
func (h *TaskHandler) PerformDailyTask(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	result, err := h.taskService.PerformDailyTask(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, taskservice.ErrAccountInactive):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, taskservice.ErrAlreadyClaimedToday):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DailyTaskResponseDTO{
		Payout:  result.Payout,
		Balance: result.Balance,
	})
}
