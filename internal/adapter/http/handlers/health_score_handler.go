package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	response "catrental/internal/adapter/http/dto/response"
	"catrental/internal/usecase"
	"catrental/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLimit = pkg.NewDomainErrorSimple("INVALID_REQUEST", "limit must be a positive integer", http.StatusBadRequest)

type HealthScoreHandler struct {
	usecase usecase.IHealthScoreUseCase
}

func NewHealthScoreHandler(uc usecase.IHealthScoreUseCase) *HealthScoreHandler {
	return &HealthScoreHandler{usecase: uc}
}

// Calculate godoc
// @Summary      Recalculate a customer's health score
// @Description  Applies one utilization band adjustment. Answers success=false when no occupied machine reported hours.
// @Tags         health-score
// @Produce      json
// @Security     Bearer
// @Param        user_id path string true "User ID"
// @Success      200 {object} response.HealthScoreCalculationResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /health-score/{user_id}/calculate [post]
func (h *HealthScoreHandler) Calculate(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	result, err := h.usecase.Calculate(c.Request.Context(), caller, c.Param("user_id"))
	if err != nil {
		respondError(c, mapHealthScoreError(err))
		return
	}
	if !result.Computed {
		c.JSON(http.StatusOK, response.HealthScoreCalculationResponse{Success: false, Message: result.Message})
		return
	}

	c.JSON(http.StatusOK, response.HealthScoreCalculationResponse{
		Success: true,
		Message: result.Message,
		Data: &response.HealthScoreChangeResult{
			UserID:             result.UserID,
			OldScore:           result.OldScore,
			NewScore:           result.NewScore,
			Delta:              result.Delta,
			Reason:             result.Reason,
			Category:           string(result.Category),
			AverageUtilization: result.AverageUtilization,
			AffectedMachines:   result.AffectedMachines,
			Recommendations:    result.Recommendations,
			UpdatedAt:          result.UpdatedAt,
		},
	})
}

// Summary godoc
// @Summary      Read a health score
// @Tags         health-score
// @Produce      json
// @Security     Bearer
// @Param        user_id path string true "User ID"
// @Success      200 {object} response.HealthScoreSummaryResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /health-score/{user_id} [get]
func (h *HealthScoreHandler) Summary(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	s, err := h.usecase.Summary(c.Request.Context(), caller, c.Param("user_id"))
	if err != nil {
		respondError(c, mapHealthScoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.HealthScoreSummaryResponse{
		UserID:             s.UserID,
		UserName:           s.UserName,
		HealthScore:        s.Score,
		Category:           string(s.Category),
		LastUpdated:        s.LastUpdated,
		AverageUtilization: s.AverageUtilization,
		ActiveMachines:     s.ActiveMachines,
		Recommendations:    s.Recommendations,
	})
}

// History godoc
// @Summary      List score changes, newest first
// @Tags         health-score
// @Produce      json
// @Security     Bearer
// @Param        user_id path string true "User ID"
// @Param        limit query int false "Max entries (default 10, max 100)"
// @Success      200 {array} response.HealthScoreLogResponse
// @Router       /health-score/{user_id}/logs [get]
func (h *HealthScoreHandler) History(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, errInvalidLimit)
			return
		}
		limit = n
	}

	logs, err := h.usecase.History(c.Request.Context(), caller, c.Param("user_id"), limit)
	if err != nil {
		respondError(c, mapHealthScoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHealthScoreLogs(logs))
}

func mapHealthScoreError(err error) *pkg.AppError {
	if appErr, ok := mapForbidden(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoOccupiedMachines):
		return pkg.NewDomainErrorSimple("NO_OCCUPIED_MACHINES", "No occupied machines found for this user", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHealthScoreChanged):
		return pkg.NewDomainErrorSimple("HEALTH_SCORE_CHANGED", "Health score was updated concurrently, retry the calculation", http.StatusConflict)
	default:
		return internalError(err)
	}
}
