package handlers

import (
	"net/http"

	response "catrental/internal/adapter/http/dto/response"
	"catrental/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	usecase usecase.IRecommendationUseCase
}

func NewRecommendationHandler(uc usecase.IRecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{usecase: uc}
}

// Get godoc
// @Summary      Recommendations for the caller
// @Description  Customers get advice on their health score, admins on their fleet. source is "llm" or "rules".
// @Tags         recommendations
// @Produce      json
// @Security     Bearer
// @Success      200 {object} response.RecommendationResponse
// @Router       /recommendations [get]
func (h *RecommendationHandler) Get(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	result, err := h.usecase.ForCaller(c.Request.Context(), caller)
	if err != nil {
		respondError(c, mapHealthScoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.RecommendationResponse{
		Audience:        string(result.Audience),
		Source:          result.Source,
		Recommendations: result.Recommendations,
	})
}
