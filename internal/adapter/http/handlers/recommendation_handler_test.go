package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"catrental/internal/adapter/http/handlers/mocks"
	"catrental/internal/domain/entities"
	"catrental/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRecommendationHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rules fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRecommendationUseCase(ctrl)
		h := NewRecommendationHandler(uc)

		uc.EXPECT().ForCaller(gomock.Any(), testCustomer).Return(usecase.RecommendationResult{
			Audience:        entities.RoleCustomer,
			Source:          usecase.RecommendationSourceRules,
			Recommendations: []string{"Keep machines busy"},
		}, nil)

		r := gin.New()
		r.Use(withCaller(testCustomer))
		r.GET("/v1/recommendations", h.Get)

		w := serve(r, http.MethodGet, "/v1/recommendations", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Audience        string   `json:"audience"`
			Source          string   `json:"source"`
			Recommendations []string `json:"recommendations"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Audience != "customer" || body.Source != "rules" || len(body.Recommendations) != 1 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRecommendationUseCase(ctrl)
		h := NewRecommendationHandler(uc)

		uc.EXPECT().ForCaller(gomock.Any(), testAdmin).Return(usecase.RecommendationResult{}, errors.New("scan failed"))

		r := gin.New()
		r.Use(withCaller(testAdmin))
		r.GET("/v1/recommendations", h.Get)

		w := serve(r, http.MethodGet, "/v1/recommendations", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if got := decodeError(t, w).Error.Code; got != "INTERNAL_ERROR" {
			t.Fatalf("expected INTERNAL_ERROR, got %s", got)
		}
	})
}
