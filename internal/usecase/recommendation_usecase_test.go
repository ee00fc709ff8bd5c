package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"catrental/internal/domain/entities"
	mock_interfaces "catrental/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRecommendationUseCase_Customer(t *testing.T) {
	s := newMemStore()
	s.users["cust-1"] = entities.User{ID: "cust-1", HealthScore: intPtr(500)}
	s.machines["m-1"] = occupiedMachine("m-1", "cust-1", 19, 1)
	health := newMemHealthUseCase(s, 0)

	t.Run("rules when no generator", func(t *testing.T) {
		uc := NewRecommendationUseCase(health, s.machineRepo(), nil)
		res, err := uc.ForCaller(context.Background(), customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Source != RecommendationSourceRules || len(res.Recommendations) != 3 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("generator text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockITextGenerator(ctrl)
		uc := NewRecommendationUseCase(health, s.machineRepo(), gen)

		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			if !strings.Contains(prompt, `"health_score":500`) {
				t.Fatalf("prompt missing score: %s", prompt)
			}
			return "- Spread work across more machines\n\n* Schedule idle breaks\n", nil
		})

		res, err := uc.ForCaller(context.Background(), customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Source != RecommendationSourceLLM || len(res.Recommendations) != 2 || res.Recommendations[1] != "Schedule idle breaks" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("generator failure falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gen := mock_interfaces.NewMockITextGenerator(ctrl)
		uc := NewRecommendationUseCase(health, s.machineRepo(), gen)

		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("quota"))

		res, err := uc.ForCaller(context.Background(), customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Source != RecommendationSourceRules {
			t.Fatalf("expected rules fallback, got %+v", res)
		}
	})
}

func TestRecommendationUseCase_Admin(t *testing.T) {
	s := newMemStore()
	s.machines["m-1"] = readyMachine("m-1", "Excavator", nil)
	maint := readyMachine("m-2", "Dozer", nil)
	maint.Status = entities.MachineStatusMaintenance
	s.machines["m-2"] = maint
	uc := NewRecommendationUseCase(newMemHealthUseCase(s, 0), s.machineRepo(), nil)

	res, err := uc.ForCaller(context.Background(), admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Audience != entities.RoleAdmin || res.Source != RecommendationSourceRules {
		t.Fatalf("unexpected result: %+v", res)
	}
	want := []string{
		"1 machine(s) ready for allocation",
		"1 machine(s) in maintenance: schedule servicing to return them to the pool",
	}
	if len(res.Recommendations) != len(want) {
		t.Fatalf("expected %v, got %v", want, res.Recommendations)
	}
	for i := range want {
		if res.Recommendations[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, res.Recommendations)
		}
	}
}

func TestRecommendationUseCase_AnonymousForbidden(t *testing.T) {
	uc := NewRecommendationUseCase(nil, nil, nil)
	if _, err := uc.ForCaller(context.Background(), entities.Caller{}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
