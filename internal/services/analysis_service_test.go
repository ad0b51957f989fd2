package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/db_models"
	"github.com/GAJULASAINATH/MacroVerse/internal/models/response_models"
	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

func analysisFixtures() (*fakeUserRepo, *fakeFoodLogRepo, *fakeAIClient, *AnalysisService) {
	users := &fakeUserRepo{users: map[string]*db_models.User{
		"u1": {Email: "a@b.c"},
	}}
	logs := &fakeFoodLogRepo{}
	aiClient := &fakeAIClient{estimate: &response_models.NutrientEstimate{
		Macros: response_models.Macros{Calories: 500, Protein: 20, Carbs: 60, Fats: 15},
		Micros: response_models.Micros{VitaminA: "300mcg", VitaminC: "10mg", Iron: "2mg", Calcium: "100mg"},
	}}

	svc := NewAnalysisService(aiClient, users, logs).(*AnalysisService)
	svc.now = func() time.Time {
		return time.Date(2025, time.September, 26, 13, 0, 0, 0, time.UTC)
	}
	return users, logs, aiClient, svc
}

func TestAnalyzeFood(t *testing.T) {
	_, logs, _, svc := analysisFixtures()

	estimate, err := svc.AnalyzeFood(context.Background(), "u1", []byte("jpegdata"), "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if estimate.Macros.Calories != 500 {
		t.Errorf("estimate = %+v", estimate)
	}

	if len(logs.recorded) != 1 {
		t.Fatalf("recorded %d times, want 1", len(logs.recorded))
	}
	if logs.recorded[0].Calories != 500 {
		t.Errorf("recorded macros = %+v", logs.recorded[0])
	}
	if logs.dates[0] != "2025-09-26" {
		t.Errorf("log landed on %s, want the server's current day", logs.dates[0])
	}
}

func TestAnalyzeFoodNoImage(t *testing.T) {
	_, logs, aiClient, svc := analysisFixtures()

	if _, err := svc.AnalyzeFood(context.Background(), "u1", nil, ""); !errors.Is(err, utils.ErrNoImage) {
		t.Errorf("err = %v, want ErrNoImage", err)
	}
	if aiClient.visionCalls != 0 || len(logs.recorded) != 0 {
		t.Error("nothing should run without an image")
	}
}

func TestAnalyzeFoodUserNotFound(t *testing.T) {
	_, logs, aiClient, svc := analysisFixtures()

	if _, err := svc.AnalyzeFood(context.Background(), "ghost", []byte("x"), "image/png"); !errors.Is(err, utils.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
	if aiClient.visionCalls != 0 || len(logs.recorded) != 0 {
		t.Error("unknown user must not reach the model or the store")
	}
}

func TestAnalyzeFoodMalformedModelOutput(t *testing.T) {
	_, logs, aiClient, svc := analysisFixtures()
	aiClient.estimate = nil
	aiClient.estimateErr = utils.ErrMalformedModelOutput

	if _, err := svc.AnalyzeFood(context.Background(), "u1", []byte("x"), "image/png"); !errors.Is(err, utils.ErrMalformedModelOutput) {
		t.Errorf("err = %v, want ErrMalformedModelOutput", err)
	}
	if len(logs.recorded) != 0 {
		t.Error("failed analysis must not mutate the log")
	}
}
