package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/response_models"
	"github.com/GAJULASAINATH/MacroVerse/internal/repositories"
	"github.com/GAJULASAINATH/MacroVerse/pkg/ai"
	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

type AnalysisServiceInterface interface {
	// AnalyzeFood runs the photo through the model, folds the estimated
	// macros into today's log bucket and returns the full estimate.
	AnalyzeFood(ctx context.Context, userID string, image []byte, mimeType string) (*response_models.NutrientEstimate, error)
}

type AnalysisService struct {
	aiClient    ai.Client
	userRepo    repositories.UserRepository
	foodLogRepo repositories.FoodLogRepository
	now         func() time.Time
}

func NewAnalysisService(aiClient ai.Client, userRepo repositories.UserRepository, foodLogRepo repositories.FoodLogRepository) AnalysisServiceInterface {
	return &AnalysisService{
		aiClient:    aiClient,
		userRepo:    userRepo,
		foodLogRepo: foodLogRepo,
		now:         time.Now,
	}
}

func (s *AnalysisService) AnalyzeFood(ctx context.Context, userID string, image []byte, mimeType string) (*response_models.NutrientEstimate, error) {
	if len(image) == 0 {
		return nil, utils.ErrNoImage
	}

	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	estimate, err := s.aiClient.AnalyzeFoodImage(ctx, image, mimeType)
	if err != nil {
		if errors.Is(err, utils.ErrMalformedModelOutput) || errors.Is(err, utils.ErrModelCallFailed) {
			return nil, err
		}
		return nil, utils.ErrModelCallFailed
	}

	// The log always targets "now": the estimate carries no date of its own.
	if err := s.foodLogRepo.RecordDailyNutrients(ctx, userID, s.now(), estimate.Macros); err != nil {
		log.Printf("Failed to record daily nutrients for user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}

	return estimate, nil
}
