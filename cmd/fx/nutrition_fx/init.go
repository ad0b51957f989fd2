package nutrition_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/GAJULASAINATH/MacroVerse/internal/api/controllers"
	"github.com/GAJULASAINATH/MacroVerse/internal/repositories"
	"github.com/GAJULASAINATH/MacroVerse/internal/services"
	"github.com/GAJULASAINATH/MacroVerse/pkg/ai"
)

var Module = fx.Provide(
	provideFoodLogRepo,
	provideAnalysisService,
	provideFoodController)

func provideFoodLogRepo(db *gorm.DB) repositories.FoodLogRepository {
	return repositories.NewFoodLogRepository(db)
}

func provideAnalysisService(
	aiClient ai.Client,
	userRepo repositories.UserRepository,
	foodLogRepo repositories.FoodLogRepository,
) services.AnalysisServiceInterface {
	return services.NewAnalysisService(aiClient, userRepo, foodLogRepo)
}

func provideFoodController(analysisService services.AnalysisServiceInterface) *controllers.FoodController {
	return controllers.NewFoodController(analysisService)
}
