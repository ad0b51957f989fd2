package report_fx

import (
	"os"

	"go.uber.org/fx"

	"github.com/GAJULASAINATH/MacroVerse/internal/api/controllers"
	"github.com/GAJULASAINATH/MacroVerse/internal/report"
	"github.com/GAJULASAINATH/MacroVerse/internal/repositories"
	"github.com/GAJULASAINATH/MacroVerse/internal/services"
	"github.com/GAJULASAINATH/MacroVerse/pkg/ai"
)

var Module = fx.Provide(
	provideRenderer,
	provideReportService,
	provideReportController)

func provideRenderer() report.Renderer {
	texBinDir := os.Getenv("TEX_BIN_DIR")
	if texBinDir == "" {
		texBinDir = "/Library/TeX/texbin"
	}
	return report.NewLatexRenderer(texBinDir)
}

func provideReportService(
	userRepo repositories.UserRepository,
	foodLogRepo repositories.FoodLogRepository,
	aiClient ai.Client,
	renderer report.Renderer,
) services.ReportServiceInterface {
	return services.NewReportService(userRepo, foodLogRepo, aiClient, renderer)
}

func provideReportController(reportService services.ReportServiceInterface) *controllers.ReportController {
	return controllers.NewReportController(reportService)
}
