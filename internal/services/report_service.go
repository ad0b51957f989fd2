package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/db_models"
	"github.com/GAJULASAINATH/MacroVerse/internal/models/response_models"
	"github.com/GAJULASAINATH/MacroVerse/internal/report"
	"github.com/GAJULASAINATH/MacroVerse/internal/repositories"
	"github.com/GAJULASAINATH/MacroVerse/pkg/ai"
	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

// ReportResult is what GenerateMonthlyReport hands the controller: either a
// "no data" marker or a compiled PDF plus its cleanup.
type ReportResult struct {
	NoData   bool
	PDFPath  string
	Filename string

	// Cleanup removes the intermediate .tex/.pdf artifacts. It must run
	// after the response stream completes, on every exit path.
	Cleanup func()
}

type ReportServiceInterface interface {
	GenerateMonthlyReport(ctx context.Context, userID string, month int) (*ReportResult, error)
}

type ReportService struct {
	userRepo    repositories.UserRepository
	foodLogRepo repositories.FoodLogRepository
	aiClient    ai.Client
	renderer    report.Renderer
}

func NewReportService(
	userRepo repositories.UserRepository,
	foodLogRepo repositories.FoodLogRepository,
	aiClient ai.Client,
	renderer report.Renderer,
) ReportServiceInterface {
	return &ReportService{
		userRepo:    userRepo,
		foodLogRepo: foodLogRepo,
		aiClient:    aiClient,
		renderer:    renderer,
	}
}

func (s *ReportService) GenerateMonthlyReport(ctx context.Context, userID string, month int) (*ReportResult, error) {
	if month < 0 || month > 11 {
		return nil, utils.ErrInvalidMonth
	}

	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	monthLog, err := s.foodLogRepo.GetMonth(ctx, userID, month)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if monthLog == nil || len(monthLog.DailyEntries) == 0 {
		return &ReportResult{NoData: true}, nil
	}

	totals := aggregate(monthLog.DailyEntries)
	narrative := s.narrativeFor(ctx, totals)

	src := report.BuildDocument(month, narrative, totals, monthLog.DailyEntries)

	pdfPath, cleanup, err := s.renderer.Render(ctx, userID, month, src)
	if err != nil {
		return nil, err
	}

	return &ReportResult{
		PDFPath:  pdfPath,
		Filename: fmt.Sprintf("monthly_report_%s.pdf", time.Month(month+1).String()),
		Cleanup:  cleanup,
	}, nil
}

// narrativeFor asks the model for the report prose and falls back to a
// deterministic template on any failure. This is the one boundary where
// upstream errors are swallowed rather than surfaced.
func (s *ReportService) narrativeFor(ctx context.Context, totals response_models.MonthlyTotals) response_models.Narrative {
	narrative, err := s.aiClient.GenerateNarrative(ctx, totals)
	if err != nil {
		log.Printf("Narrative generation failed, using fallback: %v", err)
		return fallbackNarrative(totals)
	}
	return *narrative
}

func fallbackNarrative(t response_models.MonthlyTotals) response_models.Narrative {
	return response_models.Narrative{
		Overview: fmt.Sprintf("Monthly summary for %d days: Total calories %g, protein %gg, carbs %gg, fats %gg.",
			t.DaysLogged, t.TotalCalories, t.TotalProtein, t.TotalCarbs, t.TotalFats),
		Recommendations: "Maintain balanced intake; consult a professional for personalized advice.",
		HighConsumption: "No specific high areas noted.",
		LowConsumption:  "No specific low areas noted.",
	}
}

// aggregate sums the month's day entries into totals and derives the caloric
// contribution percentages (4 kcal/g protein and carbs, 9 kcal/g fat). With
// zero total calories every percentage is zero.
func aggregate(entries []db_models.DayEntry) response_models.MonthlyTotals {
	var t response_models.MonthlyTotals
	for _, entry := range entries {
		t.TotalCalories += entry.Calories
		t.TotalProtein += entry.Protein
		t.TotalCarbs += entry.Carbs
		t.TotalFats += entry.Fats
	}
	t.DaysLogged = len(entries)

	if t.TotalCalories > 0 {
		t.ProteinPct = int(math.Round(t.TotalProtein * 4 / t.TotalCalories * 100))
		t.CarbsPct = int(math.Round(t.TotalCarbs * 4 / t.TotalCalories * 100))
		t.FatsPct = int(math.Round(t.TotalFats * 9 / t.TotalCalories * 100))
	}
	return t
}
