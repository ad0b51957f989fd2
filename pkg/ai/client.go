package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/response_models"
)

// Client is the nutrition-facing surface of the external language model.
// Implementations are constructed once at startup and shared read-only across
// requests; they hold no per-request state.
type Client interface {
	// AnalyzeFoodImage sends the photo plus the fixed nutrient-estimation
	// instruction and parses the JSON estimate out of the reply.
	AnalyzeFoodImage(ctx context.Context, image []byte, mimeType string) (*response_models.NutrientEstimate, error)

	// GenerateNarrative turns monthly totals into the four-field report
	// prose. Callers are expected to fall back to a canned narrative when
	// this fails; narrative errors never fail a report on their own.
	GenerateNarrative(ctx context.Context, totals response_models.MonthlyTotals) (*response_models.Narrative, error)
}

// Config selects and parameterizes a provider.
type Config struct {
	Provider    string // "gemini" or "openai"
	APIKey      string
	VisionModel string
	TextModel   string
}

// NewClient builds the provider named by cfg.Provider.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.VisionModel), nil
	case "gemini":
		client, err := NewGeminiClient(cfg.APIKey, cfg.VisionModel, cfg.TextModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", cfg.Provider)
	}
}

const analysisPrompt = `
Analyze the food in this image and estimate its macro and micro nutrients.
Return a JSON object with the following structure:
{
  "macros": {
    "calories": number,
    "protein": number,
    "carbs": number,
    "fats": number
  },
  "micros": {
    "vitaminA": "string",
    "vitaminC": "string",
    "iron": "string",
    "calcium": "string"
  }
}
`

func narrativePrompt(t response_models.MonthlyTotals) string {
	return fmt.Sprintf(`
Based on the following monthly food log data, provide a brief health report overview, recommendations, and highlight high and low consumptions:
- Total Calories: %g
- Total Protein: %gg
- Total Carbs: %gg
- Total Fats: %gg
- Days Logged: %d
Assume average daily needs are ~2000 calories, 50g protein, 250g carbs, and 70g fats for a general adult. Adjust recommendations accordingly.
Return a JSON object with:
{
  "overview": "string",
  "recommendations": "string",
  "highConsumption": "string",
  "lowConsumption": "string"
}
`, t.TotalCalories, t.TotalProtein, t.TotalCarbs, t.TotalFats, t.DaysLogged)
}
