package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/response_models"
	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

// StripCodeFence removes the markdown fencing models like to wrap JSON in.
// Output with no fence passes through untouched (modulo whitespace).
func StripCodeFence(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```JSON", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// The model's reply is an untrusted contract: parse success alone is not
// enough, every required field must be present with the right type.

type rawEstimate struct {
	Macros *rawMacros `json:"macros"`
	Micros *rawMicros `json:"micros"`
}

type rawMacros struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
}

type rawMicros struct {
	VitaminA *string `json:"vitaminA"`
	VitaminC *string `json:"vitaminC"`
	Iron     *string `json:"iron"`
	Calcium  *string `json:"calcium"`
}

func parseNutrientEstimate(text string) (*response_models.NutrientEstimate, error) {
	cleaned := StripCodeFence(text)

	var raw rawEstimate
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedModelOutput, err)
	}

	if raw.Macros == nil || raw.Micros == nil {
		return nil, fmt.Errorf("%w: missing macros or micros block", utils.ErrMalformedModelOutput)
	}

	macroFields := map[string]*float64{
		"calories": raw.Macros.Calories,
		"protein":  raw.Macros.Protein,
		"carbs":    raw.Macros.Carbs,
		"fats":     raw.Macros.Fats,
	}
	for name, v := range macroFields {
		if v == nil {
			return nil, fmt.Errorf("%w: missing macros.%s", utils.ErrMalformedModelOutput, name)
		}
		if *v < 0 {
			return nil, fmt.Errorf("%w: negative macros.%s", utils.ErrMalformedModelOutput, name)
		}
	}

	microFields := map[string]*string{
		"vitaminA": raw.Micros.VitaminA,
		"vitaminC": raw.Micros.VitaminC,
		"iron":     raw.Micros.Iron,
		"calcium":  raw.Micros.Calcium,
	}
	for name, v := range microFields {
		if v == nil {
			return nil, fmt.Errorf("%w: missing micros.%s", utils.ErrMalformedModelOutput, name)
		}
	}

	return &response_models.NutrientEstimate{
		Macros: response_models.Macros{
			Calories: *raw.Macros.Calories,
			Protein:  *raw.Macros.Protein,
			Carbs:    *raw.Macros.Carbs,
			Fats:     *raw.Macros.Fats,
		},
		Micros: response_models.Micros{
			VitaminA: *raw.Micros.VitaminA,
			VitaminC: *raw.Micros.VitaminC,
			Iron:     *raw.Micros.Iron,
			Calcium:  *raw.Micros.Calcium,
		},
	}, nil
}

func parseNarrative(text string) (*response_models.Narrative, error) {
	cleaned := StripCodeFence(text)

	var narrative response_models.Narrative
	if err := json.Unmarshal([]byte(cleaned), &narrative); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedModelOutput, err)
	}

	if strings.TrimSpace(narrative.Overview) == "" ||
		strings.TrimSpace(narrative.Recommendations) == "" ||
		strings.TrimSpace(narrative.HighConsumption) == "" ||
		strings.TrimSpace(narrative.LowConsumption) == "" {
		return nil, fmt.Errorf("%w: narrative field missing or empty", utils.ErrMalformedModelOutput)
	}

	return &narrative, nil
}
