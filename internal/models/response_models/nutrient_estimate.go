package response_models

// NutrientEstimate is what the vision model returns for a single food photo.
// It is sent back to the caller as-is; only Macros is folded into the food log.
type NutrientEstimate struct {
	Macros Macros `json:"macros"`
	Micros Micros `json:"micros"`
}

type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Micros are free-form quantity strings (e.g. "900mcg"), matching whatever
// unit the model chooses to answer in.
type Micros struct {
	VitaminA string `json:"vitaminA"`
	VitaminC string `json:"vitaminC"`
	Iron     string `json:"iron"`
	Calcium  string `json:"calcium"`
}
