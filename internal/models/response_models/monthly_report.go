package response_models

// MonthlyTotals are the aggregates of one MonthLog's daily entries.
type MonthlyTotals struct {
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFats     float64 `json:"totalFats"`
	DaysLogged    int     `json:"daysLogged"`

	// Caloric contribution percentages (protein/carbs 4 kcal/g, fats 9 kcal/g),
	// all zero when TotalCalories is zero.
	ProteinPct int `json:"proteinPct"`
	CarbsPct   int `json:"carbsPct"`
	FatsPct    int `json:"fatsPct"`
}

// Narrative is the four-field prose block of the monthly report.
type Narrative struct {
	Overview        string `json:"overview"`
	Recommendations string `json:"recommendations"`
	HighConsumption string `json:"highConsumption"`
	LowConsumption  string `json:"lowConsumption"`
}

type MonthlyReport struct {
	Totals    MonthlyTotals `json:"totals"`
	Narrative Narrative     `json:"narrative"`
}
