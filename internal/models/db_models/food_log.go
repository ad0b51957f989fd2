package db_models

import "github.com/google/uuid"

// MonthLog groups a user's daily nutrient totals by calendar month.
// Month is 0-based (0 = January, 11 = December) and unique per user.
type MonthLog struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_user_month"`
	Month        int       `gorm:"uniqueIndex:idx_user_month"`
	DailyEntries []DayEntry
}

// DayEntry accumulates one calendar day's macros. Entries are keyed by the
// "2006-01-02" date string, and the accumulators only ever increase: every
// analysis adds its estimate on top of whatever is already recorded.
type DayEntry struct {
	BaseModel
	MonthLogID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_month_log_date"`
	EntryDate  string    `gorm:"uniqueIndex:idx_month_log_date"`
	Calories   float64   `gorm:"default:0"`
	Protein    float64   `gorm:"default:0"`
	Carbs      float64   `gorm:"default:0"`
	Fats       float64   `gorm:"default:0"`
}
