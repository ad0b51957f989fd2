package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/db_models"
	"github.com/GAJULASAINATH/MacroVerse/internal/models/response_models"
)

type FoodLogRepository interface {
	// RecordDailyNutrients folds one analysis result into the bucket for
	// now's month and calendar day, creating MonthLog/DayEntry as needed.
	RecordDailyNutrients(ctx context.Context, userID string, now time.Time, macros response_models.Macros) error

	// GetMonth returns the user's MonthLog (0-11) with its daily entries
	// ordered by date, or nil when the user never logged in that month.
	GetMonth(ctx context.Context, userID string, month int) (*db_models.MonthLog, error)
}

type foodLogRepository struct {
	db *gorm.DB
}

func NewFoodLogRepository(db *gorm.DB) FoodLogRepository {
	return &foodLogRepository{
		db: db,
	}
}

// RecordDailyNutrients always targets "now": the month bucket is the server's
// current month and the day key the current calendar date, regardless of any
// date metadata in the estimate. The increments run inside the INSERT's
// conflict clause, so two analyses racing on the same user/day both land.
func (f *foodLogRepository) RecordDailyNutrients(ctx context.Context, userID string, now time.Time, macros response_models.Macros) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return gorm.ErrRecordNotFound
	}

	monthLog, err := f.getOrCreateMonthLog(ctx, uid, int(now.Month())-1)
	if err != nil {
		return err
	}

	entry := db_models.DayEntry{
		MonthLogID: monthLog.ID,
		EntryDate:  now.Format("2006-01-02"),
		Calories:   macros.Calories,
		Protein:    macros.Protein,
		Carbs:      macros.Carbs,
		Fats:       macros.Fats,
	}

	return f.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "month_log_id"}, {Name: "entry_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"calories": gorm.Expr("day_entries.calories + EXCLUDED.calories"),
			"protein":  gorm.Expr("day_entries.protein + EXCLUDED.protein"),
			"carbs":    gorm.Expr("day_entries.carbs + EXCLUDED.carbs"),
			"fats":     gorm.Expr("day_entries.fats + EXCLUDED.fats"),
		}),
	}).Create(&entry).Error
}

func (f *foodLogRepository) getOrCreateMonthLog(ctx context.Context, userID uuid.UUID, month int) (*db_models.MonthLog, error) {
	monthLog := db_models.MonthLog{
		UserID: userID,
		Month:  month,
	}

	// DO NOTHING keeps the insert idempotent; the re-read below resolves the
	// winning row either way.
	err := f.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoNothing: true,
	}).Create(&monthLog).Error
	if err != nil {
		return nil, err
	}

	var existing db_models.MonthLog
	err = f.db.WithContext(ctx).
		First(&existing, "user_id = ? AND month = ?", userID, month).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (f *foodLogRepository) GetMonth(ctx context.Context, userID string, month int) (*db_models.MonthLog, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil
	}

	var monthLog db_models.MonthLog
	err = f.db.WithContext(ctx).
		Preload("DailyEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_entries.entry_date ASC")
		}).
		First(&monthLog, "user_id = ? AND month = ?", uid, month).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &monthLog, nil
}
