package db_models

type User struct {
	BaseModel
	Email        string `gorm:"unique"`
	PasswordHash string
	Credits      int64 `gorm:"default:0"`
	MonthLogs    []MonthLog
}
