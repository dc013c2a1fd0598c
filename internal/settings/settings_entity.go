package settings

import "time"

// Single global row; ID is always 1.
type Settings struct {
	ID              int    `gorm:"primaryKey"`
	OfficeStartTime string `gorm:"default:09:00"`
	OfficeEndTime   string `gorm:"default:18:00"`
	LateFineAmount  float64
	HalfDayHours    float64
	LeavePolicy     map[string]int     `gorm:"serializer:json"`
	SalarySettings  map[string]float64 `gorm:"serializer:json"`
	UpdatedAt       time.Time
}

func (Settings) TableName() string {
	return "settings"
}

const SingletonID = 1

func Defaults() Settings {
	return Settings{
		ID:              SingletonID,
		OfficeStartTime: "09:00",
		OfficeEndTime:   "18:00",
		LateFineAmount:  100,
		HalfDayHours:    4,
		LeavePolicy: map[string]int{
			"Casual": 12,
			"Sick":   10,
			"Annual": 20,
		},
		SalarySettings: map[string]float64{},
	}
}
