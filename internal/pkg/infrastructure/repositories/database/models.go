package database

import (
	"time"
)

type SensorReading struct {
	ID          uint      `gorm:"primarykey"`
	CreatedAt   time.Time `gorm:"index"`
	Temperature float64
	Humidity    float64
	FanStatus   string `gorm:"size:16"`
	LedStatus   string `gorm:"size:16"`
}

func (SensorReading) TableName() string {
	return "sensor_data"
}

type ManualControl struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	Mode      string    `gorm:"size:8;not null"`
	Fan       *string   `gorm:"size:16"`
	Led       *string   `gorm:"size:16"`
}

func (ManualControl) TableName() string {
	return "manual_control"
}
