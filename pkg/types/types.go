package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownValue = errors.New("unknown value")

type FanStatus string

const (
	FanOff    FanStatus = "OFF"
	FanMedium FanStatus = "SEDANG"
	FanHigh   FanStatus = "TINGGI"
)

var FanStatuses = []FanStatus{FanOff, FanMedium, FanHigh}

func ParseFanStatus(s string) (FanStatus, error) {
	f := FanStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range FanStatuses {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q, expected one of %v", ErrUnknownValue, s, FanStatuses)
}

type LedStatus string

const (
	LedGreen  LedStatus = "HIJAU"
	LedYellow LedStatus = "KUNING"
	LedRed    LedStatus = "MERAH"
)

var LedStatuses = []LedStatus{LedGreen, LedYellow, LedRed}

func ParseLedStatus(s string) (LedStatus, error) {
	l := LedStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range LedStatuses {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w %q, expected one of %v", ErrUnknownValue, s, LedStatuses)
}

type ControlMode string

const (
	ModeManual ControlMode = "MANUAL"
	ModeAuto   ControlMode = "AUTO"
)

// Display categories used by the dashboard to pick a css class.
const (
	CategoryIdle    = "idle"
	CategoryMedium  = "medium"
	CategoryHigh    = "high"
	CategoryGreen   = "green"
	CategoryYellow  = "yellow"
	CategoryRed     = "red"
	CategoryUnknown = "unknown"
)

var fanCategories = map[FanStatus]string{
	FanOff:    CategoryIdle,
	FanMedium: CategoryMedium,
	FanHigh:   CategoryHigh,
}

var ledCategories = map[LedStatus]string{
	LedGreen:  CategoryGreen,
	LedYellow: CategoryYellow,
	LedRed:    CategoryRed,
}

// Category returns the display category for f, or CategoryUnknown for values
// outside the declared domain.
func (f FanStatus) Category() string {
	if c, ok := fanCategories[f]; ok {
		return c
	}
	return CategoryUnknown
}

func (l LedStatus) Category() string {
	if c, ok := ledCategories[l]; ok {
		return c
	}
	return CategoryUnknown
}

type SensorReading struct {
	ID          uint      `json:"id"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	FanStatus   FanStatus `json:"fan_status"`
	LedStatus   LedStatus `json:"led_status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ControlState is a manual control record as seen by devices and operators.
// Fan is nil when Mode is AUTO, Led is nil unless an LED override was given.
type ControlState struct {
	ID        uint        `json:"id,omitempty"`
	Mode      ControlMode `json:"mode"`
	Fan       *FanStatus  `json:"fan"`
	Led       *LedStatus  `json:"led"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
}

// DefaultControlState is the effective state before any control record exists.
func DefaultControlState() ControlState {
	return ControlState{Mode: ModeAuto}
}

func (c ControlState) IsManual() bool {
	return c.Mode == ModeManual && c.Fan != nil
}
