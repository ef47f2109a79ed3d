package application

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/diwise/iot-climate-control/pkg/types"
)

// Fields holds untyped values as they arrive from a transport, keyed by
// field name. JSON objects decode into it directly.
type Fields map[string]any

func (f Fields) number(name string) (float64, error) {
	v, ok := f[name]
	if !ok || v == nil {
		return 0, &ValidationError{Field: name, Reason: "is required"}
	}

	var n float64
	var err error

	switch t := v.(type) {
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case json.Number:
		n, err = t.Float64()
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, &ValidationError{Field: name, Reason: "is required"}
		}
		n, err = strconv.ParseFloat(s, 64)
	default:
		return 0, &ValidationError{Field: name, Reason: "is not a number"}
	}

	if err != nil {
		return 0, &ValidationError{Field: name, Reason: "is not a number"}
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, &ValidationError{Field: name, Reason: "must be a finite number"}
	}

	return n, nil
}

// text returns the trimmed string value of name. Absent, null and blank
// values are reported as not present.
func (f Fields) text(name string) (string, bool, error) {
	v, ok := f[name]
	if !ok || v == nil {
		return "", false, nil
	}

	s, ok := v.(string)
	if !ok {
		return "", false, &ValidationError{Field: name, Reason: "is not a string"}
	}

	s = strings.TrimSpace(s)

	return s, s != "", nil
}

func (f Fields) fanStatus(name string, required bool) (*types.FanStatus, error) {
	s, present, err := f.text(name)
	if err != nil {
		return nil, err
	}
	if !present {
		if required {
			return nil, &ValidationError{Field: name, Reason: "is required"}
		}
		return nil, nil
	}

	fan, err := types.ParseFanStatus(s)
	if err != nil {
		return nil, &ValidationError{Field: name, Reason: err.Error()}
	}

	return &fan, nil
}

func (f Fields) ledStatus(name string, required bool) (*types.LedStatus, error) {
	s, present, err := f.text(name)
	if err != nil {
		return nil, err
	}
	if !present {
		if required {
			return nil, &ValidationError{Field: name, Reason: "is required"}
		}
		return nil, nil
	}

	led, err := types.ParseLedStatus(s)
	if err != nil {
		return nil, &ValidationError{Field: name, Reason: err.Error()}
	}

	return &led, nil
}

func readingFromFields(f Fields) (types.SensorReading, error) {
	temperature, err := f.number("temperature")
	if err != nil {
		return types.SensorReading{}, err
	}

	humidity, err := f.number("humidity")
	if err != nil {
		return types.SensorReading{}, err
	}

	fan, err := f.fanStatus("fan_status", true)
	if err != nil {
		return types.SensorReading{}, err
	}

	led, err := f.ledStatus("led_status", true)
	if err != nil {
		return types.SensorReading{}, err
	}

	return types.SensorReading{
		Temperature: temperature,
		Humidity:    humidity,
		FanStatus:   *fan,
		LedStatus:   *led,
	}, nil
}

func overrideFromFields(f Fields) (types.FanStatus, *types.LedStatus, error) {
	fan, err := f.fanStatus("fan", true)
	if err != nil {
		return "", nil, err
	}

	led, err := f.ledStatus("led", false)
	if err != nil {
		return "", nil, err
	}

	return *fan, led, nil
}
