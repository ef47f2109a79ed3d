package main

import (
	"github.com/diwise/iot-climate-control/pkg/types"
)

const (
	mediumThreshold float64 = 28
	highThreshold   float64 = 32
)

// autoPolicy is the device local rule used while no manual override is active.
func autoPolicy(temperature float64) (types.FanStatus, types.LedStatus) {
	switch {
	case temperature < mediumThreshold:
		return types.FanOff, types.LedGreen
	case temperature < highThreshold:
		return types.FanMedium, types.LedYellow
	default:
		return types.FanHigh, types.LedRed
	}
}

// actuate decides what the device should run given the effective control
// state. A manual override without an LED value keeps the automatic LED.
func actuate(state types.ControlState, temperature float64) (types.FanStatus, types.LedStatus) {
	fan, led := autoPolicy(temperature)

	if !state.IsManual() {
		return fan, led
	}

	if state.Led != nil {
		led = *state.Led
	}

	return *state.Fan, led
}
