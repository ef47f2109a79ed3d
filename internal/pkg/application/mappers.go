package application

import (
	"github.com/diwise/iot-climate-control/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/iot-climate-control/pkg/types"
	"github.com/samber/lo"
)

func MapReading(r database.SensorReading) types.SensorReading {
	return types.SensorReading{
		ID:          r.ID,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		FanStatus:   types.FanStatus(r.FanStatus),
		LedStatus:   types.LedStatus(r.LedStatus),
		CreatedAt:   r.CreatedAt,
	}
}

func MapControl(c database.ManualControl) types.ControlState {
	state := types.ControlState{
		ID:        c.ID,
		Mode:      types.ControlMode(c.Mode),
		CreatedAt: lo.ToPtr(c.CreatedAt),
	}

	if c.Fan != nil {
		state.Fan = lo.ToPtr(types.FanStatus(*c.Fan))
	}

	if c.Led != nil {
		state.Led = lo.ToPtr(types.LedStatus(*c.Led))
	}

	return state
}

func toRecord(mode types.ControlMode, fan *types.FanStatus, led *types.LedStatus) database.ManualControl {
	record := database.ManualControl{Mode: string(mode)}

	if fan != nil {
		record.Fan = lo.ToPtr(string(*fan))
	}

	if led != nil {
		record.Led = lo.ToPtr(string(*led))
	}

	return record
}
