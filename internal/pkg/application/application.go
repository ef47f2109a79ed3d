package application

import (
	"context"
	"errors"

	"github.com/diwise/iot-climate-control/internal/pkg/application/events"
	"github.com/diwise/iot-climate-control/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/iot-climate-control/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-climate-control/application")

//go:generate moq -rm -out application_mock.go . App

type App interface {
	Ingest(ctx context.Context, fields Fields) (types.SensorReading, error)
	LatestReading(ctx context.Context) (types.SensorReading, error)

	SetManual(ctx context.Context, fields Fields) (types.ControlState, error)
	ResetToAuto(ctx context.Context) (types.ControlState, error)
	EffectiveControl(ctx context.Context) (types.ControlState, error)
}

//go:generate moq -rm -out logs_mock.go . ReadingLog ControlLog

type ReadingLog interface {
	Append(ctx context.Context, record *database.SensorReading) error
	Latest(ctx context.Context) (database.SensorReading, error)
}

type ControlLog interface {
	Append(ctx context.Context, record *database.ManualControl) error
	Latest(ctx context.Context) (database.ManualControl, error)
}

//go:generate moq -rm -out publisher_mock.go . Publisher

// Publisher is the part of messaging.MsgContext the application needs.
type Publisher interface {
	PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error
}

type nopPublisher struct{}

func (nopPublisher) PublishOnTopic(context.Context, messaging.TopicMessage) error {
	return nil
}

// NewNopPublisher returns a Publisher that drops every message. It is used
// when no message broker is configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

type app struct {
	readings  ReadingLog
	controls  ControlLog
	publisher Publisher
	notifier  events.Notifier
}

func New(readings ReadingLog, controls ControlLog, publisher Publisher, notifier events.Notifier) App {
	if publisher == nil {
		publisher = NewNopPublisher()
	}

	if notifier == nil {
		notifier = events.New(nil)
	}

	return &app{
		readings:  readings,
		controls:  controls,
		publisher: publisher,
		notifier:  notifier,
	}
}

func (a *app) Ingest(ctx context.Context, fields Fields) (types.SensorReading, error) {
	var err error
	ctx, span := tracer.Start(ctx, "ingest-reading")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	reading, err := readingFromFields(fields)
	if err != nil {
		return types.SensorReading{}, err
	}

	record := database.SensorReading{
		Temperature: reading.Temperature,
		Humidity:    reading.Humidity,
		FanStatus:   string(reading.FanStatus),
		LedStatus:   string(reading.LedStatus),
	}

	err = a.readings.Append(ctx, &record)
	if err != nil {
		err = &StorageError{Op: "append sensor reading", Err: err}
		return types.SensorReading{}, err
	}

	reading = MapReading(record)

	a.publish(ctx, &types.ReadingReceived{
		Reading:   reading,
		Timestamp: reading.CreatedAt,
	})

	return reading, nil
}

func (a *app) LatestReading(ctx context.Context) (types.SensorReading, error) {
	record, err := a.readings.Latest(ctx)
	if errors.Is(err, database.ErrEmptyLog) {
		return types.SensorReading{}, ErrNoReadings
	}
	if err != nil {
		return types.SensorReading{}, &StorageError{Op: "read latest sensor reading", Err: err}
	}

	return MapReading(record), nil
}

func (a *app) SetManual(ctx context.Context, fields Fields) (types.ControlState, error) {
	fan, led, err := overrideFromFields(fields)
	if err != nil {
		return types.ControlState{}, err
	}

	return a.appendControl(ctx, toRecord(types.ModeManual, &fan, led))
}

func (a *app) ResetToAuto(ctx context.Context) (types.ControlState, error) {
	return a.appendControl(ctx, toRecord(types.ModeAuto, nil, nil))
}

// EffectiveControl returns the most recent control record, or the AUTO
// default when no record exists yet.
func (a *app) EffectiveControl(ctx context.Context) (types.ControlState, error) {
	record, err := a.controls.Latest(ctx)
	if errors.Is(err, database.ErrEmptyLog) {
		return types.DefaultControlState(), nil
	}
	if err != nil {
		return types.ControlState{}, &StorageError{Op: "read latest control record", Err: err}
	}

	return MapControl(record), nil
}

func (a *app) appendControl(ctx context.Context, record database.ManualControl) (types.ControlState, error) {
	var err error
	ctx, span := tracer.Start(ctx, "append-control")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	err = a.controls.Append(ctx, &record)
	if err != nil {
		err = &StorageError{Op: "append control record", Err: err}
		return types.ControlState{}, err
	}

	state := MapControl(record)

	a.publish(ctx, &types.ControlStateChanged{
		State:     state,
		Timestamp: record.CreatedAt,
	})

	if notifyErr := a.notifier.Send(ctx, state); notifyErr != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(notifyErr).Msg("could not notify subscribers about control change")
	}

	return state, nil
}

// publish is best effort, the record is already stored when it is called.
func (a *app) publish(ctx context.Context, message messaging.TopicMessage) {
	err := a.publisher.PublishOnTopic(ctx, message)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(err).Msgf("could not publish message on topic %s", message.TopicName())
	}
}
