package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/iot-climate-control/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

//go:generate moq -rm -out client_mock.go . ClimateControlClient

// ClimateControlClient is used by devices to report readings and to learn
// whether an operator has overridden the automatic policy.
type ClimateControlClient interface {
	SendReading(ctx context.Context, reading types.SensorReading) error
	LatestControl(ctx context.Context) (types.ControlState, error)
}

type climateControlClient struct {
	url        string
	httpClient http.Client
}

var tracer = otel.Tracer("iot-climate-control-client")

func New(url string) ClimateControlClient {
	return &climateControlClient{
		url: strings.TrimSuffix(url, "/"),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type readingPayload struct {
	Temperature float64         `json:"temperature"`
	Humidity    float64         `json:"humidity"`
	FanStatus   types.FanStatus `json:"fan_status"`
	LedStatus   types.LedStatus `json:"led_status"`
}

func (c *climateControlClient) SendReading(ctx context.Context, reading types.SensorReading) error {
	var err error
	ctx, span := tracer.Start(ctx, "send-reading")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	body, err := json.Marshal(readingPayload{
		Temperature: reading.Temperature,
		Humidity:    reading.Humidity,
		FanStatus:   reading.FanStatus,
		LedStatus:   reading.LedStatus,
	})
	if err != nil {
		err = fmt.Errorf("failed to marshal sensor reading: %w", err)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/sensor", bytes.NewReader(body))
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to send sensor reading: %w", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		err = fmt.Errorf("sensor reading was not accepted (%d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		return err
	}

	log.Debug().Msgf("sent reading %.2f°C %.2f%%", reading.Temperature, reading.Humidity)

	return nil
}

func (c *climateControlClient) LatestControl(ctx context.Context) (types.ControlState, error) {
	var err error
	ctx, span := tracer.Start(ctx, "latest-control")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/manual/latest", nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return types.ControlState{}, err
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to retrieve control state: %w", err)
		return types.ControlState{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("request failed with status code %d", resp.StatusCode)
		return types.ControlState{}, err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return types.ControlState{}, err
	}

	state := types.ControlState{}

	err = json.Unmarshal(respBody, &state)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return types.ControlState{}, err
	}

	return state, nil
}
