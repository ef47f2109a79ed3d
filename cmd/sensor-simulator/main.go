package main

import (
	"context"
	"flag"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/iot-climate-control/pkg/client"
	"github.com/diwise/iot-climate-control/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const serviceName string = "sensor-simulator"

type climate struct {
	temperature float64
	humidity    float64
	rnd         *rand.Rand
}

func newClimate(seed int64) *climate {
	return &climate{
		temperature: 27,
		humidity:    60,
		rnd:         rand.New(rand.NewSource(seed)),
	}
}

// next performs a bounded random walk so that all policy levels are visited.
func (c *climate) next() (float64, float64) {
	c.temperature = clamp(c.temperature+c.rnd.Float64()*2-1, 20, 38)
	c.humidity = clamp(c.humidity+c.rnd.Float64()*4-2, 30, 90)

	return round(c.temperature), round(c.humidity)
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}

func main() {
	ctx, logger := logging.NewLogger(context.Background(), serviceName, buildinfo.SourceVersion())

	_ = godotenv.Load()

	serverURL := env.GetVariableOrDefault(logger, "CLIMATE_CONTROL_URL", "http://localhost:8080")

	interval := 2 * time.Second

	flag.StringVar(&serverURL, "url", serverURL, "base url of the climate control service")
	flag.DurationVar(&interval, "interval", interval, "time between readings")
	flag.Parse()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("url", serverURL).Dur("interval", interval).Msg("starting simulator")

	run(ctx, logger, client.New(serverURL), newClimate(time.Now().UnixNano()), interval)
}

func run(ctx context.Context, logger zerolog.Logger, c client.ClimateControlClient, env *climate, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		tick(ctx, logger, c, env)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// tick reports one reading. Failures are logged and retried on the next tick.
func tick(ctx context.Context, logger zerolog.Logger, c client.ClimateControlClient, env *climate) {
	state, err := c.LatestControl(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("could not fetch control state, assuming auto")
		state = types.DefaultControlState()
	}

	temperature, humidity := env.next()
	fan, led := actuate(state, temperature)

	err = c.SendReading(ctx, types.SensorReading{
		Temperature: temperature,
		Humidity:    humidity,
		FanStatus:   fan,
		LedStatus:   led,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to send reading")
		return
	}

	logger.Info().
		Str("mode", string(state.Mode)).
		Float64("temperature", temperature).
		Float64("humidity", humidity).
		Str("fan", string(fan)).
		Str("led", string(led)).
		Msg("reading sent")
}
