package mqtt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diwise/iot-climate-control/internal/pkg/application"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

const DefaultTopic = "iot-climate-control/sensor"

type Config struct {
	Broker   string
	Topic    string
	ClientID string
}

type DisconnectFunc func()

// NewMessageHandler feeds every received payload through the same ingestion
// operation as the http endpoint. Rejected payloads are logged and dropped.
func NewMessageHandler(ctx context.Context, app application.App) paho.MessageHandler {
	logger := logging.GetFromContext(ctx)

	return func(client paho.Client, msg paho.Message) {
		log := logger.With().Str("topic", msg.Topic()).Logger()

		fields := application.Fields{}

		d := json.NewDecoder(bytes.NewReader(msg.Payload()))
		d.UseNumber()

		if err := d.Decode(&fields); err != nil {
			log.Warn().Err(err).Msg("dropping malformed sensor payload")
			return
		}

		reading, err := app.Ingest(ctx, fields)
		if err != nil {
			log.Warn().Err(err).Msg("sensor payload rejected")
			return
		}

		log.Debug().Uint("id", reading.ID).Msg("sensor reading received over mqtt")
	}
}

// Subscribe connects to the broker and subscribes to the configured topic.
func Subscribe(ctx context.Context, cfg Config, app application.App) (DisconnectFunc, error) {
	log := logging.GetFromContext(ctx)

	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}

	if cfg.ClientID == "" {
		cfg.ClientID = "iot-climate-control-" + uuid.NewString()
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(10 * time.Second)

	handler := NewMessageHandler(ctx, app)

	opts.SetOnConnectHandler(func(c paho.Client) {
		// subscriptions are not kept by the broker for clean sessions
		if token := c.Subscribe(cfg.Topic, 1, handler); token.Wait() && token.Error() != nil {
			log.Error().Err(token.Error()).Str("topic", cfg.Topic).Msg("failed to subscribe")
			return
		}
		log.Info().Str("broker", cfg.Broker).Str("topic", cfg.Topic).Msg("subscribed to sensor topic")
	})

	opts.SetConnectionLostHandler(func(c paho.Client, err error) {
		log.Warn().Err(err).Msg("lost connection to mqtt broker")
	})

	client := paho.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return func() {}, fmt.Errorf("failed to connect to mqtt broker %s: %w", cfg.Broker, token.Error())
	}

	return func() {
		client.Disconnect(250)
	}, nil
}
