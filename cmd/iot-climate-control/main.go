package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/iot-climate-control/internal/pkg/application"
	"github.com/diwise/iot-climate-control/internal/pkg/application/events"
	"github.com/diwise/iot-climate-control/internal/pkg/infrastructure/mqtt"
	"github.com/diwise/iot-climate-control/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/iot-climate-control/internal/pkg/infrastructure/router"
	"github.com/diwise/iot-climate-control/internal/pkg/presentation/api"
	"github.com/diwise/iot-climate-control/internal/pkg/presentation/gui"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const serviceName string = "iot-climate-control"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	notificationsFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
	sqliteDSN

	rabbitHost

	mqttBroker
	mqttTopic
	mqttClientID
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		notificationsFile: "",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "diwise",
		dbSSLMode:  "disable",
		sqliteDSN:  "climate-control.db",

		rabbitHost: "",

		mqttBroker:   "",
		mqttTopic:    mqtt.DefaultTopic,
		mqttClientID: "",
	}
}

func main() {
	serviceVersion := buildinfo.SourceVersion()

	// a missing .env file is fine, the environment is used as is
	_ = godotenv.Load()

	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	flags := parseExternalConfig(logger, defaultFlags())

	store, err := newStore(logger, flags)
	exitIf(err, logger, "could not create or connect to database")
	defer store.Close()

	readings, err := store.Readings.Count(ctx)
	exitIf(err, logger, "could not read from sensor log")
	logger.Info().Int64("readings", readings).Msg("sensor log opened")

	publisher, closeMessenger := newPublisher(logger, flags)
	defer closeMessenger()

	notifier, err := newNotifier(flags)
	exitIf(err, logger, "could not load notification configuration")

	app := application.New(store.Readings, store.Controls, publisher, notifier)

	if flags[mqttBroker] != "" {
		disconnect, err := mqtt.Subscribe(ctx, mqtt.Config{
			Broker:   flags[mqttBroker],
			Topic:    flags[mqttTopic],
			ClientID: flags[mqttClientID],
		}, app)
		exitIf(err, logger, "failed to subscribe to mqtt broker")
		defer disconnect()
	}

	r := createRouter(logger, app)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = serve(ctx, logger, net.JoinHostPort(flags[listenAddress], flags[servicePort]), r)
	exitIf(err, logger, "failed to start request router")
}

func createRouter(logger zerolog.Logger, app application.App) *chi.Mux {
	r := router.New(serviceName)

	api.RegisterHandlers(logger, r, app)
	gui.RegisterHandlers(logger, r, app)

	return r
}

func serve(ctx context.Context, logger zerolog.Logger, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return logging.NewContextWithLogger(context.Background(), logger)
		},
	}

	errs := make(chan error, 1)

	go func() {
		logger.Info().Str("addr", addr).Msg("starting to listen for connections")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func newStore(logger zerolog.Logger, flags flagMap) (*database.Store, error) {
	if flags[dbHost] == "" {
		logger.Info().Str("dsn", flags[sqliteDSN]).Msg("no database host configured, using sqlite")
		return database.New(database.NewSQLiteConnector(logger, flags[sqliteDSN]))
	}

	return database.New(database.NewPostgreSQLConnector(logger, database.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	)))
}

func newPublisher(logger zerolog.Logger, flags flagMap) (application.Publisher, func()) {
	if flags[rabbitHost] == "" {
		logger.Info().Msg("no message broker configured, domain events will not be published")
		return application.NewNopPublisher(), func() {}
	}

	messenger, err := messaging.Initialize(messaging.LoadConfiguration(serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	return messenger, messenger.Close
}

func newNotifier(flags flagMap) (events.Notifier, error) {
	if flags[notificationsFile] == "" {
		return events.New(nil), nil
	}

	f, err := os.Open(flags[notificationsFile])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := events.LoadConfiguration(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", flags[notificationsFile], err)
	}

	return events.New(cfg), nil
}

func parseExternalConfig(logger zerolog.Logger, flags flagMap) flagMap {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(logger, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(logger, "SERVICE_PORT", flags[servicePort])

	flags[notificationsFile] = envOrDef(logger, "NOTIFICATIONS_FILE", flags[notificationsFile])

	flags[dbHost] = envOrDef(logger, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(logger, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(logger, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(logger, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(logger, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(logger, "POSTGRES_SSLMODE", flags[dbSSLMode])
	flags[sqliteDSN] = envOrDef(logger, "SQLITE_DSN", flags[sqliteDSN])

	flags[rabbitHost] = envOrDef(logger, "RABBITMQ_HOST", flags[rabbitHost])

	flags[mqttBroker] = envOrDef(logger, "MQTT_BROKER", flags[mqttBroker])
	flags[mqttTopic] = envOrDef(logger, "MQTT_TOPIC", flags[mqttTopic])
	flags[mqttClientID] = envOrDef(logger, "MQTT_CLIENT_ID", flags[mqttClientID])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("notifications", "control change notification subscribers (yaml)", apply(notificationsFile))
	flag.Func("sqlite", "sqlite data source used when no postgres host is set", apply(sqliteDSN))
	flag.Func("mqtt", "mqtt broker url for sensor readings", apply(mqttBroker))
	flag.Parse()

	return flags
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Fatal().Err(err).Msg(msg)
	}
}
