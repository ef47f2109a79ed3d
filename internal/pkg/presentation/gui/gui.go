package gui

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/diwise/iot-climate-control/internal/pkg/application"
	"github.com/diwise/iot-climate-control/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-climate-control/gui")

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

// Missing is shown in place of any value that could not be read.
const Missing = "-"

// PollInterval is how often, in milliseconds, the dashboard asks for the
// latest reading.
const PollInterval = 2000

var dashboard = template.Must(template.ParseFS(templates, "templates/dashboard.html"))

func RegisterHandlers(log zerolog.Logger, router *chi.Mux, app application.App) *chi.Mux {
	assets, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}

	FileServer(router, "/static", http.FS(assets))

	router.Get("/", NewDashboardHandler(log, app))

	return router
}

type reading struct {
	Temperature string
	Humidity    string
	Fan         string
	FanCategory string
	Led         string
	LedCategory string
}

type page struct {
	Reading      reading
	Mode         string
	Override     string
	FanOptions   []types.FanStatus
	LedOptions   []types.LedStatus
	PollInterval int
}

func missingReading() reading {
	return reading{
		Temperature: Missing,
		Humidity:    Missing,
		Fan:         Missing,
		FanCategory: types.CategoryUnknown,
		Led:         Missing,
		LedCategory: types.CategoryUnknown,
	}
}

func newReading(r types.SensorReading) reading {
	return reading{
		Temperature: formatNumber(r.Temperature),
		Humidity:    formatNumber(r.Humidity),
		Fan:         string(r.FanStatus),
		FanCategory: r.FanStatus.Category(),
		Led:         string(r.LedStatus),
		LedCategory: r.LedStatus.Category(),
	}
}

func formatNumber(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}

func NewDashboardHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "render-dashboard")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		data := page{
			Reading:      missingReading(),
			Mode:         Missing,
			FanOptions:   types.FanStatuses,
			LedOptions:   types.LedStatuses,
			PollInterval: PollInterval,
		}

		latest, readErr := app.LatestReading(ctx)
		if readErr == nil {
			data.Reading = newReading(latest)
		} else if !errors.Is(readErr, application.ErrNoReadings) {
			requestLogger.Error().Err(readErr).Msg("unable to read latest sensor reading")
		}

		state, controlErr := app.EffectiveControl(ctx)
		if controlErr == nil {
			data.Mode = string(state.Mode)
			if state.Fan != nil {
				data.Override = string(*state.Fan)
				if state.Led != nil {
					data.Override += " / " + string(*state.Led)
				}
			}
		} else {
			requestLogger.Error().Err(controlErr).Msg("unable to read effective control state")
		}

		buf := &bytes.Buffer{}
		if err = dashboard.Execute(buf, data); err != nil {
			requestLogger.Error().Err(err).Msg("unable to render dashboard")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}

func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit any URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fileServer := http.StripPrefix(pathPrefix, http.FileServer(root))
		fileServer.ServeHTTP(w, r)
	})
}
