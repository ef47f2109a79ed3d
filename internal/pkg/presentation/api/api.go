package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/diwise/iot-climate-control/internal/pkg/application"
	"github.com/diwise/iot-climate-control/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-climate-control/api")

func RegisterHandlers(log zerolog.Logger, router *chi.Mux, app application.App) *chi.Mux {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Post("/api/sensor", ingestReadingHandler(log, app))
	router.Get("/api/sensor/latest", latestReadingHandler(log, app))

	router.Post("/manual", setManualHandler(log, app))
	router.Get("/manual/latest", latestControlHandler(log, app))
	router.Post("/auto", resetToAutoHandler(log, app))

	return router
}

type latestReading struct {
	types.SensorReading
	FanCategory string `json:"fan_category"`
	LedCategory string `json:"led_category"`
}

func ingestReadingHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "ingest-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		fields, err := readFields(r)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read request body")
			writeError(w, http.StatusBadRequest, err)
			return
		}

		reading, err := app.Ingest(ctx, fields)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to ingest sensor reading")
			writeError(w, statusFromError(err), err)
			return
		}

		requestLogger.Debug().Uint("id", reading.ID).Msg("sensor reading stored")

		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func latestReadingHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "latest-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		reading, err := app.LatestReading(ctx)
		if errors.Is(err, application.ErrNoReadings) {
			err = nil
			writeError(w, http.StatusNotFound, application.ErrNoReadings)
			return
		}
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read latest sensor reading")
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, latestReading{
			SensorReading: reading,
			FanCategory:   reading.FanStatus.Category(),
			LedCategory:   reading.LedStatus.Category(),
		})
	}
}

func setManualHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "set-manual")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		fields, err := readFields(r)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read request body")
			writeError(w, http.StatusBadRequest, err)
			return
		}

		state, err := app.SetManual(ctx, fields)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to set manual control")
			writeError(w, statusFromError(err), err)
			return
		}

		requestLogger.Info().Str("fan", string(*state.Fan)).Msg("manual control set")

		respondToControlChange(w, r, state)
	}
}

func resetToAutoHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "reset-to-auto")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		state, err := app.ResetToAuto(ctx)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to reset to automatic control")
			writeError(w, statusFromError(err), err)
			return
		}

		requestLogger.Info().Msg("control reset to auto")

		respondToControlChange(w, r, state)
	}
}

func latestControlHandler(log zerolog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "latest-control")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		state, err := app.EffectiveControl(ctx)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read latest control record")
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

// respondToControlChange sends browsers back to the page they came from and
// answers api clients with the new effective state.
func respondToControlChange(w http.ResponseWriter, r *http.Request, state types.ControlState) {
	if !isJSON(r) {
		http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
		return
	}

	writeJSON(w, http.StatusCreated, state)
}

// redirectTarget returns the path of the referring page when it belongs to
// this host, and "/" otherwise.
func redirectTarget(r *http.Request) string {
	referer, err := url.Parse(r.Referer())
	if err != nil || referer.Path == "" || !strings.HasPrefix(referer.Path, "/") {
		return "/"
	}

	if referer.Host != "" && referer.Host != r.Host {
		return "/"
	}

	if referer.Scheme != "" && referer.Scheme != "http" && referer.Scheme != "https" {
		return "/"
	}

	target := &url.URL{Path: referer.Path, RawQuery: referer.RawQuery}

	return target.String()
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

const maxFormMemory int64 = 1 << 20

// readFields decodes a json object, a url encoded form or a multipart form
// into fields. Only
// the first value of repeated form keys is used.
func readFields(r *http.Request) (application.Fields, error) {
	fields := application.Fields{}

	if isJSON(r) {
		d := json.NewDecoder(r.Body)
		d.UseNumber()

		if err := d.Decode(&fields); err != nil {
			return nil, fmt.Errorf("malformed json body: %w", err)
		}

		return fields, nil
	}

	var err error
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(maxFormMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, fmt.Errorf("malformed form body: %w", err)
	}

	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	return fields, nil
}

func statusFromError(err error) int {
	var verr *application.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{
		"status": "error",
		"error":  err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(b)
}
