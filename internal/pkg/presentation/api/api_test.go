package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/diwise/iot-climate-control/internal/pkg/application"
	"github.com/diwise/iot-climate-control/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

func TestHealthEndpointReturnsNoContent(t *testing.T) {
	is, server, _ := setupTest(t, &application.AppMock{})

	resp, _ := testRequest(is, server, http.MethodGet, "/health", "", "")
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestThatJSONReadingIsIngested(t *testing.T) {
	app := &application.AppMock{
		IngestFunc: func(ctx context.Context, fields application.Fields) (types.SensorReading, error) {
			return types.SensorReading{ID: 1}, nil
		},
	}
	is, server, _ := setupTest(t, app)

	resp, body := testRequest(is, server, http.MethodPost, "/api/sensor", "application/json",
		`{"temperature":29.5,"humidity":"61","fan_status":"SEDANG","led_status":"KUNING"}`)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"status":"ok"}`)

	is.Equal(len(app.IngestCalls()), 1)
	fields := app.IngestCalls()[0].Fields
	is.Equal(fields["temperature"], json.Number("29.5"))
	is.Equal(fields["humidity"], "61")
	is.Equal(fields["fan_status"], "SEDANG")
}

func TestThatFormReadingIsIngested(t *testing.T) {
	app := &application.AppMock{
		IngestFunc: func(ctx context.Context, fields application.Fields) (types.SensorReading, error) {
			return types.SensorReading{ID: 1}, nil
		},
	}
	is, server, _ := setupTest(t, app)

	form := url.Values{
		"temperature": {"22.1"},
		"humidity":    {"40"},
		"fan_status":  {"OFF", "TINGGI"},
		"led_status":  {"HIJAU"},
	}

	resp, _ := testRequest(is, server, http.MethodPost, "/api/sensor", "application/x-www-form-urlencoded", form.Encode())
	is.Equal(resp.StatusCode, http.StatusOK)

	fields := app.IngestCalls()[0].Fields
	is.Equal(fields["temperature"], "22.1")
	is.Equal(fields["fan_status"], "OFF")
}

func TestThatInvalidReadingIsAnsweredWithBadRequest(t *testing.T) {
	app := &application.AppMock{
		IngestFunc: func(ctx context.Context, fields application.Fields) (types.SensorReading, error) {
			return types.SensorReading{}, &application.ValidationError{Field: "fan_status", Reason: "is required"}
		},
	}
	is, server, _ := setupTest(t, app)

	resp, body := testRequest(is, server, http.MethodPost, "/api/sensor", "application/json", `{"temperature":20}`)
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	result := map[string]string{}
	is.NoErr(json.Unmarshal([]byte(body), &result))
	is.Equal(result["status"], "error")
	is.Equal(result["error"], "invalid fan_status: is required")
}

func TestThatMalformedJSONIsAnsweredWithBadRequest(t *testing.T) {
	app := &application.AppMock{}
	is, server, _ := setupTest(t, app)

	resp, _ := testRequest(is, server, http.MethodPost, "/api/sensor", "application/json", `{"temperature":`)
	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(len(app.IngestCalls()), 0)
}

func TestThatStorageFailureIsNotAcknowledged(t *testing.T) {
	app := &application.AppMock{
		IngestFunc: func(ctx context.Context, fields application.Fields) (types.SensorReading, error) {
			return types.SensorReading{}, &application.StorageError{Op: "append sensor reading", Err: errors.New("disk full")}
		},
	}
	is, server, _ := setupTest(t, app)

	resp, body := testRequest(is, server, http.MethodPost, "/api/sensor", "application/json", `{}`)
	is.Equal(resp.StatusCode, http.StatusInternalServerError)
	is.True(strings.Contains(body, `"status":"error"`))
}

func TestLatestReadingIncludesDisplayCategories(t *testing.T) {
	app := &application.AppMock{
		LatestReadingFunc: func(ctx context.Context) (types.SensorReading, error) {
			return types.SensorReading{
				ID:          7,
				Temperature: 33.2,
				Humidity:    58,
				FanStatus:   types.FanHigh,
				LedStatus:   types.LedRed,
				CreatedAt:   time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	is, server, _ := setupTest(t, app)

	resp, body := testRequest(is, server, http.MethodGet, "/api/sensor/latest", "", "")
	is.Equal(resp.StatusCode, http.StatusOK)

	result := map[string]any{}
	is.NoErr(json.Unmarshal([]byte(body), &result))
	is.Equal(result["temperature"], 33.2)
	is.Equal(result["fan_status"], "TINGGI")
	is.Equal(result["fan_category"], "high")
	is.Equal(result["led_category"], "red")
}

func TestLatestReadingWhenEmptyIsNotFound(t *testing.T) {
	app := &application.AppMock{
		LatestReadingFunc: func(ctx context.Context) (types.SensorReading, error) {
			return types.SensorReading{}, application.ErrNoReadings
		},
	}
	is, server, _ := setupTest(t, app)

	resp, _ := testRequest(is, server, http.MethodGet, "/api/sensor/latest", "", "")
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestThatFormManualOverrideRedirectsToReferer(t *testing.T) {
	app := &application.AppMock{
		SetManualFunc: func(ctx context.Context, fields application.Fields) (types.ControlState, error) {
			return types.ControlState{ID: 1, Mode: types.ModeManual, Fan: lo.ToPtr(types.FanHigh)}, nil
		},
	}
	is, server, _ := setupTest(t, app)

	req, _ := http.NewRequest(http.MethodPost, server.URL+"/manual", strings.NewReader("fan=TINGGI"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", server.URL+"/?from=form")

	resp, err := noRedirectClient().Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusSeeOther)
	is.Equal(resp.Header.Get("Location"), "/?from=form")
	is.Equal(app.SetManualCalls()[0].Fields["fan"], "TINGGI")
}

func TestThatForeignRefererIsNotFollowed(t *testing.T) {
	app := &application.AppMock{
		SetManualFunc: func(ctx context.Context, fields application.Fields) (types.ControlState, error) {
			return types.ControlState{ID: 1, Mode: types.ModeManual, Fan: lo.ToPtr(types.FanHigh)}, nil
		},
	}
	is, server, _ := setupTest(t, app)

	for _, referer := range []string{"http://evil.example.com/x", "//evil.example.com/x", "javascript:alert(1)"} {
		req, _ := http.NewRequest(http.MethodPost, server.URL+"/manual", strings.NewReader("fan=TINGGI"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Referer", referer)

		resp, err := noRedirectClient().Do(req)
		is.NoErr(err)
		resp.Body.Close()

		is.Equal(resp.StatusCode, http.StatusSeeOther)
		is.Equal(resp.Header.Get("Location"), "/")
	}
}

func TestThatMultipartManualOverrideIsAccepted(t *testing.T) {
	app := &application.AppMock{
		SetManualFunc: func(ctx context.Context, fields application.Fields) (types.ControlState, error) {
			return types.ControlState{ID: 1, Mode: types.ModeManual, Fan: lo.ToPtr(types.FanHigh)}, nil
		},
	}
	is, server, _ := setupTest(t, app)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	is.NoErr(form.WriteField("fan", "TINGGI"))
	is.NoErr(form.WriteField("led", "MERAH"))
	is.NoErr(form.Close())

	req, _ := http.NewRequest(http.MethodPost, server.URL+"/manual", body)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := noRedirectClient().Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusSeeOther)
	is.Equal(resp.Header.Get("Location"), "/")
	is.Equal(len(app.SetManualCalls()), 1)
	is.Equal(app.SetManualCalls()[0].Fields["fan"], "TINGGI")
	is.Equal(app.SetManualCalls()[0].Fields["led"], "MERAH")
}

func TestThatJSONManualOverrideReturnsState(t *testing.T) {
	app := &application.AppMock{
		SetManualFunc: func(ctx context.Context, fields application.Fields) (types.ControlState, error) {
			return types.ControlState{ID: 3, Mode: types.ModeManual, Fan: lo.ToPtr(types.FanMedium), Led: lo.ToPtr(types.LedYellow)}, nil
		},
	}
	is, server, _ := setupTest(t, app)

	resp, body := testRequest(is, server, http.MethodPost, "/manual", "application/json", `{"fan":"SEDANG","led":"KUNING"}`)
	is.Equal(resp.StatusCode, http.StatusCreated)
	is.Equal(body, `{"id":3,"mode":"MANUAL","fan":"SEDANG","led":"KUNING"}`)
}

func TestThatInvalidManualOverrideIsRejected(t *testing.T) {
	app := &application.AppMock{
		SetManualFunc: func(ctx context.Context, fields application.Fields) (types.ControlState, error) {
			return types.ControlState{}, &application.ValidationError{Field: "fan", Reason: "unknown value"}
		},
	}
	is, server, _ := setupTest(t, app)

	resp, _ := testRequest(is, server, http.MethodPost, "/manual", "application/x-www-form-urlencoded", "fan=ON")
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestThatFormResetToAutoRedirectsToDashboard(t *testing.T) {
	app := &application.AppMock{
		ResetToAutoFunc: func(ctx context.Context) (types.ControlState, error) {
			return types.ControlState{ID: 2, Mode: types.ModeAuto}, nil
		},
	}
	is, server, _ := setupTest(t, app)

	req, _ := http.NewRequest(http.MethodPost, server.URL+"/auto", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := noRedirectClient().Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusSeeOther)
	is.Equal(resp.Header.Get("Location"), "/")
	is.Equal(len(app.ResetToAutoCalls()), 1)
}

func TestLatestControlReturnsAutoDefault(t *testing.T) {
	app := &application.AppMock{
		EffectiveControlFunc: func(ctx context.Context) (types.ControlState, error) {
			return types.DefaultControlState(), nil
		},
	}
	is, server, _ := setupTest(t, app)

	resp, body := testRequest(is, server, http.MethodGet, "/manual/latest", "", "")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"mode":"AUTO","fan":null,"led":null}`)
}

func TestLatestControlStorageFailure(t *testing.T) {
	app := &application.AppMock{
		EffectiveControlFunc: func(ctx context.Context) (types.ControlState, error) {
			return types.ControlState{}, &application.StorageError{Op: "read", Err: errors.New("gone")}
		},
	}
	is, server, _ := setupTest(t, app)

	resp, _ := testRequest(is, server, http.MethodGet, "/manual/latest", "", "")
	is.Equal(resp.StatusCode, http.StatusInternalServerError)
}

func setupTest(t *testing.T, app *application.AppMock) (*is.I, *httptest.Server, *application.AppMock) {
	is := is.New(t)

	r := chi.NewRouter()
	RegisterHandlers(zerolog.Nop(), r, app)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return is, server, app
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func testRequest(is *is.I, ts *httptest.Server, method, path, contentType, body string) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return resp, string(respBody)
}
