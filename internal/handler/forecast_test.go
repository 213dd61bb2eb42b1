package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forecast-service-result/internal/client"
	"github.com/forecast-service-result/internal/model"
	"github.com/forecast-service-result/internal/service"
)

type stubProvider struct {
	forecast model.Forecast
	err      error
}

func (p stubProvider) GetForecast(context.Context) (model.Forecast, error) {
	return p.forecast, p.err
}

var mildDate = time.Date(2026, 10, 21, 9, 30, 0, 0, time.UTC)

var succeeding = stubProvider{forecast: model.Forecast{Date: mildDate, TemperatureC: 20, Summary: "Mild"}}

// failing uses the real client so the error is produced the same way as in
// production.
var failing = client.NewWithOptions(client.Options{FailureRate: 1})

func serve(t *testing.T, h http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	return rr
}

func assertForecastBody(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-21T09:30:00Z", body["date"])
	assert.Equal(t, float64(20), body["temperatureC"])
	assert.Equal(t, "Mild", body["summary"])
}

func TestForecastHandlersSuccess(t *testing.T) {
	handlers := map[string]http.Handler{
		"exception": NewExceptionHandler(service.NewPassthroughService(succeeding, nil)),
		"result":    NewResultHandler(service.NewResultService(succeeding, nil)),
		"dual":      NewDualResultHandler(service.NewDualResultService(succeeding, nil)),
	}

	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			assertForecastBody(t, serve(t, h))
		})
	}
}

func TestForecastHandlersClientFailure(t *testing.T) {
	handlers := map[string]http.Handler{
		"exception": NewExceptionHandler(service.NewPassthroughService(failing, nil)),
		"result":    NewResultHandler(service.NewResultService(failing, nil)),
		"dual":      NewDualResultHandler(service.NewDualResultService(failing, nil)),
	}

	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			rr := serve(t, h)

			assert.Equal(t, http.StatusBadGateway, rr.Code)
			assert.JSONEq(t, `{"errorMessage":"Exception occurred in client"}`, rr.Body.String())
		})
	}
}

func TestExceptionHandlerUnexpectedError(t *testing.T) {
	p := stubProvider{err: errors.New("disk quota exceeded")}
	rr := serve(t, NewExceptionHandler(service.NewPassthroughService(p, nil)))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"errorMessage":"disk quota exceeded"}`, rr.Body.String())
}

func TestResultHandlersUnexpectedErrorHidesMessage(t *testing.T) {
	p := stubProvider{err: errors.New("disk quota exceeded")}
	handlers := map[string]http.Handler{
		"result": NewResultHandler(service.NewResultService(p, nil)),
		"dual":   NewDualResultHandler(service.NewDualResultService(p, nil)),
	}

	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			rr := serve(t, h)

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.JSONEq(t, `{"errorMessage":"An unexpected error occurred"}`, rr.Body.String())
		})
	}
}

func TestPartialHandlerReturnsEmptyOK(t *testing.T) {
	rr := serve(t, NewPartialHandler(service.NewDualResultService(succeeding, nil)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestRespondForecastMapsErrorKinds(t *testing.T) {
	tests := []struct {
		err  service.Error
		want int
	}{
		{service.NewBusiness("bad city"), http.StatusBadRequest},
		{service.NewDependency("upstream"), http.StatusBadGateway},
		{service.NewServer("oops"), http.StatusInternalServerError},
		{service.Error{Message: "odd", Kind: service.ErrorKind(9)}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			rr := httptest.NewRecorder()
			respondForecast(service.ForError[model.Forecast](tt.err))(rr)

			assert.Equal(t, tt.want, rr.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.err.Message, body.ErrorMessage)
		})
	}
}
