package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/forecast-service-result/internal/client"
	"github.com/forecast-service-result/internal/httputil"
	"github.com/forecast-service-result/internal/model"
	"github.com/forecast-service-result/internal/result"
	"github.com/forecast-service-result/internal/service"
)

// ExceptionHandler serves a forecast from a service that returns provider
// errors untouched. The only thing it can send back is the error text, so
// that text has to be safe for callers to read.
type ExceptionHandler struct {
	service *service.PassthroughService
}

func NewExceptionHandler(svc *service.PassthroughService) *ExceptionHandler {
	return &ExceptionHandler{service: svc}
}

func (h *ExceptionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	forecast, err := h.service.Handle(r.Context())
	if err != nil {
		var clientErr *client.Error
		if errors.As(err, &clientErr) {
			RespondError(w, http.StatusBadGateway, clientErr.Message)
			return
		}
		RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	RespondJSON(w, http.StatusOK, forecast)
}

// ResultHandler serves a forecast from a service that reports client
// failures in a service.Result. The status code is chosen here from the
// error kind; the message comes from the service.
type ResultHandler struct {
	service *service.ResultService
}

func NewResultHandler(svc *service.ResultService) *ResultHandler {
	return &ResultHandler{service: svc}
}

func (h *ResultHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Handle(r.Context())
	if err != nil {
		respondUnexpected(w, r, err)
		return
	}

	svcErr, failed := res.Err()
	if !failed {
		forecast, _ := res.Value()
		RespondJSON(w, http.StatusOK, forecast)
		return
	}

	service.Respond(w, svcErr)
}

// DualResultHandler dispatches the service result through SwitchPartial.
type DualResultHandler struct {
	service *service.DualResultService
}

func NewDualResultHandler(svc *service.DualResultService) *DualResultHandler {
	return &DualResultHandler{service: svc}
}

func (h *DualResultHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Handle(r.Context())
	if err != nil {
		respondUnexpected(w, r, err)
		return
	}

	respondForecast(res)(w)
}

// PartialHandler serves the partial-success demonstration of the dual
// result service.
type PartialHandler struct {
	service *service.DualResultService
}

func NewPartialHandler(svc *service.DualResultService) *PartialHandler {
	return &PartialHandler{service: svc}
}

func (h *PartialHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respondForecast(h.service.HandlePartial(r.Context()))(w)
}

type responder func(w http.ResponseWriter)

func respondForecast(res result.Result[model.Forecast, service.Error]) responder {
	return result.SwitchPartial(res, ok, buildError, okPartial)
}

func ok(forecast model.Forecast) responder {
	return func(w http.ResponseWriter) {
		RespondJSON(w, http.StatusOK, forecast)
	}
}

func buildError(svcErr service.Error) responder {
	return func(w http.ResponseWriter) {
		service.Respond(w, svcErr)
	}
}

// okPartial answers a partial success with an empty 200. Callers get
// neither the partial data nor the error yet.
func okPartial(model.Forecast, service.Error) responder {
	return func(w http.ResponseWriter) {
		httputil.RespondEmpty(w, http.StatusOK)
	}
}

func respondUnexpected(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("unhandled service error")
	service.RespondError(w, err)
}
