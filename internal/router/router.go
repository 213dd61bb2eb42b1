package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/forecast-service-result/internal/client"
	"github.com/forecast-service-result/internal/config"
	"github.com/forecast-service-result/internal/handler"
	"github.com/forecast-service-result/internal/metrics"
	"github.com/forecast-service-result/internal/middleware"
	"github.com/forecast-service-result/internal/service"
)

const apiTitle = "Forecast service result API"

// Deps are the collaborators the router wires into handlers. Metrics and
// Gatherer are optional.
type Deps struct {
	Config   *config.Config
	Provider client.Provider
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Version  string
}

type endpoint struct {
	path        string
	summary     string
	responses   []int
	empty       bool
	alwaysEmpty bool
	handler     http.Handler
}

// New builds the HTTP handler for the whole service.
func New(d Deps) http.Handler {
	var outcomes service.OutcomeRecorder
	if d.Metrics != nil {
		outcomes = d.Metrics
	}

	passthrough := service.NewPassthroughService(d.Provider, outcomes)
	single := service.NewResultService(d.Provider, outcomes)
	dual := service.NewDualResultService(d.Provider, outcomes)

	exceptionH := handler.NewExceptionHandler(passthrough)
	resultH := handler.NewResultHandler(single)
	dualH := handler.NewDualResultHandler(dual)
	partialH := handler.NewPartialHandler(dual)

	resultCodes := []int{http.StatusOK, http.StatusBadRequest, http.StatusBadGateway, http.StatusInternalServerError}

	forecastRoutes := []endpoint{
		{"/get1", "Forecast with provider errors propagated to the handler",
			[]int{http.StatusOK, http.StatusBadGateway, http.StatusInternalServerError}, false, false, exceptionH},
		{"/get2", "Forecast with a result-or-error wrapper", resultCodes, false, false, resultH},
		{"/get3", "Forecast with a result, error or partial-success wrapper", resultCodes, true, false, dualH},
		{"/partial", "Partial-success demonstration", []int{http.StatusOK}, true, true, partialH},
	}
	apiRoutes := []endpoint{
		{"/get2", "Forecast with a result-or-error wrapper", resultCodes, false, false, resultH},
		{"/get3", "Forecast with a result, error or partial-success wrapper", resultCodes, true, false, dualH},
		{"/partial", "Partial-success demonstration", []int{http.StatusOK}, true, true, partialH},
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders(!d.Config.IsDevelopment()))
	if len(d.Config.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.Config.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}

	r.Method(http.MethodGet, "/health", handler.NewHealthHandler(d.Version, d.Config.Environment))
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(d.Gatherer))
	}

	var limiter *middleware.RateLimiter
	if d.Config.RateLimitRequests > 0 {
		limiter = middleware.NewRateLimiter(d.Config.RateLimitRequests, d.Config.RateLimitWindow)
	}

	var docs []handler.Route
	mount := func(prefix string, endpoints []endpoint) {
		r.Route(prefix, func(r chi.Router) {
			r.Use(middleware.RateLimitMiddleware(limiter))
			for _, e := range endpoints {
				r.Method(http.MethodGet, e.path, e.handler)
				docs = append(docs, handler.Route{
					Path:        prefix + e.path,
					Summary:     e.summary,
					Responses:   e.responses,
					Empty:       e.empty,
					AlwaysEmpty: e.alwaysEmpty,
				})
			}
		})
	}
	mount("/forecast", forecastRoutes)
	mount("/api", apiRoutes)

	if d.Config.IsDevelopment() {
		r.Method(http.MethodGet, "/openapi.json", handler.NewDocsHandler(apiTitle, d.Version, docs))
	}

	return r
}
