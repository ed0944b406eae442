// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the cookbook service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"cookbook/internal/api/handler/v1handler"
	"cookbook/internal/config"
	"cookbook/pkg/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options configure the HTTP server. Zero durations keep the net/http
// defaults; a zero RequestTimeout disables the per-request deadline.
type Options struct {
	SecHandlerOptions *v1handler.SecHandlerOptions

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RequestTimeout    time.Duration
	MaxHeaderBytes    int

	// MetricsPath is where the prometheus registry is exposed.
	MetricsPath string
	// AllowedOrigins are the browser origins accepted by CORS. "*" allows any.
	AllowedOrigins []string
}

// NewOptions maps the http and jwt sections of cfg.
func NewOptions(cfg *config.Config) Options {
	h := cfg.HTTP

	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		Addr:              h.Addr,
		ReadTimeout:       h.ReadTimeout,
		ReadHeaderTimeout: h.ReadHeaderTimeout,
		WriteTimeout:      h.WriteTimeout,
		IdleTimeout:       h.IdleTimeout,
		RequestTimeout:    h.RequestTimeout,
		MaxHeaderBytes:    h.MaxHeaderBytes,
		MetricsPath:       h.MetricsPath,
		AllowedOrigins:    h.AllowedOrigins,
	}
}

// Deps are the services and limiters the server exposes.
type Deps struct {
	v1handler.Deps

	// Limiter throttles every API request per client IP. Nil disables it.
	Limiter controller.Limiter
	// RatingLimiter throttles rating submissions per user. Nil disables it.
	RatingLimiter controller.Limiter
	// Registerer receives the otel and process metrics. Nil means the prometheus default registry.
	Registerer prometheus.Registerer
	// Gatherer serves the metrics endpoint. Nil means the prometheus default registry.
	Gatherer prometheus.Gatherer
}

// NewServer builds the *http.Server serving the v1 catalog API under /v1,
// its OpenAPI document and Swagger UI, prometheus metrics fed by the otel
// exporter and pprof under /debug/pprof.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	registerer, gatherer := deps.Registerer, deps.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	withMetrics, err := controller.WithMetrics(mp.Meter("cookbook/internal/api"))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}

	r := chi.NewRouter()
	r.Use(controller.WithLogger, middleware.Recoverer, controller.WithCORS(opts.AllowedOrigins), withMetrics)

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Cookbook Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	api := v1handler.New(deps.Deps, secHandler, v1handler.Options{RatingLimiter: deps.RatingLimiter})
	r.Group(func(r chi.Router) {
		if deps.Limiter != nil {
			r.Use(controller.WithRateLimit(deps.Limiter, nil))
		}
		r.Mount("/v1", api.Routes())
	})

	// pprof
	r.Mount("/debug/pprof", http.StripPrefix("/debug/pprof", controller.PprofMux()))

	var handler http.Handler = r
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(r, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
