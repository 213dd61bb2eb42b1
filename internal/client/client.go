package client

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/forecast-service-result/internal/model"
)

const (
	DefaultDelay       = time.Second
	DefaultFailureRate = 0.5

	minTemperatureC = -20
	maxTemperatureC = 55
	maxDayOffset    = 24
)

var summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild", "Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// Summaries returns the fixed set of forecast summaries the client picks from.
func Summaries() []string {
	out := make([]string, len(summaries))
	copy(out, summaries)
	return out
}

// Provider returns a forecast or fails with a *Error.
type Provider interface {
	GetForecast(ctx context.Context) (model.Forecast, error)
}

// Source supplies the randomness used by the client. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// Options configures a Client. A zero Delay skips the wait and a zero
// FailureRate never fails. Nil Source and Now use math/rand and time.Now.
type Options struct {
	Delay       time.Duration
	FailureRate float64
	Source      Source
	Now         func() time.Time
}

// Client is a fake weather API client. It waits a fixed delay to simulate
// I/O and then either fails or returns random forecast data.
type Client struct {
	delay       time.Duration
	failureRate float64
	src         Source
	now         func() time.Time
}

// New creates a client with the default delay and a 50% failure rate.
func New() *Client {
	return NewWithOptions(Options{Delay: DefaultDelay, FailureRate: DefaultFailureRate})
}

func NewWithOptions(opts Options) *Client {
	c := &Client{
		delay:       opts.Delay,
		failureRate: opts.FailureRate,
		src:         opts.Source,
		now:         opts.Now,
	}
	if c.delay < 0 {
		c.delay = 0
	}
	if c.src == nil {
		c.src = globalSource{}
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// GetForecast returns a random forecast. Every failure, including a panic
// while producing the forecast, is reported as a *Error.
func (c *Client) GetForecast(ctx context.Context) (forecast model.Forecast, err error) {
	defer func() {
		if r := recover(); r != nil {
			forecast = model.Forecast{}
			err = wrap(fmt.Errorf("panic: %v", r))
		}
	}()

	forecast, err = c.fetch(ctx)
	if err != nil {
		return model.Forecast{}, wrap(err)
	}
	return forecast, nil
}

func (c *Client) fetch(ctx context.Context) (model.Forecast, error) {
	if err := wait(ctx, c.delay); err != nil {
		return model.Forecast{}, err
	}

	if c.src.Float64() < c.failureRate {
		log.Debug().Float64("failure_rate", c.failureRate).Msg("injecting provider failure")
		return model.Forecast{}, ErrConnect
	}

	return model.Forecast{
		Date:         c.now().AddDate(0, 0, c.src.IntN(maxDayOffset)),
		TemperatureC: minTemperatureC + c.src.IntN(maxTemperatureC-minTemperatureC+1),
		Summary:      summaries[c.src.IntN(len(summaries))],
	}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
