package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/forecast-service-result/internal/client"
	"github.com/forecast-service-result/internal/model"
	"github.com/forecast-service-result/internal/result"
)

// PassthroughService lets provider errors reach the caller unchanged.
type PassthroughService struct {
	provider client.Provider
	outcomes OutcomeRecorder
}

func NewPassthroughService(provider client.Provider, outcomes OutcomeRecorder) *PassthroughService {
	return &PassthroughService{provider: provider, outcomes: recorderOrNop(outcomes)}
}

func (s *PassthroughService) Handle(ctx context.Context) (model.Forecast, error) {
	forecast, err := s.provider.GetForecast(ctx)
	if err != nil {
		s.outcomes.ObserveOutcome(VariantPassthrough, OutcomeError)
		return model.Forecast{}, err
	}
	s.outcomes.ObserveOutcome(VariantPassthrough, OutcomeSuccess)
	return forecast, nil
}

// ResultService reports client failures inside a Result. Errors that are
// not client errors are returned as-is.
type ResultService struct {
	provider client.Provider
	outcomes OutcomeRecorder
}

func NewResultService(provider client.Provider, outcomes OutcomeRecorder) *ResultService {
	return &ResultService{provider: provider, outcomes: recorderOrNop(outcomes)}
}

func (s *ResultService) Handle(ctx context.Context) (Result[model.Forecast], error) {
	forecast, err := s.provider.GetForecast(ctx)
	if err != nil {
		svcErr, ok := fromClientError(ctx, err, VariantResult)
		if !ok {
			s.outcomes.ObserveOutcome(VariantResult, OutcomeFault)
			return Result[model.Forecast]{}, err
		}
		s.outcomes.ObserveOutcome(VariantResult, OutcomeError)
		return ForError[model.Forecast](svcErr), nil
	}

	s.outcomes.ObserveOutcome(VariantResult, OutcomeSuccess)
	return ForResult(forecast), nil
}

// DualResultService returns result.Result with an explicit error type and
// can also report partial success.
type DualResultService struct {
	provider client.Provider
	outcomes OutcomeRecorder
}

func NewDualResultService(provider client.Provider, outcomes OutcomeRecorder) *DualResultService {
	return &DualResultService{provider: provider, outcomes: recorderOrNop(outcomes)}
}

func (s *DualResultService) Handle(ctx context.Context) (result.Result[model.Forecast, Error], error) {
	forecast, err := s.provider.GetForecast(ctx)
	if err != nil {
		svcErr, ok := fromClientError(ctx, err, VariantDual)
		if !ok {
			s.outcomes.ObserveOutcome(VariantDual, OutcomeFault)
			return result.Result[model.Forecast, Error]{}, err
		}
		s.outcomes.ObserveOutcome(VariantDual, OutcomeError)
		return result.FromError[model.Forecast](svcErr), nil
	}

	s.outcomes.ObserveOutcome(VariantDual, OutcomeSuccess)
	return result.FromResult[model.Forecast, Error](forecast), nil
}

// HandlePartial always reports partial success: an empty forecast together
// with a server error. It stands in for cases such as aggregating several
// sources where only some of them fail.
func (s *DualResultService) HandlePartial(ctx context.Context) result.Result[model.Forecast, Error] {
	s.outcomes.ObserveOutcome(VariantDual, OutcomePartial)
	return result.FromPartial(model.Forecast{}, NewServer("error"))
}

// fromClientError converts a *client.Error into a dependency error and logs
// it. ok is false for any other error.
func fromClientError(ctx context.Context, err error, variant string) (Error, bool) {
	var clientErr *client.Error
	if !errors.As(err, &clientErr) {
		return Error{}, false
	}

	log.Ctx(ctx).Error().Err(err).Str("variant", variant).Msg("exception occurred in client")
	return NewDependency(client.FailureMessage), true
}
