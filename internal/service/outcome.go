package service

const (
	VariantPassthrough = "passthrough"
	VariantResult      = "result"
	VariantDual        = "dual"

	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomePartial = "partial"
	OutcomeFault   = "fault"
)

// OutcomeRecorder receives one observation per service call.
type OutcomeRecorder interface {
	ObserveOutcome(variant, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOutcome(string, string) {}

func recorderOrNop(rec OutcomeRecorder) OutcomeRecorder {
	if rec == nil {
		return nopRecorder{}
	}
	return rec
}
