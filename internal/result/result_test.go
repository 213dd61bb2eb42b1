package result

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type forecast struct {
	Date         time.Time
	TemperatureC int
	Summary      string
}

type failure struct {
	Message string
	Kind    int
}

type calls struct {
	success int
	err     int
	partial int

	gotValue forecast
	gotErr   failure
}

func (c *calls) handlers() (func(forecast) string, func(failure) string, func(forecast, failure) string) {
	return func(v forecast) string {
			c.success++
			c.gotValue = v
			return "success"
		}, func(e failure) string {
			c.err++
			c.gotErr = e
			return "error"
		}, func(v forecast, e failure) string {
			c.partial++
			c.gotValue = v
			c.gotErr = e
			return "partial"
		}
}

var (
	sampleForecast = forecast{Date: time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), TemperatureC: 20, Summary: "Mild"}
	sampleFailure  = failure{Message: "upstream down", Kind: 1}
)

func TestSwitch(t *testing.T) {
	t.Run("result goes to success handler", func(t *testing.T) {
		var c calls
		onSuccess, onError, _ := c.handlers()

		got := Switch(FromResult[forecast, failure](sampleForecast), onSuccess, onError)

		assert.Equal(t, "success", got)
		assert.Equal(t, 1, c.success)
		assert.Zero(t, c.err)
		assert.Equal(t, sampleForecast, c.gotValue)
	})

	t.Run("error goes to error handler", func(t *testing.T) {
		var c calls
		onSuccess, onError, _ := c.handlers()

		got := Switch(FromError[forecast](sampleFailure), onSuccess, onError)

		assert.Equal(t, "error", got)
		assert.Equal(t, 1, c.err)
		assert.Zero(t, c.success)
		assert.Equal(t, sampleFailure, c.gotErr)
	})

	t.Run("partial prefers the result", func(t *testing.T) {
		var c calls
		onSuccess, onError, _ := c.handlers()

		got := Switch(FromPartial(sampleForecast, sampleFailure), onSuccess, onError)

		assert.Equal(t, "success", got)
		assert.Equal(t, 1, c.success)
		assert.Zero(t, c.err)
		assert.Equal(t, sampleForecast, c.gotValue)
	})

	t.Run("zero value panics", func(t *testing.T) {
		var c calls
		onSuccess, onError, _ := c.handlers()

		assert.PanicsWithValue(t, ErrInvalidResult, func() {
			Switch(Result[forecast, failure]{}, onSuccess, onError)
		})
		assert.Zero(t, c.success+c.err+c.partial)
	})
}

func TestSwitchPartial(t *testing.T) {
	tests := []struct {
		name        string
		result      Result[forecast, failure]
		want        string
		wantSuccess int
		wantErr     int
		wantPartial int
	}{
		{"success", FromResult[forecast, failure](sampleForecast), "success", 1, 0, 0},
		{"error", FromError[forecast](sampleFailure), "error", 0, 1, 0},
		{"partial", FromPartial(sampleForecast, sampleFailure), "partial", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c calls
			onSuccess, onError, onPartial := c.handlers()

			got := SwitchPartial(tt.result, onSuccess, onError, onPartial)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSuccess, c.success)
			assert.Equal(t, tt.wantErr, c.err)
			assert.Equal(t, tt.wantPartial, c.partial)
		})
	}

	t.Run("partial handler receives both values", func(t *testing.T) {
		var c calls
		onSuccess, onError, onPartial := c.handlers()

		SwitchPartial(FromPartial(sampleForecast, sampleFailure), onSuccess, onError, onPartial)

		assert.Equal(t, sampleForecast, c.gotValue)
		assert.Equal(t, sampleFailure, c.gotErr)
	})

	t.Run("nil partial handler falls back to success", func(t *testing.T) {
		var c calls
		onSuccess, onError, _ := c.handlers()

		got := SwitchPartial(FromPartial(sampleForecast, sampleFailure), onSuccess, onError, nil)

		assert.Equal(t, "success", got)
		assert.Equal(t, 1, c.success)
	})

	t.Run("zero value panics", func(t *testing.T) {
		var c calls
		onSuccess, onError, onPartial := c.handlers()

		assert.PanicsWithValue(t, ErrInvalidResult, func() {
			SwitchPartial(Result[forecast, failure]{}, onSuccess, onError, onPartial)
		})
	})
}

func TestSwitchIdentityRoundTrip(t *testing.T) {
	got := Switch(
		FromResult[forecast, failure](sampleForecast),
		func(v forecast) forecast { return v },
		func(failure) forecast { return forecast{} },
	)

	assert.Equal(t, sampleForecast, got)
}

func TestMatch(t *testing.T) {
	t.Run("two handlers", func(t *testing.T) {
		var success, failed int
		FromPartial(sampleForecast, sampleFailure).Match(
			func(forecast) { success++ },
			func(failure) { failed++ },
		)
		assert.Equal(t, 1, success)
		assert.Zero(t, failed)
	})

	t.Run("three handlers", func(t *testing.T) {
		var success, failed, partial int
		FromPartial(sampleForecast, sampleFailure).MatchPartial(
			func(forecast) { success++ },
			func(failure) { failed++ },
			func(forecast, failure) { partial++ },
		)
		assert.Equal(t, 1, partial)
		assert.Zero(t, success+failed)
	})

	t.Run("error", func(t *testing.T) {
		var got failure
		FromError[forecast](sampleFailure).MatchPartial(
			func(forecast) { t.Fatal("unexpected success") },
			func(e failure) { got = e },
			func(forecast, failure) { t.Fatal("unexpected partial") },
		)
		assert.Equal(t, sampleFailure, got)
	})

	t.Run("zero value panics", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrInvalidResult, func() {
			Result[forecast, failure]{}.Match(func(forecast) {}, func(failure) {})
		})
	})
}

func TestInspection(t *testing.T) {
	ok := FromResult[forecast, error](sampleForecast)
	bad := FromError[forecast](errors.New("boom"))
	partial := FromPartial[forecast, error](sampleForecast, errors.New("half"))
	var zero Result[forecast, error]

	assert.True(t, ok.IsSuccess())
	assert.True(t, bad.IsError())
	assert.True(t, partial.IsPartial())
	assert.False(t, zero.Valid())
	assert.True(t, ok.Valid())

	v, present := ok.Value()
	require.True(t, present)
	assert.Equal(t, sampleForecast, v)

	_, present = ok.Err()
	assert.False(t, present)

	_, present = bad.Value()
	assert.False(t, present)

	e, present := partial.Err()
	require.True(t, present)
	assert.EqualError(t, e, "half")

	_, present = partial.Value()
	assert.True(t, present)
}
