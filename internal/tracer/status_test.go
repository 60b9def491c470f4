package tracer

import (
	"errors"
	"testing"

	"github.com/san-kum/streamtrace/internal/dynamo"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		status Status
		code   int
		name   string
	}{
		{Running, 0, "running"},
		{RanOutOfSteps, 1, "ran_out_of_steps"},
		{OutOfBounds, 2, "out_of_bounds"},
		{NonFinite, -1, "non_finite"},
	}

	for _, tt := range tests {
		if got := tt.status.Code(); got != tt.code {
			t.Errorf("%v.Code() = %d, want %d", tt.status, got, tt.code)
		}
		if got := tt.status.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		back, err := StatusFromCode(tt.code)
		if err != nil || back != tt.status {
			t.Errorf("StatusFromCode(%d) = %v, %v", tt.code, back, err)
		}
	}
}

func TestStatusFromCode_Unknown(t *testing.T) {
	_, err := StatusFromCode(9)
	if !errors.Is(err, dynamo.ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestStatusTerminal(t *testing.T) {
	if Running.Terminal() {
		t.Error("Running is not terminal")
	}
	for _, s := range []Status{RanOutOfSteps, OutOfBounds, NonFinite} {
		if !s.Terminal() {
			t.Errorf("%v should be terminal", s)
		}
	}
}
