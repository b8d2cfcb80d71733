package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeDataFormat, "threshold %q is not numeric", "abc")

	if err.Code != ErrCodeDataFormat {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeDataFormat)
	}

	if err.Message != `threshold "abc" is not numeric` {
		t.Errorf("Message = %v", err.Message)
	}

	expected := `DATA_FORMAT: threshold "abc" is not numeric`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeIO, cause, "write chart.html")

	if err.Code != ErrCodeIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIO)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "IO_ERROR: write chart.html: permission denied"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeCapabilityUnavailable, "test"),
			code:     ErrCodeCapabilityUnavailable,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeCapabilityUnavailable, "test"),
			code:     ErrCodeIO,
			expected: false,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeInternal, New(ErrCodeDataFormat, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "wrapped by fmt",
			err:      fmtWrap(New(ErrCodeIO, "inner")),
			code:     ErrCodeIO,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeIO,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeIO,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func fmtWrap(err error) error {
	return &wrapped{err}
}

type wrapped struct{ err error }

func (w *wrapped) Error() string { return "context: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidConfig, "test"), ErrCodeInvalidConfig},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeIO, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUnavailable(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := Unavailable("echarts", nil)
		if !Is(err, ErrCodeCapabilityUnavailable) {
			t.Errorf("code = %v", err.Code)
		}
		if err.Error() != "CAPABILITY_UNAVAILABLE: echarts is not available" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("not found")
		err := Unavailable("rsvg-convert", cause)
		if !errors.Is(err, cause) {
			t.Error("cause should be preserved")
		}
	})
}
