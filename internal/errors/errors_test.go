package errors

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "ErrMissingData is recognized",
			err:      ErrMissingData,
			target:   ErrMissingData,
			expected: true,
		},
		{
			name:     "Wrapped ErrSourceUnavailable is recognized",
			err:      errors.Join(ErrSourceUnavailable, errors.New("additional context")),
			target:   ErrSourceUnavailable,
			expected: true,
		},
		{
			name:     "Different sentinel does not match",
			err:      ErrInvalidURL,
			target:   ErrUnitNotFound,
			expected: false,
		},
		{
			name:     "ErrInvalidInput is recognized",
			err:      ErrInvalidInput,
			target:   ErrInvalidInput,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := errors.Is(tt.err, tt.target)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestSourceError(t *testing.T) {
	baseErr := errors.New("connection timeout")
	err := NewSourceError("portal_links_json", baseErr)

	if err.Source != "portal_links_json" {
		t.Errorf("expected source 'portal_links_json', got '%s'", err.Source)
	}

	if !errors.Is(err, baseErr) {
		t.Error("expected error to wrap base error")
	}

	expected := "source error (source=portal_links_json): connection timeout"
	if err.Error() != expected {
		t.Errorf("expected '%s', got '%s'", expected, err.Error())
	}
}

func TestSourceErrorWithSentinel(t *testing.T) {
	err := NewSourceError("embedded", ErrSourceUnavailable)
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Error("SourceError should unwrap to its sentinel")
	}
}
