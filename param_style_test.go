package wherelex

import (
	"errors"
	"testing"
)

func TestParseParamStyle(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      ParamStyle
		expectedError error
	}{
		{name: "empty defaults", input: "", expected: DefaultParamStyle},
		{name: "question", input: "question", expected: QuestionParamStyle},
		{name: "dollar", input: "dollar", expected: DollarParamStyle},
		{name: "at", input: "at", expected: AtParamStyle},
		{name: "case-insensitive", input: "Dollar", expected: DollarParamStyle},
		{name: "unknown", input: "percent", expectedError: ErrInvalidParamStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := ParseParamStyle(tt.input)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ps != tt.expected {
				t.Errorf("got %q, expected %q", ps, tt.expected)
			}
		})
	}
}

func TestParamStylePlaceholder(t *testing.T) {
	tests := []struct {
		style    ParamStyle
		n        int
		expected string
	}{
		{QuestionParamStyle, 1, "?"},
		{QuestionParamStyle, 7, "?"},
		{DollarParamStyle, 1, "$1"},
		{DollarParamStyle, 12, "$12"},
		{AtParamStyle, 1, "@p1"},
		{AtParamStyle, 3, "@p3"},
	}
	for _, tt := range tests {
		if got := tt.style.placeholder(tt.n); got != tt.expected {
			t.Errorf("%s.placeholder(%d) = %q, expected %q", tt.style, tt.n, got, tt.expected)
		}
	}
}
