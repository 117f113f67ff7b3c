// Package wherelex/errors defines error values used throughout the wherelex package.
// These sentinel errors identify the distinct lexical failure modes; all
// of them are terminal — the translator stops at the first one and
// returns no partial output, since a partially-sanitized expression
// could be unsafe.
package wherelex

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the translator's failure modes.
var (
	// ErrUnterminatedString indicates a quote character was opened and
	// end of input was reached before the same character closed it.
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrMalformedNumber indicates a number-shaped token with invalid
	// internal structure: a trailing dot, more than one dot, or a bare
	// sign with no digits.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrFunctionCallNotAllowed indicates an identifier immediately
	// followed by an opening parenthesis. That adjacency is the shape of
	// a function invocation and is rejected unconditionally.
	ErrFunctionCallNotAllowed = errors.New("function call not allowed")

	// ErrUnexpectedCharacter indicates a character outside the accepted
	// grammar, e.g. ';', '#', or a backtick in the raw input.
	ErrUnexpectedCharacter = errors.New("unexpected character")

	ErrInvalidTablePrefix = errors.New("invalid table prefix")

	ErrInvalidParamStyle = errors.New("invalid param style")
)

// NewErr wraps a sentinel error with key/value context, e.g.
//
//	NewErr(ErrUnexpectedCharacter, "char", ";", "offset", 12)
//
// Callers can match the sentinel with errors.Is and surface the message
// as-is to whoever supplied the expression.
func NewErr(sentinel error, kvs ...any) error {
	if len(kvs) == 0 {
		return sentinel
	}
	var b strings.Builder
	for i := 0; i+1 < len(kvs); i += 2 {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v=%v", kvs[i], kvs[i+1])
	}
	return fmt.Errorf("%w: %s", sentinel, b.String())
}
