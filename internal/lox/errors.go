package lox

import (
	"fmt"
	"strings"
)

// ScanError is a lexical error found at the given line
type ScanError struct {
	line    int
	message string
}

// NewScanError creates a new lexical error
func NewScanError(line int, message string) error {
	return &ScanError{line, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", err.line, err.message)
}

// ScanErrors holds every lexical error found in a single scan.
type ScanErrors []*ScanError

func (errs ScanErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// ParseError reports the token at which the parser gave up.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new syntax error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	return fmt.Sprintf(
		"[line %d] Error %s: %s",
		err.token.Line,
		locationOf(err.token),
		err.message,
	)
}

// RuntimeError is an error that occurs while evaluating an expression, the
// operator token tells where it happened.
type RuntimeError struct {
	token   *Token
	message string
}

// NewRuntimeError creates a new runtime error
func NewRuntimeError(token *Token, message string) error {
	return &RuntimeError{token, message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf(
		"[line %d] Error %s: %s",
		err.token.Line,
		locationOf(err.token),
		err.message,
	)
}

// InternalError signals a broken invariant inside the interpreter itself. It
// has no source line.
type InternalError struct {
	location string
	message  string
}

// NewInternalError creates a new internal error
func NewInternalError(location, message string) error {
	return &InternalError{location, message}
}

func (err *InternalError) Error() string {
	if err.location == "" {
		return fmt.Sprintf("Error: %s", err.message)
	}
	return fmt.Sprintf("Error %s: %s", err.location, err.message)
}

func locationOf(token *Token) string {
	if token.Typ == EOF {
		return "at end"
	}
	return fmt.Sprintf("at '%s'", token.Lexeme)
}
