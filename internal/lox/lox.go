package lox

import "errors"

// Run scans, parses and evaluates the given source. The error comes from the
// first stage that failed: ScanErrors, *ParseError, *RuntimeError or
// *InternalError. Runs are independent of each other.
func Run(source string) (Value, error) {
	tokens, err := Scan(source)
	if err != nil {
		return nil, err
	}
	expr, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	return Evaluate(expr)
}

// IsStaticError reports whether err was found before evaluation, i.e. it is a
// lexical or syntax error.
func IsStaticError(err error) bool {
	var (
		scanErrs ScanErrors
		parseErr *ParseError
	)
	return errors.As(err, &scanErrs) || errors.As(err, &parseErr)
}
