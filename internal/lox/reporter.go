package lox

import (
	"errors"
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code. Fully-features languages have a complex setup for reporting
// errors to user.
type Reporter interface {
	Report(err error)
}

// SimpleReporter writes error as-is to inner writer, one diagnostic per line
type SimpleReporter struct {
	writer io.Writer
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer}
}

func (reporter *SimpleReporter) Report(err error) {
	var scanErrs ScanErrors
	if errors.As(err, &scanErrs) {
		for _, scanErr := range scanErrs {
			fmt.Fprintln(reporter.writer, scanErr)
		}
		return
	}
	fmt.Fprintln(reporter.writer, err)
}
