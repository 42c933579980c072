// SPDX-License-Identifier: AGPL-3.0-or-later

package clierr

import (
	"errors"
	"fmt"
)

// Exit codes returned by lintbridge.
const (
	// ExitProblems means the scan worked and reported diagnostics.
	ExitProblems = 1
	// ExitScanError means at least one file could not be scanned.
	ExitScanError = 2
	// ExitConfig means preferences or the project root could not be resolved.
	ExitConfig = 3
)

// ExitCoder is an error that carries a process exit code.
type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError is an error that carries an explicit process exit code.
// It supports wrapping via Unwrap so errors.Is/As work as expected.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// New creates an ExitError with a message.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Newf is a formatted variant of New.
func Newf(code int, format string, args ...any) error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates an ExitError that wraps an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// ExitCodeOf extracts an exit code from any error, defaulting to 1.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

// Silent reports whether err only carries an exit code and has already been
// reported to the user.
func Silent(err error) bool {
	var ee *ExitError
	return errors.As(err, &ee) && ee.msg == "" && ee.cause == nil
}

func normalize(code int) int {
	// Exit code 0 means success; errors should never be 0.
	if code <= 0 {
		return 1
	}
	return code
}
