// Package errs wraps cockroachdb/errors with the small surface this service
// needs: stack-carrying construction, wrapping, and sentinel marking for
// errors.Is checks across layer boundaries.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, keeping the original stack. Returns nil for a
// nil err so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// New creates an error carrying a stack trace. Used for the package-level
// sentinels the handlers match on.
func New(msg string) error {
	return cr.New(msg)
}

// Mark makes err match markErr under errors.Is without losing err's own
// message and stack. A nil err degrades to the bare sentinel.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// ExtractStackLines renders err verbosely and returns at most maxLines lines,
// for structured logs that should not balloon on deep stacks.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
