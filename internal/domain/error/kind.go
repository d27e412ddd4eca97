// Package error defines domain-specific errors for the Korven backend.
package error

import (
	"errors"
	"strings"
)

// ErrorKind classifies a coded domain error independently of its feature prefix.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindState      ErrorKind = "state"
	KindAccess     ErrorKind = "access"
)

// kindsByGroup maps the XX group of a PFX-XXYYYY code to its kind.
var kindsByGroup = map[string]ErrorKind{
	"01": KindValidation,
	"02": KindNotFound,
	"03": KindConflict,
	"04": KindState,
	"05": KindAccess,
}

// kindFromCode derives the kind from a code formatted PFX-XXYYYY.
func kindFromCode(code string) ErrorKind {
	_, rest, ok := strings.Cut(code, "-")
	if !ok || len(rest) < 2 {
		return ""
	}
	return kindsByGroup[rest[:2]]
}

// KindOf returns the kind of the first coded error in err's chain.
// It returns an empty kind for errors that carry no code.
func KindOf(err error) ErrorKind {
	var kinded interface{ Kind() ErrorKind }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	return ""
}
