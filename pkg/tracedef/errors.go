/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrOutOfBoundsError = errors.New("out of bounds")

func ErrOutOfBounds(msg string, args ...any) error {
	return EnrichError(ErrOutOfBoundsError, msg, args...)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

var ErrIncompatibleError = errors.New("incompatible")

func ErrIncompatible(msg string, args ...any) error {
	return EnrichError(ErrIncompatibleError, msg, args...)
}

var ErrFrozenError = errors.New("frozen")

func ErrFrozen(msg string, args ...any) error {
	return EnrichError(ErrFrozenError, msg, args...)
}

// Conventional panic value for a mutation of a frozen field class
func ErrFieldClassIsFrozen(fc IFieldClass) error {
	return ErrFrozen("%s field class", fc.Kind().TrimString())
}

func ErrResolveFieldPath(what string, err error) error {
	return fmt.Errorf("resolve %s field path: %w", what, err)
}
