// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrZeroStep is returned when slicing with a step of zero.
var ErrZeroStep = errors.New("seqview: slice step cannot be zero")

// TypeConstraintError is returned when a value can't be used as a sequence.
type TypeConstraintError struct {
	Type string
}

func (err *TypeConstraintError) Error() string {
	return fmt.Sprintf("seqview: %s is not a sequence", err.Type)
}

// OutOfRangeError is returned by sequences when a position is outside of their bounds.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (err *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range (len %d)", err.Index, err.Len)
}

// NotFoundError is returned when looking up the position of a value that isn't there.
type NotFoundError struct {
	Value interface{}
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("%v is not in sequence", err.Value)
}

// AttributeError is returned when calling a function a module doesn't provide.
type AttributeError struct {
	Module string
	Name   string
}

func (err *AttributeError) Error() string {
	return fmt.Sprintf("module %q has no attribute %q", err.Module, err.Name)
}

// IsTypeConstraint returns whether err is a *TypeConstraintError.
func IsTypeConstraint(err error) bool {
	_, ok := errors.Cause(err).(*TypeConstraintError)
	return ok
}

// IsOutOfRange returns whether err is an *OutOfRangeError.
func IsOutOfRange(err error) bool {
	_, ok := errors.Cause(err).(*OutOfRangeError)
	return ok
}

// IsNotFound returns whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*NotFoundError)
	return ok
}

// IsAttribute returns whether err is an *AttributeError.
func IsAttribute(err error) bool {
	_, ok := errors.Cause(err).(*AttributeError)
	return ok
}

// CheckIndex returns an *OutOfRangeError if i is not a valid position in a sequence of length n.
// Sequence implementations use it in At.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return &OutOfRangeError{Index: i, Len: n}
	}
	return nil
}
