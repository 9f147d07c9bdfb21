// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minikey

import (
	"errors"
	"fmt"
)

// Diagnostics written to the output during Run.
const (
	MsgConversion     = "Could not convert the input"
	MsgInvalidInput   = "Invalid input, press 'h' for help"
	MsgInvalidCommand = "Invalid command, press 'h' for help"
)

var (
	ErrDuplicateKey = errors.New("duplicate command key")
	ErrEmptyKey     = errors.New("empty command key")
	ErrNilCall      = errors.New("nil command callback")
	ErrRunning      = errors.New("program is already running")
)

// DuplicateKeyError is returned when a key is registered twice.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("command %q already registered", e.Key)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// RangeError is returned by NewRange when the bounds are inverted.
type RangeError struct {
	Lower, Upper interface{}
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: lower bound %v is greater than upper bound %v", e.Lower, e.Upper)
}

// ConversionError is returned by converters that could not produce a value.
// Its message is the diagnostic shown to the user; the token that failed and
// the underlying cause are kept for logging.
type ConversionError struct {
	Token string
	Err   error
}

func (e *ConversionError) Error() string {
	return MsgConversion
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
