// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minikey

import (
	"errors"
	"fmt"

	log "github.com/sandia-minimega/minikey/pkg/minilog"
)

type typedCommand[T any] struct {
	validate Validator[T]
	convert  Converter[T]
}

// Option configures the argument of a typed command.
type Option[T any] func(*typedCommand[T])

// Validate sets the validator for a typed command. The default is Any.
func Validate[T any](v Validator[T]) Option[T] {
	return func(c *typedCommand[T]) {
		c.validate = v
	}
}

// Convert sets the converter for a typed command. The default is
// DefaultConverter.
func Convert[T any](fn Converter[T]) Option[T] {
	return func(c *typedCommand[T]) {
		c.convert = fn
	}
}

// AddTyped registers a command whose key is followed by one value of type T.
// When the key is read, the value is converted and validated and, if both
// succeed, passed to call. The help text for the command is the description
// followed by the validator's description.
func AddTyped[T any](p *Program, key, description string, call func(T), opts ...Option[T]) error {
	if call == nil {
		return ErrNilCall
	}

	c := &typedCommand[T]{
		validate: Any[T]{},
		convert:  DefaultConverter[T],
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.validate == nil {
		c.validate = Any[T]{}
	}
	if c.convert == nil {
		c.convert = DefaultConverter[T]
	}

	wrapped := func() {
		value, err := c.convert(p.in)
		if err != nil {
			var convErr *ConversionError
			if errors.As(err, &convErr) {
				log.Debug("%q: unable to convert %q: %v", key, convErr.Token, convErr.Err)
			}

			fmt.Fprintln(p.out, err)
			return
		}

		if !c.validate.Check(value) {
			log.Debug("%q: rejected %v", key, value)
			fmt.Fprintln(p.out, MsgInvalidInput)
			return
		}

		call(value)
	}

	return p.addCommand(&Command{
		Key:         key,
		Description: description + ", " + c.validate.Describe(),
		Call:        wrapped,
	})
}
