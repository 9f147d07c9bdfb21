// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minikey

import (
	"fmt"
	"strconv"
	"strings"
)

// Converter reads one value for a typed command from the input. Converters
// must consume their tokens even when they fail so that the next read starts
// after the bad input.
type Converter[T any] func(in TokenReader) (T, error)

// DefaultConverter reads a single token and parses it as a T. Failures,
// including running out of input, are reported as a *ConversionError after
// the token has been consumed.
func DefaultConverter[T any](in TokenReader) (T, error) {
	var value T

	token, err := in.ReadToken()
	if err != nil {
		return value, &ConversionError{Err: err}
	}

	if err := parseToken(token, &value); err != nil {
		return value, &ConversionError{Token: token, Err: err}
	}

	return value, nil
}

func parseToken(token string, dst interface{}) error {
	switch v := dst.(type) {
	case *string:
		*v = token
	case *bool:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return err
		}
		*v = b
	case *int:
		i, err := strconv.ParseInt(token, 10, strconv.IntSize)
		if err != nil {
			return err
		}
		*v = int(i)
	case *int8:
		i, err := strconv.ParseInt(token, 10, 8)
		if err != nil {
			return err
		}
		*v = int8(i)
	case *int16:
		i, err := strconv.ParseInt(token, 10, 16)
		if err != nil {
			return err
		}
		*v = int16(i)
	case *int32:
		i, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return err
		}
		*v = int32(i)
	case *int64:
		i, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return err
		}
		*v = i
	case *uint:
		i, err := strconv.ParseUint(token, 10, strconv.IntSize)
		if err != nil {
			return err
		}
		*v = uint(i)
	case *uint8:
		i, err := strconv.ParseUint(token, 10, 8)
		if err != nil {
			return err
		}
		*v = uint8(i)
	case *uint16:
		i, err := strconv.ParseUint(token, 10, 16)
		if err != nil {
			return err
		}
		*v = uint16(i)
	case *uint32:
		i, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return err
		}
		*v = uint32(i)
	case *uint64:
		i, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return err
		}
		*v = i
	case *float32:
		f, err := strconv.ParseFloat(token, 32)
		if err != nil {
			return err
		}
		*v = float32(f)
	case *float64:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return err
		}
		*v = f
	default:
		// named types and fmt.Scanner implementations, the whole token must
		// be consumed
		r := strings.NewReader(token)
		if _, err := fmt.Fscan(r, dst); err != nil {
			return err
		}
		if r.Len() > 0 {
			return fmt.Errorf("trailing input in %q", token)
		}
	}

	return nil
}
