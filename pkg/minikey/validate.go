// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minikey

import (
	"cmp"
	"fmt"
	"strings"
)

// Validator checks a converted value before it is handed to a command. It
// describes the values it accepts for the help listing.
type Validator[T any] interface {
	Check(value T) bool
	Describe() string
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// Any accepts every value.
type Any[T any] struct{}

func (Any[T]) Check(T) bool {
	return true
}

func (Any[T]) Describe() string {
	return "of type " + typeName[T]() + " of any value"
}

// Range accepts values between two inclusive bounds.
type Range[T cmp.Ordered] struct {
	lower, upper T
}

// NewRange returns a Range over [lower, upper]. It fails if lower > upper.
func NewRange[T cmp.Ordered](lower, upper T) (*Range[T], error) {
	if lower > upper {
		return nil, &RangeError{Lower: lower, Upper: upper}
	}

	return &Range[T]{lower: lower, upper: upper}, nil
}

// MustRange is NewRange that panics on inverted bounds, for use in
// initializers where the bounds are constants.
func MustRange[T cmp.Ordered](lower, upper T) *Range[T] {
	r, err := NewRange(lower, upper)
	if err != nil {
		panic(err)
	}

	return r
}

func (r *Range[T]) Check(value T) bool {
	return value >= r.lower && value <= r.upper
}

// Bounds returns the inclusive lower and upper bounds.
func (r *Range[T]) Bounds() (T, T) {
	return r.lower, r.upper
}

func (r *Range[T]) Describe() string {
	lower, upper := r.Bounds()
	return fmt.Sprintf("of type %s in [%v,%v]", typeName[T](), lower, upper)
}

// Set accepts values that are members of a fixed list. The list keeps the
// order it was given in for display; duplicates are harmless.
type Set[T comparable] struct {
	values []T
}

func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{values: make([]T, len(values))}
	copy(s.values, values)

	return s
}

func (s *Set[T]) Check(value T) bool {
	for _, v := range s.values {
		if v == value {
			return true
		}
	}

	return false
}

// Values returns a copy of the allowed values.
func (s *Set[T]) Values() []T {
	res := make([]T, len(s.values))
	copy(res, s.values)

	return res
}

func (s *Set[T]) Describe() string {
	vals := make([]string, len(s.values))
	for i, v := range s.values {
		vals[i] = fmt.Sprint(v)
	}

	return fmt.Sprintf("of type %s in {%s}", typeName[T](), strings.Join(vals, ","))
}
