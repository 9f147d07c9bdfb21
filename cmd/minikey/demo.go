// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package main

import (
	"fmt"
	"io"

	"github.com/sandia-minimega/minikey/internal/teleserve"
	"github.com/sandia-minimega/minikey/pkg/minikey"
)

const gridSize = 10

type point struct {
	X, Y int
}

// convertPoint reads a point as two integers, x then y.
func convertPoint(in minikey.TokenReader) (point, error) {
	x, err := minikey.DefaultConverter[int](in)
	if err != nil {
		return point{}, err
	}

	y, err := minikey.DefaultConverter[int](in)
	if err != nil {
		return point{}, err
	}

	return point{X: x, Y: y}, nil
}

// onGrid accepts points on the demo grid.
type onGrid struct{}

func (onGrid) Check(p point) bool {
	return p.X >= 0 && p.X < gridSize && p.Y >= 0 && p.Y < gridSize
}

func (onGrid) Describe() string {
	return fmt.Sprintf("of type x y on a %vx%v grid", gridSize, gridSize)
}

// newDemoProgram registers the demo commands on a new Program.
func newDemoProgram(in minikey.TokenReader, out io.Writer) *minikey.Program {
	p := minikey.New("This is a program for demonstration purposes", in, out)

	// commands are fixed, registration errors are programming errors
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	must(minikey.AddTyped(p, "a", "some help text for a", func(s string) {
		fmt.Fprintf(out, "called with: %v\n", s)
	}))

	must(minikey.AddTyped(p, "b", "some help text for b", func(f float32) {
		fmt.Fprintf(out, "called with: %v\n", f)
	}, minikey.Validate[float32](minikey.MustRange[float32](0, 5))))

	must(minikey.AddTyped(p, "c", "some help text for c", func(i int) {
		fmt.Fprintf(out, "called with: %v\n", i)
	}, minikey.Validate[int](minikey.NewSet(2, 4, 8, 16))))

	var pos point
	must(minikey.AddTyped(p, "m", "move the cursor", func(to point) {
		fmt.Fprintf(out, "moved from %v,%v to %v,%v\n", pos.X, pos.Y, to.X, to.Y)
		pos = to
	}, minikey.Convert[point](convertPoint), minikey.Validate[point](onGrid{})))

	must(p.AddCommand("p", "print something", func() {
		fmt.Fprintln(out, "prints some useful value")
	}))

	must(p.AddCommand("l", "show recent log messages", func() {
		for _, line := range logRing.Dump() {
			io.WriteString(out, line)
		}
	}))

	return p
}

func sessionProgram(cfg minikey.Config) teleserve.ProgramFunc {
	return func(in minikey.TokenReader, out io.Writer) *minikey.Program {
		p := newDemoProgram(in, out)
		p.Configure(cfg)

		return p
	}
}
