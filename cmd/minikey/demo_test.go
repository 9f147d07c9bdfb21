// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sandia-minimega/minikey/pkg/minikey"
)

func runDemo(t *testing.T, input string) string {
	t.Helper()

	var out bytes.Buffer

	p := newDemoProgram(minikey.NewScanner(strings.NewReader(input)), &out)
	p.SetPrintHelp(false)
	p.SetReadyIndicator("")

	if err := p.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	return out.String()
}

func TestDemoCommands(t *testing.T) {
	inputs := []struct {
		input string
		want  string
	}{
		{"a hello", "called with: hello\n"},
		{"b 2.5 b 6", "called with: 2.5\n" + minikey.MsgInvalidInput + "\n"},
		{"c 8 c 3", "called with: 8\n" + minikey.MsgInvalidInput + "\n"},
		{"c eight", minikey.MsgConversion + "\n"},
		{"p", "prints some useful value\n"},
		{"m 1 2 m 3 4", "moved from 0,0 to 1,2\nmoved from 1,2 to 3,4\n"},
		{"m 10 0", minikey.MsgInvalidInput + "\n"},
		{"m 1 y p", minikey.MsgConversion + "\nprints some useful value\n"},
		{"z q p", minikey.MsgInvalidCommand + "\n"},
	}

	for _, v := range inputs {
		if got := runDemo(t, v.input); got != v.want {
			t.Errorf("input `%s`: got %q, wanted %q", v.input, got, v.want)
		}
	}
}

func TestDemoHelp(t *testing.T) {
	p := newDemoProgram(minikey.NewScanner(strings.NewReader("")), &bytes.Buffer{})

	help := p.Help()
	for _, want := range []string{
		"c some help text for c, of type int in {2,4,8,16}\n",
		"b some help text for b, of type float32 in [0,5]\n",
		"m move the cursor, of type x y on a 10x10 grid\n",
		"q exit the program\n",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing `%s`:\n%s", want, help)
		}
	}
}

func TestProgramConfig(t *testing.T) {
	cfg, err := programConfig()
	if err != nil {
		t.Fatalf("default config rejected: %v", err)
	}

	if cfg != minikey.DefaultConfig {
		t.Errorf("got %+v, wanted %+v", cfg, minikey.DefaultConfig)
	}
}
