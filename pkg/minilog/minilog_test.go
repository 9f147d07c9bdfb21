// Copyright 2015-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minilog

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMultilog(t *testing.T) {
	sink1 := new(bytes.Buffer)
	sink2 := new(bytes.Buffer)

	AddLogger("sink1", sink1, DEBUG, false)
	AddLogger("sink2", sink2, DEBUG, false)
	defer DelLogger("sink1")
	defer DelLogger("sink2")

	want := "test 123"

	Debugln(want)

	if s := sink1.String(); !strings.Contains(s, want) {
		t.Error("sink1 got:", s)
	}

	if s := sink2.String(); !strings.Contains(s, want) {
		t.Error("sink2 got:", s)
	}
}

func TestLogLevels(t *testing.T) {
	sink1 := new(bytes.Buffer)
	sink2 := new(bytes.Buffer)

	AddLogger("sink1", sink1, DEBUG, false)
	AddLogger("sink2", sink2, INFO, false)
	defer DelLogger("sink1")
	defer DelLogger("sink2")

	Debug("test %v", 123)

	if s := sink1.String(); !strings.Contains(s, "DEBUG minilog_test.go") {
		t.Error("sink1 got:", s)
	}

	if s := sink2.String(); len(s) != 0 {
		t.Error("sink2 got:", s)
	}
}

func TestDelLogger(t *testing.T) {
	sink := new(bytes.Buffer)

	AddLogger("sink", sink, DEBUG, false)

	Debug("test 123")
	if !strings.Contains(sink.String(), "test 123") {
		t.Error("sink got:", sink.String())
	}

	DelLogger("sink")
	sink.Reset()

	Debug("test 456")
	if sink.Len() != 0 {
		t.Error("sink got:", sink.String())
	}

	if _, err := GetLevel("sink"); !errors.Is(err, ErrNoLogger) {
		t.Errorf("expected ErrNoLogger, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	sink := new(bytes.Buffer)

	AddLogger("filtered", sink, DEBUG, false)
	defer DelLogger("filtered")

	if err := Filter("filtered", "noisy"); err != nil {
		t.Fatal(err)
	}

	Info("noisy message")
	Info("quiet message")

	if s := sink.String(); strings.Contains(s, "noisy") || !strings.Contains(s, "quiet") {
		t.Error("sink got:", s)
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{DEBUG, INFO, WARN, ERROR, FATAL} {
		got, err := ParseLevel(l.String())
		if err != nil {
			t.Errorf("unable to parse %v: %v", l, err)
		} else if got != l {
			t.Errorf("got %v, wanted %v", got, l)
		}
	}

	var l Level
	if err := l.Set("loud"); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestRing(t *testing.T) {
	r := NewRing(2)

	if got := r.Dump(); len(got) != 0 {
		t.Fatalf("empty ring dumped %q", got)
	}

	r.Println("one")
	r.Println("two")
	r.Println("three")

	got := r.Dump()
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}

	if !strings.HasSuffix(got[0], "two\n") || !strings.HasSuffix(got[1], "three\n") {
		t.Errorf("out of order: %q", got)
	}
}

func TestRingLogger(t *testing.T) {
	r := NewRing(4)

	AddRing("ring", r, INFO)
	defer DelLogger("ring")

	Debug("dropped")
	Warn("kept %d", 1)

	got := r.Dump()
	if len(got) != 1 || !strings.Contains(got[0], "WARN") || !strings.Contains(got[0], "kept 1") {
		t.Errorf("ring got %q", got)
	}

	if !WillLog(INFO) {
		t.Error("expected WillLog(INFO) with ring at INFO")
	}
}
