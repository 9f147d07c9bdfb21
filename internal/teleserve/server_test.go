// Copyright 2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package teleserve

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/sandia-minimega/minikey/pkg/minikey"
)

func newTestProgram(in minikey.TokenReader, out io.Writer) *minikey.Program {
	p := minikey.New("telnet test", in, out)
	p.SetPrintHelp(false)
	p.SetReadyIndicator("")

	minikey.AddTyped(p, "e", "echo", func(v int) {
		fmt.Fprintf(out, "got %v\n", v)
	}, minikey.Validate[int](minikey.MustRange(0, 10)))

	return p
}

func startServer(t *testing.T) (string, context.CancelFunc, <-chan error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("unable to listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{NewProgram: newTestProgram, MaxSessions: 2}

	errs := make(chan error, 1)
	go func() {
		errs <- s.Serve(ctx, l)
	}()

	return l.Addr().String(), cancel, errs
}

func TestSession(t *testing.T) {
	addr, cancel, errs := startServer(t)
	defer cancel()

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("unable to dial: %v", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(10 * time.Second))

	if _, err := io.WriteString(conn, "e 3\r\ne 11\r\nx\r\ne 4\r\nq\r\n"); err != nil {
		t.Fatal(err)
	}

	// the server closes the connection when the program exits
	b, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("unable to read: %v", err)
	}

	want := "got 3\r\n" + minikey.MsgInvalidInput + "\r\n" + minikey.MsgInvalidCommand + "\r\ngot 4\r\n"
	if got := string(b); got != want {
		t.Errorf("got %q, wanted %q", got, want)
	}

	cancel()

	select {
	case err := <-errs:
		if err != nil {
			t.Errorf("serve failed: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestCancelClosesSessions(t *testing.T) {
	addr, cancel, errs := startServer(t)

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("unable to dial: %v", err)
	}
	defer conn.Close()

	// make sure the session is running before canceling
	conn.SetDeadline(time.Now().Add(10 * time.Second))
	io.WriteString(conn, "e 1\r\n")

	buf := make([]byte, len("got 1\r\n"))
	if _, err := io.ReadFull(conn, buf); err != nil {
		t.Fatalf("unable to read: %v", err)
	}

	cancel()

	select {
	case err := <-errs:
		if err != nil {
			t.Errorf("serve failed: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return after cancel")
	}

	if b, _ := io.ReadAll(conn); strings.Contains(string(b), "got") {
		t.Errorf("unexpected output after cancel: %q", b)
	}
}
