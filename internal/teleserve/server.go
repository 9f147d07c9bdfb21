// Copyright 2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

// Package teleserve serves minikey programs over telnet. Every connection gets
// its own Program, so sessions never share command state.
package teleserve

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"

	"github.com/sandia-minimega/minikey/pkg/minikey"
	log "github.com/sandia-minimega/minikey/pkg/minilog"

	"github.com/ziutek/telnet"
	"golang.org/x/net/netutil"
)

// ProgramFunc builds the Program for a single session.
type ProgramFunc func(in minikey.TokenReader, out io.Writer) *minikey.Program

type Server struct {
	NewProgram ProgramFunc

	// MaxSessions caps the number of concurrent sessions, 0 for no limit.
	// Extra connections wait in the accept queue.
	MaxSessions int
}

// Serve accepts connections on l until ctx is canceled, which closes the
// listener and any open sessions. Serve waits for the sessions to finish
// before returning.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	if s.NewProgram == nil {
		return errors.New("teleserve: nil NewProgram")
	}

	if s.MaxSessions > 0 {
		l = netutil.LimitListener(l, s.MaxSessions)
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			l.Close()
		case <-done:
		}
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	log.Info("serving sessions on %v", l.Addr())

	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handle(ctx, conn)
		}()
	}
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	remote := conn.RemoteAddr()
	log.Info("session started: %v", remote)

	tc, err := telnet.NewConn(conn)
	if err != nil {
		log.Error("session %v: %v", remote, err)
		return
	}
	tc.SetUnixWriteMode(true)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	p := s.NewProgram(minikey.NewScanner(tc), tc)
	if err := p.Run(); err != nil && ctx.Err() == nil {
		log.Warn("session %v: %v", remote, err)
	}

	log.Info("session ended: %v", remote)
}
