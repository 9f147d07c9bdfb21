// Copyright 2017-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minilog

import (
	"container/ring"
	"fmt"
	"sync"
	"time"
)

// Ring keeps the most recent log lines in memory so that an interactive
// session can show them without a log file.
type Ring struct {
	size int

	// guards below
	mu sync.Mutex
	r  *ring.Ring
}

func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}

	return &Ring{
		r:    ring.New(size),
		size: size,
	}
}

// Println mimics log.Logger with log.LstdFlags: each entry is prefixed with
// the local date and time.
func (l *Ring) Println(v ...interface{}) {
	buf := time.Now().AppendFormat(nil, "2006/01/02 15:04:05 ")
	buf = append(buf, fmt.Sprintln(v...)...)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.r = l.r.Next()
	l.r.Value = string(buf)
}

// Dump returns the log messages from oldest to newest.
func (l *Ring) Dump() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := make([]string, 0, l.size)

	l.r.Next().Do(func(v interface{}) {
		if v == nil {
			return
		}

		res = append(res, v.(string))
	})

	return res
}
