// Copyright 2015-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minipager

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	log "github.com/sandia-minimega/minikey/pkg/minilog"

	"golang.org/x/crypto/ssh/terminal"
)

type Pager interface {
	Page(w io.Writer, output string)
}

var DefaultPager Pager = &defaultPager{}

type defaultPager struct{}

// Page writes output to w. When w is a terminal and output is more than two
// screens tall, the output is sent to $PAGER (less by default) instead.
func (defaultPager) Page(w io.Writer, output string) {
	if output == "" {
		return
	}

	rows := termRows(w)
	lines := strings.Count(output, "\n")

	if rows <= 0 || lines < 2*rows {
		io.WriteString(w, output)
		return
	}

	fmt.Fprintf(w, "-- sending %v lines to $PAGER --\n", lines)

	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = "less"
	}

	cmd := exec.Command(pager)
	cmd.Stdin = strings.NewReader(output)
	cmd.Stdout = w

	if err := cmd.Run(); err != nil {
		log.Error("problem paging: %s", err)
		io.WriteString(w, output)
	}
}

// termRows returns the height of the terminal behind w or 0 if w is not a
// terminal.
func termRows(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !terminal.IsTerminal(int(f.Fd())) {
		return 0
	}

	_, rows, err := terminal.GetSize(int(f.Fd()))
	if err != nil {
		log.Error("unable to determine terminal size: %v", err)
		return 0
	}

	return rows
}
