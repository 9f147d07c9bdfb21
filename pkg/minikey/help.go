// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minikey

import (
	"bytes"
	"fmt"
	"io"
)

// Help renders the help listing: the description, each command in
// registration order and the exit key.
func (p *Program) Help() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "\n%s\n\n", p.Description())
	buf.WriteString("The following commands are accepted:\n")

	for _, c := range p.commands.list() {
		fmt.Fprintf(&buf, "%s %s\n", c.Key, c.Description)
	}

	fmt.Fprintf(&buf, "%s exit the program\n\n", p.config.ExitKey)

	return buf.String()
}

// PrintHelp writes the help listing to the output, through the pager if one
// is set.
func (p *Program) PrintHelp() {
	if p.pager != nil {
		p.pager.Page(p.out, p.Help())
		return
	}

	io.WriteString(p.out, p.Help())
}
