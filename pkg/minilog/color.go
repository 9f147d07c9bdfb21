// Copyright 2015-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minilog

// Some color constants for output
const (
	Reset = "\x1b[0m"

	FgRed    = "\x1b[31m"
	FgGreen  = "\x1b[32m"
	FgYellow = "\x1b[33m"
	FgBlue   = "\x1b[34m"
)

var (
	colorLine  = FgYellow
	colorDebug = FgBlue
	colorInfo  = FgGreen
	colorWarn  = FgYellow
	colorError = FgRed
	colorFatal = FgRed
)
