// Copyright 2015-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minilog

import (
	"fmt"
	"os"
)

// Settings consumed by Init. Binaries bind these to their flags.
var (
	LevelFlag   = WARN
	VerboseFlag = false
	ColorFlag   = false
	FileFlag    = ""
)

// Init sets up the default loggers from the flag settings: "stdio" when
// VerboseFlag is set and "file" when FileFlag names a log file.
func Init() error {
	if VerboseFlag {
		AddLogger("stdio", os.Stderr, LevelFlag, ColorFlag)
	} else {
		DelLogger("stdio")
	}

	if FileFlag != "" {
		f, err := os.OpenFile(FileFlag, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0660)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}

		AddLogger("file", f, LevelFlag, false)
	}

	return nil
}
