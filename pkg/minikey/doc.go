// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

// The minikey package implements a small interactive key dispatcher. A host
// program registers command keys on a Program, each bound to a callback, and
// then calls Run which reads keys from the input until the exit key is seen or
// the input is exhausted.
//
// Commands come in two flavors:
//
//  p.AddCommand("p", "print something", func() { ... })
//
//  minikey.AddTyped(p, "c", "pick a size", func(v int) { ... },
//      minikey.Validate[int](minikey.NewSet(2, 4, 8, 16)))
//
// A typed command reads one value after its key using a Converter (by default
// one whitespace-delimited token parsed with the type's usual textual format)
// and checks it with a Validator (by default Any) before the callback runs.
// Validators describe themselves so the help listing can show what a command
// accepts:
//
//  c pick a size, of type int in {2,4,8,16}
//
// Bad keys, unconvertible values and rejected values are reported on the
// output and never stop the loop. The "h" key is registered by New and prints
// the help listing.
package minikey
