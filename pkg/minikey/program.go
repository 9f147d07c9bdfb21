// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minikey

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sandia-minimega/minikey/pkg/minilog"
)

// Config holds the host-settable behavior of a Program.
type Config struct {
	// PrintHelp prints the help listing when Run starts
	PrintHelp bool `mapstructure:"print-help"`
	// ReadyIndicator is the prompt written before every key is read, "" for
	// no prompt
	ReadyIndicator string `mapstructure:"prompt"`
	// ExitKey ends Run
	ExitKey string `mapstructure:"exit-key"`
}

var DefaultConfig = Config{
	PrintHelp:      true,
	ReadyIndicator: "> ",
	ExitKey:        "q",
}

// Pager displays the help listing. minipager.DefaultPager satisfies it.
type Pager interface {
	Page(w io.Writer, output string)
}

// Program owns a set of commands and the input and output they use. A
// Program is not safe for concurrent use.
type Program struct {
	description string

	in  TokenReader
	out io.Writer

	commands *registry
	config   Config
	pager    Pager

	running bool
}

// New creates a Program reading from in and writing to out, with the "h"
// help command already registered. A nil in reads stdin and a nil out writes
// stdout.
func New(description string, in TokenReader, out io.Writer) *Program {
	if in == nil {
		in = NewScanner(os.Stdin)
	}
	if out == nil {
		out = os.Stdout
	}

	p := &Program{
		description: description,
		in:          in,
		out:         out,
		commands:    newRegistry(),
		config:      DefaultConfig,
	}

	p.AddCommand("h", "print this help", p.PrintHelp)

	return p
}

// Description returns the text shown at the top of the help listing.
func (p *Program) Description() string {
	return p.description
}

func (p *Program) Config() Config {
	return p.config
}

// Configure replaces all settings at once.
func (p *Program) Configure(c Config) {
	p.config = c
}

// SetPrintHelp sets whether help should be printed when Run starts.
func (p *Program) SetPrintHelp(on bool) {
	p.config.PrintHelp = on
}

// SetReadyIndicator sets the prompt, use "" for no prompt.
func (p *Program) SetReadyIndicator(indicator string) {
	p.config.ReadyIndicator = indicator
}

// SetExitKey sets the key that ends Run. The exit key is checked before the
// registered commands.
func (p *Program) SetExitKey(key string) {
	p.config.ExitKey = key
}

func (p *Program) SetPager(pager Pager) {
	p.pager = pager
}

// Run reads keys and dispatches them until the exit key is read or the input
// is exhausted, both of which return nil. Invalid keys and bad arguments are
// reported on the output and do not stop the loop. Any other read error ends
// the loop and is returned.
func (p *Program) Run() error {
	if p.running {
		return ErrRunning
	}

	p.running = true
	defer func() { p.running = false }()

	if p.config.PrintHelp {
		p.PrintHelp()
	}

	for {
		p.prompt()

		key, err := p.in.ReadToken()
		if errors.Is(err, io.EOF) {
			log.Debug("end of input")
			return nil
		} else if err != nil {
			return fmt.Errorf("read command: %w", err)
		}

		if key == p.config.ExitKey {
			log.Debug("exit key %q", key)
			return nil
		}

		c, ok := p.commands.lookup(key)
		if !ok {
			log.Debug("invalid command %q", key)
			fmt.Fprintln(p.out, MsgInvalidCommand)
			continue
		}

		log.Debug("running command %q", key)
		c.Call()
	}
}

func (p *Program) prompt() {
	if pr, ok := p.in.(Prompter); ok {
		pr.SetPrompt(p.config.ReadyIndicator)
		return
	}

	if p.config.ReadyIndicator != "" {
		io.WriteString(p.out, p.config.ReadyIndicator)
	}
}
