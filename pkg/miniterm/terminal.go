// Copyright 2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

// Package miniterm adapts liner, a readline-like line editor, into a
// minikey.TokenReader so that interactive sessions get line editing, history
// and tab completion of command keys.
package miniterm

import (
	"errors"
	"io"
	"os"
	"strings"

	log "github.com/sandia-minimega/minikey/pkg/minilog"

	"github.com/peterh/liner"
	"golang.org/x/crypto/ssh/terminal"
)

// lineEditor is the part of liner.State that Terminal uses.
type lineEditor interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Terminal reads lines from a line editor and hands them out one token at a
// time. The prompt given to SetPrompt is shown for the next line read only;
// argument values that have to be read from a fresh line get no prompt.
type Terminal struct {
	editor lineEditor
	state  *liner.State // nil when editor is not liner

	prompt string
	tokens []string
}

// IsTerminal reports whether f is an interactive terminal that liner can
// drive.
func IsTerminal(f *os.File) bool {
	return terminal.IsTerminal(int(f.Fd())) && liner.TerminalSupported()
}

// New puts stdin into raw mode and returns a Terminal reading from it.
// Callers must Close the Terminal to restore the terminal mode.
func New() *Terminal {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetTabCompletionStyle(liner.TabPrints)

	return &Terminal{editor: state, state: state}
}

// SetCompleter completes the first word of a line from the keys returned by
// fn.
func (t *Terminal) SetCompleter(fn func() []string) {
	if t.state == nil {
		return
	}

	t.state.SetCompleter(func(line string) []string {
		var res []string
		for _, k := range fn() {
			if strings.HasPrefix(k, line) {
				res = append(res, k)
			}
		}

		return res
	})
}

func (t *Terminal) SetPrompt(prompt string) {
	t.prompt = prompt
}

func (t *Terminal) ReadToken() (string, error) {
	for len(t.tokens) == 0 {
		line, err := t.editor.Prompt(t.prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			log.Debugln("prompt aborted")
			continue
		} else if err != nil {
			return "", err
		}

		log.Debug("got line from terminal: `%v`", line)

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		t.editor.AppendHistory(line)
		t.tokens = strings.Fields(line)
		t.prompt = ""
	}

	token := t.tokens[0]
	t.tokens = t.tokens[1:]

	return token, nil
}

// LoadHistory reads previously saved history.
func (t *Terminal) LoadHistory(r io.Reader) error {
	if t.state == nil {
		return nil
	}

	_, err := t.state.ReadHistory(r)
	return err
}

// SaveHistory writes the session history.
func (t *Terminal) SaveHistory(w io.Writer) error {
	if t.state == nil {
		return nil
	}

	_, err := t.state.WriteHistory(w)
	return err
}

// Close restores the terminal mode.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}

	return t.state.Close()
}
