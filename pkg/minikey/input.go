// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minikey

import (
	"bufio"
	"io"
	"math"
)

// TokenReader supplies whitespace-delimited tokens to a Program. ReadToken
// returns io.EOF once the input is exhausted.
type TokenReader interface {
	ReadToken() (string, error)
}

// Prompter is implemented by inputs that draw their own prompt, such as line
// editors. Run hands such inputs the ready indicator instead of writing it to
// the output.
type Prompter interface {
	SetPrompt(prompt string)
}

// Scanner reads tokens from an io.Reader. Tokens are separated by ASCII
// whitespace (space, \t, \n, \v, \f, \r); other Unicode spaces such as
// U+00A0 are part of a token. Tokens have no length limit.
type Scanner struct {
	s *bufio.Scanner
}

func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), math.MaxInt)
	s.Split(scanWords)

	return &Scanner{s: s}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// scanWords is bufio.ScanWords restricted to ASCII whitespace.
func scanWords(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		start++
	}

	for i := start; i < len(data); i++ {
		if isSpace(data[i]) {
			return i + 1, data[start:i], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	// request more data
	return start, nil, nil
}

func (s *Scanner) ReadToken() (string, error) {
	if s.s.Scan() {
		return s.s.Text(), nil
	}

	if err := s.s.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}
