// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package liner is a calculator prompter wrapping Peter Harris'
// <pharris@opentext.com> "Go line editor" <github.com:peterh/liner>.
package liner

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/platinasystems/calc/cmd/calc/internal/notliner"
	"github.com/platinasystems/liner"
)

const historyLen = 1 << 6

// editor is the subset of *liner.State used by Liner.
type editor interface {
	Prompt(string) (string, error)
	ReadHistory(io.Reader) (int, error)
	ClearHistory()
	Close() error
}

type Liner struct {
	history struct {
		buf   *bytes.Buffer
		lines []string
		i     int
	}
	fallback *notliner.Prompter
	s        editor
	words    []string
}

// New returns a terminal prompter that completes the first word of each
// line with one of the given words.
func New(words ...string) *Liner {
	l := new(Liner)
	l.history.buf = new(bytes.Buffer)
	l.history.lines = make([]string, 0, historyLen)
	l.words = words
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		l.fallback = notliner.New(os.Stdin, os.Stdout)
	} else {
		s := liner.NewLiner()
		s.SetCtrlCAborts(true)
		s.SetCompleter(l.complete)
		s.SetHelper(l.help)
		l.s = s
	}
	return l
}

// Close restores the terminal.
func (l *Liner) Close() {
	if l.s != nil {
		l.s.Close()
		l.s = nil
	}
	if l.fallback != nil {
		l.fallback.Close()
	}
}

// Returns all completions of the given line.
func (l *Liner) complete(line string) (lines []string) {
	word := strings.TrimLeft(line, " \t")
	if strings.ContainsAny(word, " \t") {
		return
	}
	lead := line[:len(line)-len(word)]
	word = strings.ToLower(word)
	for _, w := range l.words {
		if strings.HasPrefix(w, word) {
			lines = append(lines, lead+w)
		}
	}
	if len(lines) == 1 {
		lines[0] += " "
	}
	return
}

// Prints the expected syntax.
func (l *Liner) help(line string) {
	fmt.Println()
	fmt.Print("{ ", strings.Join(l.words, " | "), " } NUMBER NUMBER\n")
	fmt.Println("exit")
}

// Prompt returns io.EOF for an aborted (^C) or ended (^D) prompt.
func (l *Liner) Prompt(prompt string) (string, error) {
	if l.fallback != nil {
		return l.fallback.Prompt(prompt)
	}

	if len(l.history.lines) > 0 {
		l.history.buf.Reset()
		for _, s := range l.replay() {
			fmt.Fprintln(l.history.buf, s)
		}
		l.s.ClearHistory()
		l.s.ReadHistory(l.history.buf)
	}
	line, err := l.s.Prompt(prompt)

	switch err {
	case nil:
		if len(strings.TrimSpace(line)) > 0 {
			l.remember(line)
		}
	case liner.ErrPromptAborted:
		err = io.EOF
	case liner.ErrNotTerminalOutput:
		l.s.Close()
		l.s = nil
		l.fallback = notliner.New(os.Stdin, os.Stdout)
		line, err = l.fallback.Prompt(prompt)
	}
	return line, err
}

func (l *Liner) remember(line string) {
	if len(l.history.lines) < cap(l.history.lines) {
		l.history.lines = append(l.history.lines, line)
	} else {
		l.history.lines[l.history.i] = line
	}
	l.history.i++
	l.history.i &= cap(l.history.lines) - 1
}

// Returns the remembered lines, oldest first.
func (l *Liner) replay() []string {
	if len(l.history.lines) < cap(l.history.lines) {
		return l.history.lines
	}
	lines := make([]string, 0, len(l.history.lines))
	lines = append(lines, l.history.lines[l.history.i:]...)
	return append(lines, l.history.lines[:l.history.i]...)
}
