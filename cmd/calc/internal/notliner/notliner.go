// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package notliner provides an alternative calculator prompter for scripts,
// pipes, and tty's unsupported by liner.
package notliner

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Prompter struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// New returns a Prompter of lines from r. Prompts are printed to w unless
// it's nil.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{bufio.NewScanner(r), w}
}

func (p *Prompter) Close() {
}

func (p *Prompter) Prompt(prompt string) (string, error) {
	if p.w != nil && len(prompt) > 0 {
		fmt.Fprint(p.w, prompt)
	}
	if p.scanner.Scan() {
		return strings.TrimSuffix(p.scanner.Text(), "\r"), nil
	}
	err := p.scanner.Err()
	if err == nil {
		err = io.EOF
	}
	return "", err
}
