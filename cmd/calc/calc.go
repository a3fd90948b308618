// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package calc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/platinasystems/calc/cmd/calc/internal/liner"
	"github.com/platinasystems/calc/cmd/calc/internal/notliner"
	"github.com/platinasystems/calc/lang"
	"github.com/platinasystems/calc/ops"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
)

const (
	Welcome = "Welcome to the REPL calculator!"
	Goodbye = "exiting calculator"

	DefaultPrompt = `Enter an operation (add, subtract, multiply, divide), followed by two numbers. Enter "exit" to quit: `
)

// Prompter is a source of input lines.
type Prompter interface {
	Prompt(string) (string, error)
	Close()
}

type Command struct {
	// Prompt, if set, replaces DefaultPrompt.
	Prompt string

	trace io.Writer
}

func (*Command) String() string { return "calc" }

func (*Command) Usage() string {
	return "calc [-x] [-no-liner] [-] [-p PROMPT]"
}

func (*Command) Help(...string) string {
	return "OPERATION NUMBER NUMBER\n\tOPERATION := { " +
		strings.Join(ops.Names(), " | ") + " }"
}

func (*Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "interactive arithmetic calculator",
		lang.FrFR: "calculatrice arithmétique interactive",
	}
}

func (*Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Repeatedly prompt for and evaluate commands of this syntax:
		OPERATION NUMBER NUMBER

	Where OPERATION is one of: add, subtract, multiply, or divide.
	Input is case insensitive and leading and trailing spaces are
	ignored. Each result is printed as:
		Result: VALUE

	Enter "exit" to quit.

OPTIONS
	-x	trace each evaluated command on stderr
	-no-liner
		don't edit the command line, even on a terminal
	-	read commands from stdin without prompting
	-p PROMPT
		replace the default prompt

EXAMPLES
	add 10 5
	Result: 15.0

	divide 8 0
	Division by zero is not allowed.`,
	}
}

func (c *Command) Main(args ...string) error {
	flag, args := flags.New(args, "-x", "-", "-no-liner")
	parm, args := parms.New(args, "-p")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	prompt := c.Prompt
	if s := parm.ByName["-p"]; len(s) > 0 {
		prompt = s
	}
	if len(prompt) == 0 {
		prompt = DefaultPrompt
	}
	if flag.ByName["-x"] {
		c.trace = os.Stderr
	}

	var prompter Prompter
	switch {
	case flag.ByName["-"]:
		prompter = notliner.New(os.Stdin, nil)
	case flag.ByName["-no-liner"], !isatty.IsTerminal(os.Stdin.Fd()):
		prompter = notliner.New(os.Stdin, os.Stdout)
	default:
		prompter = liner.New(ops.Names()...)
	}
	defer prompter.Close()

	return c.Run(prompter, os.Stdout, prompt)
}

// Run the read-eval-print loop until "exit" or the end of input.
func (c *Command) Run(prompter Prompter, w io.Writer, prompt string) error {
	fmt.Fprintln(w, Welcome)
	for {
		line, err := prompter.Prompt(prompt)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			log.Print("err", c, ": ", err)
			return err
		}
		out, done := Eval(line)
		if c.trace != nil {
			fmt.Fprintf(c.trace, "+ %s\n", line)
		}
		fmt.Fprintln(w, out)
		if done {
			return nil
		}
	}
}
