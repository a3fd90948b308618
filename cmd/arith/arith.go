// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package arith provides a command for each calculator operation that
// prints the result of its two arguments, e.g.
//
//	calc add 10 5
//	15.0
package arith

import (
	"errors"
	"fmt"

	"github.com/platinasystems/calc/lang"
	"github.com/platinasystems/calc/ops"
)

var ErrArgs = errors.New("expected two numbers")

var apropos = map[string]lang.Alt{
	"add": {
		lang.EnUS: "print the sum of two numbers",
	},
	"divide": {
		lang.EnUS: "print the quotient of two numbers",
	},
	"multiply": {
		lang.EnUS: "print the product of two numbers",
	},
	"subtract": {
		lang.EnUS: "print the difference of two numbers",
	},
}

type Command struct {
	Op string
}

// New returns a Command for each operation.
func New() []interface{} {
	names := ops.Names()
	cmds := make([]interface{}, 0, len(names))
	for _, name := range names {
		cmds = append(cmds, Command{name})
	}
	return cmds
}

func (c Command) String() string { return c.Op }

func (c Command) Usage() string { return c.Op + " NUMBER NUMBER" }

func (c Command) Apropos() lang.Alt {
	if alt, found := apropos[c.Op]; found {
		return alt
	}
	return lang.Alt{
		lang.EnUS: c.Op + " two numbers",
	}
}

func (c Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Print the result of the ` + c.Op + ` operation on the given NUMBERs
	with at least one fractional digit, e.g. 15.0

	A NUMBER is a decimal literal that may have a sign, fraction, and
	exponent, e.g. -2.5e3; or one of: inf, nan.`,
	}
}

func (c Command) Main(args ...string) error {
	if len(args) != 2 {
		return fmt.Errorf("%q: %w", args, ErrArgs)
	}
	f, err := ops.Lookup(c.Op)
	if err != nil {
		return err
	}
	a, err := ops.ParseOperand(args[0])
	if err != nil {
		return err
	}
	b, err := ops.ParseOperand(args[1])
	if err != nil {
		return err
	}
	v, err := f(a, b)
	if err != nil {
		return err
	}
	fmt.Println(ops.Format(v))
	return nil
}
