// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package calc

import (
	"errors"
	"strings"

	"github.com/platinasystems/calc/ops"
	"github.com/platinasystems/log"
)

const (
	InvalidInput     = "Invalid input. Please follow the format: <operation> <number> <number>"
	UnknownOperation = "Unknown operation: Please enter: add, subtract, multiply, or divide"
)

// Eval returns the text to print for the given input line and whether it
// ends the session.
func Eval(line string) (out string, done bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Print("err", "calc: ", r)
			out, done = InvalidInput, false
		}
	}()
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "exit" {
		return Goodbye, true
	}
	args := strings.Fields(line)
	if len(args) != 3 {
		return InvalidInput, false
	}
	a, err := ops.ParseOperand(args[1])
	if err != nil {
		return InvalidInput, false
	}
	b, err := ops.ParseOperand(args[2])
	if err != nil {
		return InvalidInput, false
	}
	f, err := ops.Lookup(args[0])
	if err != nil {
		return UnknownOperation, false
	}
	v, err := f(a, b)
	if errors.Is(err, ops.ErrDivisionByZero) {
		return ops.ErrDivisionByZero.Error(), false
	} else if err != nil {
		return InvalidInput, false
	}
	return "Result: " + ops.Format(v), false
}
