// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package calc

import (
	"fmt"
	"testing"
)

func TestEval(t *testing.T) {
	for _, tt := range []struct {
		line string
		out  string
		done bool
	}{
		{"exit", Goodbye, true},
		{"Exit\n", Goodbye, true},
		{"exit now", InvalidInput, false},
		{"add 1e16 0", "Result: 1e+16", false},
		{"multiply 1e-3 1e-3", "Result: 1e-06", false},
		{"add 1_000 1", "Result: 1001.0", false},
		{"add inf 1", "Result: inf", false},
		{"subtract inf inf", "Result: nan", false},
		{"add -NaN 1", "Result: nan", false},
		{"divide 0 -4", "Result: -0.0", false},
		{"divide 1 -0", "Division by zero is not allowed.", false},
		{"add 0x10 1", InvalidInput, false},
		{"add 1 2 3", InvalidInput, false},
		{"power 2 8", UnknownOperation, false},
	} {
		out, done := Eval(tt.line)
		if out != tt.out || done != tt.done {
			t.Errorf("Eval(%q) = %q, %v; expected %q, %v",
				tt.line, out, done, tt.out, tt.done)
		}
	}
}

func ExampleEval() {
	for _, line := range []string{
		"add 10 5",
		"subtract -1 2.5",
		"multiply 10 5",
		"divide -1 2.5",
		"divide 8 0",
		"min 4 5",
		"add 3 4 extra-arg",
		"exit",
	} {
		out, _ := Eval(line)
		fmt.Println(out)
	}
	// Output:
	// Result: 15.0
	// Result: -3.5
	// Result: 50.0
	// Result: -0.4
	// Division by zero is not allowed.
	// Unknown operation: Please enter: add, subtract, multiply, or divide
	// Invalid input. Please follow the format: <operation> <number> <number>
	// exiting calculator
}

func ExampleCommand() {
	c := &Command{}
	fmt.Println(c)
	fmt.Println(c.Usage())
	fmt.Println(c.Apropos())
	// Output:
	// calc
	// calc [-x] [-no-liner] [-] [-p PROMPT]
	// interactive arithmetic calculator
}
