// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// This is the calculator program; run without arguments, it prompts for
// operations to evaluate until "exit".
package main

import (
	"fmt"
	"os"

	"github.com/platinasystems/calc/cmd/arith"
	calccmd "github.com/platinasystems/calc/cmd/calc"
	"github.com/platinasystems/calc/goes"
	"github.com/platinasystems/calc/lang"
)

func Goes() *goes.Goes {
	g := goes.New("calc")
	g.APROPOS = lang.Alt{
		lang.EnUS: "arithmetic calculator",
	}
	g.Default = "calc"
	g.Plot(new(calccmd.Command))
	g.Plot(arith.New()...)
	return g
}

func main() {
	if err := Goes().Main(os.Args[1:]...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
