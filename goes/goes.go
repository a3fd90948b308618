// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package goes maps command names to their implementation and runs the one
// selected by a program's arguments.
package goes

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/platinasystems/calc/lang"
	"github.com/platinasystems/flags"
)

type Cmd interface {
	Apropos() lang.Alt
	Main(...string) error
	String() string
	Usage() string
}

type Goes struct {
	NAME    string
	APROPOS lang.Alt
	MAN     lang.Alt
	USAGE   string

	// Default is run if the arguments don't start with a command name.
	Default string

	ByName map[string]Cmd
}

func New(name string) *Goes {
	return &Goes{
		NAME:   name,
		ByName: make(map[string]Cmd),
	}
}

func (g *Goes) String() string { return g.NAME }

func (g *Goes) Apropos() lang.Alt {
	if g.APROPOS != nil {
		return g.APROPOS
	}
	return lang.Alt{lang.EnUS: "arithmetic commands"}
}

func (g *Goes) Usage() string {
	if len(g.USAGE) > 0 {
		return g.USAGE
	}
	return fmt.Sprintf(`
	%[1]s [ OPERATION NUMBER NUMBER ]
	%[1]s COMMAND -[-]HELPER
	%[1]s HELPER [ COMMAND ]...

	HELPER := { apropos | help | man | usage }`, g.NAME)
}

// Usage formats the synopsis of a command or of the table itself.
func Usage(v interface{ Usage() string }) string {
	return "usage:\t" + strings.TrimSpace(v.Usage())
}

// Names returns the sorted command names.
func (g *Goes) Names() []string {
	names := make([]string, 0, len(g.ByName))
	for k := range g.ByName {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Plot commands on map.
func (g *Goes) Plot(cmds ...interface{}) {
	for _, v := range cmds {
		c, ok := v.(Cmd)
		if !ok {
			panic(fmt.Errorf("%T: isn't a command", v))
		}
		name := c.String()
		if _, found := g.ByName[name]; found {
			panic(fmt.Errorf("%s: duplicate", name))
		}
		g.ByName[name] = c
	}
}

// Main runs the command named by args[0] with the remaining args; or, if
// args are empty or args[0] is an option, the Default command with all of
// them.
//
// If the args has "-h", "-help", or "--help", this prints the command's
// help instead. Similarly for "-apropos", "-man", and "-usage".
func (g *Goes) Main(args ...string) error {
	name := g.Default
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name, args = args[0], args[1:]
	}
	flag, args := flags.New(args,
		[]string{"-h", "-help", "--help"},
		[]string{"-apropos", "--apropos"},
		[]string{"-man", "--man"},
		[]string{"-usage", "--usage"})
	switch {
	case flag.ByName["-h"]:
		return g.help(append([]string{name}, args...)...)
	case flag.ByName["-apropos"]:
		return g.apropos(name)
	case flag.ByName["-man"]:
		return g.man(name)
	case flag.ByName["-usage"]:
		return g.usage(name)
	}
	run := g.builtin(name)
	if c, found := g.ByName[name]; found {
		run = c.Main
	}
	if run == nil {
		return fmt.Errorf("%s: command not found", name)
	}
	err := run(args...)
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
	}
	return err
}

func (g *Goes) builtin(name string) func(...string) error {
	switch name {
	case "apropos":
		return g.apropos
	case "help":
		return g.help
	case "man":
		return g.man
	case "usage":
		return g.usage
	}
	return nil
}

// Prints each named command, or all of them, with its one-line description.
// Names past the first that aren't commands are ignored.
func (g *Goes) apropos(names ...string) error {
	if len(names) == 0 {
		names = g.Names()
	}
	for i, name := range names {
		c, found := g.ByName[name]
		switch {
		case found && len(name) < 16:
			fmt.Printf("%-16s%s\n", name, c.Apropos())
		case found:
			fmt.Printf("%s\n\t\t%s\n", name, c.Apropos())
		case i == 0:
			return fmt.Errorf("%s: not found", name)
		}
	}
	return nil
}

func (g *Goes) usage(names ...string) error {
	if len(names) == 0 {
		fmt.Println(Usage(g))
		return nil
	}
	c, found := g.ByName[names[0]]
	if !found {
		return fmt.Errorf("%s: not found", names[0])
	}
	fmt.Println(Usage(c))
	return nil
}
