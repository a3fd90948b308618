// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import "fmt"

type helper interface {
	Help(...string) string
}

// Help returns the named command's help, if it has any; otherwise, its
// usage.
func (g *Goes) Help(args ...string) string {
	if len(args) > 0 {
		if c, found := g.ByName[args[0]]; found {
			if method, found := c.(helper); found {
				return method.Help(args[1:]...)
			}
			return Usage(c)
		}
	}
	return Usage(g)
}

func (g *Goes) help(args ...string) error {
	if len(args) == 0 {
		return g.apropos()
	}
	if _, found := g.ByName[args[0]]; !found {
		return fmt.Errorf("%s: not found", args[0])
	}
	if h := g.Help(args...); len(h) > 0 {
		fmt.Println(h)
	}
	return nil
}
