// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package notliner

import (
	"io"
	"strings"
	"testing"
)

func TestPrompt(t *testing.T) {
	w := new(strings.Builder)
	p := New(strings.NewReader("add 10 5\r\nexit\n"), w)
	defer p.Close()
	for _, want := range []string{"add 10 5", "exit"} {
		if line, err := p.Prompt("> "); err != nil {
			t.Fatal(err)
		} else if line != want {
			t.Fatalf("%q != %q", line, want)
		}
	}
	if _, err := p.Prompt("> "); err != io.EOF {
		t.Fatal("expected EOF, got", err)
	}
	if s := w.String(); s != "> > > " {
		t.Errorf("prompts: %q", s)
	}
}

func TestQuiet(t *testing.T) {
	p := New(strings.NewReader("exit"), nil)
	if line, err := p.Prompt("> "); err != nil || line != "exit" {
		t.Fatal(line, err)
	}
}
