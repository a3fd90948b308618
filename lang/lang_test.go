// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package lang

import "testing"

var hello = Alt{
	EnUS: "hello",
	FrFR: "bonjour",
	JaJP: "こんにちは",
	ZhCN: "你好",
}

func Test(t *testing.T) {
	defer func() { Lang = "" }()
	for lang, expect := range hello {
		Lang = lang
		if s := hello.String(); s != expect {
			t.Fatalf("%q != %q", s, expect)
		} else {
			t.Logf("%s: %s", lang, s)
		}
	}
}

func TestFallback(t *testing.T) {
	defer func() { Lang = "" }()
	Lang = DeDE
	if s := hello.String(); s != "hello" {
		t.Fatalf("%q != %q", s, "hello")
	}
	Lang = EsES
	if s := (Alt{FrFR: "bonjour"}).String(); s != "" {
		t.Fatalf("%q != %q", s, "")
	}
}
