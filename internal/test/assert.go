// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package test provides assertions shared by the calculator's tests.
package test

import (
	"errors"
	"io/ioutil"
	"os"
	"regexp"
	"testing"
)

// Assert wraps a testing.Test or Benchmark with several assertions.
type Assert struct {
	testing.TB
}

// Log args if -test.vv
func (assert Assert) Comment(args ...interface{}) {
	assert.Helper()
	if *VV {
		assert.Log(args...)
	}
}

// Nil asserts that there is no error
func (assert Assert) Nil(err error) {
	assert.Helper()
	if err != nil {
		assert.Fatal(err)
	}
}

// NonNil asserts that there is an error
func (assert Assert) NonNil(err error) {
	assert.Helper()
	if err == nil {
		assert.Fatal("no error")
	}
}

// Error asserts that an error matches the given error, string, regex, or bool
// If v is true, asserts err isn't nil;
// otherwise, if false, asserts that it's nil.
// An error v matches anything that wraps it.
func (assert Assert) Error(err error, v interface{}) {
	assert.Helper()
	switch t := v.(type) {
	case error:
		if !errors.Is(err, t) {
			assert.Fatalf("%v\n\texpected %q", err, t.Error())
		}
	case string:
		if err == nil || err.Error() != t {
			assert.Fatalf("%v\n\texpected %q", err, t)
		}
	case *regexp.Regexp:
		if err == nil || !t.MatchString(err.Error()) {
			assert.Fatalf("%v\n\texpected %q", err, t.String())
		}
	case bool:
		if t {
			if err == nil {
				assert.Fatal("not error")
			}
		} else {
			assert.Nil(err)
		}
	default:
		assert.Fatal("can't match:", t)
	}
}

// Equal asserts string equality.
func (assert Assert) Equal(s, expect string) {
	assert.Helper()
	if s != expect {
		assert.Fatalf("%q\n\t!= %q", s, expect)
	}
}

// Match asserts string pattern match.
func (assert Assert) Match(s, pattern string) {
	assert.Helper()
	if !regexp.MustCompile(pattern).MatchString(s) {
		assert.Fatalf("%q\n\t!= @(%s)", s, pattern)
	}
}

// True asserts flag.
func (assert Assert) True(t bool) {
	assert.Helper()
	if !t {
		assert.Fatal("not true")
	}
}

// False is not True.
func (assert Assert) False(t bool) {
	assert.Helper()
	if t {
		assert.Fatal("not false")
	}
}

// Output returns what main prints to os.Stdout along with its error.
func (assert Assert) Output(main func() error) (string, error) {
	assert.Helper()
	pr, pw, err := os.Pipe()
	assert.Nil(err)
	defer pr.Close()
	done := make(chan []byte)
	go func() {
		b, _ := ioutil.ReadAll(pr)
		done <- b
	}()
	err = func() error {
		stdout := os.Stdout
		defer func() {
			os.Stdout = stdout
			pw.Close()
		}()
		os.Stdout = pw
		return main()
	}()
	s := string(<-done)
	assert.Comment(s)
	return s, err
}

// OutputEqual asserts that main succeeds after printing exactly expect.
func (assert Assert) OutputEqual(expect string, main func() error) {
	assert.Helper()
	s, err := assert.Output(main)
	assert.Nil(err)
	assert.Equal(s, expect)
}

// OutputMatch asserts that main succeeds with output matching pattern.
func (assert Assert) OutputMatch(pattern string, main func() error) {
	assert.Helper()
	s, err := assert.Output(main)
	assert.Nil(err)
	assert.Match(s, pattern)
}
