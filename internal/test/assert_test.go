// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package test

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
)

var errTest = errors.New("test error")

func TestOutput(t *testing.T) {
	assert := Assert{t}
	assert.OutputEqual("hello world\n", func() error {
		fmt.Println("hello", "world")
		return nil
	})
	s, err := assert.Output(func() error {
		fmt.Print("partial")
		return fmt.Errorf("wrapped: %w", errTest)
	})
	assert.Equal(s, "partial")
	assert.Error(err, errTest)
	assert.Error(err, "wrapped: test error")
	assert.Error(err, regexp.MustCompile("^wrapped"))
	assert.Error(err, true)
	assert.Error(nil, false)
}

func TestMatch(t *testing.T) {
	assert := Assert{t}
	assert.Match("Result: 15.0\n", `Result: 15\.0`)
	assert.True(true)
	assert.False(false)
	assert.NonNil(errTest)
}
