// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package main

import (
	"testing"

	"github.com/platinasystems/calc/internal/test"
)

func Test(t *testing.T) {
	t.Run("Add", Add)
	t.Run("Multiply", Multiply)
	t.Run("DivideByZero", DivideByZero)
	t.Run("Usage", Usage)
}

func Add(t *testing.T) {
	test.Assert{TB: t}.OutputEqual("15.0\n", func() error {
		return Goes().Main("add", "10", "5")
	})
}

func Multiply(t *testing.T) {
	test.Assert{TB: t}.OutputEqual("50.0\n", func() error {
		return Goes().Main("multiply", "10", "5")
	})
}

func DivideByZero(t *testing.T) {
	test.Assert{TB: t}.Error(Goes().Main("divide", "8", "0"),
		"divide: Division by zero is not allowed.")
}

func Usage(t *testing.T) {
	test.Assert{TB: t}.OutputMatch(`^usage:\tcalc \[-x\]`, func() error {
		return Goes().Main("usage", "calc")
	})
}
