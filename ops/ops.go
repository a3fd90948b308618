// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package ops provides the calculator's arithmetic operations, the table
// that names them, and the operand and result text conversions they share.
package ops

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrDivisionByZero = errors.New("Division by zero is not allowed.")
	ErrUnknown        = errors.New("unknown operation")
	ErrNotNumber      = errors.New("not a number")
)

// Func is the common signature of every named operation.
type Func func(a, b float64) (float64, error)

// ByName maps each operation name to its Func.
var ByName = map[string]Func{
	"add":      total(Add),
	"subtract": total(Subtract),
	"multiply": total(Multiply),
	"divide":   Divide,
}

func Add(a, b float64) float64 { return a + b }

func Subtract(a, b float64) float64 { return a - b }

func Multiply(a, b float64) float64 { return a * b }

// Divide returns ErrDivisionByZero if b is zero of either sign.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Names returns the sorted operation names.
func Names() []string {
	names := make([]string, 0, len(ByName))
	for k := range ByName {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named operation or an ErrUnknown wrapper.
func Lookup(name string) (Func, error) {
	if f, found := ByName[name]; found {
		return f, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknown)
}

func total(f func(a, b float64) float64) Func {
	return func(a, b float64) (float64, error) {
		return f(a, b), nil
	}
}
