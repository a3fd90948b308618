// Copyright © 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package ops

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseOperand converts a decimal floating point literal. Underscores may
// separate digits, e.g. "1_000". A literal beyond the float64 range
// results in a signed infinity rather than an error. NaN may be signed, as
// in "-nan". Hexadecimal literals aren't operands.
func ParseOperand(s string) (float64, error) {
	t := s
	if strings.IndexByte(t, '_') >= 0 {
		if !digitSeparated(t) {
			return 0, fmt.Errorf("%q: %w", s, ErrNotNumber)
		}
		t = strings.Replace(t, "_", "", -1)
	}
	if isHex(t) {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumber)
	}
	if isSignedNaN(t) {
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return f, nil
		}
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumber)
	}
	return f, nil
}

func digitSeparated(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 {
			return false
		}
		if !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// strconv only takes an unsigned "nan".
func isSignedNaN(s string) bool {
	return len(s) == 4 && (s[0] == '+' || s[0] == '-') &&
		strings.EqualFold(s[1:], "nan")
}

func isHex(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
