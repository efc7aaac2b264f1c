// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jexc

import "go4.org/mem"

// Classify reports the type of the unquoted literal text, which must not
// contain delimiters. The keywords true, false, and null are checked first,
// then the integer grammar, then the floating-point grammar. Text matching
// none of these is Invalid.
func Classify(text []byte) Type {
	m := mem.B(text)
	switch {
	case m.Equal(mem.S("true")):
		return True
	case m.Equal(mem.S("false")):
		return False
	case m.Equal(mem.S("null")):
		return Null
	case isInt(m):
		return Integer
	case isFloat(m):
		return Float
	}
	return Invalid
}

// isInt reports whether m is an optional sign followed by one or more digits.
func isInt(m mem.RO) bool {
	m = trimSign(m)
	return m.Len() != 0 && countDigits(m) == m.Len()
}

// isFloat reports whether all of m is a decimal floating-point number.
//
// OK: 1.0, -1.5, .5, 5., 23e10, 1.5E-3, +2e+2.
// Bad: ., e5, 1e, 1e+, 1.2.3, inf, 0x1p3.
func isFloat(m mem.RO) bool {
	m = trimSign(m)

	// Mantissa: digits with an optional decimal point, needing at least one
	// digit on one side or the other.
	nd := countDigits(m)
	m = m.SliceFrom(nd)
	if m.Len() != 0 && m.At(0) == '.' {
		m = m.SliceFrom(1)
		nf := countDigits(m)
		m = m.SliceFrom(nf)
		nd += nf
	}
	if nd == 0 {
		return false
	}

	// Exponent: e or E, an optional sign, and at least one digit.
	if m.Len() != 0 && (m.At(0) == 'e' || m.At(0) == 'E') {
		m = trimSign(m.SliceFrom(1))
		ne := countDigits(m)
		if ne == 0 {
			return false
		}
		m = m.SliceFrom(ne)
	}
	return m.Len() == 0
}

func trimSign(m mem.RO) mem.RO {
	if m.Len() != 0 && (m.At(0) == '-' || m.At(0) == '+') {
		return m.SliceFrom(1)
	}
	return m
}

// countDigits reports the number of leading decimal digits in m.
func countDigits(m mem.RO) int {
	var n int
	for n < m.Len() && isDigit(m.At(n)) {
		n++
	}
	return n
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
