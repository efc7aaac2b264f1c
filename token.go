// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jexc

import (
	"fmt"

	"go4.org/mem"
)

// Type is the type of a lexical token.
type Type byte

// Constants defining the valid Type values.
const (
	Invalid           Type = iota // invalid literal
	MapOpen                       // left brace "{"
	MapClose                      // right brace "}"
	ArrayOpen                     // left square bracket "["
	ArrayClose                    // right square bracket "]"
	ItemSeparator                 // comma ","
	KeyValueSeparator             // colon ":"
	String                        // quoted string, quotes excluded
	Integer                       // number: optional sign and digits only
	Float                         // number with fraction and/or exponent
	True                          // constant: true
	False                         // constant: false
	Null                          // constant: null
	End                           // end of input

	numTypes = int(End) + 1
)

// String returns the display name of t. True and False share the name "Bool".
func (t Type) String() string {
	switch t {
	case Invalid:
		return "Invalid"
	case MapOpen:
		return "MapOpen"
	case MapClose:
		return "MapClose"
	case ArrayOpen:
		return "ArrayOpen"
	case ArrayClose:
		return "ArrayClose"
	case ItemSeparator:
		return "Sep"
	case KeyValueSeparator:
		return "MapSep"
	case String:
		return "String"
	case Integer:
		return "Int"
	case Float:
		return "Float"
	case True, False:
		return "Bool"
	case Null:
		return "Null"
	case End:
		return "--END--"
	default:
		return fmt.Sprintf("Type(%d)", byte(t))
	}
}

// A Token is a classified, located view of a span of the source buffer. A
// Token does not own the bytes it covers: the methods that need them take
// the buffer the token was scanned from.
type Token struct {
	Type Type
	Span
	Locus Locus // where the token begins
}

// Text returns a view of the raw text of t in src. For a String the
// enclosing quotes are excluded and escapes are not decoded. Text panics if
// the span of t does not lie within src.
func (t Token) Text(src []byte) []byte { return src[t.Pos:t.End] }

// Int64 returns the value of an Integer token.
func (t Token) Int64(src []byte) (int64, error) {
	if t.Type != Integer {
		return 0, fmt.Errorf("token is %v, not %v", t.Type, Integer)
	}
	return mem.ParseInt(mem.B(t.Text(src)), 10, 64)
}

// Float64 returns the value of a numeric token.
func (t Token) Float64(src []byte) (float64, error) {
	if t.Type != Float && t.Type != Integer {
		return 0, fmt.Errorf("token is %v, not a number", t.Type)
	}
	return mem.ParseFloat(mem.B(t.Text(src)), 64)
}

// Bool reports the value of a True or False token. For any other type it
// returns false.
func (t Token) Bool() bool { return t.Type == True }
