// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jexc

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Expect advances t to the next token and checks that its type is one of
// types. If so, Expect returns the token and nil, even when Next reported
// the end of input or an invalid literal for it. If Next produced no token,
// or its type is not in types, Expect returns the token and an error with
// kind UnexpectedToken, naming the expected types and the type found. Any
// error reported by Next is wrapped by that error.
func (t *Tokenizer) Expect(types ...Type) (Token, error) {
	tok, err := t.Next()
	none := tok == (Token{})
	if !none && slices.Contains(types, tok.Type) {
		return tok, nil
	}
	loc := tok.Locus
	if none {
		// No token was produced; report where scanning stopped.
		if l, ok := ErrorLocus(err); ok {
			loc = l
		} else {
			loc = t.loc
		}
	}
	if err == io.EOF {
		err = nil // implied by End
	}
	return tok, &Error{
		Kind:    UnexpectedToken,
		Locus:   loc,
		Text:    string(tok.Text(t.src)),
		Message: typeLabel(types, tok.Type),
		err:     err,
	}
}

// typeLabel makes a human-readable summary string for the given token types.
func typeLabel(types []Type, got Type) string {
	var exp string
	switch len(types) {
	case 0:
		exp = "nothing"
	case 1:
		exp = types[0].String()
	default:
		last := len(types) - 1
		ss := make([]string, last)
		for i, tt := range types[:last] {
			ss[i] = tt.String()
		}
		exp = strings.Join(ss, ", ") + " or " + types[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
