// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jexc

import (
	"fmt"
	"io"
)

// Format renders tok for diagnostics as
//
//	source:row:column: TypeName: 'raw text'
//
// The raw text is the undecoded text of tok in src.
func Format(src []byte, tok Token) string {
	return fmt.Sprintf("%s: %s: '%s'", tok.Locus, tok.Type, tok.Text(src))
}

// Print writes the Format rendering of tok to w, followed by a newline.
func Print(w io.Writer, src []byte, tok Token) error {
	_, err := fmt.Fprintln(w, Format(src, tok))
	return err
}
