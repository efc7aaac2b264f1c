// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jexc

import (
	"fmt"
	"strings"

	"github.com/creachadair/jexc/internal/escape"

	"go4.org/mem"
)

// Extract writes the text of tok from src into dst and reports the number of
// bytes written. For a String token, escape sequences are decoded (see
// Unescape); any other token is copied verbatim.
//
// Extract requires that dst have room for at least tok.Len()+1 bytes, which
// bounds the decoded result regardless of its escapes. Otherwise it reports
// an error with kind InsufficientBuffer and writes nothing. It reports
// InvalidArguments if dst is empty or tok does not lie within src.
func Extract(src []byte, tok Token, dst []byte) (int, error) {
	if len(dst) == 0 {
		return 0, fmt.Errorf("empty destination: %w", InvalidArguments)
	} else if !tok.within(len(src)) {
		return 0, fmt.Errorf("span %d..%d outside %d-byte source: %w",
			tok.Pos, tok.End, len(src), InvalidArguments)
	} else if need := tok.Len() + 1; need > len(dst) {
		return 0, fmt.Errorf("need %d bytes, have %d: %w", need, len(dst), InsufficientBuffer)
	}
	if tok.Type != String {
		return copy(dst, tok.Text(src)), nil
	}
	return len(escape.Unescape(dst[:0], mem.B(tok.Text(src)))), nil
}

// Unescape returns a copy of the text of tok from src with escape sequences
// decoded. The escapes recognized are
//
//	\'  \"  \?  \\  \a  \b  \f  \n  \r  \t  \v
//
// with their conventional meanings. A backslash followed by any other byte is
// kept along with that byte, so that "\z" decodes to the two bytes \ and z.
// Non-String tokens are copied without decoding.
func Unescape(src []byte, tok Token) []byte {
	text := mem.B(tok.Text(src))
	if tok.Type != String {
		return mem.Append(nil, text)
	}
	return escape.Unescape(make([]byte, 0, text.Len()), text)
}

// Escape encodes s for inclusion between the quotes of a string token.
//
// Escape inverts Unescape only for recognized escapes: Unescape passes an
// unrecognized escape such as "\z" through, and Escape then doubles its
// backslash. The tokenizer does not honor escapes when it finds the end of a
// string, so the escaped form \" of a double quote still ends the token; use
// Quote to check for this.
func Escape(s string) string { return string(escape.Escape(mem.S(s))) }

// Quote encodes s as a string token, adding double quotation marks. Because a
// backslash does not protect a quote from ending a string token, Quote
// reports an error with kind InvalidArguments if s contains a double quote.
func Quote(s string) (string, error) {
	if i := strings.IndexByte(s, '"'); i >= 0 {
		return "", fmt.Errorf("double quote at offset %d cannot be quoted: %w", i, InvalidArguments)
	}
	return `"` + Escape(s) + `"`, nil
}
