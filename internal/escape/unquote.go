// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles decoding and encoding of backslash escapes in
// string tokens.
package escape

import "go4.org/mem"

// unescape maps the byte following a backslash to its decoded value.
// A zero entry means the escape is not recognized.
var unescape = [256]byte{
	'\'': 0x27,
	'"':  0x22,
	'?':  0x3f,
	'\\': 0x5c,
	'a':  0x07,
	'b':  0x08,
	'f':  0x0c,
	'n':  0x0a,
	'r':  0x0d,
	't':  0x09,
	'v':  0x0b,
}

// Unescape appends the decoding of src to dst and returns the extended slice.
// The input must have the enclosing double quotation marks already removed.
//
// Recognized escapes are replaced with the byte they denote. A backslash
// followed by any other byte is copied through unchanged, as is a lone
// backslash at the end of src. Unescape never adds bytes: the result is no
// longer than src.
func Unescape(dst []byte, src mem.RO) []byte {
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 || i+1 == src.Len() {
			// No further escapes, or a lone trailing backslash; blit the rest
			// of the input and go home.
			return mem.Append(dst, src)
		}
		dst = mem.Append(dst, src.SliceTo(i))

		if b := unescape[src.At(i+1)]; b != 0 {
			dst = append(dst, b)
		} else {
			dst = append(dst, '\\', src.At(i+1))
		}
		src = src.SliceFrom(i + 2)
	}
}
