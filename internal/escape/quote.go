// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

// escape maps a byte to the letter of its escape sequence.
// A zero entry means the byte is copied unchanged.
var escape = [256]byte{
	0x07: 'a',
	0x08: 'b',
	0x09: 't',
	0x0a: 'n',
	0x0b: 'v',
	0x0c: 'f',
	0x0d: 'r',
	'"':  '"',
	'\\': '\\',
}

// Escape encodes src for inclusion in a string token. Control bytes with a
// letter escape, double quotes, and backslashes are escaped; all other bytes
// are copied unchanged. The enclosing quotation marks are not added.
func Escape(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if e := escape[b]; e != 0 {
			buf = append(buf, '\\', e)
		} else {
			buf = append(buf, b)
		}
	}
	return buf
}
