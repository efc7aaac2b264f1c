package jexc

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length of s in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// within reports whether s lies inside a buffer of n bytes.
func (s Span) within(n int) bool { return 0 <= s.Pos && s.Pos <= s.End && s.End <= n }

// A Locus describes the position in source text at which a token begins.
type Locus struct {
	Source string // name of the input, for diagnostics
	Row    int    // line number, 1-based
	Column int    // column number, 1-based
}

// Next returns the locus following l after consuming the byte c.
// A newline advances to column 1 of the next row; any other byte advances
// one column.
func (l Locus) Next(c byte) Locus {
	if c == '\n' {
		l.Row++
		l.Column = 1
	} else {
		l.Column++
	}
	return l
}

// String renders l as "source:row:column".
func (l Locus) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Source, l.Row, l.Column)
}
