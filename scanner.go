// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jexc

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// A Tokenizer reads lexical tokens from a resident byte buffer. Each call to
// Next produces one token, or reports an error.
//
// A Tokenizer does not copy its buffer. The caller must not modify the
// buffer while the Tokenizer or any token obtained from it is in use.
type Tokenizer struct {
	src []byte
	pos int   // offset of the next unread byte
	loc Locus // location of the next unread byte
	err error // sticky terminal error (io.EOF or UnterminatedString)
}

// New constructs a Tokenizer over src. The source name is reported in the
// locus of each token.
func New(src []byte, source string) *Tokenizer {
	return &Tokenizer{src: src, loc: Locus{Source: source, Row: 1, Column: 1}}
}

// Tokenize returns all the tokens of src, ending with the End token. In case
// of error, it returns the tokens scanned before the error, and if the error
// is an InvalidLiteral, the Invalid token as well.
func Tokenize(src []byte, source string) ([]Token, error) {
	t := New(src, source)
	var out []Token
	for {
		tok, err := t.Next()
		if err == io.EOF {
			return append(out, tok), nil
		} else if err != nil {
			if errors.Is(err, InvalidLiteral) {
				out = append(out, tok)
			}
			return out, err
		}
		out = append(out, tok)
	}
}

// Next advances t to the next token of the input, or reports an error.
//
// At the end of the input, Next returns an End token and io.EOF. If an
// unquoted span is not a valid literal, Next returns an Invalid token and an
// error with kind InvalidLiteral; a subsequent call resumes at the delimiter
// following the span. If a string has no closing quote, Next returns a zero
// Token and an error with kind UnterminatedString.
//
// After Next has returned io.EOF or an UnterminatedString error, every later
// call returns a zero Token and the same error.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	t.skipSpace()

	pos, loc := t.pos, t.loc
	if pos == len(t.src) {
		t.err = io.EOF
		return Token{Type: End, Span: Span{Pos: pos, End: pos}, Locus: loc}, io.EOF
	}

	ch := t.src[pos]

	// Handle punctuation.
	if tt, ok := selfDelim(ch); ok {
		t.advance()
		return Token{Type: tt, Span: Span{Pos: pos, End: t.pos}, Locus: loc}, nil
	}

	// Handle strings.
	if ch == '"' {
		return t.scanString(loc)
	}

	// Anything else is a literal running up to the next delimiter.
	for t.pos < len(t.src) && !isDelim(t.src[t.pos]) {
		t.advance()
	}
	tok := Token{Span: Span{Pos: pos, End: t.pos}, Locus: loc}
	tok.Type = Classify(tok.Text(t.src))
	if tok.Type == Invalid {
		text := string(tok.Text(t.src))
		return tok, &Error{
			Kind:    InvalidLiteral,
			Locus:   loc,
			Text:    text,
			Message: fmt.Sprintf("invalid literal %q", text),
		}
	}
	return tok, nil
}

// All returns an iterator over the remaining tokens of t. Iteration stops
// before the End token, or after the first pair that reports an error other
// than io.EOF.
func (t *Tokenizer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Next()
			if err == io.EOF {
				return
			} else if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// Locus returns the location of the next unread byte of the input.
func (t *Tokenizer) Locus() Locus { return t.loc }

// Offset returns the offset of the next unread byte of the input.
func (t *Tokenizer) Offset() int { return t.pos }

// scanString scans a string whose open quote is at the current offset. A
// backslash does not protect the next quote: escapes are decoded only on
// extraction.
func (t *Tokenizer) scanString(loc Locus) (Token, error) {
	t.advance() // open quote
	start := t.pos
	for t.pos < len(t.src) {
		if t.src[t.pos] == '"' {
			tok := Token{Type: String, Span: Span{Pos: start, End: t.pos}, Locus: loc}
			t.advance() // close quote
			return tok, nil
		}
		t.advance()
	}
	t.err = &Error{
		Kind:    UnterminatedString,
		Locus:   loc,
		Text:    string(t.src[start-1:]),
		Message: `missing closing delimiter for '"'`,
	}
	return Token{}, t.err
}

// skipSpace discards whitespace at the current offset.
func (t *Tokenizer) skipSpace() {
	for t.pos < len(t.src) && isSpace(t.src[t.pos]) {
		t.advance()
	}
}

// advance consumes one byte of input. Precondition: t.pos < len(t.src).
func (t *Tokenizer) advance() {
	t.loc = t.loc.Next(t.src[t.pos])
	t.pos++
}

func isSpace(ch byte) bool { return ch == ' ' || ch == '\n' || ch == '\t' }

// isDelim reports whether ch ends an unquoted literal.
func isDelim(ch byte) bool {
	_, ok := selfDelim(ch)
	return ok || isSpace(ch)
}

func selfDelim(ch byte) (Type, bool) {
	switch ch {
	case '{':
		return MapOpen, true
	case '}':
		return MapClose, true
	case '[':
		return ArrayOpen, true
	case ']':
		return ArrayClose, true
	case ',':
		return ItemSeparator, true
	case ':':
		return KeyValueSeparator, true
	}
	return Invalid, false
}
