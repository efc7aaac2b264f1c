// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jexc_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jexc"
)

// rawString returns a String token spanning all of text.
func rawString(text string) ([]byte, jexc.Token) {
	return []byte(text), jexc.Token{
		Type: jexc.String,
		Span: jexc.Span{Pos: 0, End: len(text)},
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{``, ``},
		{`ok go`, "ok go"},
		{`abc\ndef`, "abc\ndef"},
		{`\tabc\n`, "\tabc\n"},
		{`\"\\`, `"\`},
		{`\'\?`, `'?`},
		{`\a\b\f\n\r\t\v`, "\a\b\f\n\r\t\v"},
		{`a\\b\\cd`, `a\b\cd`},
		{`\z`, `\z`},     // unrecognized escape
		{`\q\%`, `\q\%`}, // unrecognized escapes
		{`end\`, `end\`}, // lone trailing backslash
		{`\\\`, `\\`},
	}
	for _, test := range tests {
		src, tok := rawString(test.input)
		buf := make([]byte, len(src)+1)
		n, err := jexc.Extract(src, tok, buf)
		if err != nil {
			t.Errorf("Extract(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if got := string(buf[:n]); got != test.want {
			t.Errorf("Extract(%#q): got %#q, want %#q", test.input, got, test.want)
		}
		if got := string(jexc.Unescape(src, tok)); got != test.want {
			t.Errorf("Unescape(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestExtract_scanned(t *testing.T) {
	src := []byte(`["plain text", 125, "tab\there", null]`)
	toks, err := jexc.Tokenize(src, "test")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	var got []string
	for _, tok := range toks {
		var buf [32]byte
		n, err := jexc.Extract(src, tok, buf[:])
		if err != nil {
			t.Fatalf("Extract %v: %v", tok.Type, err)
		}
		got = append(got, string(buf[:n]))
	}
	want := []string{"[", "plain text", ",", "125", ",", "tab\there", ",", "null", "]", ""}
	if len(got) != len(want) {
		t.Fatalf("Extract: got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtract_errors(t *testing.T) {
	src, tok := rawString(`hello`)

	// The destination must have room for one byte more than the raw span,
	// even when escapes would shrink the result.
	if _, err := jexc.Extract(src, tok, make([]byte, 5)); !errors.Is(err, jexc.InsufficientBuffer) {
		t.Errorf("Extract short: got %v, want %v", err, jexc.InsufficientBuffer)
	}
	esrc, etok := rawString(`\n\n`)
	if _, err := jexc.Extract(esrc, etok, make([]byte, 4)); !errors.Is(err, jexc.InsufficientBuffer) {
		t.Errorf("Extract short: got %v, want %v", err, jexc.InsufficientBuffer)
	}
	if n, err := jexc.Extract(src, tok, make([]byte, 6)); err != nil || n != 5 {
		t.Errorf("Extract exact: got %d, %v; want 5, nil", n, err)
	}

	if _, err := jexc.Extract(src, tok, nil); !errors.Is(err, jexc.InvalidArguments) {
		t.Errorf("Extract nil: got %v, want %v", err, jexc.InvalidArguments)
	}
	if _, err := jexc.Extract(src[:2], tok, make([]byte, 16)); !errors.Is(err, jexc.InvalidArguments) {
		t.Errorf("Extract foreign: got %v, want %v", err, jexc.InvalidArguments)
	}
}

func TestExtract_nonString(t *testing.T) {
	// Non-string tokens are copied verbatim, without escape decoding.
	src := []byte(`a\nb`)
	tok := jexc.Token{Type: jexc.Invalid, Span: jexc.Span{Pos: 0, End: len(src)}}
	buf := make([]byte, 8)
	n, err := jexc.Extract(src, tok, buf)
	if err != nil {
		t.Fatalf("Extract: unexpected error: %v", err)
	}
	if got := string(buf[:n]); got != `a\nb` {
		t.Errorf("Extract: got %#q, want %#q", got, `a\nb`)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\a\b\f\r\v", `"\a\b\f\r\v"`},
		{`a \b c\ d`, `"a \\b c\\ d"`},
		{"'?", `"'?"`},
		{"{[:,]}", `"{[:,]}"`},
		{"\x00\x01", "\"\x00\x01\""},
	}
	for _, test := range tests {
		got, err := jexc.Quote(test.input)
		if err != nil {
			t.Errorf("Quote(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}

		// The quoted form is a single string token that decodes to the input.
		src := []byte(got)
		toks, err := jexc.Tokenize(src, "quote")
		if err != nil {
			t.Errorf("Tokenize(%#q): %v", got, err)
			continue
		}
		if len(toks) != 2 || toks[0].Type != jexc.String || toks[1].Type != jexc.End {
			t.Errorf("Tokenize(%#q): got %d tokens, want String and End", got, len(toks))
			continue
		}
		if dec := string(jexc.Unescape(src, toks[0])); dec != test.input {
			t.Errorf("Unescape(%#q): got %#q, want %#q", got, dec, test.input)
		}
	}
}

func TestQuote_doubleQuote(t *testing.T) {
	for _, input := range []string{`"`, `say "hi"`, `a\"b`} {
		got, err := jexc.Quote(input)
		if !errors.Is(err, jexc.InvalidArguments) {
			t.Errorf("Quote(%#q): got %#q, %v; want %v", input, got, err, jexc.InvalidArguments)
		}
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	// Recognized escapes survive decoding and re-encoding.
	for _, input := range []string{`plain`, `a\tb\nc`, `\"q\"`, `\\`, `\a\b\f\r\v`} {
		src, tok := rawString(input)
		if got := jexc.Escape(string(jexc.Unescape(src, tok))); got != input {
			t.Errorf("Round trip %#q: got %#q", input, got)
		}
	}

	// Unrecognized escapes pass through decoding, but are not restored by
	// encoding: the round trip is deliberately not an identity.
	src, tok := rawString(`\z`)
	dec := string(jexc.Unescape(src, tok))
	if dec != `\z` {
		t.Fatalf("Unescape: got %#q, want %#q", dec, `\z`)
	}
	if got := jexc.Escape(dec); got != `\\z` {
		t.Errorf("Escape: got %#q, want %#q", got, `\\z`)
	}
}
