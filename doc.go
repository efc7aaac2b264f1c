// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jexc implements a tokenizer for a JSON-like notation.
//
// # Scanning
//
// The Tokenizer type splits a resident byte buffer into tokens. Construct a
// tokenizer over the buffer and call its Next method until it reports an
// error:
//
//	t := jexc.New(input, "input.json")
//	for {
//	   tok, err := t.Next()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Scanning failed: %v", err)
//	   }
//	   log.Printf("Next token: %v", tok.Type)
//	}
//
// A Token records its type, the span of the buffer it covers, and the row
// and column where it begins. Tokens do not copy the input; methods that
// need the text take the buffer as an argument. String tokens span the text
// between the quotes, with escapes undecoded. Unquoted text runs up to the
// next delimiter and is classified as true, false, null, an integer, a
// floating-point number, or Invalid.
//
// Errors reported by the tokenizer have concrete type *jexc.Error, whose Kind
// can be tested with errors.Is:
//
//	if errors.Is(err, jexc.InvalidLiteral) {
//	   log.Printf("Bad literal at %v", err.(*jexc.Error).Locus)
//	}
//
// An invalid literal does not stop the tokenizer; an unterminated string
// does.
//
// # Extracting
//
// Extract and Unescape recover the text of a token, decoding the
// backslash escapes of string tokens:
//
//	var buf [64]byte
//	n, err := jexc.Extract(input, tok, buf[:])
//
// # Expectations
//
// The Expect method reads the next token and checks its type against a set
// of acceptable types, for hand-written parsers:
//
//	tok, err := t.Expect(jexc.String, jexc.MapClose)
package jexc
