// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jexc

import (
	"errors"
	"fmt"
)

// Kind identifies a class of tokenizer failure. A Kind is itself an error, so
// that callers can test for a class with errors.Is:
//
//	if errors.Is(err, jexc.InvalidLiteral) { ... }
type Kind byte

// Constants defining the valid Kind values.
const (
	UnterminatedString Kind = iota + 1 // no closing quote before end of input
	InvalidLiteral                     // unquoted span matches no literal grammar
	UnexpectedToken                    // Expect got a type outside its set
	InsufficientBuffer                 // Extract destination too small
	InvalidArguments                   // empty destination or foreign token
)

var kindStr = [...]string{
	UnterminatedString: "unterminated string",
	InvalidLiteral:     "invalid literal",
	UnexpectedToken:    "unexpected token type",
	InsufficientBuffer: "insufficient buffer",
	InvalidArguments:   "invalid arguments",
}

// Error satisfies the error interface.
func (k Kind) Error() string {
	if int(k) >= len(kindStr) || kindStr[k] == "" {
		return fmt.Sprintf("unknown error kind %d", byte(k))
	}
	return kindStr[k]
}

// Error is the concrete type of lexical and expectation errors reported by a
// Tokenizer. Rendering an Error does not write anywhere; callers decide
// whether and how to report it.
type Error struct {
	Kind    Kind
	Locus   Locus  // where the offending token begins
	Text    string // the offending text, if any
	Message string

	err error
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Locus, e.Message)
}

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Unwrap supports error wrapping.
func (e *Error) Unwrap() error { return e.err }

// ErrorLocus reports the locus of err if it is or wraps an *Error.
func ErrorLocus(err error) (Locus, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Locus, true
	}
	return Locus{}, false
}
