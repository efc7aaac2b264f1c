// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jexc prints the lexical tokens of JSON-like input files.
//
// Usage:
//
//	jexc [flags] [file ...]
//
// With no files, or a file named "-", jexc reads standard input. Each token
// is printed as "source:row:column: Type: 'text'". Lexical errors are
// reported on standard error, and the exit status is non-zero if any input
// had an error.
package main

import (
	"context"

	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(NewCLI().ExecuteContext(context.Background()))
}
