// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/creachadair/jexc"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
	"golang.org/x/sync/errgroup"
)

type options struct {
	hujson bool     // standardize HuJSON before tokenizing
	table  bool     // print tokens as a table
	jobs   int      // maximum concurrent inputs
	expect []string // acceptable types for the first token
}

// NewCLI constructs the root command.
func NewCLI() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "jexc [flags] [file ...]",
		Short: "Print the lexical tokens of JSON-like input",
		Long: `Print the lexical tokens of JSON-like input.

With no files, or a file named "-", read standard input. Each input is
loaded into memory and tokenized independently; output is printed in the
order the inputs are named.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.hujson, "hujson", false, "Accept HuJSON comments and trailing commas (input must otherwise be strict JSON)")
	f.BoolVarP(&opts.table, "table", "t", false, "Print tokens as a table")
	f.IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "Maximum number of inputs to tokenize concurrently")
	f.StringSliceVar(&opts.expect, "expect", nil, "Require the first token to have one of these types")
	return cmd
}

// An input records the tokens scanned from one named input.
type input struct {
	name string
	src  []byte
	toks []jexc.Token
	err  error // lexical or expectation error, if any
}

func runTokens(cmd *cobra.Command, args []string, opts options) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	want, err := parseTypes(opts.expect)
	if err != nil {
		return err
	}

	inputs := make([]input, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(opts.jobs, 1))
	for i, name := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := loadInput(cmd.InOrStdin(), name)
			if err != nil {
				return err
			}
			if opts.hujson {
				// Comments and trailing commas become spaces, so offsets and
				// locations are those of the original text.
				// The rest must be strict JSON; a failure is reported for this
				// input only.
				std, err := hujson.Standardize(src)
				if err != nil {
					inputs[i] = input{name: name, src: src, err: fmt.Errorf("%s: %w", name, err)}
					return nil
				}
				src = std
			}
			inputs[i] = scanInput(name, src, want)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger := log.New(cmd.ErrOrStderr(), "", 0)
	var nfail int
	for _, in := range inputs {
		if opts.table {
			printTable(out, in)
		} else {
			for _, tok := range in.toks {
				if err := jexc.Print(out, in.src, tok); err != nil {
					return err
				}
			}
		}
		if in.err != nil {
			logger.Printf("[ERROR] %v", in.err)
			nfail++
		}
	}
	if nfail != 0 {
		return fmt.Errorf("%d of %d inputs had errors", nfail, len(inputs))
	}
	return nil
}

// loadInput reads the complete contents of the named input into memory.
// The name "-" denotes r.
func loadInput(r io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(r)
	}
	return os.ReadFile(name)
}

// scanInput tokenizes src up to the end of input or the first error. If want
// is non-empty, the first token must have one of those types.
func scanInput(name string, src []byte, want []jexc.Type) input {
	in := input{name: name, src: src}
	t := jexc.New(src, name)
	if len(want) != 0 {
		tok, err := t.Expect(want...)
		if err != nil {
			in.err = err
			return in
		}
		in.toks = append(in.toks, tok)
		if tok.Type == jexc.End {
			return in
		}
	}
	for {
		tok, err := t.Next()
		if err == io.EOF {
			in.toks = append(in.toks, tok)
			return in
		} else if err != nil {
			if errors.Is(err, jexc.InvalidLiteral) {
				in.toks = append(in.toks, tok)
			}
			in.err = err
			return in
		}
		in.toks = append(in.toks, tok)
	}
}

func printTable(w io.Writer, in input) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Location", "Type", "Span", "Text"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, tok := range in.toks {
		table.Append([]string{
			tok.Locus.String(),
			tok.Type.String(),
			fmt.Sprintf("%d-%d", tok.Pos, tok.End),
			fmt.Sprintf("%q", tok.Text(in.src)),
		})
	}
	table.Render()
}

// typeNames maps the names accepted by --expect to token types. Unlike the
// display names, true and false are distinguished.
var typeNames = map[string]jexc.Type{
	"mapopen":    jexc.MapOpen,
	"mapclose":   jexc.MapClose,
	"arrayopen":  jexc.ArrayOpen,
	"arrayclose": jexc.ArrayClose,
	"sep":        jexc.ItemSeparator,
	"mapsep":     jexc.KeyValueSeparator,
	"string":     jexc.String,
	"int":        jexc.Integer,
	"float":      jexc.Float,
	"true":       jexc.True,
	"false":      jexc.False,
	"null":       jexc.Null,
	"end":        jexc.End,
}

func parseTypes(names []string) ([]jexc.Type, error) {
	var out []jexc.Type
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "bool" {
			out = append(out, jexc.True, jexc.False)
			continue
		}
		tt, ok := typeNames[key]
		if !ok {
			return nil, fmt.Errorf("unknown token type %q", name)
		}
		out = append(out, tt)
	}
	return out, nil
}
