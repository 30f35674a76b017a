// Command intopt reads an expression-form ILP file and solves it with
// either the Steinitz/graph engine or the discrepancy/DP engine.
//
// Usage:
//
//	intopt [-a ew|jr] FILE
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-intopt/intopt/discrepancy"
	"github.com/go-intopt/intopt/ilp"
	"github.com/go-intopt/intopt/parser"
	"github.com/go-intopt/intopt/steinitz"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// exit codes per spec.md §7: 0 for any deterministic solver outcome
// (solution, NoSolution, Unbounded), non-zero for a parse/I-O failure
// or an Unsupported input.
const (
	exitOK       = 0
	exitFailure  = 1
	exitBadUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("intopt", flag.ContinueOnError)
	var algorithm string
	fs.StringVar(&algorithm, "algorithm", "ew", "solving engine: ew (Steinitz) or jr (discrepancy)")
	fs.StringVar(&algorithm, "a", "ew", "shorthand for -algorithm")
	if err := fs.Parse(args); err != nil {
		return exitBadUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: intopt [-a ew|jr] FILE")
		return exitBadUsage
	}

	path := fs.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to read input file")
		return exitFailure
	}

	problem, err := parser.Parse(string(source))
	if err != nil {
		log.Error().Err(err).Msg("failed to parse ILP")
		return exitFailure
	}
	problem, collapsed := problem.Simplify()
	d := problem.Details()
	log.Debug().Int("m", d.Rows).Int("n", d.Cols).Int("slacks", d.SlackCount).
		Int64("deltaA", d.DeltaA).Int64("deltaB", d.DeltaB).Strs("collapsed", collapsed).Msg("parsed ILP")

	var solve func(ilp.ILP) (ilp.Solution, error)
	switch algorithm {
	case "ew":
		solve = steinitz.Solve
	case "jr":
		solve = discrepancy.Solve
	default:
		fmt.Fprintf(os.Stderr, "unknown algorithm %q: want ew or jr\n", algorithm)
		return exitBadUsage
	}

	x, err := solve(problem)
	switch {
	case err == nil:
		printSolution(out, problem, x)
		return exitOK
	case errors.Is(err, ilp.ErrNoSolution):
		fmt.Fprintln(out, "The ILP has no solution.")
		return exitOK
	case errors.Is(err, ilp.ErrUnbounded):
		fmt.Fprintln(out, "The ILP is unbounded.")
		return exitOK
	case errors.Is(err, ilp.ErrUnsupported):
		fmt.Fprintf(os.Stderr, "unsupported input: %v\n", err)
		return exitFailure
	default:
		log.Error().Err(err).Msg("solver failed")
		return exitFailure
	}
}

// printSolution prints one "name = value" line per named variable in
// index order (slacks are unnamed and omitted), or the full x-vector
// if the problem carries no names.
func printSolution(out io.Writer, problem ilp.ILP, x ilp.Solution) {
	names := problem.NamedVariables()
	if len(names) == 0 {
		fmt.Fprintf(out, "x = %v\n", x.Data())
		return
	}
	for _, nv := range names {
		fmt.Fprintf(out, "%s = %d\n", nv.Name, x.At(nv.Index))
	}
}
