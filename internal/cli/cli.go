// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/cprgoconv/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	toBin, toCpr := readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	if err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	args := flags.Args()
	if len(args) != 2 {
		return opts, &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("expected input and output file arguments, got %d arguments", len(args)),
		}
	}
	opts.Input = args[0]
	opts.Output = args[1]

	direction, err := resolveDirection(flags, *toBin, *toCpr)
	if err != nil {
		return opts, err
	}
	opts.Direction = direction

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: cprgoconv --to-bin|--to-cpr [options] <input file> <output file>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// resolveDirection validates that exactly one conversion direction was given.
func resolveDirection(flags *flag.FlagSet, toBin, toCpr bool) (options.Direction, error) {
	switch {
	case toBin && toCpr:
		return "", &UsageError{flags: flags, msg: "--to-bin and --to-cpr are mutually exclusive"}
	case toBin:
		return options.ToBin, nil
	case toCpr:
		return options.ToCpr, nil
	default:
		return "", &UsageError{flags: flags, msg: "missing conversion direction, pass --to-bin or --to-cpr"}
	}
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) (toBin, toCpr *bool) {
	toBin = flags.Bool("to-bin", false, "convert a CPR cartridge container to a raw BIN dump")
	toCpr = flags.Bool("to-cpr", false, "convert a raw BIN dump to a CPR cartridge container")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the written output by decoding it and comparing against the input")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	return toBin, toCpr
}
