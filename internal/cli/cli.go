// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/lorommap/internal/options"
)

// ParseFlags parses the command line flags and the input and output file arguments.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	args := flags.Args()
	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	opts.Output = args[1]
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
	fmt.Printf("usage: lorommap [options] <input file> <output file>\n\n")
	e.flags.SetOutput(os.Stdout)
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks that exactly the input and output files are passed and
// that no option follows them.
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after input file, please pass the files as last arguments", arg),
			}
		}
	}

	if len(args) != 2 {
		return &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("expected input and output file arguments, got %d arguments", len(args)),
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.Assemble, "asm", false, "assemble and link the input file with ca65/ld65 before converting it, default for .s/.asm/.a65 files")
	flags.StringVar(&opts.LinkerConfig, "cfg", "", "ld65 linker config to use instead of the generated one when assembling")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the LoROM layout of the written output file")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
