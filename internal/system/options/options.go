// Released under an MIT license. See LICENSE.

// Package options parses simian's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is the version reported by -v.
const Version = "simian 0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	command     string
	interactive bool
	quiet       bool
	script      string
	usage       = `simian

Usage:
  simian [-q] SCRIPT [ARGUMENTS...]
  simian [-q] -c COMMAND [ARGUMENTS...]
  simian [-iq]
  simian -h
  simian -v

Arguments:
  ARGUMENTS  Values for the args array.
  SCRIPT     Path to a simian script. Also used as the value for args[0].

Options:
  -c, --command=COMMAND  Evaluate the specified program.
  -i, --interactive      Invert interactive mode.
  -q, --quiet            Do not print a banner when interactive.
  -h, --help             Display this help.
  -v, --version          Print simian version.

If simian's stdin is a TTY, and simian was invoked with no script or command,
interactive mode is enabled. Otherwise, programs are read from stdin.
`
)

// Args returns the values for the args array. The first is the script name.
func Args() []string {
	return args
}

// Command returns the program passed with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if simian should prompt for input.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. It exits after printing help or version information.
func Parse() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	load(opts, isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

// Quiet returns true if the banner should not be printed.
func Quiet() bool {
	return quiet
}

// Script returns the path to the script to evaluate, if any.
func Script() string {
	return script
}

func load(opts docopt.Opts, terminal bool) {
	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")
	quiet, _ = opts.Bool("--quiet")

	name := os.Args[0]
	if script != "" {
		name = script
	}

	interactive = script == "" && command == "" && terminal

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert

	args, _ = opts["ARGUMENTS"].([]string)
	args = append([]string{name}, args...)
}
