// Released under an MIT license. See LICENSE.

/*
Simian is a small scripting language with integers, strings, arrays, maps,
first-class functions and macros:

    let add = fn(a, b) { a + b };
    let unless = macro(c, x, y) { quote(if (!(unquote(c))) { unquote(x) } else { unquote(y) }) };
    unless(10 > 5, print("not greater"), print("greater"));

Run simian with no arguments for an interactive prompt, with a script
path, or with -c and a program.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/struct/token"
	"github.com/michaelmacinnis/simian/internal/common/type/array"
	"github.com/michaelmacinnis/simian/internal/common/type/errstr"
	"github.com/michaelmacinnis/simian/internal/common/type/null"
	"github.com/michaelmacinnis/simian/internal/common/type/str"
	"github.com/michaelmacinnis/simian/internal/engine"
	"github.com/michaelmacinnis/simian/internal/engine/eval"
	"github.com/michaelmacinnis/simian/internal/reader"
	"github.com/michaelmacinnis/simian/internal/system/interrupt"
	"github.com/michaelmacinnis/simian/internal/system/options"
	"github.com/michaelmacinnis/simian/internal/ui"
)

const banner = "simian, a small scripting language. Ctrl-D exits."

// session evaluates programs against one persistent engine.
type session struct {
	engine *engine.T
	failed bool
	quiet  bool
	reader *reader.T
	stderr io.Writer
	stdout io.Writer
}

func newSession(name string, args []string, stdout, stderr io.Writer) *session {
	e := engine.New(stdout)
	e.Interrupted(interrupt.Requested)

	values := make([]cell.I, 0, len(args))
	for _, arg := range args {
		values = append(values, str.New(arg))
	}

	e.Define("args", array.New(values...))

	return &session{
		engine: e,
		reader: reader.New(name),
		stderr: stderr,
		stdout: stdout,
	}
}

// Evaluate reads, expands and evaluates text. It returns false without
// evaluating anything if text is incomplete and force is false.
func (s *session) Evaluate(text string, force bool) bool {
	p, err := s.reader.Read(text)
	if err != nil {
		if s.reader.Incomplete() && !force {
			return false
		}

		s.failed = true

		fmt.Fprintln(s.stderr, err.Error())

		return true
	}

	interrupt.Start()
	defer interrupt.Stop()

	v, err := s.engine.Evaluate(p)
	if err != nil {
		s.failed = true

		if errors.Is(err, eval.ErrInterrupted) {
			fmt.Fprintln(s.stderr, "KeyboardInterrupt")
		} else {
			fmt.Fprintln(s.stderr, err.Error())
		}

		return true
	}

	switch {
	case v == nil || null.Is(v):
	case errstr.Is(v):
		s.failed = true

		w := s.stdout
		if s.quiet {
			w = s.stderr
		}

		fmt.Fprintln(w, v.String())
	case !s.quiet:
		fmt.Fprintln(s.stdout, v.String())
	}

	return true
}

// Names returns everything worth offering for completion.
func (s *session) Names() []string {
	names := token.Keywords()
	names = append(names, s.engine.Names()...)

	return append(names, s.reader.Identifiers()...)
}

func main() {
	options.Parse()

	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	args := options.Args()

	if options.Interactive() {
		s := newSession("simian", args, stdout, stderr)
		if !options.Quiet() {
			fmt.Fprintln(stdout, banner)
		}

		ui.Run(s)

		return 0
	}

	name, text := "simian", options.Command()

	if options.Command() == "" {
		b, err := source(stdin)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())

			return 1
		}

		text = string(b)

		if options.Script() != "" {
			name = options.Script()
		}
	}

	s := newSession(name, args, stdout, stderr)

	// Only print is visible when not interactive.
	s.quiet = true

	s.Evaluate(text, true)

	if s.failed {
		return 1
	}

	return 0
}

func source(stdin io.Reader) ([]byte, error) {
	if path := options.Script(); path != "" {
		return os.ReadFile(path)
	}

	return io.ReadAll(stdin)
}
