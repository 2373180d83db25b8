// Released under an MIT license. See LICENSE.

package commands

import (
	"io"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/type/array"
	"github.com/michaelmacinnis/simian/internal/common/type/boolean"
	"github.com/michaelmacinnis/simian/internal/common/type/builtin"
	"github.com/michaelmacinnis/simian/internal/common/type/errstr"
	"github.com/michaelmacinnis/simian/internal/common/type/str"
	"github.com/michaelmacinnis/simian/internal/common/validate"
)

// StringFunctions returns a mapping of names to string builtins.
func StringFunctions() map[string]builtin.Function {
	return map[string]builtin.Function{
		"join":  join,
		"lower": lower,
		"match": match,
		"split": split,
		"upper": upper,
	}
}

func join(_ io.Writer, args ...cell.I) cell.I {
	if err := validate.Variadic(args, 1, 2); err != nil {
		return err
	}

	if !array.Is(args[0]) {
		return validate.Unsupported("join", args[0])
	}

	sep := ""
	if len(args) == 2 { //nolint:gomnd
		if !str.Is(args[1]) {
			return validate.Unsupported("join", args[1])
		}

		sep = args[1].String()
	}

	elements := array.To(args[0]).Elements()

	s := make([]string, len(elements))
	for i, e := range elements {
		s[i] = e.String()
	}

	return str.New(strings.Join(s, sep))
}

func lower(_ io.Writer, args ...cell.I) cell.I {
	s, err := strings1("lower", args)
	if err != nil {
		return err
	}

	return str.New(strings.ToLower(s[0]))
}

func match(_ io.Writer, args ...cell.I) cell.I {
	s, err := strings2("match", args)
	if err != nil {
		return err
	}

	ok, e := adapted.Match(s[0], s[1])
	if e != nil {
		return errstr.Errorf("match: %v", e)
	}

	return boolean.Bool(ok)
}

func split(_ io.Writer, args ...cell.I) cell.I {
	s, err := strings2("split", args)
	if err != nil {
		return err
	}

	parts := strings.Split(s[0], s[1])

	elements := make([]cell.I, len(parts))
	for i, p := range parts {
		elements[i] = str.New(p)
	}

	return array.New(elements...)
}

func upper(_ io.Writer, args ...cell.I) cell.I {
	s, err := strings1("upper", args)
	if err != nil {
		return err
	}

	return str.New(strings.ToUpper(s[0]))
}

func strings1(name string, args []cell.I) ([]string, cell.I) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	return texts(name, args)
}

func strings2(name string, args []cell.I) ([]string, cell.I) {
	if err := validate.Fixed(args, 2); err != nil { //nolint:gomnd
		return nil, err
	}

	return texts(name, args)
}

func texts(name string, args []cell.I) ([]string, cell.I) {
	s := make([]string, len(args))

	for i, arg := range args {
		if !str.Is(arg) {
			return nil, validate.Unsupported(name, arg)
		}

		s[i] = arg.String()
	}

	return s, nil
}
