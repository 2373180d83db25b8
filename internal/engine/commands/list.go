// Released under an MIT license. See LICENSE.

package commands

import (
	"io"

	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/type/array"
	"github.com/michaelmacinnis/simian/internal/common/type/builtin"
	"github.com/michaelmacinnis/simian/internal/common/type/null"
	"github.com/michaelmacinnis/simian/internal/common/validate"
)

// ArrayFunctions returns a mapping of names to array builtins.
// None of them modify the array passed.
func ArrayFunctions() map[string]builtin.Function {
	return map[string]builtin.Function{
		"first": first,
		"last":  last,
		"push":  push,
		"rest":  rest,
	}
}

func first(_ io.Writer, args ...cell.I) cell.I {
	a, err := oneArray("first", args)
	if err != nil {
		return err
	}

	if v, ok := a.At(0); ok {
		return v
	}

	return null.Null
}

func last(_ io.Writer, args ...cell.I) cell.I {
	a, err := oneArray("last", args)
	if err != nil {
		return err
	}

	if v, ok := a.At(int64(a.Len() - 1)); ok {
		return v
	}

	return null.Null
}

func oneArray(name string, args []cell.I) (*array.T, cell.I) {
	if err := validate.Fixed(args, 1); err != nil {
		return nil, err
	}

	if !array.Is(args[0]) {
		return nil, validate.Unsupported(name, args[0])
	}

	return array.To(args[0]), nil
}

func push(_ io.Writer, args ...cell.I) cell.I {
	if err := validate.Fixed(args, 2); err != nil {
		return err
	}

	if !array.Is(args[0]) {
		return validate.Unsupported("push", args[0])
	}

	return array.To(args[0]).Append(args[1])
}

func rest(_ io.Writer, args ...cell.I) cell.I {
	a, err := oneArray("rest", args)
	if err != nil {
		return err
	}

	if a.Len() == 0 {
		return null.Null
	}

	return a.Slice(1)
}
