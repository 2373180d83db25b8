// Released under an MIT license. See LICENSE.

package commands

import (
	"io"
	"strings"

	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/interface/hashable"
	"github.com/michaelmacinnis/simian/internal/common/type/array"
	"github.com/michaelmacinnis/simian/internal/common/type/builtin"
	"github.com/michaelmacinnis/simian/internal/common/type/dict"
	"github.com/michaelmacinnis/simian/internal/common/type/errstr"
	"github.com/michaelmacinnis/simian/internal/common/validate"
)

// MapFunctions returns a mapping of names to map builtins.
// None of them modify the map passed.
func MapFunctions() map[string]builtin.Function {
	return map[string]builtin.Function{
		"keys": keys,
		"put":  put,
	}
}

func keys(_ io.Writer, args ...cell.I) cell.I {
	if err := validate.Fixed(args, 1); err != nil {
		return err
	}

	if !dict.Is(args[0]) {
		return validate.Unsupported("keys", args[0])
	}

	return array.New(dict.To(args[0]).Keys()...)
}

func put(_ io.Writer, args ...cell.I) cell.I {
	if err := validate.Fixed(args, 3); err != nil {
		return err
	}

	if !dict.Is(args[0]) {
		return validate.Unsupported("put", args[0])
	}

	if _, ok := hashable.Of(args[1]); !ok {
		return errstr.Errorf("unusable as map key: %s", strings.ToUpper(args[1].Name()))
	}

	d := dict.To(args[0]).Copy()
	d.Set(args[1], args[2])

	return d
}
