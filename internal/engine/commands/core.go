// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/type/array"
	"github.com/michaelmacinnis/simian/internal/common/type/builtin"
	"github.com/michaelmacinnis/simian/internal/common/type/dict"
	"github.com/michaelmacinnis/simian/internal/common/type/null"
	"github.com/michaelmacinnis/simian/internal/common/type/num"
	"github.com/michaelmacinnis/simian/internal/common/type/str"
	"github.com/michaelmacinnis/simian/internal/common/validate"
)

// Now returns the current time. Replaced in tests.
var Now = time.Now //nolint:gochecknoglobals

// CoreFunctions returns a mapping of names to general purpose builtins.
func CoreFunctions() map[string]builtin.Function {
	return map[string]builtin.Function{
		"len":   length,
		"print": print,
		"time":  now,
		"type":  kind,
	}
}

func kind(_ io.Writer, args ...cell.I) cell.I {
	if err := validate.Fixed(args, 1); err != nil {
		return err
	}

	return str.New(args[0].Name())
}

func length(_ io.Writer, args ...cell.I) cell.I {
	if err := validate.Fixed(args, 1); err != nil {
		return err
	}

	switch v := args[0].(type) {
	case *array.T:
		return num.New(int64(v.Len()))
	case *dict.T:
		return num.New(int64(v.Len()))
	case *str.T:
		return num.New(int64(utf8.RuneCountInString(v.String())))
	}

	return validate.Unsupported("len", args[0])
}

func now(_ io.Writer, args ...cell.I) cell.I {
	if err := validate.Fixed(args, 0); err != nil {
		return err
	}

	return str.New(Now().Format("2006-01-02 15:04:05"))
}

//nolint:predeclared
func print(w io.Writer, args ...cell.I) cell.I {
	for _, arg := range args {
		fmt.Fprintln(w, arg.String())
	}

	return null.Null
}
