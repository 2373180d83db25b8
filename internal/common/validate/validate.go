// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to builtins.
package validate

import (
	"strings"

	"github.com/michaelmacinnis/simian/internal/common/interface/cell"
	"github.com/michaelmacinnis/simian/internal/common/type/errstr"
)

// Fixed returns an error value if args does not hold exactly n values.
func Fixed(args []cell.I, n int) cell.I {
	if len(args) != n {
		return errstr.Errorf("wrong number of arguments. got=%d, want=%d", len(args), n)
	}

	return nil
}

// Variadic returns an error value if args holds fewer than min or more
// than max values. A negative max means there is no upper limit.
func Variadic(args []cell.I, min, max int) cell.I {
	if len(args) < min {
		return errstr.Errorf("wrong number of arguments. got=%d, want>=%d", len(args), min)
	}

	if max >= 0 && len(args) > max {
		return errstr.Errorf("wrong number of arguments. got=%d, want=%d", len(args), max)
	}

	return nil
}

// Unsupported returns the error value for an argument of the wrong type.
func Unsupported(name string, arg cell.I) cell.I {
	return errstr.Errorf("argument to %s not supported, got %s", name, strings.ToUpper(arg.Name()))
}
