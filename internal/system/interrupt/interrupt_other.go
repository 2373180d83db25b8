// Released under an MIT license. See LICENSE.

//go:build !unix

package interrupt

import (
	"os"
)

var interrupts = []os.Signal{os.Interrupt} //nolint:gochecknoglobals
