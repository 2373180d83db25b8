// Released under an MIT license. See LICENSE.

//go:build unix

package interrupt

import (
	"os"

	"golang.org/x/sys/unix"
)

var interrupts = []os.Signal{unix.SIGINT} //nolint:gochecknoglobals
