// Released under an MIT license. See LICENSE.

// Package interrupt delivers Ctrl-C to a running evaluation.
//
// Signals are only caught between Start and Stop. The evaluator polls
// Requested and abandons the current evaluation when it returns true.
package interrupt

import (
	"os"
	"os/signal"
	"sync/atomic"
)

//nolint:gochecknoglobals
var (
	requested atomic.Bool
	signals   = make(chan os.Signal, 1)
	stop      = make(chan struct{})
)

// Requested returns true if an interrupt arrived since the last Reset.
func Requested() bool {
	return requested.Load()
}

// Reset clears any pending interrupt.
func Reset() {
	requested.Store(false)
}

// Start begins catching interrupts.
func Start() {
	Reset()

	signal.Notify(signals, interrupts...)

	go func() {
		for {
			select {
			case <-signals:
				requested.Store(true)
			case <-stop:
				return
			}
		}
	}()
}

// Stop restores the default handling of interrupts.
func Stop() {
	signal.Stop(signals)

	stop <- struct{}{}
}
