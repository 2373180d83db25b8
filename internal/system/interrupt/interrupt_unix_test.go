// Released under an MIT license. See LICENSE.

//go:build unix

package interrupt

import (
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestSignal(t *testing.T) {
	Start()
	defer Stop()

	err := unix.Kill(os.Getpid(), unix.SIGINT)
	if err != nil {
		t.Fatalf("sending SIGINT: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for !Requested() {
		if time.Now().After(deadline) {
			t.Fatal("SIGINT was not delivered")
		}

		time.Sleep(10 * time.Millisecond)
	}
}
