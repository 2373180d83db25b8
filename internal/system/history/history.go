// Released under an MIT license. See LICENSE.

// Package history persists the interactive shell's history.
package history

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// Variable overrides the default history file path.
const Variable = "SIMIAN_HISTORY"

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// Path returns the location of the history file.
func Path() string {
	if p := os.Getenv(Variable); p != "" {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}

	return filepath.Join(home, ".simian_history")
}

// Save passes the history file, truncated, to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(Path())
}
