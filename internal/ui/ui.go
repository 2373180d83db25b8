// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the simian language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/michaelmacinnis/simian/internal/system/history"
	"github.com/peterh/liner"
)

const (
	continuation = ".. "
	prompt       = ">> "
)

// Evaluator is the interface for things that want to process what the user
// types. Evaluate returns false, without evaluating anything, if text is
// an incomplete program and force is false.
type Evaluator interface {
	Evaluate(text string, force bool) bool
	Names() []string
}

// Run prompts for programs and sends them to the Evaluator until the user
// types Ctrl-D.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(e.Names(), line, pos)
	})

	err := history.Load(cli.ReadHistory)
	if err != nil {
		println(err.Error())
	}

	loop(cli, e, os.Stdout)

	err = history.Save(cli.WriteHistory)
	if err != nil {
		println(err.Error())
	}
}

func complete(names []string, line string, pos int) (string, []string, string) {
	if pos > len(line) {
		pos = len(line)
	}

	start := pos
	for start > 0 && identifier(line[start-1]) {
		start--
	}

	head, word, tail := line[:start], line[start:pos], line[pos:]
	if word == "" {
		return head, nil, tail
	}

	seen := map[string]bool{}
	cs := []string{}

	for _, name := range names {
		if !seen[name] && strings.HasPrefix(name, word) {
			seen[name] = true
			cs = append(cs, name)
		}
	}

	sort.Strings(cs)

	return head, cs, tail
}

func identifier(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('A' <= b && b <= 'Z') ||
		('a' <= b && b <= 'z')
}

func loop(cli *liner.State, e Evaluator, w io.Writer) {
	lines := []string{}

	for {
		p := prompt
		if len(lines) > 0 {
			p = continuation
		}

		line, err := cli.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(w, "KeyboardInterrupt")

			lines = lines[:0]

			continue
		} else if err != nil {
			// io.EOF when the user types Ctrl-D.
			fmt.Fprintln(w, "Bye!")

			return
		}

		if strings.TrimSpace(line) == "" && len(lines) == 0 {
			continue
		}

		force := len(lines) > 0 && line == ""

		lines = append(lines, line)

		text := strings.Join(lines, "\n")
		if !e.Evaluate(text, force) {
			continue
		}

		cli.AppendHistory(strings.Join(lines, " "))

		lines = lines[:0]
	}
}
