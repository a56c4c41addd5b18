// Package input collects interactive answers from the terminal.
package input

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrCancelled is returned when the user aborts a prompt with Ctrl-C or
// Ctrl-D.
var ErrCancelled = errors.New("cancelled")

// Reader asks questions on the terminal. A zero-value Reader is not
// usable; construct with NewReader and Close when done.
type Reader struct {
	rl *readline.Instance
}

// NewReader opens a readline-backed prompt reader.
func NewReader() (*Reader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, err
	}
	return &Reader{rl: rl}, nil
}

// Close releases the terminal.
func (r *Reader) Close() error {
	return r.rl.Close()
}

// Line asks a free-form question and returns the trimmed answer. An
// interrupted prompt returns ErrCancelled.
func (r *Reader) Line(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Choice asks until the user enters one of the given single-letter codes
// or presses enter for the default. Codes are matched case-insensitively.
func (r *Reader) Choice(prompt string, codes []string, defaultCode string) (string, error) {
	for {
		answer, err := r.Line(prompt)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return defaultCode, nil
		}
		answer = strings.ToLower(answer)
		for _, code := range codes {
			if answer == code {
				return code, nil
			}
		}
		// unrecognized input re-asks
	}
}

// Confirm asks a yes/no question.
func (r *Reader) Confirm(prompt string, defaultYes bool) (bool, error) {
	suffix := " [y/N] "
	if defaultYes {
		suffix = " [Y/n] "
	}
	answer, err := r.Line(prompt + suffix)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
