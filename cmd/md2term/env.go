package main

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	// TermWidth reports the terminal width of stdout, or ok=false when
	// stdout is not a terminal.
	TermWidth func() (width int, ok bool)
}

// DefaultEnv returns the production environment backed by the process
// standard streams.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		TermWidth: func() (int, bool) {
			fd := int(os.Stdout.Fd())
			if !term.IsTerminal(fd) {
				return 0, false
			}
			width, _, err := term.GetSize(fd)
			if err != nil || width <= 0 {
				return 0, false
			}
			return width, true
		},
	}
}
