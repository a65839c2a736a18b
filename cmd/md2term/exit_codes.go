package main

import (
	"errors"
	"os"

	"github.com/mdtext/mdtext"
	"github.com/mdtext/mdtext/internal/config"
)

// Exit codes for the md2term CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // File not found, permission denied
	ExitConvert = 4 // Markdown uses constructs the converter rejects
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Conversion errors (exit 4)
	if errors.Is(err, mdtext.ErrUnsupportedNode) ||
		errors.Is(err, mdtext.ErrUnsupportedChildNode) ||
		errors.Is(err, mdtext.ErrNumberedList) ||
		errors.Is(err, mdtext.ErrListTooDeep) ||
		errors.Is(err, mdtext.ErrUnsupportedLine) {
		return ExitConvert
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, config.ErrInvalidHeadingDepth) ||
		errors.Is(err, config.ErrInvalidWidth) ||
		errors.Is(err, ErrInvalidWidth) {
		return ExitUsage
	}

	return ExitGeneral
}
