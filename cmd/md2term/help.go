package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2term [flags] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a markdown file as styled terminal text.")
	fmt.Fprintln(w, "Reads from stdin when no file is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>        Config file path")
	fmt.Fprintln(w, "  -w, --width <n>            Output width in columns (0 = auto)")
	fmt.Fprintln(w, "      --no-color             Disable ANSI colors")
	fmt.Fprintln(w, "      --code-style <name>    Syntax highlighting style for code blocks")
	fmt.Fprintln(w, "      --links-bold[=false]   Force link text bold (or plain)")
	fmt.Fprintln(w, "      --links-italic[=false] Force link text italic (or plain)")
	fmt.Fprintln(w, "      --links-strikeout[=false]")
	fmt.Fprintln(w, "                             Force link text struck out (or plain)")
	fmt.Fprintln(w, "  -v, --verbose              Log runtime details to stderr")
	fmt.Fprintln(w, "      --version              Print version and exit")
}
