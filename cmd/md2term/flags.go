package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for md2term.
type cliFlags struct {
	config    string
	width     int
	noColor   bool
	codeStyle string
	verbose   bool
	version   bool

	// Link overrides are tri-state: nil means "not set on the command
	// line", so config values survive unless a flag was given.
	linksBold      *bool
	linksItalic    *bool
	linksStrikeout *bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2term", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.IntVarP(&f.width, "width", "w", 0, "output width in columns (0 = auto)")
	fs.BoolVar(&f.noColor, "no-color", false, "disable ANSI colors")
	fs.StringVar(&f.codeStyle, "code-style", "", "syntax highlighting style for code blocks")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log runtime details to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	linksBold := fs.Bool("links-bold", false, "render link text in bold (--links-bold=false forces plain)")
	linksItalic := fs.Bool("links-italic", false, "render link text in italics")
	linksStrikeout := fs.Bool("links-strikeout", false, "render link text struck out")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if fs.Changed("links-bold") {
		f.linksBold = linksBold
	}
	if fs.Changed("links-italic") {
		f.linksItalic = linksItalic
	}
	if fs.Changed("links-strikeout") {
		f.linksStrikeout = linksStrikeout
	}

	return f, fs.Args(), nil
}
